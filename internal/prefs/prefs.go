// Package prefs persists rosterdeck user preferences in a small bbolt
// database. Values are JSON-encoded strings under a single bucket.
//
// Every failure mode degrades gracefully: reads fall back to the caller's
// default, writes leave the previous durable state in place, and both are
// logged rather than returned. Callers never have to handle a preference
// error.
package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Preference keys used by the dashboard.
const (
	KeyFilter = "userFilter"
	KeyTheme  = "theme"
)

const (
	bucketName    = "preferences"
	defaultDBPath = "~/.local/share/rosterdeck/prefs.db"
	openTimeout   = 500 * time.Millisecond
	dbFileMode    = 0o600
	parentDirMode = 0o755
)

// Cache is a durable key-value store for preferences. A Cache whose medium
// failed to open is still usable: Get returns defaults and Set is a logged
// no-op.
type Cache struct {
	db  *bolt.DB
	log *slog.Logger
}

// DefaultPath returns the default preference database path.
func DefaultPath() string {
	return defaultDBPath
}

// Open opens (or creates) the preference database at path. An empty path
// uses DefaultPath. Open never fails: when the medium is unavailable the
// returned cache is disabled and every read falls back to its default.
func Open(path string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Cache{log: logger}

	resolved, err := resolvePath(path)
	if err != nil {
		c.log.Warn("preference store disabled", "error", err)
		return c
	}
	if err := os.MkdirAll(filepath.Dir(resolved), parentDirMode); err != nil {
		c.log.Warn("preference store disabled", "path", resolved, "error", err)
		return c
	}

	db, err := bolt.Open(resolved, dbFileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		c.log.Warn("preference store disabled", "path", resolved, "error", err)
		return c
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		c.log.Warn("preference store disabled", "path", resolved, "error", err)
		_ = db.Close()
		return c
	}

	c.db = db
	return c
}

// Get reads the value persisted under key. On a missing key, a decode
// failure, or an unavailable medium it returns def and logs the reason.
func (c *Cache) Get(key, def string) string {
	if c == nil || c.db == nil {
		return def
	}

	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		c.log.Warn("preference read failed", "key", key, "error", err)
		return def
	}
	if raw == nil {
		return def
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		c.log.Warn("preference value corrupt", "key", key, "error", err)
		return def
	}
	return value
}

// Set encodes value and writes it under key. A write failure is logged and
// the previous durable state is left unchanged; the caller's in-memory value
// is deliberately not rolled back.
func (c *Cache) Set(key, value string) {
	if c == nil {
		return
	}
	if c.db == nil {
		c.log.Warn("preference write skipped, store unavailable", "key", key)
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("preference encode failed", "key", key, "error", err)
		return
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), raw)
	})
	if err != nil {
		c.log.Warn("preference write failed", "key", key, "error", err)
	}
}

// Close releases the underlying database. Safe on a disabled cache.
func (c *Cache) Close() {
	if c == nil || c.db == nil {
		return
	}
	if err := c.db.Close(); err != nil {
		c.log.Warn("preference store close failed", "error", err)
	}
	c.db = nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultDBPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
