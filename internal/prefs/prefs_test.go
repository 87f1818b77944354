package prefs

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

func openTemp(t *testing.T) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	c := Open(path, nil)
	t.Cleanup(c.Close)
	return c, path
}

func TestSetGet_RoundTrip(t *testing.T) {
	c, _ := openTemp(t)

	cases := []struct {
		name  string
		value string
	}{
		{"plain", "alice"},
		{"empty", ""},
		{"quotes_and_unicode", `say "héllo" \ world`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.Set(KeyFilter, tc.value)
			if got := c.Get(KeyFilter, "fallback"); got != tc.value {
				t.Fatalf("Get = %q, want %q", got, tc.value)
			}
		})
	}
}

func TestGet_MissingKeyReturnsDefault(t *testing.T) {
	c, _ := openTemp(t)
	if got := c.Get("never-set", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want %q", got, "fallback")
	}
}

func TestGet_CorruptValueReturnsDefault(t *testing.T) {
	c, path := openTemp(t)
	c.Set(KeyFilter, "valid")
	c.Close()

	// Scribble invalid JSON over the stored value.
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("bolt.Open: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(KeyFilter), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupt value: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := Open(path, nil)
	defer reopened.Close()
	if got := reopened.Get(KeyFilter, "fallback"); got != "fallback" {
		t.Fatalf("Get on corrupt value = %q, want %q", got, "fallback")
	}
}

func TestSet_SurvivesReopen(t *testing.T) {
	c, path := openTemp(t)
	c.Set(KeyFilter, "ann")
	c.Close()

	reopened := Open(path, nil)
	defer reopened.Close()
	if got := reopened.Get(KeyFilter, ""); got != "ann" {
		t.Fatalf("Get after reopen = %q, want %q", got, "ann")
	}
}

func TestDisabledCache_DegradesGracefully(t *testing.T) {
	// A directory is not a valid database file, so Open degrades to a
	// disabled cache instead of failing.
	c := Open(t.TempDir(), nil)
	defer c.Close()

	c.Set(KeyFilter, "ignored")
	if got := c.Get(KeyFilter, "fallback"); got != "fallback" {
		t.Fatalf("disabled Get = %q, want %q", got, "fallback")
	}
}
