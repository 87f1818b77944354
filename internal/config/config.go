// Package config loads rosterdeck settings from a TOML file, falling back
// to defaults when the file is missing.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds application settings. Every field is optional in the file.
type Config struct {
	Theme          string
	PrefsPath      string
	LogPath        string
	SortField      string
	SortDirection  string
	AddLatencyMS   int
	AddFailureRate float64
}

const (
	defaultConfigPath  = "~/.config/rosterdeck/config.toml"
	defaultLogPath     = "~/.local/share/rosterdeck/rosterdeck.log"
	defaultTheme       = "Dracula"
	defaultSortField   = "name"
	defaultSortDir     = "asc"
	defaultAddLatency  = 900
	defaultFailureRate = 0.2
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func defaults() Config {
	return Config{
		Theme:          defaultTheme,
		LogPath:        mustExpand(defaultLogPath),
		SortField:      defaultSortField,
		SortDirection:  defaultSortDir,
		AddLatencyMS:   defaultAddLatency,
		AddFailureRate: defaultFailureRate,
	}
}

// Load locates and parses the config, falling back to defaults when the
// file is absent.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme          string  `toml:"theme"`
		PrefsPath      string  `toml:"prefs_path"`
		LogPath        string  `toml:"log_path"`
		SortField      string  `toml:"sort_field"`
		SortDirection  string  `toml:"sort_direction"`
		AddLatencyMS   int     `toml:"add_latency_ms"`
		AddFailureRate float64 `toml:"add_failure_rate"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if s := strings.TrimSpace(raw.Theme); s != "" {
		cfg.Theme = s
	}
	if s := strings.TrimSpace(raw.PrefsPath); s != "" {
		cfg.PrefsPath = mustExpand(s)
	}
	if s := strings.TrimSpace(raw.LogPath); s != "" {
		cfg.LogPath = mustExpand(s)
	}
	if s := strings.TrimSpace(raw.SortField); s != "" {
		cfg.SortField = s
	}
	if s := strings.TrimSpace(raw.SortDirection); s != "" {
		cfg.SortDirection = s
	}
	if raw.AddLatencyMS > 0 {
		cfg.AddLatencyMS = raw.AddLatencyMS
	}
	if raw.AddFailureRate > 0 {
		cfg.AddFailureRate = raw.AddFailureRate
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
