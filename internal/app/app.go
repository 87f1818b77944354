package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kgrieve/rosterdeck/internal/action"
	"github.com/kgrieve/rosterdeck/internal/config"
	"github.com/kgrieve/rosterdeck/internal/directory"
	"github.com/kgrieve/rosterdeck/internal/logging"
	"github.com/kgrieve/rosterdeck/internal/prefs"
	"github.com/kgrieve/rosterdeck/internal/scope"
	"github.com/kgrieve/rosterdeck/internal/store"
	"github.com/kgrieve/rosterdeck/internal/ui"
	"github.com/kgrieve/rosterdeck/internal/view"
)

// Options configure the rosterdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses the config value, then the default
}

// Run boots the rosterdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog := logging.New(cfg.LogPath)
	defer closeLog()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = cfg.PrefsPath
	}
	cache := prefs.Open(prefsPath, logger.With("component", "prefs"))
	defer cache.Close()

	st := store.New(seedRoster())
	provider := scope.NewProvider(st)
	ctx = scope.With(ctx, provider)

	client := directory.NewSimulated(
		time.Duration(cfg.AddLatencyMS)*time.Millisecond,
		cfg.AddFailureRate,
	)
	ctrl := action.New(logger.With("component", "action"))

	uiOpts := ui.Options{
		Context:    ctx,
		Cache:      cache,
		Directory:  client,
		Controller: ctrl,
		Logger:     logger,
		ThemeName:  cache.Get(prefs.KeyTheme, cfg.Theme),
		SortField:  sortField(cfg.SortField),
		SortDir:    sortDirection(cfg.SortDirection),
	}
	return ui.Run(uiOpts)
}

func sortField(name string) view.SortField {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "email":
		return view.FieldEmail
	case "role":
		return view.FieldRole
	default:
		return view.FieldName
	}
}

func sortDirection(name string) view.Direction {
	if strings.EqualFold(strings.TrimSpace(name), "desc") {
		return view.Descending
	}
	return view.Ascending
}
