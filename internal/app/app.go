package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/threds/internal/config"
	"github.com/five82/threds/internal/logging"
	"github.com/five82/threds/internal/prefs"
	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/state"
	"github.com/five82/threds/internal/threds"
	"github.com/five82/threds/internal/ui"
)

// Options configure the client.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/threds/prefs.toml
	APIURL     string // overrides config and environment when set
	Path       string // initial location; empty means "/" or the resumed path
	Resume     bool
	Version    string
}

// Session is everything a command needs: resolved config, preferences, the
// log file, the API client and the liveness store.
type Session struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *logging.Logger
	Client    *threds.Client
	Store     *state.Store
}

// Open loads configuration and preferences and builds the client.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}

	logger, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	prefsPath := strings.TrimSpace(opts.PrefsPath)
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", "error", err)
	}

	client, err := threds.NewClient(cfg.APIURL)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("init threds client: %w", err)
	}
	if opts.Version != "" {
		client.SetUserAgent("threds/" + opts.Version)
	}

	logger.Info("session opened", "api_url", client.BaseURL(), "version", opts.Version)
	return &Session{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Logger:    logger,
		Client:    client,
		Store:     &state.Store{},
	}, nil
}

// Close releases the log file.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	return s.Logger.Close()
}

// StartPath picks the initial location: an explicit path wins, then the last
// visited path when resuming, then the root.
func StartPath(opts Options, p prefs.Prefs) string {
	switch {
	case strings.TrimSpace(opts.Path) != "":
		return route.Canonical(strings.TrimSpace(opts.Path))
	case opts.Resume:
		return route.Canonical(p.LastPath)
	default:
		return "/"
	}
}

// Probe runs the liveness check once and records it in the session store.
func (s *Session) Probe(ctx context.Context) state.Snapshot {
	Probe(ctx, s.Client, s.Store, s.Logger.Logger)
	return s.Store.Snapshot()
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	history := route.NewHistory(StartPath(opts, s.Prefs))
	s.Logger.Debug("starting ui", "path", history.Path())

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    s.Client,
		Store:     s.Store,
		History:   history,
		Probe:     s.Probe,
		Logger:    s.Logger.Logger,
		LogPath:   s.Logger.Path(),
		DarkMode:  s.Prefs.DarkMode,
		PrefsPath: s.PrefsPath,
		Version:   opts.Version,
	})
	if err != nil {
		s.Logger.Error("ui exited with error", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	s.Logger.Info("session closed", "path", history.Path())
	return nil
}
