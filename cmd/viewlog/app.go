package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/catalog"
	"github.com/vmunix/viewlog/internal/config"
	"github.com/vmunix/viewlog/internal/events"
	"github.com/vmunix/viewlog/internal/store"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadConfig resolves the config file: the --config flag, then Discover.
// With no file anywhere the defaults are used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// app holds the resources one command invocation needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sql.DB
	store   *store.Store
	log     *events.EventLog
	bus     *events.Bus
	session string
}

func openApp(ctx context.Context, opts *options, logOut io.Writer) (*app, error) {
	cfg, path, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	session := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	})).With("session", session)
	if path == "" {
		logger.Debug("no config file found, using defaults")
	} else {
		logger.Debug("config loaded", "path", path)
	}

	db, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	eventLog := events.NewEventLog(db)
	return &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   store.NewStore(db, store.WithUniqueRecords(cfg.Database.UniqueRecords)),
		log:     eventLog,
		bus:     events.NewBus(eventLog, logger.With("component", "events")),
		session: session,
	}, nil
}

func (a *app) user(ctx context.Context) (*catalog.User, error) {
	u, err := a.store.ResolveUser(ctx, a.cfg.User.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return u, nil
}

func (a *app) Close() error {
	_ = a.bus.Close()
	return a.db.Close()
}

func withApp(cmd *cobra.Command, opts *options, fn func(context.Context, *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(ctx, a)
}
