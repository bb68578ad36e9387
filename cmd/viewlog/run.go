package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/console"
	"github.com/vmunix/viewlog/internal/report"
	"github.com/vmunix/viewlog/internal/viewing"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive session (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}
}

func runSession(cmd *cobra.Command, opts *options) error {
	return withApp(cmd, opts, func(ctx context.Context, a *app) error {
		user, err := a.user(ctx)
		if err != nil {
			return err
		}
		cat, err := a.store.LoadCatalog(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		a.logger.Info("session started", "user", user.Name,
			"movies", len(cat.Movies), "series", len(cat.Series),
			"books", len(cat.Books), "magazines", len(cat.Magazines))

		notices := a.bus.SubscribeAll(64)
		tracker := viewing.NewTracker(a.store, cat, *user,
			viewing.WithLogger(a.logger),
			viewing.WithPublisher(a.bus))

		s := console.NewSession(tracker, a.saver(user.ID), cmd.InOrStdin(), cmd.OutOrStdout(),
			console.WithNotices(notices),
			console.WithLogger(a.logger))
		return s.Run(ctx)
	})
}

func (a *app) saver(userID int64) *report.Saver {
	return &report.Saver{
		Writer:    report.FileWriter{Dir: a.cfg.Report.Dir},
		Name:      a.cfg.Report.Name,
		Extension: a.cfg.Report.Extension,
		Title:     a.cfg.Report.Title,
		UserID:    userID,
		Publisher: a.bus,
		Logger:    a.logger.With("component", "report"),
	}
}
