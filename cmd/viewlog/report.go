package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var today bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the report of everything consumed",
		Long: `Write the report of every consumed movie, chapter and book to the
configured report directory. With --today the file name and header carry
the current date and time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				user, err := a.user(ctx)
				if err != nil {
					return err
				}
				cat, err := a.store.LoadCatalog(ctx, user.ID)
				if err != nil {
					return fmt.Errorf("load catalog: %w", err)
				}
				path, err := a.saver(user.ID).Save(ctx, cat, today)
				if err != nil {
					return err
				}
				if opts.jsonOutput {
					return printJSON(cmd.OutOrStdout(), map[string]any{"path": path, "dated": today})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report generated: %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&today, "today", false, "Date-stamp the report")
	return cmd
}
