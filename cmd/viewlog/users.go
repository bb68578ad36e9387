package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/catalog"
)

func newUsersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Show the configured user and their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				user, err := a.user(ctx)
				if err != nil {
					return err
				}
				counts, err := a.store.CountRecords(ctx, user.ID)
				if err != nil {
					return fmt.Errorf("count records: %w", err)
				}

				if opts.jsonOutput {
					byKind := make(map[string]int, len(catalog.Kinds))
					for _, k := range catalog.Kinds {
						byKind[string(k)] = counts[k]
					}
					return printJSON(cmd.OutOrStdout(), map[string]any{"id": user.ID, "name": user.Name, "records": byKind})
				}

				fmt.Fprintf(cmd.OutOrStdout(), "User %s (id %d)\n\n", user.Name, user.ID)
				for _, k := range catalog.Kinds {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-9s %d\n", k, counts[k])
				}
				return nil
			})
		},
	}
}
