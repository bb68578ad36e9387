package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/store"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.toml>",
		Short: "Load catalog entries from a TOML file",
		Long: `Load movies, series with their chapters, books with their pages and
magazines from a TOML file. The import is all or nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := store.ReadCatalogFile(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				res, err := a.store.Import(ctx, f)
				if err != nil {
					return err
				}
				a.logger.Info("catalog imported", "file", args[0])
				if opts.jsonOutput {
					return printJSON(cmd.OutOrStdout(), res)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movies, %d series (%d chapters), %d books (%d pages), %d magazines\n",
					res.Movies, res.Series, res.Chapters, res.Books, res.Pages, res.Magazines)
				return nil
			})
		},
	}
}
