package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type findResult struct {
	Kind       string  `json:"kind"`
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Series     string  `json:"series,omitempty"`
	Consumed   bool    `json:"consumed"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

func newFindCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find <title>",
		Short: "Look up catalog items by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				user, err := a.user(ctx)
				if err != nil {
					return err
				}
				cat, err := a.store.LoadCatalog(ctx, user.ID)
				if err != nil {
					return fmt.Errorf("load catalog: %w", err)
				}

				matches := cat.Find(query, limit)
				results := make([]findResult, 0, len(matches))
				for _, m := range matches {
					results = append(results, findResult{
						Kind: string(m.Kind), ID: m.ID, Title: m.Title, Series: m.Parent,
						Consumed: m.Done, Score: m.Score, Confidence: string(m.Confidence),
					})
				}

				if opts.jsonOutput {
					return printJSON(cmd.OutOrStdout(), results)
				}
				if len(results) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No matches for %q\n", query)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-9s %-4s %-32s %-9s %s\n", "KIND", "ID", "TITLE", "CONSUMED", "MATCH")
				fmt.Fprintln(cmd.OutOrStdout(), "  "+strings.Repeat("-", 66))
				for _, r := range results {
					title := r.Title
					if r.Series != "" {
						title = r.Series + " / " + r.Title
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %-9s %-4d %-32s %-9s %s\n", r.Kind, r.ID, truncate(title, 32), yesNo(r.Consumed), r.Confidence)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum matches to show (0 for all)")
	return cmd
}
