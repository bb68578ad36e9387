package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/viewlog/internal/events"
)

type historyItem struct {
	ID         int64     `json:"id"`
	EventType  string    `json:"event_type"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newHistoryCmd(opts *options) *cobra.Command {
	var since time.Duration
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded consumption events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				raw, err := a.log.Since(ctx, time.Now().Add(-since))
				if err != nil {
					return fmt.Errorf("failed to fetch events: %w", err)
				}

				registry := events.DefaultRegistry()
				items := make([]historyItem, 0, len(raw))
				for _, r := range raw {
					items = append(items, historyItem{
						ID: r.ID, EventType: r.EventType, EntityType: r.EntityType, EntityID: r.EntityID,
						Summary: describeEvent(registry, r), OccurredAt: r.OccurredAt,
					})
				}

				if opts.jsonOutput {
					return printJSON(cmd.OutOrStdout(), items)
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No events")
					return nil
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Events (%d):\n\n", len(items))
				fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %-18s %s\n", "TIME", "TYPE", "DETAIL")
				fmt.Fprintln(cmd.OutOrStdout(), "  "+strings.Repeat("-", 55))
				for _, it := range items {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %-18s %s\n", formatTimeAgo(it.OccurredAt), it.EventType, it.Summary)
				}
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&since, "since", 7*24*time.Hour, "How far back to look")
	return cmd
}

// describeEvent renders a one-line summary, falling back to the entity
// reference for unknown or unreadable payloads.
func describeEvent(registry *events.Registry, raw events.RawEvent) string {
	fallback := fmt.Sprintf("%s/%d", raw.EntityType, raw.EntityID)
	e, err := registry.Unmarshal(raw)
	if err != nil {
		return fallback
	}
	switch e := e.(type) {
	case *events.ItemConsumed:
		return fmt.Sprintf("%s %q", e.Kind, e.Title)
	case *events.SeriesCompleted:
		return fmt.Sprintf("Series %q (%d chapters)", e.Title, e.Chapters)
	case *events.ReportWritten:
		return fmt.Sprintf("%s (%d entries)", e.Path, e.Entries)
	}
	return fallback
}
