package viewing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
	"github.com/vmunix/viewlog/internal/events"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the tracker's logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithPublisher sets where consumption events go.
func WithPublisher(p Publisher) Option {
	return func(t *Tracker) { t.pub = p }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// Tracker consumes catalog items for one user. It is not safe for concurrent
// use; a session runs one step at a time.
type Tracker struct {
	state  State
	cat    *catalog.Catalog
	user   catalog.User
	logger *slog.Logger
	pub    Publisher
	now    func() time.Time
}

// NewTracker binds a tracker to a catalog and the session user.
func NewTracker(state State, cat *catalog.Catalog, user catalog.User, opts ...Option) *Tracker {
	t := &Tracker{
		state:  state,
		cat:    cat,
		user:   user,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("component", "viewing", "user", user.Name)
	return t
}

// Catalog returns the catalog the tracker mutates.
func (t *Tracker) Catalog() *catalog.Catalog { return t.cat }

// User returns the session user.
func (t *Tracker) User() catalog.User { return t.user }

// ConsumeMovie marks a movie viewed and stores a record. Consuming an already
// viewed movie stores another record and leaves the flag set.
func (t *Tracker) ConsumeMovie(ctx context.Context, m *catalog.Movie) error {
	start := t.now()
	if err := t.consume(ctx, m); err != nil {
		return err
	}
	m.TimeViewed = elapsed(start, t.now())
	return nil
}

// ConsumeMagazine marks a magazine read in a single exposure.
func (t *Tracker) ConsumeMagazine(ctx context.Context, m *catalog.Magazine) error {
	return t.consume(ctx, m)
}

// ConsumeChapter marks a chapter viewed, stores it, then rescans the owning
// series. It reports whether this call completed the series. A series is
// never unmarked.
func (t *Tracker) ConsumeChapter(ctx context.Context, ch *catalog.Chapter) (bool, error) {
	s, err := t.cat.SeriesOf(ch)
	if err != nil {
		return false, err
	}
	if err := t.consume(ctx, ch); err != nil {
		return false, err
	}

	if s.Viewed || !s.Complete() {
		return false, nil
	}

	s.Viewed = true
	if err := t.state.RecordConsumed(ctx, t.user.ID, catalog.KindSeries, s.ID); err != nil {
		s.Viewed = false
		t.logger.Warn("persist series completion failed", "series", s.Title, "error", err)
		return false, fmt.Errorf("%w: series %d: %w", ErrPersist, s.ID, err)
	}

	t.logger.Info("series completed", "series", s.Title, "chapters", len(s.Chapters))
	t.publish(ctx, &events.SeriesCompleted{
		BaseEvent: events.NewBaseEvent(events.EventSeriesCompleted, string(catalog.KindSeries), s.ID, t.user.ID),
		Title:     s.Title,
		Chapters:  len(s.Chapters),
	})
	return true, nil
}

// consume flips the flag first, then persists; a failed write restores the
// flag when this call was the one that set it.
func (t *Tracker) consume(ctx context.Context, item catalog.Consumable) error {
	changed := item.MarkDone()
	if err := t.state.RecordConsumed(ctx, t.user.ID, item.Kind(), item.ElementID()); err != nil {
		if changed {
			item.ClearDone()
		}
		t.logger.Warn("persist consumption failed",
			"kind", item.Kind(), "id", item.ElementID(), "error", err)
		return fmt.Errorf("%w: %s %d: %w", ErrPersist, item.Kind(), item.ElementID(), err)
	}

	t.logger.Debug("consumed", "kind", item.Kind(), "id", item.ElementID(), "title", item.Label())
	t.publish(ctx, &events.ItemConsumed{
		BaseEvent: events.NewBaseEvent(events.EventItemConsumed, string(item.Kind()), item.ElementID(), t.user.ID),
		Kind:      string(item.Kind()),
		Title:     item.Label(),
	})
	return nil
}

// Consumed asks the port whether the user has a record for the item.
func (t *Tracker) Consumed(ctx context.Context, kind catalog.Kind, elementID int64) (bool, error) {
	ok, err := t.state.IsConsumed(ctx, t.user.ID, kind, elementID)
	if err != nil {
		return false, fmt.Errorf("%w: %s %d: %w", ErrPersist, kind, elementID, err)
	}
	return ok, nil
}

func (t *Tracker) publish(ctx context.Context, e events.Event) {
	if t.pub == nil {
		return
	}
	if err := t.pub.Publish(ctx, e); err != nil {
		t.logger.Warn("publish event failed", "type", e.EventType(), "error", err)
	}
}
