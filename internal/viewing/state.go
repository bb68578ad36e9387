// Package viewing applies consumption to the in-memory catalog and persists it
// through a user-scoped viewing-state port. Series completion is derived from
// chapter state after every chapter consumption.
package viewing

//go:generate mockgen -source=state.go -destination=mocks/state.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
	"github.com/vmunix/viewlog/internal/events"
)

// ErrPersist wraps every failure to read or write a consumption record.
// Callers treat it as a non-fatal diagnostic for the current step.
var ErrPersist = errors.New("persist consumption")

// State is the viewing-state port. Implementations scope every call to the
// given user and tolerate duplicate records.
type State interface {
	IsConsumed(ctx context.Context, userID int64, kind catalog.Kind, elementID int64) (bool, error)
	RecordConsumed(ctx context.Context, userID int64, kind catalog.Kind, elementID int64) error
}

// Publisher receives domain events after the matching record is stored.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

func elapsed(start, end time.Time) time.Duration {
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}
