package report

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
	"github.com/vmunix/viewlog/internal/events"
)

// Publisher receives a ReportWritten event for every saved report.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Saver builds and writes reports with a fixed file naming policy.
type Saver struct {
	Writer    FileWriter
	Name      string
	Extension string
	Title     string
	UserID    int64
	Publisher Publisher // optional
	Logger    *slog.Logger
	Now       func() time.Time // defaults to time.Now
}

// Save writes the report for cat. A dated report carries the run time in
// both the file name and the header. It returns the written path.
func (s *Saver) Save(ctx context.Context, cat *catalog.Catalog, dated bool) (string, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var at *time.Time
	if dated {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		t := now()
		at = &t
	}

	records := Records(cat)
	path, err := s.Writer.Write(FileName(s.Name, at), s.Extension, s.Title, Build(cat, at))
	if err != nil {
		return "", err
	}
	logger.Info("report written", "path", path, "entries", len(records), "dated", dated)

	if s.Publisher != nil {
		e := &events.ReportWritten{
			BaseEvent: events.NewBaseEvent(events.EventReportWritten, events.EntityReport, 0, s.UserID),
			Path:      path,
			Dated:     dated,
			Entries:   len(records),
		}
		if err := s.Publisher.Publish(ctx, e); err != nil {
			logger.Warn("publish report event failed", "error", err)
		}
	}
	return path, nil
}
