package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
	"github.com/vmunix/viewlog/internal/events"
	"github.com/vmunix/viewlog/internal/viewing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Main menu options.
const (
	optExit = iota
	optMovies
	optSeries
	optBooks
	optMagazines
	optReport
	optReportToday
)

// Book reader options.
const (
	optClose = iota
	optPrevious
	optNext
)

const rule = "=============================================="

// Reporter saves a report of the catalog. Dated reports carry the run time.
type Reporter interface {
	Save(ctx context.Context, cat *catalog.Catalog, dated bool) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithNotices prints a notice for domain events that arrive on ch. The
// channel is drained without blocking after every step.
func WithNotices(ch <-chan events.Event) Option {
	return func(s *Session) { s.notices = ch }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is one interactive run for the tracker's user.
type Session struct {
	tracker  *viewing.Tracker
	reporter Reporter
	prompt   *Prompter
	out      io.Writer
	st       Styles
	notices  <-chan events.Event
	logger   *slog.Logger
	upper    cases.Caser
}

// NewSession wires a session to its input and output.
func NewSession(tr *viewing.Tracker, rep Reporter, in io.Reader, out io.Writer, opts ...Option) *Session {
	st := NewStyles(out)
	s := &Session{
		tracker:  tr,
		reporter: rep,
		prompt:   NewPrompter(in, out, st),
		out:      out,
		st:       st,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		upper:    cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "console")
	return s
}

// Run shows the main menu until the user exits, writes a report, or input
// ends. Step failures are printed and never end the session.
func (s *Session) Run(ctx context.Context) error {
	err := s.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) mainMenu(ctx context.Context) error {
	cat := s.tracker.Catalog()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println()
		s.println(s.st.Title.Render("VIEWLOG"))
		s.printf("Hello, %s\n\n", s.tracker.User().Name)
		s.println("Select an option:")
		s.println("1. Movies")
		s.println("2. Series")
		s.println("3. Books")
		s.println("4. Magazines")
		s.println("5. Report")
		s.println("6. Report Today")
		s.println("0. Exit")

		choice, err := s.prompt.Select(optExit, optReportToday)
		if err != nil {
			return err
		}

		switch choice {
		case optExit:
			return nil
		case optMovies:
			err = s.movies(ctx, cat.Movies)
		case optSeries:
			err = s.series(ctx, cat.Series)
		case optBooks:
			err = s.books(ctx, cat.Books)
		case optMagazines:
			err = s.magazines(ctx, cat.Magazines)
		case optReport, optReportToday:
			path, rerr := s.reporter.Save(ctx, cat, choice == optReportToday)
			if rerr != nil {
				s.diagnose(rerr)
				continue
			}
			s.drain()
			s.printf("Report generated: %s\n", path)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) movies(ctx context.Context, movies []*catalog.Movie) error {
	for {
		s.header(":: MOVIES ::")
		for i, m := range movies {
			s.printf("%d. %s  Viewed: %s\n", i+1, m.Title, s.st.yesNo(m.Viewed))
		}
		s.backOption()

		choice, err := s.prompt.Select(0, len(movies))
		if err != nil || choice == 0 {
			return err
		}

		m := movies[choice-1]
		s.printf("\nPlaying: %s\n", m.Title)
		if err := s.tracker.ConsumeMovie(ctx, m); err != nil {
			s.diagnose(err)
			continue
		}
		s.printf("Viewed: %s (%s, %d, %d min)\n", m.Title, m.Genre, m.Year, m.Duration)
		s.drain()
	}
}

func (s *Session) series(ctx context.Context, series []*catalog.Series) error {
	for {
		s.header(":: SERIES ::")
		for i, sr := range series {
			s.printf("%d. %s  Viewed: %s  %s\n", i+1, sr.Title, s.st.yesNo(sr.Viewed),
				s.st.Dim.Render(fmt.Sprintf("(%d/%d)", sr.ViewedCount(), len(sr.Chapters))))
		}
		s.backOption()

		choice, err := s.prompt.Select(0, len(series))
		if err != nil || choice == 0 {
			return err
		}
		if err := s.chapters(ctx, series[choice-1]); err != nil {
			return err
		}
	}
}

func (s *Session) chapters(ctx context.Context, sr *catalog.Series) error {
	for {
		s.header(":: CHAPTERS :: " + sr.Title)
		if len(sr.Chapters) == 0 {
			s.println(s.st.Dim.Render("No chapters yet."))
		}
		for i, ch := range sr.Chapters {
			s.printf("%d. %s  Viewed: %s\n", i+1, ch.Title, s.st.yesNo(ch.Viewed))
		}
		s.backOption()

		choice, err := s.prompt.Select(0, len(sr.Chapters))
		if err != nil || choice == 0 {
			return err
		}

		ch := sr.Chapters[choice-1]
		s.printf("\nPlaying: %s - %s\n", sr.Title, ch.Title)
		if _, err := s.tracker.ConsumeChapter(ctx, ch); err != nil {
			s.diagnose(err)
			continue
		}
		s.printf("Viewed: %s\n", ch.Title)
		s.drain()
	}
}

func (s *Session) books(ctx context.Context, books []*catalog.Book) error {
	for {
		s.header(":: BOOKS ::")
		for i, b := range books {
			s.printf("%d. %s  Read: %s\n", i+1, b.Title, s.st.yesNo(b.Read))
		}
		s.backOption()

		choice, err := s.prompt.Select(0, len(books))
		if err != nil || choice == 0 {
			return err
		}
		if err := s.read(ctx, books[choice-1]); err != nil {
			return err
		}
	}
}

func (s *Session) read(ctx context.Context, b *catalog.Book) error {
	r, err := s.tracker.OpenBook(ctx, b)
	if err != nil {
		s.diagnose(err)
	}
	defer func() {
		d := r.Close()
		s.printf("Time spent: %s\n", d.Round(time.Second))
	}()

	for {
		s.drain()
		page := r.Page()
		s.println(rule)
		s.printf(" READING: %s\n", s.upper.String(b.Title))
		s.printf(" Page: %d of %d\n", page.Number, r.PageCount())
		s.println(strings.Repeat("-", len(rule)))
		s.println(page.Content)
		s.println(rule)
		s.println()
		if r.HasPrevious() {
			s.println("1. Previous page")
		}
		if r.HasNext() {
			s.println("2. Next page")
		}
		s.println("0. Close book")

		choice, err := s.prompt.Select(optClose, optNext)
		if err != nil {
			return err
		}
		switch choice {
		case optClose:
			return nil
		case optPrevious:
			r.Previous()
		case optNext:
			if _, err := r.Next(ctx); err != nil {
				s.diagnose(err)
			}
		}
	}
}

func (s *Session) magazines(ctx context.Context, mags []*catalog.Magazine) error {
	for {
		s.header(":: MAGAZINES ::")
		for i, m := range mags {
			s.printf("%d. %s  Read: %s\n", i+1, m.Title, s.st.yesNo(m.Read))
		}
		s.backOption()

		choice, err := s.prompt.Select(0, len(mags))
		if err != nil || choice == 0 {
			return err
		}

		m := mags[choice-1]
		if err := s.tracker.ConsumeMagazine(ctx, m); err != nil {
			s.diagnose(err)
			continue
		}
		s.printf("Read: %s\n", m.Title)
		s.drain()
	}
}

// drain prints notices for events already delivered.
func (s *Session) drain() {
	if s.notices == nil {
		return
	}
	for _, e := range events.Pending(s.notices) {
		switch e := e.(type) {
		case *events.SeriesCompleted:
			s.println(s.st.Notice.Render(fmt.Sprintf("Series completed: %s (%d chapters)", e.Title, e.Chapters)))
		case *events.ItemConsumed:
			if e.Kind == string(catalog.KindBook) {
				s.println(s.st.Notice.Render("Book completed! Saved to your history."))
			}
		}
	}
}

func (s *Session) diagnose(err error) {
	s.logger.Warn("step failed", "error", err)
	msg := "Something went wrong: " + err.Error()
	if errors.Is(err, viewing.ErrPersist) {
		msg = "Could not save your progress: " + err.Error()
	}
	s.println(s.st.Error.Render(msg))
}

func (s *Session) header(title string) {
	s.println()
	s.println(s.st.Title.Render(title))
	s.println()
}

func (s *Session) backOption() {
	s.println("0. Back to menu")
	s.println()
}

func (s *Session) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }
