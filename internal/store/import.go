package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vmunix/viewlog/internal/catalog"
)

// CatalogFile is the TOML layout accepted by Import.
//
//	[[movie]]
//	title = "Inception"
//	year = 2010
//
//	[[series]]
//	title = "Orbit"
//	  [[series.chapter]]
//	  title = "Launch"
type CatalogFile struct {
	Movies    []MovieEntry    `toml:"movie"`
	Series    []SeriesEntry   `toml:"series"`
	Books     []BookEntry     `toml:"book"`
	Magazines []MagazineEntry `toml:"magazine"`
}

type MovieEntry struct {
	Title    string `toml:"title"`
	Genre    string `toml:"genre"`
	Creator  string `toml:"creator"`
	Duration int    `toml:"duration"`
	Year     int    `toml:"year"`
}

type SeriesEntry struct {
	Title        string         `toml:"title"`
	Genre        string         `toml:"genre"`
	Creator      string         `toml:"creator"`
	Duration     int            `toml:"duration"`
	Year         int            `toml:"year"`
	SessionCount int            `toml:"sessions"`
	Chapters     []ChapterEntry `toml:"chapter"`
}

type ChapterEntry struct {
	Title    string `toml:"title"`
	Duration int    `toml:"duration"`
	Year     int    `toml:"year"`
	Session  int    `toml:"session"`
}

type BookEntry struct {
	Title       string    `toml:"title"`
	Editorial   string    `toml:"editorial"`
	EditionDate time.Time `toml:"edition_date"`
	ISBN        string    `toml:"isbn"`
	Authors     []string  `toml:"authors"`
	Pages       []string  `toml:"pages"`
}

type MagazineEntry struct {
	Title       string    `toml:"title"`
	Editorial   string    `toml:"editorial"`
	EditionDate time.Time `toml:"edition_date"`
	Authors     []string  `toml:"authors"`
}

// ReadCatalogFile decodes a catalog file from disk.
func ReadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return DecodeCatalogFile(string(data))
}

// DecodeCatalogFile parses catalog TOML and checks required fields.
func DecodeCatalogFile(content string) (*CatalogFile, error) {
	var f CatalogFile
	if _, err := toml.Decode(content, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	for i, m := range f.Movies {
		if m.Title == "" {
			return nil, fmt.Errorf("movie[%d]: title required", i)
		}
	}
	for i, s := range f.Series {
		if s.Title == "" {
			return nil, fmt.Errorf("series[%d]: title required", i)
		}
		for j, c := range s.Chapters {
			if c.Title == "" {
				return nil, fmt.Errorf("series[%d].chapter[%d]: title required", i, j)
			}
		}
	}
	for i, b := range f.Books {
		if b.Title == "" {
			return nil, fmt.Errorf("book[%d]: title required", i)
		}
	}
	for i, m := range f.Magazines {
		if m.Title == "" {
			return nil, fmt.Errorf("magazine[%d]: title required", i)
		}
	}
	return &f, nil
}

// dateOnly drops the clock and zone of a TOML local date so it reads back
// as the same calendar day in any time zone.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ImportResult counts the rows created by Import.
type ImportResult struct {
	Movies    int
	Series    int
	Chapters  int
	Books     int
	Pages     int
	Magazines int
}

// Import writes every entry of f in a single transaction. Nothing is written
// if any insert fails.
func (s *Store) Import(ctx context.Context, f *CatalogFile) (ImportResult, error) {
	var res ImportResult

	tx, err := s.Begin(ctx)
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range f.Movies {
		m := &catalog.Movie{Film: catalog.Film{Title: e.Title, Genre: e.Genre, Creator: e.Creator, Duration: e.Duration, Year: e.Year}}
		if err := tx.AddMovie(ctx, m); err != nil {
			return ImportResult{}, err
		}
		res.Movies++
	}

	for _, e := range f.Series {
		sr := &catalog.Series{
			Film:         catalog.Film{Title: e.Title, Genre: e.Genre, Creator: e.Creator, Duration: e.Duration, Year: e.Year},
			SessionCount: e.SessionCount,
		}
		if err := tx.AddSeries(ctx, sr); err != nil {
			return ImportResult{}, err
		}
		res.Series++
		for _, ce := range e.Chapters {
			session := ce.Session
			if session == 0 {
				session = 1
			}
			c := &catalog.Chapter{
				Film:          catalog.Film{Title: ce.Title, Duration: ce.Duration, Year: ce.Year},
				SessionNumber: session,
				SeriesID:      sr.ID,
			}
			if err := tx.AddChapter(ctx, c); err != nil {
				return ImportResult{}, err
			}
			res.Chapters++
		}
	}

	for _, e := range f.Books {
		b := &catalog.Book{
			Publication: catalog.Publication{Title: e.Title, Editorial: e.Editorial, EditionDate: dateOnly(e.EditionDate), Authors: e.Authors},
			ISBN:        e.ISBN,
		}
		if err := tx.AddBook(ctx, b); err != nil {
			return ImportResult{}, err
		}
		res.Books++
		for i, content := range e.Pages {
			p := &catalog.Page{Number: i + 1, Content: content}
			if err := tx.AddPage(ctx, b.ID, p); err != nil {
				return ImportResult{}, err
			}
			res.Pages++
		}
	}

	for _, e := range f.Magazines {
		m := &catalog.Magazine{Publication: catalog.Publication{Title: e.Title, Editorial: e.Editorial, EditionDate: dateOnly(e.EditionDate), Authors: e.Authors}}
		if err := tx.AddMagazine(ctx, m); err != nil {
			return ImportResult{}, err
		}
		res.Magazines++
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit import: %w", err)
	}
	return res, nil
}
