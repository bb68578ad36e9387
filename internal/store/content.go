package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
)

func lastInsertID(result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// nullTime stores the zero time as NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func addMovie(ctx context.Context, q querier, m *catalog.Movie) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO movie (title, genre, creator, duration, year)
		VALUES (?, ?, ?, ?, ?)`,
		m.Title, m.Genre, m.Creator, m.Duration, m.Year,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapSQLiteError(err))
	}
	m.ID, err = lastInsertID(result)
	return err
}

// AddMovie inserts a movie. Sets ID on the struct.
func (s *Store) AddMovie(ctx context.Context, m *catalog.Movie) error { return addMovie(ctx, s.db, m) }

// AddMovie inserts a movie within a transaction.
func (t *Tx) AddMovie(ctx context.Context, m *catalog.Movie) error { return addMovie(ctx, t.tx, m) }

func addSeries(ctx context.Context, q querier, s *catalog.Series) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO serie (title, genre, creator, duration, year, session_quantity)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Title, s.Genre, s.Creator, s.Duration, s.Year, s.SessionCount,
	)
	if err != nil {
		return fmt.Errorf("insert series: %w", mapSQLiteError(err))
	}
	s.ID, err = lastInsertID(result)
	return err
}

// AddSeries inserts a series without its chapters. Sets ID on the struct.
func (s *Store) AddSeries(ctx context.Context, sr *catalog.Series) error {
	return addSeries(ctx, s.db, sr)
}

// AddSeries inserts a series within a transaction.
func (t *Tx) AddSeries(ctx context.Context, sr *catalog.Series) error {
	return addSeries(ctx, t.tx, sr)
}

func addChapter(ctx context.Context, q querier, c *catalog.Chapter) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO chapter (id_serie, title, duration, year, session_number)
		VALUES (?, ?, ?, ?, ?)`,
		c.SeriesID, c.Title, c.Duration, c.Year, c.SessionNumber,
	)
	if err != nil {
		return fmt.Errorf("insert chapter: %w", mapSQLiteError(err))
	}
	c.ID, err = lastInsertID(result)
	return err
}

// AddChapter inserts a chapter of an existing series. Sets ID on the struct.
// Returns ErrConstraint if the series does not exist.
func (s *Store) AddChapter(ctx context.Context, c *catalog.Chapter) error {
	return addChapter(ctx, s.db, c)
}

// AddChapter inserts a chapter within a transaction.
func (t *Tx) AddChapter(ctx context.Context, c *catalog.Chapter) error {
	return addChapter(ctx, t.tx, c)
}

func addBook(ctx context.Context, q querier, b *catalog.Book) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO book (title, editorial, edition_date, isbn, authors)
		VALUES (?, ?, ?, ?, ?)`,
		b.Title, b.Editorial, nullTime(b.EditionDate), b.ISBN, strings.Join(b.Authors, ","),
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapSQLiteError(err))
	}
	b.ID, err = lastInsertID(result)
	return err
}

// AddBook inserts a book without its pages. Sets ID on the struct.
func (s *Store) AddBook(ctx context.Context, b *catalog.Book) error { return addBook(ctx, s.db, b) }

// AddBook inserts a book within a transaction.
func (t *Tx) AddBook(ctx context.Context, b *catalog.Book) error { return addBook(ctx, t.tx, b) }

func addPage(ctx context.Context, q querier, bookID int64, p *catalog.Page) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO page (id_book, number, content) VALUES (?, ?, ?)`,
		bookID, p.Number, p.Content,
	)
	if err != nil {
		return fmt.Errorf("insert page: %w", mapSQLiteError(err))
	}
	p.ID, err = lastInsertID(result)
	return err
}

// AddPage inserts a page of an existing book. Sets ID on the page.
func (s *Store) AddPage(ctx context.Context, bookID int64, p *catalog.Page) error {
	return addPage(ctx, s.db, bookID, p)
}

// AddPage inserts a page within a transaction.
func (t *Tx) AddPage(ctx context.Context, bookID int64, p *catalog.Page) error {
	return addPage(ctx, t.tx, bookID, p)
}

func addMagazine(ctx context.Context, q querier, m *catalog.Magazine) error {
	result, err := q.ExecContext(ctx, `
		INSERT INTO magazine (title, editorial, edition_date, authors)
		VALUES (?, ?, ?, ?)`,
		m.Title, m.Editorial, nullTime(m.EditionDate), strings.Join(m.Authors, ","),
	)
	if err != nil {
		return fmt.Errorf("insert magazine: %w", mapSQLiteError(err))
	}
	m.ID, err = lastInsertID(result)
	return err
}

// AddMagazine inserts a magazine. Sets ID on the struct.
func (s *Store) AddMagazine(ctx context.Context, m *catalog.Magazine) error {
	return addMagazine(ctx, s.db, m)
}

// AddMagazine inserts a magazine within a transaction.
func (t *Tx) AddMagazine(ctx context.Context, m *catalog.Magazine) error {
	return addMagazine(ctx, t.tx, m)
}
