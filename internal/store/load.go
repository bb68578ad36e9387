package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vmunix/viewlog/internal/catalog"
	"golang.org/x/sync/errgroup"
)

// LoadCatalog hydrates the whole catalog with the consumption state of one
// user. Tables are read concurrently; no query runs while another one's rows
// are open on the same goroutine, so a single-connection pool cannot deadlock.
func (s *Store) LoadCatalog(ctx context.Context, userID int64) (*catalog.Catalog, error) {
	var (
		movies    []*catalog.Movie
		series    []*catalog.Series
		books     []*catalog.Book
		magazines []*catalog.Magazine
		consumed  map[recordKey]bool
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movies, err = listMovies(ctx, s.db)
		return err
	})
	g.Go(func() (err error) {
		series, err = listSeries(ctx, s.db)
		return err
	})
	g.Go(func() (err error) {
		books, err = listBooks(ctx, s.db)
		return err
	})
	g.Go(func() (err error) {
		magazines, err = listMagazines(ctx, s.db)
		return err
	})
	g.Go(func() (err error) {
		consumed, err = consumedSet(ctx, s.db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	for _, m := range movies {
		m.Viewed = consumed[recordKey{catalog.KindMovie, m.ID}]
	}
	for _, sr := range series {
		for _, ch := range sr.Chapters {
			ch.Viewed = consumed[recordKey{catalog.KindChapter, ch.ID}]
		}
		// A series without chapters is never viewed, whatever is on record.
		sr.Viewed = len(sr.Chapters) > 0 && consumed[recordKey{catalog.KindSeries, sr.ID}]
	}
	for _, b := range books {
		b.Read = consumed[recordKey{catalog.KindBook, b.ID}]
	}
	for _, m := range magazines {
		m.Read = consumed[recordKey{catalog.KindMagazine, m.ID}]
	}

	return catalog.New(movies, series, books, magazines), nil
}

func listMovies(ctx context.Context, q querier) ([]*catalog.Movie, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, title, genre, creator, duration, year FROM movie ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Movie
	for rows.Next() {
		m := &catalog.Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Creator, &m.Duration, &m.Year); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return results, nil
}

// listSeries reads every series, then every chapter in one pass. Chapters
// inherit genre and creator from their series and keep session order.
func listSeries(ctx context.Context, q querier) ([]*catalog.Series, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, genre, creator, duration, year, session_quantity
		FROM serie ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	var results []*catalog.Series
	byID := make(map[int64]*catalog.Series)
	for rows.Next() {
		s := &catalog.Series{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Genre, &s.Creator, &s.Duration, &s.Year, &s.SessionCount); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan series: %w", err)
		}
		results = append(results, s)
		byID[s.ID] = s
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterate series: %w", err)
	}

	rows, err = q.QueryContext(ctx, `
		SELECT id, id_serie, title, duration, year, session_number
		FROM chapter ORDER BY id_serie, session_number, id`)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		c := &catalog.Chapter{}
		if err := rows.Scan(&c.ID, &c.SeriesID, &c.Title, &c.Duration, &c.Year, &c.SessionNumber); err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		parent, ok := byID[c.SeriesID]
		if !ok {
			continue
		}
		c.Genre = parent.Genre
		c.Creator = parent.Creator
		parent.Chapters = append(parent.Chapters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapters: %w", err)
	}
	return results, nil
}

// listBooks reads every book and its pages. A book stored without pages gets
// a single placeholder page.
func listBooks(ctx context.Context, q querier) ([]*catalog.Book, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, editorial, edition_date, isbn, authors
		FROM book ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	var results []*catalog.Book
	byID := make(map[int64]*catalog.Book)
	for rows.Next() {
		b := &catalog.Book{}
		var edition sql.NullTime
		var authors string
		if err := rows.Scan(&b.ID, &b.Title, &b.Editorial, &edition, &b.ISBN, &authors); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.EditionDate = edition.Time
		b.Authors = catalog.SplitAuthors(authors)
		results = append(results, b)
		byID[b.ID] = b
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	rows, err = q.QueryContext(ctx, "SELECT id, id_book, number, content FROM page ORDER BY id_book, number, id")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p catalog.Page
		var bookID int64
		if err := rows.Scan(&p.ID, &bookID, &p.Number, &p.Content); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		if b, ok := byID[bookID]; ok {
			b.Pages = append(b.Pages, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}

	for _, b := range results {
		if len(b.Pages) == 0 {
			b.Pages = []catalog.Page{catalog.PlaceholderPage}
		}
	}
	return results, nil
}

func listMagazines(ctx context.Context, q querier) ([]*catalog.Magazine, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, title, editorial, edition_date, authors FROM magazine ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Magazine
	for rows.Next() {
		m := &catalog.Magazine{}
		var edition sql.NullTime
		var authors string
		if err := rows.Scan(&m.ID, &m.Title, &m.Editorial, &edition, &authors); err != nil {
			return nil, fmt.Errorf("scan magazine: %w", err)
		}
		m.EditionDate = edition.Time
		m.Authors = catalog.SplitAuthors(authors)
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate magazines: %w", err)
	}
	return results, nil
}
