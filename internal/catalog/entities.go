package catalog

import (
	"strings"
	"time"
)

// Film holds the fields shared by movies, series and chapters.
type Film struct {
	Title    string
	Genre    string
	Creator  string
	Duration int // minutes
	Year     int
	Viewed   bool
}

// Publication holds the fields shared by books and magazines.
type Publication struct {
	Title       string
	EditionDate time.Time
	Editorial   string
	Authors     []string
	Read        bool
}

// AuthorList joins the authors for display.
func (p Publication) AuthorList() string {
	return strings.Join(p.Authors, ", ")
}

// SplitAuthors parses a comma-separated author column.
func SplitAuthors(s string) []string {
	var authors []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// Movie is a standalone film.
type Movie struct {
	ID int64
	Film
	TimeViewed time.Duration
}

func (m *Movie) Kind() Kind       { return KindMovie }
func (m *Movie) ElementID() int64 { return m.ID }
func (m *Movie) Label() string    { return m.Title }
func (m *Movie) IsDone() bool     { return m.Viewed }
func (m *Movie) ClearDone()       { m.Viewed = false }

func (m *Movie) MarkDone() bool {
	changed := !m.Viewed
	m.Viewed = true
	return changed
}

// Chapter is one episode of a Series. SeriesID is a lookup key into the
// catalog; the Series' chapter list is the only owner.
type Chapter struct {
	ID int64
	Film
	SessionNumber int
	SeriesID      int64
}

func (c *Chapter) Kind() Kind       { return KindChapter }
func (c *Chapter) ElementID() int64 { return c.ID }
func (c *Chapter) Label() string    { return c.Title }
func (c *Chapter) IsDone() bool     { return c.Viewed }
func (c *Chapter) ClearDone()       { c.Viewed = false }

func (c *Chapter) MarkDone() bool {
	changed := !c.Viewed
	c.Viewed = true
	return changed
}

// Series owns an ordered list of chapters. Viewed is derived from the
// chapters by the viewing tracker and is never set by users directly.
type Series struct {
	ID int64
	Film
	SessionCount int
	Chapters     []*Chapter
}

// Complete reports whether the series has at least one chapter and every
// chapter has been viewed.
func (s *Series) Complete() bool {
	if len(s.Chapters) == 0 {
		return false
	}
	for _, ch := range s.Chapters {
		if !ch.Viewed {
			return false
		}
	}
	return true
}

// ViewedCount returns how many chapters have been viewed.
func (s *Series) ViewedCount() int {
	n := 0
	for _, ch := range s.Chapters {
		if ch.Viewed {
			n++
		}
	}
	return n
}

// Page is one page of a book.
type Page struct {
	ID      int64
	Number  int
	Content string
}

// PlaceholderPage is used for books stored without any pages.
var PlaceholderPage = Page{Number: 1, Content: "No content available."}

// Book is a paged publication read through a cursor.
type Book struct {
	ID int64
	Publication
	ISBN      string
	Pages     []Page
	TimeSpent time.Duration
}

func (b *Book) Kind() Kind       { return KindBook }
func (b *Book) ElementID() int64 { return b.ID }
func (b *Book) Label() string    { return b.Title }
func (b *Book) IsDone() bool     { return b.Read }
func (b *Book) ClearDone()       { b.Read = false }

func (b *Book) MarkDone() bool {
	changed := !b.Read
	b.Read = true
	return changed
}

// Magazine is read in a single exposure.
type Magazine struct {
	ID int64
	Publication
}

func (m *Magazine) Kind() Kind       { return KindMagazine }
func (m *Magazine) ElementID() int64 { return m.ID }
func (m *Magazine) Label() string    { return m.Title }
func (m *Magazine) IsDone() bool     { return m.Read }
func (m *Magazine) ClearDone()       { m.Read = false }

func (m *Magazine) MarkDone() bool {
	changed := !m.Read
	m.Read = true
	return changed
}
