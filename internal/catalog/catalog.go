// Package catalog holds the in-memory media catalog: movies, series with
// chapters, books with pages and magazines, plus their consumption state.
// Nothing in this package performs I/O.
package catalog

import "fmt"

// Kind is the material kind that scopes consumption records. Ids are unique
// only within a kind.
type Kind string

const (
	KindMovie    Kind = "Movie"
	KindSeries   Kind = "Series"
	KindChapter  Kind = "Chapter"
	KindBook     Kind = "Book"
	KindMagazine Kind = "Magazine"
)

// Kinds lists every material kind in catalog order.
var Kinds = []Kind{KindMovie, KindSeries, KindChapter, KindBook, KindMagazine}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindSeries, KindChapter, KindBook, KindMagazine:
		return true
	}
	return false
}

// User is the person a session is bound to.
type User struct {
	ID   int64
	Name string
}

// Consumable is implemented by every entity a user can consume directly.
type Consumable interface {
	Kind() Kind
	ElementID() int64
	Label() string
	IsDone() bool
	// MarkDone sets the consumed flag and reports whether it changed.
	MarkDone() bool
	// ClearDone undoes a MarkDone whose write to storage failed.
	ClearDone()
}

var (
	_ Consumable = (*Movie)(nil)
	_ Consumable = (*Chapter)(nil)
	_ Consumable = (*Book)(nil)
	_ Consumable = (*Magazine)(nil)
)

// Catalog is the hydrated entity graph for one session. Slices keep load order.
type Catalog struct {
	Movies    []*Movie
	Series    []*Series
	Books     []*Book
	Magazines []*Magazine

	seriesByID map[int64]*Series
}

// New builds a catalog and its series index.
func New(movies []*Movie, series []*Series, books []*Book, magazines []*Magazine) *Catalog {
	c := &Catalog{
		Movies:     movies,
		Series:     series,
		Books:      books,
		Magazines:  magazines,
		seriesByID: make(map[int64]*Series, len(series)),
	}
	for _, s := range series {
		if _, dup := c.seriesByID[s.ID]; !dup {
			c.seriesByID[s.ID] = s
		}
	}
	return c
}

// SeriesOf resolves the owning series of a chapter.
func (c *Catalog) SeriesOf(ch *Chapter) (*Series, error) {
	s, ok := c.seriesByID[ch.SeriesID]
	if !ok {
		return nil, fmt.Errorf("chapter %d: series %d not in catalog", ch.ID, ch.SeriesID)
	}
	return s, nil
}

// Entry is a flattened view of one catalog item.
type Entry struct {
	Kind   Kind
	ID     int64
	Title  string
	Parent string // owning series title, chapters only
	Done   bool
}

// Entries lists every item in load order: movies, series each followed by
// its chapters, books, then magazines.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	for _, m := range c.Movies {
		out = append(out, Entry{Kind: KindMovie, ID: m.ID, Title: m.Title, Done: m.Viewed})
	}
	for _, s := range c.Series {
		out = append(out, Entry{Kind: KindSeries, ID: s.ID, Title: s.Title, Done: s.Viewed})
		for _, ch := range s.Chapters {
			out = append(out, Entry{Kind: KindChapter, ID: ch.ID, Title: ch.Title, Parent: s.Title, Done: ch.Viewed})
		}
	}
	for _, b := range c.Books {
		out = append(out, Entry{Kind: KindBook, ID: b.ID, Title: b.Title, Done: b.Read})
	}
	for _, m := range c.Magazines {
		out = append(out, Entry{Kind: KindMagazine, ID: m.ID, Title: m.Title, Done: m.Read})
	}
	return out
}
