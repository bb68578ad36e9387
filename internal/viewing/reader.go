package viewing

import (
	"context"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
)

// Reader is a page cursor over one book for one reading session. The book
// becomes read the first time the cursor reaches the last page, and that is
// stored at most once per Reader.
type Reader struct {
	t      *Tracker
	book   *catalog.Book
	pages  []catalog.Page
	index  int
	opened time.Time
	stored bool
	closed bool
}

// OpenBook starts a reading session at the first page. A book without pages
// reads as a single placeholder page; the book itself is left as is. For a
// one-page book the read record is written here; on a persistence error the
// returned Reader is still usable.
func (t *Tracker) OpenBook(ctx context.Context, b *catalog.Book) (*Reader, error) {
	pages := b.Pages
	if len(pages) == 0 {
		pages = []catalog.Page{catalog.PlaceholderPage}
	}
	r := &Reader{t: t, book: b, pages: pages, opened: t.now()}
	t.logger.Debug("book opened", "book", b.Title, "pages", len(pages))
	return r, r.arrive(ctx)
}

// Book returns the book being read.
func (r *Reader) Book() *catalog.Book { return r.book }

// Index returns the zero-based cursor position.
func (r *Reader) Index() int { return r.index }

// Page returns the page under the cursor.
func (r *Reader) Page() catalog.Page { return r.pages[r.index] }

// PageCount returns how many pages the cursor moves over.
func (r *Reader) PageCount() int { return len(r.pages) }

// HasNext reports whether Next would move the cursor.
func (r *Reader) HasNext() bool { return !r.closed && r.index < len(r.pages)-1 }

// HasPrevious reports whether Previous would move the cursor.
func (r *Reader) HasPrevious() bool { return !r.closed && r.index > 0 }

// Next advances one page. At the last page it is a no-op.
func (r *Reader) Next(ctx context.Context) (bool, error) {
	if !r.HasNext() {
		return false, nil
	}
	r.index++
	return true, r.arrive(ctx)
}

// Previous moves back one page. At the first page it is a no-op. Moving back
// never clears the read flag.
func (r *Reader) Previous() bool {
	if !r.HasPrevious() {
		return false
	}
	r.index--
	return true
}

// Close ends the session and adds the time since OpenBook to the book's time
// spent. Closing twice is a no-op.
func (r *Reader) Close() time.Duration {
	if r.closed {
		return 0
	}
	r.closed = true
	d := elapsed(r.opened, r.t.now())
	r.book.TimeSpent += d
	r.t.logger.Debug("book closed", "book", r.book.Title, "page", r.index+1, "spent", d)
	return d
}

func (r *Reader) arrive(ctx context.Context) error {
	if r.stored || r.index != len(r.pages)-1 {
		return nil
	}
	if err := r.t.consume(ctx, r.book); err != nil {
		return err
	}
	r.stored = true
	return nil
}
