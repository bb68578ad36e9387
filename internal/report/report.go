// Package report renders consumed catalog items as a plain-text report and
// saves it to disk. Magazines are never reported.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
)

const (
	headerLayout      = "Monday, 2 January 2006"
	editionDateLayout = "02/01/2006"
	fileStampLayout   = "2006-01-02-3-4-5"
)

// Record is one rendered report block.
type Record struct {
	Kind catalog.Kind
	ID   int64
	Text string
}

// Records lists the consumed movies, chapters and books in catalog order.
// Each entity appears once however many consumption records it has.
func Records(cat *catalog.Catalog) []Record {
	var out []Record
	seen := make(map[catalog.Kind]map[int64]bool)
	add := func(kind catalog.Kind, id int64, text string) {
		if seen[kind] == nil {
			seen[kind] = make(map[int64]bool)
		}
		if seen[kind][id] {
			return
		}
		seen[kind][id] = true
		out = append(out, Record{Kind: kind, ID: id, Text: text})
	}

	for _, m := range cat.Movies {
		if m.Viewed {
			add(catalog.KindMovie, m.ID, movieText(m))
		}
	}
	for _, s := range cat.Series {
		for _, ch := range s.Chapters {
			if ch.Viewed {
				add(catalog.KindChapter, ch.ID, chapterText(s, ch))
			}
		}
	}
	for _, b := range cat.Books {
		if b.Read {
			add(catalog.KindBook, b.ID, bookText(b))
		}
	}
	return out
}

// Build assembles the report body. When at is non-nil the body starts with
// a date header.
func Build(cat *catalog.Catalog, at *time.Time) string {
	var sb strings.Builder
	if at != nil {
		sb.WriteString("Date: " + at.Format(headerLayout) + "\n\n\n")
	}
	for _, r := range Records(cat) {
		sb.WriteString(r.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FileName returns the base name for a report: name alone, or name followed
// by a timestamp down to the millisecond when at is non-nil.
func FileName(name string, at *time.Time) string {
	if at == nil {
		return name
	}
	return fmt.Sprintf("%s%s-%d", name, at.Format(fileStampLayout), at.Nanosecond()/int(time.Millisecond))
}

func movieText(m *catalog.Movie) string {
	return "\n :: MOVIE ::" +
		"\n Title: " + m.Title +
		"\n Genre: " + m.Genre +
		"\n Year: " + yearText(m.Year) +
		"\n Creator: " + m.Creator +
		"\n Duration: " + fmt.Sprint(m.Duration)
}

func chapterText(s *catalog.Series, ch *catalog.Chapter) string {
	return "\n :: SERIES ::" +
		"\n Title: " + s.Title +
		"\n :: CHAPTER ::" +
		"\n Title: " + ch.Title +
		"\n Year: " + yearText(ch.Year) +
		"\n Creator: " + ch.Creator +
		"\n Duration: " + fmt.Sprint(ch.Duration)
}

func bookText(b *catalog.Book) string {
	date := "-"
	if !b.EditionDate.IsZero() {
		date = b.EditionDate.Format(editionDateLayout)
	}
	authors := b.AuthorList()
	if authors == "" {
		authors = "No authors registered"
	}
	return "\n :: BOOK ::" +
		"\n Title: " + b.Title +
		"\n Editorial: " + b.Editorial +
		"\n Edition Date: " + date +
		"\n Authors: " + authors
}

func yearText(y int) string {
	if y == 0 {
		return ""
	}
	return fmt.Sprint(y)
}
