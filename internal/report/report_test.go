package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/viewlog/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	orbit := &catalog.Series{ID: 1, Film: catalog.Film{Title: "Orbit", Genre: "Sci-Fi", Creator: "Vega"}}
	orbit.Chapters = []*catalog.Chapter{
		{ID: 1, Film: catalog.Film{Title: "C1", Creator: "Vega", Duration: 42, Year: 2021}, SessionNumber: 1, SeriesID: 1},
		{ID: 2, Film: catalog.Film{Title: "C2", Creator: "Vega", Duration: 44, Year: 2021}, SessionNumber: 1, SeriesID: 1},
		{ID: 3, Film: catalog.Film{Title: "C3", Creator: "Vega", Duration: 47, Year: 2022}, SessionNumber: 2, SeriesID: 1},
	}
	return catalog.New(
		[]*catalog.Movie{
			{ID: 1, Film: catalog.Film{Title: "Inception", Genre: "Sci-Fi", Creator: "Nolan", Duration: 148, Year: 2010}},
			{ID: 2, Film: catalog.Film{Title: "Heat", Genre: "Crime", Creator: "Mann", Duration: 170, Year: 1995}},
		},
		[]*catalog.Series{orbit, {ID: 2, Film: catalog.Film{Title: "Empty Nest"}}},
		[]*catalog.Book{{
			ID: 1,
			Publication: catalog.Publication{
				Title:       "Dune",
				Editorial:   "Chilton",
				EditionDate: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
				Authors:     []string{"Frank Herbert"},
			},
		}},
		[]*catalog.Magazine{{ID: 1, Publication: catalog.Publication{Title: "Orbit Weekly"}}},
	)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(testCatalog(), nil))
}

func TestBuild_Records(t *testing.T) {
	c := testCatalog()
	c.Movies[0].Viewed = true
	c.Series[0].Chapters[1].Viewed = true
	c.Books[0].Read = true

	want := "\n :: MOVIE ::\n Title: Inception\n Genre: Sci-Fi\n Year: 2010\n Creator: Nolan\n Duration: 148\n" +
		"\n :: SERIES ::\n Title: Orbit\n :: CHAPTER ::\n Title: C2\n Year: 2021\n Creator: Vega\n Duration: 44\n" +
		"\n :: BOOK ::\n Title: Dune\n Editorial: Chilton\n Edition Date: 01/08/1965\n Authors: Frank Herbert\n"
	assert.Equal(t, want, Build(c, nil))
}

func TestBuild_Header(t *testing.T) {
	at := time.Date(2024, 3, 1, 21, 5, 9, 0, time.UTC)
	out := Build(testCatalog(), &at)
	assert.Equal(t, "Date: Friday, 1 March 2024\n\n\n", out)
}

func TestBuild_Deterministic(t *testing.T) {
	c := testCatalog()
	c.Movies[1].Viewed = true
	c.Series[0].Chapters[0].Viewed = true
	c.Series[0].Chapters[2].Viewed = true
	assert.Equal(t, Build(c, nil), Build(c, nil))
}

func TestBuild_MagazinesExcluded(t *testing.T) {
	c := testCatalog()
	c.Magazines[0].Read = true
	assert.NotContains(t, Build(c, nil), "Orbit Weekly")
}

func TestBuild_SeriesFlagNotReported(t *testing.T) {
	c := testCatalog()
	s := c.Series[0]
	for i, ch := range s.Chapters {
		ch.Viewed = true
		records := Records(c)
		assert.Len(t, records, i+1)
	}
	s.Viewed = true
	records := Records(c)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, catalog.KindChapter, r.Kind)
	}
	assert.Equal(t, 3, strings.Count(Build(c, nil), ":: CHAPTER ::"))
}

func TestRecords_DedupesByEntity(t *testing.T) {
	m := &catalog.Movie{ID: 1, Film: catalog.Film{Title: "Inception", Viewed: true}}
	c := catalog.New([]*catalog.Movie{m, m}, nil, nil, nil)
	records := Records(c)
	require.Len(t, records, 1)
	assert.Equal(t, 1, strings.Count(Build(c, nil), "Inception"))
}

func TestBuild_BookWithoutAuthors(t *testing.T) {
	c := catalog.New(nil, nil, []*catalog.Book{{ID: 1, Publication: catalog.Publication{Title: "Anon", Read: true}}}, nil)
	out := Build(c, nil)
	assert.Contains(t, out, "Authors: No authors registered")
	assert.Contains(t, out, "Edition Date: -")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "report", FileName("report", nil))

	at := time.Date(2024, 3, 1, 21, 5, 9, 42*int(time.Millisecond), time.UTC)
	assert.Equal(t, "report2024-03-01-9-5-9-42", FileName("report", &at))
}

func TestFileWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := FileWriter{Dir: dir}

	path, err := w.Write("report", "txt", ":: VIEWED ::", "body\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":: VIEWED ::\nbody\n", string(data))

	path, err = w.Write("report", "txt", ":: VIEWED ::", "again\n")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":: VIEWED ::\nagain\n", string(data))
}

func TestFileWriter_InvalidName(t *testing.T) {
	w := FileWriter{Dir: t.TempDir()}
	_, err := w.Write("../escape", "txt", "", "")
	require.Error(t, err)
	_, err = w.Write("", "txt", "", "")
	require.Error(t, err)
}
