package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	orbit := &Series{ID: 1, Film: Film{Title: "Orbit", Genre: "Sci-Fi", Creator: "Vega"}, SessionCount: 1}
	orbit.Chapters = []*Chapter{
		{ID: 1, Film: Film{Title: "Launch"}, SessionNumber: 1, SeriesID: 1},
		{ID: 2, Film: Film{Title: "Drift"}, SessionNumber: 1, SeriesID: 1},
		{ID: 3, Film: Film{Title: "Landing"}, SessionNumber: 1, SeriesID: 1},
	}
	return New(
		[]*Movie{{ID: 1, Film: Film{Title: "Inception", Year: 2010}}},
		[]*Series{orbit},
		[]*Book{{ID: 1, Publication: Publication{Title: "Dune"}}},
		[]*Magazine{{ID: 1, Publication: Publication{Title: "Orbit Weekly"}}},
	)
}

func TestKind_Valid(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, Kind("Podcast").Valid())
	assert.False(t, Kind("").Valid())
}

func TestSeries_Complete(t *testing.T) {
	tests := []struct {
		name   string
		viewed []bool
		want   bool
	}{
		{"no chapters", nil, false},
		{"none viewed", []bool{false, false}, false},
		{"some viewed", []bool{true, false, true}, false},
		{"all viewed", []bool{true, true, true}, true},
		{"single viewed", []bool{true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Series{ID: 7}
			for i, v := range tt.viewed {
				s.Chapters = append(s.Chapters, &Chapter{ID: int64(i + 1), SeriesID: 7, Film: Film{Viewed: v}})
			}
			assert.Equal(t, tt.want, s.Complete())
		})
	}
}

func TestSeries_ViewedCount(t *testing.T) {
	c := testCatalog()
	s := c.Series[0]
	assert.Equal(t, 0, s.ViewedCount())
	s.Chapters[1].MarkDone()
	assert.Equal(t, 1, s.ViewedCount())
}

func TestCatalog_SeriesOf(t *testing.T) {
	c := testCatalog()

	s, err := c.SeriesOf(c.Series[0].Chapters[2])
	require.NoError(t, err)
	assert.Same(t, c.Series[0], s)

	_, err = c.SeriesOf(&Chapter{ID: 99, SeriesID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "series 42")
}

func TestCatalog_Entries_Order(t *testing.T) {
	c := testCatalog()
	c.Movies[0].MarkDone()

	entries := c.Entries()
	require.Len(t, entries, 7)

	var kinds []Kind
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []Kind{KindMovie, KindSeries, KindChapter, KindChapter, KindChapter, KindBook, KindMagazine}, kinds)
	assert.True(t, entries[0].Done)
	assert.Equal(t, "Orbit", entries[2].Parent)
}

func TestConsumable_MarkDone(t *testing.T) {
	items := []Consumable{
		&Movie{ID: 1},
		&Chapter{ID: 1},
		&Book{ID: 1},
		&Magazine{ID: 1},
	}
	for _, item := range items {
		t.Run(string(item.Kind()), func(t *testing.T) {
			assert.False(t, item.IsDone())
			assert.True(t, item.MarkDone(), "first mark changes state")
			assert.False(t, item.MarkDone(), "second mark is a no-op")
			assert.True(t, item.IsDone())
			item.ClearDone()
			assert.False(t, item.IsDone())
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	assert.Equal(t, []string{"Frank Herbert", "Brian Herbert"}, SplitAuthors("Frank Herbert, Brian Herbert"))
	assert.Equal(t, []string{"Solo"}, SplitAuthors(" Solo ,, "))
	assert.Nil(t, SplitAuthors(""))

	p := Publication{Authors: []string{"A", "B", "C"}}
	assert.Equal(t, "A, B, C", p.AuthorList())
}
