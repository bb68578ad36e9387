package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/viewlog/internal/events"
)

type capture struct {
	events []events.Event
}

func (c *capture) Publish(_ context.Context, e events.Event) error {
	c.events = append(c.events, e)
	return nil
}

func TestSaver_Save(t *testing.T) {
	dir := t.TempDir()
	pub := &capture{}
	at := time.Date(2024, 3, 1, 21, 5, 9, 7*int(time.Millisecond), time.UTC)
	s := &Saver{
		Writer:    FileWriter{Dir: dir},
		Name:      "report",
		Extension: "txt",
		Title:     ":: VIEWED ::",
		UserID:    3,
		Publisher: pub,
		Now:       func() time.Time { return at },
	}

	c := testCatalog()
	c.Movies[0].Viewed = true

	path, err := s.Save(context.Background(), c, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.txt"), path)

	path, err = s.Save(context.Background(), c, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report2024-03-01-9-5-9-7.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), ":: VIEWED ::\nDate: Friday, 1 March 2024\n\n\n"))
	assert.Contains(t, string(data), "Title: Inception")

	require.Len(t, pub.events, 2)
	written, ok := pub.events[1].(*events.ReportWritten)
	require.True(t, ok)
	assert.Equal(t, path, written.Path)
	assert.True(t, written.Dated)
	assert.Equal(t, 1, written.Entries)
	assert.Equal(t, int64(3), written.UserID)
	assert.Equal(t, events.EntityReport, written.EntityType())
}

func TestSaver_WriteFailure(t *testing.T) {
	pub := &capture{}
	s := &Saver{Writer: FileWriter{Dir: t.TempDir()}, Name: "bad/name", Extension: "txt", Publisher: pub}
	_, err := s.Save(context.Background(), testCatalog(), false)
	require.Error(t, err)
	assert.Empty(t, pub.events)
}
