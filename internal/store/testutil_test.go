package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestDB opens an in-memory database with the full schema. The pool is
// pinned to one connection because every new :memory: connection is a fresh
// empty database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

const orbitCatalog = `
[[movie]]
title = "Inception"
genre = "Sci-Fi"
creator = "Christopher Nolan"
duration = 148
year = 2010

[[movie]]
title = "Amélie"
genre = "Comedy"
creator = "Jean-Pierre Jeunet"
duration = 122
year = 2001

[[series]]
title = "Orbit"
genre = "Drama"
creator = "Vega"
duration = 45
year = 2020
sessions = 2

  [[series.chapter]]
  title = "Reentry"
  session = 2
  duration = 44
  year = 2021

  [[series.chapter]]
  title = "Launch"
  session = 1
  duration = 45
  year = 2020

  [[series.chapter]]
  title = "Drift"
  session = 1
  duration = 47
  year = 2020

[[series]]
title = "Empty Nest"

[[book]]
title = "Dune"
editorial = "Chilton"
edition_date = 1965-08-01
isbn = "978-0441013593"
authors = ["Frank Herbert"]
pages = ["Arrakis.", "The spice.", "The desert."]

[[book]]
title = "Blank"

[[magazine]]
title = "Orbit Weekly"
editorial = "Vega Press"
edition_date = 2024-01-15
authors = ["Staff", "Guest"]
`

func importOrbit(t *testing.T, s *Store) {
	t.Helper()
	f, err := DecodeCatalogFile(orbitCatalog)
	require.NoError(t, err)
	_, err = s.Import(context.Background(), f)
	require.NoError(t, err)
}
