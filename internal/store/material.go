package store

import (
	"context"
	"fmt"

	"github.com/vmunix/viewlog/internal/catalog"
)

// materialIDs returns the kind -> material row id table, loading it once.
func (s *Store) materialIDs(ctx context.Context) (map[catalog.Kind]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.materials != nil {
		return s.materials, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM material")
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make(map[catalog.Kind]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		ids[catalog.Kind(name)] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}
	s.materials = ids
	return ids, nil
}

// MaterialID resolves a kind to its material row id.
func (s *Store) MaterialID(ctx context.Context, kind catalog.Kind) (int64, error) {
	ids, err := s.materialIDs(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := ids[kind]
	if !ok {
		return 0, fmt.Errorf("material %q: %w", kind, ErrUnknownKind)
	}
	return id, nil
}
