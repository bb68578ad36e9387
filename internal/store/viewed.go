package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
)

// IsConsumed reports whether at least one consumption record exists for
// (kind, elementID, userID).
func (s *Store) IsConsumed(ctx context.Context, userID int64, kind catalog.Kind, elementID int64) (bool, error) {
	materialID, err := s.MaterialID(ctx, kind)
	if err != nil {
		return false, err
	}
	return recordExists(ctx, s.db, materialID, elementID, userID)
}

func recordExists(ctx context.Context, q querier, materialID, elementID, userID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM viewed WHERE id_material = ? AND id_element = ? AND id_user = ?
		)`, materialID, elementID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check viewed %d/%d: %w", materialID, elementID, mapSQLiteError(err))
	}
	return exists, nil
}

// RecordConsumed inserts a consumption record stamped with the current time.
// With unique records enabled an existing record makes this a no-op.
func (s *Store) RecordConsumed(ctx context.Context, userID int64, kind catalog.Kind, elementID int64) error {
	materialID, err := s.MaterialID(ctx, kind)
	if err != nil {
		return err
	}
	if !s.uniqueRecords {
		return insertRecord(ctx, s.db, materialID, elementID, userID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := recordExists(ctx, tx, materialID, elementID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := insertRecord(ctx, tx, materialID, elementID, userID); err != nil {
		return err
	}
	return tx.Commit()
}

func insertRecord(ctx context.Context, q querier, materialID, elementID, userID int64) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO viewed (id_material, id_element, id_user, date)
		VALUES (?, ?, ?, ?)`,
		materialID, elementID, userID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert viewed: %w", mapSQLiteError(err))
	}
	return nil
}

// CountRecords returns the number of consumption records per kind for a user,
// duplicates included.
func (s *Store) CountRecords(ctx context.Context, userID int64) (map[catalog.Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.name, COUNT(*)
		FROM viewed v JOIN material m ON m.id = v.id_material
		WHERE v.id_user = ?
		GROUP BY m.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("count viewed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[catalog.Kind]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan viewed count: %w", err)
		}
		counts[catalog.Kind(name)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate viewed counts: %w", err)
	}
	return counts, nil
}

type recordKey struct {
	kind      catalog.Kind
	elementID int64
}

// consumedSet loads every (kind, element) the user has a record for.
// Duplicate records collapse into one key.
func consumedSet(ctx context.Context, q querier, userID int64) (map[recordKey]bool, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT DISTINCT m.name, v.id_element
		FROM viewed v JOIN material m ON m.id = v.id_material
		WHERE v.id_user = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list viewed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	set := make(map[recordKey]bool)
	for rows.Next() {
		var k recordKey
		var name string
		if err := rows.Scan(&name, &k.elementID); err != nil {
			return nil, fmt.Errorf("scan viewed: %w", err)
		}
		k.kind = catalog.Kind(name)
		set[k] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate viewed: %w", err)
	}
	return set, nil
}
