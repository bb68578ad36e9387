package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/viewlog/internal/catalog"
)

func getUserByName(ctx context.Context, q querier, name string) (*catalog.User, error) {
	u := &catalog.User{}
	err := q.QueryRowContext(ctx, "SELECT id, name FROM users WHERE name = ?", name).Scan(&u.ID, &u.Name)
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", name, mapSQLiteError(err))
	}
	return u, nil
}

// ResolveUser returns the user with the given display name, creating it on
// first use. Repeated calls with the same name return the same id.
func (s *Store) ResolveUser(ctx context.Context, name string) (*catalog.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("resolve user: empty name")
	}

	u, err := getUserByName(ctx, s.db, name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, created_at) VALUES (?, ?)", name, time.Now().UTC())
	if err != nil {
		if errors.Is(mapSQLiteError(err), ErrDuplicate) {
			// Created concurrently by another process; read it back.
			return getUserByName(ctx, s.db, name)
		}
		return nil, fmt.Errorf("insert user: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	return &catalog.User{ID: id, Name: name}, nil
}
