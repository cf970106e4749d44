// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/pdiddy/toolshed/pkg/types"
)

// SaveLink records a new short link. Aliases are unique regardless of case.
func (s *Store) SaveLink(ctx context.Context, link types.ShortLink) error {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO links (alias, url, created_at) VALUES (?, ?, ?)`,
		link.Alias, link.URL, link.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && isUniqueViolation(sqliteErr) {
			return fmt.Errorf("alias %q: %w", link.Alias, ErrAliasTaken)
		}
		return fmt.Errorf("saving link %q: %w", link.Alias, err)
	}
	return nil
}

// ResolveLink looks up an alias.
func (s *Store) ResolveLink(ctx context.Context, alias string) (types.ShortLink, error) {
	var link types.ShortLink
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT alias, url, created_at FROM links WHERE alias = ?`, alias,
	).Scan(&link.Alias, &link.URL, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ShortLink{}, fmt.Errorf("alias %q: %w", alias, ErrNotFound)
	}
	if err != nil {
		return types.ShortLink{}, fmt.Errorf("resolving alias %q: %w", alias, err)
	}
	link.CreatedAt, _ = time.Parse(timeLayout, created)
	return link, nil
}

// DeleteLink removes an alias.
func (s *Store) DeleteLink(ctx context.Context, alias string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE alias = ?`, alias)
	if err != nil {
		return fmt.Errorf("deleting alias %q: %w", alias, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("alias %q: %w", alias, ErrNotFound)
	}
	return nil
}

// Links lists every short link, newest first.
func (s *Store) Links(ctx context.Context) ([]types.ShortLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT alias, url, created_at FROM links ORDER BY created_at DESC, alias`)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	var out []types.ShortLink
	for rows.Next() {
		var l types.ShortLink
		var created string
		if err := rows.Scan(&l.Alias, &l.URL, &created); err != nil {
			return nil, fmt.Errorf("scanning link row: %w", err)
		}
		l.CreatedAt, _ = time.Parse(timeLayout, created)
		out = append(out, l)
	}
	return out, rows.Err()
}

func isUniqueViolation(err sqlite3.Error) bool {
	return err.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		err.ExtendedCode == sqlite3.ErrConstraintUnique
}
