// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pdiddy/toolshed/pkg/types"
)

// AddColor appends hex to the palette. Adding a color that is already
// present leaves the palette unchanged and reports added=false. Callers
// pass a normalised "#RRGGBB" value.
func (s *Store) AddColor(ctx context.Context, hex string) (added bool, err error) {
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), 0) + 1 FROM palette`,
		).Scan(&next); err != nil {
			return fmt.Errorf("reading palette size: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO palette (hex, position, added_at) VALUES (?, ?, ?)
			 ON CONFLICT(hex) DO NOTHING`,
			hex, next, time.Now().UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("inserting color %s: %w", hex, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("inserting color %s: %w", hex, err)
		}
		added = n > 0
		return nil
	})
	return added, err
}

// RemoveColor deletes hex from the palette.
func (s *Store) RemoveColor(ctx context.Context, hex string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM palette WHERE hex = ?`, hex)
	if err != nil {
		return fmt.Errorf("removing color %s: %w", hex, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing color %s: %w", hex, err)
	}
	if n == 0 {
		return fmt.Errorf("color %s: %w", hex, ErrNotFound)
	}
	return nil
}

// Palette lists saved colors in the order they were added.
func (s *Store) Palette(ctx context.Context) ([]types.PaletteColor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT hex, position, added_at FROM palette ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying palette: %w", err)
	}
	defer rows.Close()

	var out []types.PaletteColor
	for rows.Next() {
		var c types.PaletteColor
		var added string
		if err := rows.Scan(&c.Hex, &c.Position, &added); err != nil {
			return nil, fmt.Errorf("scanning palette row: %w", err)
		}
		c.AddedAt, _ = time.Parse(timeLayout, added)
		out = append(out, c)
	}
	return out, rows.Err()
}
