// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/toolshed/internal/color"
	"github.com/pdiddy/toolshed/internal/links"
	"github.com/pdiddy/toolshed/pkg/types"
)

// Format selects an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Snapshot reads the whole store.
func (s *Store) Snapshot(ctx context.Context) (types.Export, error) {
	palette, err := s.Palette(ctx)
	if err != nil {
		return types.Export{}, err
	}
	saved, err := s.Links(ctx)
	if err != nil {
		return types.Export{}, err
	}
	if palette == nil {
		palette = []types.PaletteColor{}
	}
	if saved == nil {
		saved = []types.ShortLink{}
	}
	return types.Export{
		Palette:    palette,
		Links:      saved,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Export writes a snapshot to <dir>/export.<format> and returns the path.
func (s *Store) Export(ctx context.Context, format Format) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var data []byte
	switch format {
	case FormatYAML, "":
		format = FormatYAML
		data, err = yaml.Marshal(&snap)
	case FormatJSON:
		data, err = json.MarshalIndent(&snap, "", "  ")
	default:
		return "", fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.dir, "export."+string(format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ImportResult counts what Import did with each row.
type ImportResult struct {
	Colors  int `json:"colors"`
	Links   int `json:"links"`
	Skipped int `json:"skipped"`
}

// Import loads a YAML or JSON export, adding palette colors and links that
// are not already present. Rows that fail the checks the CLI applies on
// entry (a #RRGGBB color, a valid alias, an absolute http(s) URL) are
// skipped and counted, as are aliases already taken. Colors are stored in
// their normalised upper-case form.
func (s *Store) Import(ctx context.Context, path string) (ImportResult, error) {
	var res ImportResult
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", path, err)
	}

	var snap types.Export
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &snap)
	} else {
		err = yaml.Unmarshal(data, &snap)
	}
	if err != nil {
		return res, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, c := range snap.Palette {
		rgb, err := color.ParseHex(c.Hex)
		if err != nil {
			slog.WarnContext(ctx, "skipping palette row", "hex", c.Hex, "err", err)
			res.Skipped++
			continue
		}
		added, err := s.AddColor(ctx, rgb.Hex())
		if err != nil {
			return res, err
		}
		if added {
			res.Colors++
		}
	}
	for _, l := range snap.Links {
		if err := validLink(l); err != nil {
			slog.WarnContext(ctx, "skipping link row", "alias", l.Alias, "err", err)
			res.Skipped++
			continue
		}
		if err := s.SaveLink(ctx, l); err != nil {
			if errors.Is(err, ErrAliasTaken) {
				res.Skipped++
				continue
			}
			return res, err
		}
		res.Links++
	}
	return res, nil
}

func validLink(l types.ShortLink) error {
	if err := links.ValidateAlias(l.Alias); err != nil {
		return err
	}
	return links.ValidateURL(l.URL)
}
