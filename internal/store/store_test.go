// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/toolshed/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{Dir: filepath.Join(t.TempDir(), "state")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	s := testStore(t)
	_, err := os.Stat(filepath.Join(s.Dir(), dbFile))
	require.NoError(t, err)

	// Reopening an existing database keeps the schema intact.
	again, err := Open(types.StoreConfig{Dir: s.Dir()})
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestPalette(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	for _, hex := range []string{"#3B82F6", "#FF0000", "#00FF00"} {
		added, err := s.AddColor(ctx, hex)
		require.NoError(t, err)
		assert.True(t, added)
	}

	added, err := s.AddColor(ctx, "#FF0000")
	require.NoError(t, err)
	assert.False(t, added, "duplicates are ignored")

	require.NoError(t, s.RemoveColor(ctx, "#FF0000"))
	assert.ErrorIs(t, s.RemoveColor(ctx, "#FF0000"), ErrNotFound)

	added, err = s.AddColor(ctx, "#FF0000")
	require.NoError(t, err)
	assert.True(t, added)

	palette, err := s.Palette(ctx)
	require.NoError(t, err)
	hexes := make([]string, len(palette))
	for i, c := range palette {
		hexes[i] = c.Hex
		assert.False(t, c.AddedAt.IsZero())
	}
	assert.Equal(t, []string{"#3B82F6", "#00FF00", "#FF0000"}, hexes)
}

func TestLinks(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	link := types.ShortLink{Alias: "docs", URL: "https://go.dev/doc/"}
	require.NoError(t, s.SaveLink(ctx, link))

	err := s.SaveLink(ctx, types.ShortLink{Alias: "DOCS", URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrAliasTaken)

	got, err := s.ResolveLink(ctx, "Docs")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/doc/", got.URL)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = s.ResolveLink(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveLink(ctx, types.ShortLink{
		Alias: "later", URL: "https://example.com", CreatedAt: time.Now().Add(time.Hour),
	}))
	all, err := s.Links(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "later", all[0].Alias)

	require.NoError(t, s.DeleteLink(ctx, "later"))
	assert.ErrorIs(t, s.DeleteLink(ctx, "later"), ErrNotFound)
}

func TestExportAndImport(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.AddColor(ctx, "#123456")
	require.NoError(t, err)
	require.NoError(t, s.SaveLink(ctx, types.ShortLink{Alias: "home", URL: "https://example.com"}))

	yamlPath, err := s.Export(ctx, FormatYAML)
	require.NoError(t, err)
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML types.Export
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML.Palette, 1)
	assert.Equal(t, "#123456", fromYAML.Palette[0].Hex)

	jsonPath, err := s.Export(ctx, FormatJSON)
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON types.Export
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON.Links, 1)
	assert.Equal(t, "home", fromJSON.Links[0].Alias)

	_, err = s.Export(ctx, "csv")
	assert.Error(t, err)

	other := testStore(t)
	res, err := other.Import(ctx, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Colors: 1, Links: 1}, res)

	res, err = other.Import(ctx, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Skipped: 1}, res, "color already present, alias taken")
}

func TestImportSkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `palette:
  - hex: not-a-color
  - hex: "#12345"
  - hex: abcdef
links:
  - alias: "a b/../x"
    url: https://example.com
  - alias: xss
    url: javascript:alert(1)
  - alias: good
    url: https://go.dev
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	res, err := s.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Colors: 1, Links: 1, Skipped: 4}, res)

	palette, err := s.Palette(ctx)
	require.NoError(t, err)
	require.Len(t, palette, 1)
	assert.Equal(t, "#ABCDEF", palette[0].Hex, "stored normalised")

	saved, err := s.Links(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "good", saved[0].Alias)
}
