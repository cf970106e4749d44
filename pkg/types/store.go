// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PaletteColor is a saved color.
type PaletteColor struct {
	// Hex is the normalised upper-case "#RRGGBB" value and the palette key.
	Hex string `json:"hex" yaml:"hex"`

	// Position orders the palette; new colors are appended.
	Position int `json:"position" yaml:"position"`

	AddedAt time.Time `json:"added_at" yaml:"added_at"`
}

// ShortLink maps an alias to a long URL.
type ShortLink struct {
	Alias     string    `json:"alias" yaml:"alias"`
	URL       string    `json:"url" yaml:"url"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Export is the on-disk representation of the store.
type Export struct {
	Palette    []PaletteColor `json:"palette" yaml:"palette"`
	Links      []ShortLink    `json:"links" yaml:"links"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
}
