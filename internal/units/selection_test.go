// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionDefaults(t *testing.T) {
	tests := []struct {
		category Category
		from, to string
	}{
		{Length, "mm", "cm"},
		{Weight, "mg", "g"},
		{Volume, "ml", "l"},
		{Temperature, "c", "f"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			s, err := NewSelection(tt.category)
			require.NoError(t, err)
			assert.Equal(t, Selection{Category: tt.category, From: tt.from, To: tt.to}, s)
		})
	}
}

func TestSelectionWithCategoryResetsUnits(t *testing.T) {
	s, err := NewSelection(Length)
	require.NoError(t, err)
	s, err = s.WithFrom("km")
	require.NoError(t, err)
	s, err = s.WithTo("mi")
	require.NoError(t, err)

	s, err = s.WithCategory(Temperature)
	require.NoError(t, err)
	assert.Equal(t, "c", s.From)
	assert.Equal(t, "f", s.To)

	got, err := s.Convert("100")
	require.NoError(t, err)
	assert.Equal(t, "212", got.Formatted)
}

func TestSelectionRejectsForeignUnit(t *testing.T) {
	s, err := NewSelection(Weight)
	require.NoError(t, err)

	same, err := s.WithTo("km")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.Equal(t, s, same)

	_, err = s.WithCategory("speed")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSelectionSwap(t *testing.T) {
	s := Selection{Category: Length, From: "m", To: "km"}.Swap()
	assert.Equal(t, "km", s.From)
	assert.Equal(t, "m", s.To)

	got, err := s.Convert("1")
	require.NoError(t, err)
	assert.Equal(t, "1000", got.Formatted)
}
