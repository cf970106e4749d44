// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", in: "#3B82F6", want: RGB{0x3B, 0x82, 0xF6}},
		{name: "without hash", in: "ff0000", want: RGB{255, 0, 0}},
		{name: "lower case", in: "#00ff7f", want: RGB{0, 255, 127}},
		{name: "short form rejected", in: "#fff", wantErr: true},
		{name: "non hex rejected", in: "#GGGGGG", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		in   RGB
		want HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
		{RGB{0x3B, 0x82, 0xF6}, HSL{217, 91, 60}},
		{RGB{255, 0, 1}, HSL{0, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.in.Hex(), func(t *testing.T) {
			assert.Equal(t, tt.want, ToHSL(tt.in))
		})
	}
}

func TestToRGB(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, ToRGB(HSL{0, 100, 50}))
	assert.Equal(t, RGB{0, 255, 255}, ToRGB(HSL{180, 100, 50}))
	assert.Equal(t, RGB{128, 128, 128}, ToRGB(HSL{0, 0, 50}))
	assert.Equal(t, RGB{255, 0, 0}, ToRGB(HSL{360, 100, 50}), "hue wraps")
}

func TestComplementary(t *testing.T) {
	got, err := Complementary("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#00FFFF", got.Hex)
	assert.Equal(t, HSL{180, 100, 50}, got.HSL)

	_, err = Complementary("red")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestDescribe(t *testing.T) {
	info, err := Describe("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, "#3B82F6", info.Hex)
	assert.Equal(t, "rgb(59, 130, 246)", info.RGB.String())
	assert.Equal(t, "hsl(217, 91%, 60%)", info.HSL.String())
}
