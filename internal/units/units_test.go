// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		from, to  string
		input     string
		want      float64
		formatted string
	}{
		{name: "meters to kilometers", category: Length, from: "m", to: "km", input: "1000", want: 1, formatted: "1"},
		{name: "miles to kilometers", category: Length, from: "mi", to: "km", input: "1", want: 1.60934, formatted: "1.60934"},
		{name: "feet to inches", category: Length, from: "ft", to: "in", input: "1", want: 12, formatted: "12"},
		{name: "kilograms to grams", category: Weight, from: "kg", to: "g", input: "2.5", want: 2500, formatted: "2500"},
		{name: "pounds to kilograms", category: Weight, from: "lb", to: "kg", input: "1", want: 0.453592, formatted: "0.453592"},
		{name: "liters to milliliters", category: Volume, from: "l", to: "ml", input: "1", want: 1000, formatted: "1000"},
		{name: "celsius freezing to fahrenheit", category: Temperature, from: "c", to: "f", input: "0", want: 32, formatted: "32"},
		{name: "celsius boiling to fahrenheit", category: Temperature, from: "c", to: "f", input: "100", want: 212, formatted: "212"},
		{name: "fahrenheit freezing to kelvin", category: Temperature, from: "f", to: "k", input: "32", want: 273.15, formatted: "273.15"},
		{name: "kelvin to celsius", category: Temperature, from: "k", to: "c", input: "0", want: -273.15, formatted: "-273.15"},
		{name: "whitespace around value", category: Length, from: "km", to: "m", input: "  2 ", want: 2000, formatted: "2000"},
		{name: "negative mass accepted", category: Weight, from: "g", to: "mg", input: "-1", want: -1000, formatted: "-1000"},
		{name: "below absolute zero accepted", category: Temperature, from: "k", to: "c", input: "-10", want: -283.15, formatted: "-283.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.category, tt.from, tt.to, tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, tt.formatted, got.Formatted)
		})
	}
}

func TestConvertIdentityIsExact(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1.0 / 3.0, 98.6, -40, 1e12, 123.456789}
	for _, c := range Categories() {
		list, err := ListUnits(c)
		require.NoError(t, err)
		for _, u := range list {
			for _, v := range values {
				got, err := ConvertValue(c, u.Symbol, u.Symbol, v)
				require.NoError(t, err)
				assert.Equal(t, v, got.Value, "%s %s %v", c, u.Symbol, v)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 2.5, 37, 1000, -459.67, 0.001}
	for _, c := range Categories() {
		list, err := ListUnits(c)
		require.NoError(t, err)
		for _, from := range list {
			for _, to := range list {
				for _, v := range values {
					there, err := ConvertValue(c, from.Symbol, to.Symbol, v)
					require.NoError(t, err)
					back, err := ConvertValue(c, to.Symbol, from.Symbol, there.Value)
					require.NoError(t, err)
					tol := 1e-9 * math.Max(1, math.Abs(v))
					assert.InDelta(t, v, back.Value, tol, "%s %s->%s %v", c, from.Symbol, to.Symbol, v)
				}
			}
		}
	}
}

func TestConvertInvalidInput(t *testing.T) {
	inputs := []string{"abc", "", "   ", "1.2.3", "NaN", "Inf", "-Infinity", "12abc"}
	for _, c := range Categories() {
		list, err := ListUnits(c)
		require.NoError(t, err)
		for _, from := range list {
			for _, to := range list {
				for _, in := range inputs {
					_, err := Convert(c, from.Symbol, to.Symbol, in)
					assert.ErrorIs(t, err, ErrInvalidInput, "%s %s->%s %q", c, from.Symbol, to.Symbol, in)
				}
			}
		}
	}
}

func TestParseValueGrammar(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "+2", want: 2},
		{in: "-1.5e3", want: -1500},
		{in: ".5", want: 0.5},
		{in: "0x1p4", want: 16},
		{in: "0x10", wantErr: true},
		{in: "1,000", wantErr: true},
		{in: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertZeroIsNotInvalid(t *testing.T) {
	got, err := Convert(Length, "m", "km", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", got.Formatted)
}

func TestConvertOverflow(t *testing.T) {
	_, err := ConvertValue(Weight, "ton", "mg", math.MaxFloat64)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConvertUnknownUnitsAndCategories(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		from, to string
		wantErr  error
	}{
		{name: "unknown category", category: "speed", from: "m", to: "km", wantErr: ErrUnknownCategory},
		{name: "unit from another category", category: Length, from: "kg", to: "m", wantErr: ErrUnknownUnit},
		{name: "unknown destination", category: Volume, from: "l", to: "barrel", wantErr: ErrUnknownUnit},
		{name: "symbols are case sensitive", category: Temperature, from: "C", to: "f", wantErr: ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.category, tt.from, tt.to, "1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListUnitsOrder(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{Length, []string{"mm", "cm", "m", "km", "in", "ft", "yd", "mi"}},
		{Weight, []string{"mg", "g", "kg", "oz", "lb", "ton"}},
		{Volume, []string{"ml", "l", "gal", "pt", "cup", "tbsp", "tsp"}},
		{Temperature, []string{"c", "f", "k"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			list, err := ListUnits(tt.category)
			require.NoError(t, err)
			symbols := make([]string, len(list))
			for i, u := range list {
				symbols[i] = u.Symbol
			}
			assert.Equal(t, tt.want, symbols)
		})
	}
}

func TestListUnitsReturnsCopy(t *testing.T) {
	list, err := ListUnits(Length)
	require.NoError(t, err)
	list[0].Scale = 42

	again, err := ListUnits(Length)
	require.NoError(t, err)
	assert.Equal(t, 0.001, again[0].Scale)
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []Category{Length, Weight, Volume, Temperature}, Categories())
}

func TestResultText(t *testing.T) {
	r, err := Convert(Length, "m", "km", "1000")
	require.NoError(t, err)
	assert.Equal(t, "1000 Meter = 1 Kilometer", r.String())
	assert.Equal(t, "1000 * 1 / 1000", r.Reference())

	r, err = Convert(Temperature, "c", "f", "100")
	require.NoError(t, err)
	assert.Equal(t, "100 Celsius = 212 Fahrenheit", r.String())
	assert.Equal(t, "Temperature formula: C to F", r.Reference())
}
