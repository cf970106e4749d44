// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts values between units of length, weight, volume,
// and temperature.
//
// Linear categories convert through a scale table expressed against a base
// unit (meter, gram, liter). Temperature converts through a Celsius pivot.
// Everything in this package is pure and safe for concurrent use; the tables
// are read-only after package initialisation.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is a conversion domain with its own unit set and formula.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Temperature Category = "temperature"
)

var (
	// ErrInvalidInput is returned when a value cannot be parsed as a finite
	// real number, or when a conversion overflows to a non-finite result.
	ErrInvalidInput = errors.New("invalid input: provide a valid number")

	// ErrUnknownCategory is returned for a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownUnit is returned when a unit symbol does not belong to the
	// requested category.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Unit is a single unit of measure within a category.
type Unit struct {
	// Symbol is the short identifier, e.g. "km" or "lb".
	Symbol string `json:"symbol" yaml:"symbol"`

	// Label is the human-readable name, e.g. "Kilometer".
	Label string `json:"label" yaml:"label"`

	// Scale is the ratio of this unit to the category's base unit. It is
	// zero for temperature units, which do not scale linearly.
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Result is the outcome of one conversion.
type Result struct {
	Category  Category `json:"category" yaml:"category"`
	From      Unit     `json:"from" yaml:"from"`
	To        Unit     `json:"to" yaml:"to"`
	Input     float64  `json:"input" yaml:"input"`
	Value     float64  `json:"value" yaml:"value"`
	Formatted string   `json:"formatted" yaml:"formatted"`
}

// String renders the result the way the converter displays it, e.g.
// "1000 Meter = 1 Kilometer".
func (r Result) String() string {
	return fmt.Sprintf("%s %s = %s %s", formatInput(r.Input), r.From.Label, r.Formatted, r.To.Label)
}

// Reference describes how the value was computed.
func (r Result) Reference() string {
	if r.Category == Temperature {
		return fmt.Sprintf("Temperature formula: %s to %s",
			strings.ToUpper(r.From.Symbol), strings.ToUpper(r.To.Symbol))
	}
	return fmt.Sprintf("%s * %s / %s", formatInput(r.Input), formatInput(r.From.Scale), formatInput(r.To.Scale))
}

// Categories returns the supported categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ListUnits returns the units of a category in their listed order. The
// order is significant: the first two units are the default selection.
func ListUnits(c Category) ([]Unit, error) {
	def, ok := registry[c]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	out := make([]Unit, len(def.units))
	copy(out, def.units)
	return out, nil
}

// Lookup returns the unit with the given symbol within a category.
func Lookup(c Category, symbol string) (Unit, error) {
	def, ok := registry[c]
	if !ok {
		return Unit{}, fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	u, ok := def.find(symbol)
	if !ok {
		return Unit{}, fmt.Errorf("%w %q in category %s", ErrUnknownUnit, symbol, c)
	}
	return u, nil
}

// ParseValue parses user input as a finite real number. Surrounding
// whitespace is ignored. The grammar is Go's floating-point literal syntax
// as read by strconv.ParseFloat: decimal with optional sign, fraction, and
// exponent ("-1.5e3", ".5"), plus hex floats with a p exponent ("0x1p4").
// Hex integers without an exponent ("0x10") are rejected. Empty,
// unparseable, and non-finite input all yield ErrInvalidInput.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return v, nil
}

// Convert parses text and converts it from one unit to another using the
// default precision.
func Convert(c Category, from, to, text string) (Result, error) {
	return DefaultFormatter.Convert(c, from, to, text)
}

// ConvertValue converts an already-parsed value using the default precision.
func ConvertValue(c Category, from, to string, v float64) (Result, error) {
	return DefaultFormatter.ConvertValue(c, from, to, v)
}

// Convert parses text and converts it, formatting with f's precision.
func (f Formatter) Convert(c Category, from, to, text string) (Result, error) {
	if _, err := Lookup(c, from); err != nil {
		return Result{}, err
	}
	if _, err := Lookup(c, to); err != nil {
		return Result{}, err
	}
	v, err := ParseValue(text)
	if err != nil {
		return Result{}, err
	}
	return f.ConvertValue(c, from, to, v)
}

// ConvertValue converts v, formatting with f's precision.
func (f Formatter) ConvertValue(c Category, from, to string, v float64) (Result, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Result{}, fmt.Errorf("%w: non-finite value", ErrInvalidInput)
	}
	def, ok := registry[c]
	if !ok {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	fu, ok := def.find(from)
	if !ok {
		return Result{}, fmt.Errorf("%w %q in category %s", ErrUnknownUnit, from, c)
	}
	tu, ok := def.find(to)
	if !ok {
		return Result{}, fmt.Errorf("%w %q in category %s", ErrUnknownUnit, to, c)
	}

	out := def.formula.convert(v, fu, tu)
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return Result{}, fmt.Errorf("%w: result out of range", ErrInvalidInput)
	}

	return Result{
		Category:  c,
		From:      fu,
		To:        tu,
		Input:     v,
		Value:     out,
		Formatted: f.Format(out),
	}, nil
}

// formatInput renders a float without exponent noise for display.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
