// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import "fmt"

// Selection is the converter's interactive state: a category and the units
// chosen on either side. It is a value; every change returns a new
// Selection.
type Selection struct {
	Category Category `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
}

// NewSelection selects c with its first two listed units.
func NewSelection(c Category) (Selection, error) {
	from, to, err := DefaultPair(c)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Category: c, From: from, To: to}, nil
}

// DefaultPair returns the symbols of the first two units of c.
func DefaultPair(c Category) (from, to string, err error) {
	def, ok := registry[c]
	if !ok {
		return "", "", fmt.Errorf("%w %q", ErrUnknownCategory, c)
	}
	return def.units[0].Symbol, def.units[1].Symbol, nil
}

// WithCategory switches to c and resets both units to c's defaults.
func (s Selection) WithCategory(c Category) (Selection, error) {
	return NewSelection(c)
}

// WithFrom returns s with the source unit replaced.
func (s Selection) WithFrom(symbol string) (Selection, error) {
	if _, err := Lookup(s.Category, symbol); err != nil {
		return s, err
	}
	s.From = symbol
	return s, nil
}

// WithTo returns s with the destination unit replaced.
func (s Selection) WithTo(symbol string) (Selection, error) {
	if _, err := Lookup(s.Category, symbol); err != nil {
		return s, err
	}
	s.To = symbol
	return s, nil
}

// Swap exchanges the source and destination units.
func (s Selection) Swap() Selection {
	s.From, s.To = s.To, s.From
	return s
}

// Convert converts text using the selected units.
func (s Selection) Convert(text string) (Result, error) {
	return Convert(s.Category, s.From, s.To, text)
}
