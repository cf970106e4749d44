// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package password generates random passwords and rates their strength.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var (
	// ErrNoCharset is returned when every character class is disabled.
	ErrNoCharset = errors.New("select at least one character type")

	// ErrInvalidLength is returned for a length below one.
	ErrInvalidLength = errors.New("password length must be at least 1")
)

// Options selects the length and character classes of a password.
type Options struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// DefaultOptions returns a 16-character password using every class.
func DefaultOptions() Options {
	return Options{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// Charset returns the characters the options allow.
func (o Options) Charset() string {
	var b strings.Builder
	if o.Uppercase {
		b.WriteString(upperChars)
	}
	if o.Lowercase {
		b.WriteString(lowerChars)
	}
	if o.Numbers {
		b.WriteString(digitChars)
	}
	if o.Symbols {
		b.WriteString(symbolChars)
	}
	return b.String()
}

// Generate returns a password drawn uniformly from the allowed charset
// using crypto/rand.
func Generate(o Options) (string, error) {
	return GenerateFrom(rand.Reader, o)
}

// GenerateFrom is Generate with an explicit randomness source.
func GenerateFrom(r io.Reader, o Options) (string, error) {
	if o.Length < 1 {
		return "", ErrInvalidLength
	}
	chars := o.Charset()
	if chars == "" {
		return "", ErrNoCharset
	}

	limit := big.NewInt(int64(len(chars)))
	out := make([]byte, o.Length)
	for i := range out {
		n, err := rand.Int(r, limit)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}

// Strength is a coarse rating of a password.
type Strength string

const (
	Weak   Strength = "weak"
	Fair   Strength = "fair"
	Good   Strength = "good"
	Strong Strength = "strong"
)

// Rate scores one point each for reaching 8, 12, and 16 characters and for
// containing a lower-case letter, an upper-case letter, a digit, and any
// other character. Up to 2 points is weak, 4 fair, 5 good, more strong.
func Rate(pw string) Strength {
	score := 0
	n := len([]rune(pw))
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	var lower, upper, digit, other bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			score++
		}
	}

	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Fair
	case score <= 5:
		return Good
	default:
		return Strong
	}
}
