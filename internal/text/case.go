// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package text implements the plain-text tools: case conversion, word
// statistics, base64, and JSON formatting.
package text

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Case selects a case conversion.
type Case string

const (
	Upper    Case = "upper"
	Lower    Case = "lower"
	Sentence Case = "sentence"
	Title    Case = "title"
)

// ErrUnknownCase is returned for a Case outside the supported set.
var ErrUnknownCase = errors.New("unknown case")

var (
	sentenceStart = regexp.MustCompile(`(^\w|\.\s+\w)`)
	wordStart     = regexp.MustCompile(`\b\w`)
)

// ConvertCase rewrites s in the requested case. Sentence case capitalises
// the first character and any word following a period; title case
// capitalises every word.
func ConvertCase(s string, c Case) (string, error) {
	switch c {
	case Upper:
		return strings.ToUpper(s), nil
	case Lower:
		return strings.ToLower(s), nil
	case Sentence:
		return sentenceStart.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper), nil
	case Title:
		return wordStart.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper), nil
	default:
		return "", fmt.Errorf("%w %q: use upper, lower, sentence, or title", ErrUnknownCase, c)
	}
}
