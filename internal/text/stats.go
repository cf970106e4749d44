// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// Stats summarises a block of text.
type Stats struct {
	Words              int `json:"words"`
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Sentences          int `json:"sentences"`
	Paragraphs         int `json:"paragraphs"`
	ReadingMinutes     int `json:"reading_minutes"`
}

var (
	sentenceBreak  = regexp.MustCompile(`[.!?]+`)
	paragraphBreak = regexp.MustCompile(`\n\n+`)
)

// Count computes word, character, sentence, and paragraph counts and an
// estimated reading time rounded up to whole minutes. Characters are
// counted as runes.
func Count(s string) Stats {
	st := Stats{
		Words:      len(strings.Fields(s)),
		Characters: utf8.RuneCountInString(s),
		CharactersNoSpaces: utf8.RuneCountInString(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)),
		Sentences:  countNonBlank(sentenceBreak.Split(s, -1)),
		Paragraphs: countNonBlank(paragraphBreak.Split(s, -1)),
	}
	st.ReadingMinutes = (st.Words + WordsPerMinute - 1) / WordsPerMinute
	return st
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}
