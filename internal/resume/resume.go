// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resume scores how well a resume covers the keywords of a job
// description.
package resume

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput is returned when either the resume or the job description
// is blank.
var ErrEmptyInput = errors.New("both resume and job description are required")

// minKeywordLen is exclusive: keywords must be longer than this.
const minKeywordLen = 3

// Match is the outcome of comparing a resume to a job description.
type Match struct {
	Percentage int      `json:"match_percentage"`
	Matched    []string `json:"matched_keywords"`
	Missing    []string `json:"missing_keywords"`
}

var punctuation = regexp.MustCompile(`[^\w\s+#]`)

var stopWords = func() map[string]struct{} {
	words := []string{
		"the", "and", "for", "with", "from", "that", "this", "have", "has", "been",
		"are", "was", "were", "will", "would", "could", "should", "may", "might",
		"can", "must", "shall", "our", "your", "their", "what", "which", "when",
		"where", "why", "how", "all", "each", "every", "both", "either", "or",
		"not", "no", "nor", "only", "same", "such", "so", "than", "then", "now",
		"just", "also", "well", "very", "too", "more", "most", "less", "least",
		"as", "if", "in", "on", "at", "by", "to", "of", "up", "out", "about",
		"into", "through", "during", "before", "after", "above", "below", "between",
		"under", "again", "further", "once", "here", "there", "any", "some", "few",
		"other", "another",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// Keywords extracts distinct keywords from text in first-seen order.
// Text is lower-cased, punctuation other than '+' and '#' becomes a word
// break, and short or common words are dropped.
func Keywords(text string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]struct{})
	var out []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) <= minKeywordLen {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Compare reports which job keywords appear in the resume. The percentage
// is rounded to the nearest whole number; a job description without any
// keywords scores zero.
func Compare(resume, job string) (Match, error) {
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(job) == "" {
		return Match{}, ErrEmptyInput
	}

	have := make(map[string]struct{})
	for _, k := range Keywords(resume) {
		have[k] = struct{}{}
	}

	jobKeywords := Keywords(job)
	m := Match{Matched: []string{}, Missing: []string{}}
	for _, k := range jobKeywords {
		if _, ok := have[k]; ok {
			m.Matched = append(m.Matched, k)
		} else {
			m.Missing = append(m.Missing, k)
		}
	}
	if len(jobKeywords) > 0 {
		m.Percentage = int(math.Round(float64(len(m.Matched)) / float64(len(jobKeywords)) * 100))
	}
	return m, nil
}
