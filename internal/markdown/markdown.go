// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders a small subset of Markdown to HTML with an
// ordered list of regular-expression rewrites.
//
// It is deliberately naive: rules run in sequence over the whole document,
// input HTML is passed through unescaped, and only the first list is
// wrapped in <ul>. Use a real Markdown library when fidelity matters.
package markdown

import (
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Inline and block rules, applied in order. Bold must run before italic so
// that "**" is not consumed as two emphasis markers.
var rules = []rule{
	{regexp.MustCompile(`(?m)^### (.*?)$`), "<h3>${1}</h3>"},
	{regexp.MustCompile(`(?m)^## (.*?)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^# (.*?)$`), "<h1>${1}</h1>"},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`__(.+?)__`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`\*(.*?)\*`), "<em>${1}</em>"},
	{regexp.MustCompile(`_(.+?)_`), "<em>${1}</em>"},
	{regexp.MustCompile("`(.*?)`"), "<code>${1}</code>"},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), `<a href="${2}">${1}</a>`},
}

var (
	listItem = regexp.MustCompile(`(?m)^\* (.*?)$`)
	firstLI  = regexp.MustCompile(`<li>.*?</li>`)
)

// ToHTML converts markdown to HTML. Blank input yields an empty string.
func ToHTML(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	out := markdown
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.repl)
	}

	out = "<p>" + strings.ReplaceAll(out, "\n\n", "</p><p>") + "</p>"

	out = listItem.ReplaceAllString(out, "<li>${1}</li>")
	if loc := firstLI.FindStringIndex(out); loc != nil {
		out = out[:loc[0]] + "<ul>" + out[loc[0]:loc[1]] + "</ul>" + out[loc[1]:]
	}
	return out
}
