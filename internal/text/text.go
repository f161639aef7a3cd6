// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package text holds the string cleanup shared by the normalizer and the
// renderers.
package text

import (
	"regexp"
	"strings"
)

// sentenceEnd matches a terminator followed by a space. It runs on cleaned
// text, where every whitespace run is already a single ASCII space.
var sentenceEnd = regexp.MustCompile(`[.!?] `)

// Clean collapses every Unicode whitespace run (newlines, tabs, no-break
// and thin spaces included) into a single space and trims the result.
// Clean is idempotent.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FirstSentence returns the cleaned text up to and including the first
// ".", "!" or "?" that is followed by whitespace. Text without such a
// terminator is returned whole; empty input yields "".
func FirstSentence(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}
	loc := sentenceEnd.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]+1]
}
