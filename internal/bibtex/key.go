// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// placeholderLastName stands in when there is no usable first-author surname.
const placeholderLastName = "unknown"

// shortTitleWords is how many title words go into a key.
const shortTitleWords = 4

var (
	nonLetters      = regexp.MustCompile(`[^A-Za-z]`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// Key builds the citation key "<lastname><year><short title>", e.g.
// "wang2021spinliquidsonthe". Keys are not guaranteed unique: two papers by
// the same first author in the same year with the same leading title words
// collide, and no disambiguation suffix is added.
func Key(p types.Publication) string {
	return fmt.Sprintf("%s%d%s", lastName(p.Authors), p.Year, shortTitle(p.Title))
}

// lastName returns the letters-only, lowercased final token of the first
// author's name.
func lastName(authors []string) string {
	if len(authors) == 0 {
		return placeholderLastName
	}
	fields := strings.Fields(authors[0])
	if len(fields) == 0 {
		return placeholderLastName
	}
	name := strings.ToLower(nonLetters.ReplaceAllString(fields[len(fields)-1], ""))
	if name == "" {
		return placeholderLastName
	}
	return name
}

// shortTitle concatenates the first title words, alphanumerics only, lowercased.
func shortTitle(title string) string {
	words := strings.Fields(strings.ToLower(nonAlphanumeric.ReplaceAllString(title, " ")))
	if len(words) > shortTitleWords {
		words = words[:shortTitleWords]
	}
	return strings.Join(words, "")
}

// Collisions returns, sorted, every key shared by more than one publication.
func Collisions(pubs []types.Publication) []string {
	counts := make(map[string]int, len(pubs))
	for _, p := range pubs {
		counts[Key(p)]++
	}
	var dups []string
	for k, n := range counts {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	sort.Strings(dups)
	return dups
}
