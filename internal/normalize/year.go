// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strconv"
	"time"

	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

var (
	parenYear = regexp.MustCompile(`\((\d{4})\)`)
	bareYear  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// YearFromJournalRef extracts a year from a journal reference such as
// "Phys. Rev. B 100, 085127 (2019)". A parenthesized four-digit number
// wins; otherwise the first standalone 19xx or 20xx token is used.
func YearFromJournalRef(ref string) (int, bool) {
	if m := parenYear.FindStringSubmatch(ref); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y, true
	}
	if m := bareYear.FindString(ref); m != "" {
		y, _ := strconv.Atoi(m)
		return y, true
	}
	return 0, false
}

// ResolveYear applies the year policy. Under YearJournal (and the empty
// policy) a year in the journal reference takes precedence; every other
// case uses the published year.
func ResolveYear(policy types.YearPolicy, journalRef *string, published time.Time) int {
	if policy != types.YearPublished && journalRef != nil {
		if y, ok := YearFromJournalRef(*journalRef); ok {
			return y
		}
	}
	return published.Year()
}
