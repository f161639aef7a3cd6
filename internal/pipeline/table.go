// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/tgwang98/tgwang98.github.io/internal/bibtex"
)

// FormatTable writes a human-readable listing of a batch to w: one row per
// publication with its citation key, year, entry type, and selection flag.
func FormatTable(b Batch, w io.Writer) {
	if len(b.Publications) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-32s  %-4s  %-7s  %-3s  %s\n",
		"#", "Key", "Year", "Type", "Sel", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, p := range b.Publications {
		sel := ""
		if b.Selected.Contains(p.BaseID()) {
			sel = "*"
		}
		fmt.Fprintf(w, "%-4d  %-32s  %-4d  %-7s  %-3s  %s\n",
			i+1, truncate(bibtex.Key(p), 32), p.Year, bibtex.EntryType(p), sel, truncate(p.Title, 50))
	}

	fmt.Fprintf(w, "\n%d entries", len(b.Publications))
	if b.Parsed > len(b.Publications) {
		fmt.Fprintf(w, " (%d more beyond max_entries)", b.Parsed-len(b.Publications))
	}
	fmt.Fprintln(w)
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
