// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex renders Publications as the BibTeX document read by the
// website generator.
//
// Field values are written verbatim. Nothing is escaped, so an unbalanced
// "{" or "}" in an upstream title or abstract produces malformed BibTeX.
package bibtex

import (
	"fmt"
	"io"
	"strings"

	"github.com/tgwang98/tgwang98.github.io/internal/text"
	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

const (
	// archivePrefix is the provenance tag and the journal fallback prefix.
	archivePrefix = "arXiv"

	// previewExt is appended to the base id to name a selected entry's image.
	previewExt = ".png"

	typeArticle = "article"
	typeMisc    = "misc"
)

// Selector reports whether a base identifier is on the curation allow-list.
type Selector interface {
	Contains(baseID string) bool
}

// EntryType returns "article" when the publication carries a journal
// reference or a DOI, and "misc" otherwise.
func EntryType(p types.Publication) string {
	if p.HasJournalRef() || p.HasDOI() {
		return typeArticle
	}
	return typeMisc
}

// FormatAuthors joins names with " and ". Names are kept exactly as the
// feed gives them; an empty list yields "".
func FormatAuthors(authors []string) string {
	return strings.Join(authors, " and ")
}

// Journal returns the journal reference, or "arXiv:<base id>" for preprints.
func Journal(p types.Publication) string {
	if p.HasJournalRef() {
		return *p.JournalRef
	}
	return archivePrefix + ":" + p.BaseID()
}

// Preview returns the preview image name for a base id.
func Preview(baseID string) string {
	return baseID + previewExt
}

// ToBibTeX renders one publication as a BibTeX entry ending in a newline.
// selected controls the selected flag and whether a preview is emitted.
func ToBibTeX(p types.Publication, selected bool) string {
	var fields []string
	add := func(name, value string) {
		fields = append(fields, fmt.Sprintf("  %-12s = {%s}", name, value))
	}

	add("title", p.Title)
	add("author", FormatAuthors(p.Authors))
	add("year", fmt.Sprintf("%d", p.Year))
	add("journal", Journal(p))
	add("eprint", p.ID)
	add("archivePrefix", archivePrefix)
	if p.PrimaryCategory != nil && *p.PrimaryCategory != "" {
		add("primaryClass", *p.PrimaryCategory)
	}
	add("url", p.URL)
	if p.HasDOI() {
		add("doi", *p.DOI)
	}
	add("abstract", p.Abstract)
	add("description", text.FirstSentence(p.Abstract))
	add("selected", fmt.Sprintf("%t", selected))
	if selected {
		add("preview", Preview(p.BaseID()))
	}
	add("keywords", "")

	return fmt.Sprintf("@%s{%s,\n%s\n}\n", EntryType(p), Key(p), strings.Join(fields, ",\n"))
}

// Header returns the comment block written at the top of the document.
func Header(generator, source string) string {
	return fmt.Sprintf("%% This file is auto-generated by %s\n"+
		"%% Do not edit manually; your changes will be overwritten.\n"+
		"%% Source: %s\n"+
		"%%\n", generator, source)
}

// Write emits the header followed by one entry per publication, each
// followed by a blank line. sel may be nil, in which case nothing is selected.
func Write(w io.Writer, generator, source string, pubs []types.Publication, sel Selector) error {
	if _, err := io.WriteString(w, Header(generator, source)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range pubs {
		selected := sel != nil && sel.Contains(p.BaseID())
		if _, err := io.WriteString(w, ToBibTeX(p, selected)+"\n"); err != nil {
			return fmt.Errorf("writing entry %s: %w", p.ID, err)
		}
	}
	return nil
}
