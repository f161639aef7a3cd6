// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubsync pipeline:
// the canonical Publication built by the normalizer and the Config passed
// into the pipeline entry point.
package types

import (
	"regexp"
	"time"
)

// versionSuffix matches the trailing arXiv version marker (e.g. "v3").
var versionSuffix = regexp.MustCompile(`v\d+$`)

// Publication is the normalized representation of one feed entry.
// It is built once by the normalizer and never mutated afterwards.
type Publication struct {
	// ID is the arXiv identifier as published in the feed, possibly with a
	// version suffix (e.g. "2301.07041v2").
	ID string `json:"id" yaml:"id"`

	// Title is the whitespace-normalized title.
	Title string `json:"title" yaml:"title"`

	// Authors lists display names in citation order. It may be empty.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the resolved publication year. Never zero.
	Year int `json:"year" yaml:"year"`

	// Published is the first-version timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the latest-version timestamp.
	Updated time.Time `json:"updated" yaml:"updated"`

	// PrimaryCategory is the arXiv taxonomy tag (e.g. "cond-mat.str-el").
	PrimaryCategory *string `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`

	// JournalRef is the free-text journal citation supplied by the authors.
	JournalRef *string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`

	// DOI is the Digital Object Identifier of the published version.
	DOI *string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the canonical abstract page.
	URL string `json:"url" yaml:"url"`

	// Abstract is the cleaned summary text, empty when the feed has none.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// BaseID returns the identifier with any trailing version marker removed
// ("2301.07041v2" → "2301.07041").
func (p Publication) BaseID() string {
	return BaseID(p.ID)
}

// HasJournalRef reports whether a journal reference is present.
func (p Publication) HasJournalRef() bool {
	return p.JournalRef != nil && *p.JournalRef != ""
}

// HasDOI reports whether a DOI is present.
func (p Publication) HasDOI() bool {
	return p.DOI != nil && *p.DOI != ""
}

// BaseID strips a trailing "v<digits>" version marker from an arXiv identifier.
func BaseID(id string) string {
	return versionSuffix.ReplaceAllString(id, "")
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
