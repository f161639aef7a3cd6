// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csl renders Publications as a CSL-YAML list, the format read by
// Pandoc-based CV builds.
package csl

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/tgwang98/tgwang98.github.io/internal/bibtex"
	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// Item represents a bibliographic entry in CSL (Citation Style Language)
// format. Field names follow the CSL-JSON/CSL-YAML schema.
type Item struct {
	ID             string `yaml:"id"`
	Type           string `yaml:"type"`
	Title          string `yaml:"title"`
	Author         []Name `yaml:"author,omitempty"`
	Issued         *Date  `yaml:"issued,omitempty"`
	ContainerTitle string `yaml:"container-title,omitempty"`
	Number         string `yaml:"number,omitempty"`
	DOI            string `yaml:"DOI,omitempty"`
	URL            string `yaml:"URL,omitempty"`
	Abstract       string `yaml:"abstract,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// Date represents a date in CSL format using date-parts.
type Date struct {
	DateParts [][]int `yaml:"date-parts"`
}

// Write emits a comment header and the publications as a CSL-YAML list.
func Write(w io.Writer, generator, source string, pubs []types.Publication) error {
	header := fmt.Sprintf("# This file is auto-generated by %s\n"+
		"# Do not edit manually; your changes will be overwritten.\n"+
		"# Source: %s\n", generator, source)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	items := make([]Item, len(pubs))
	for i, p := range pubs {
		items[i] = ToItem(p)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding CSL-YAML: %w", err)
	}
	return enc.Close()
}

// ToItem converts a Publication to an Item. The id is the BibTeX key so
// both outputs cite the same way; preprints use the CSL "article" type
// with the arXiv number.
func ToItem(p types.Publication) Item {
	item := Item{
		ID:       bibtex.Key(p),
		Type:     "article-journal",
		Title:    p.Title,
		URL:      p.URL,
		Abstract: p.Abstract,
	}
	if bibtex.EntryType(p) != "article" {
		item.Type = "article"
		item.Number = "arXiv:" + p.BaseID()
	}
	if p.HasJournalRef() {
		item.ContainerTitle = *p.JournalRef
	}
	if p.HasDOI() {
		item.DOI = *p.DOI
	}

	for _, a := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if p.Year > 0 {
		item.Issued = &Date{DateParts: [][]int{{p.Year}}}
	}
	return item
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) Name {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return Name{Literal: name}
	}
	return Name{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
