// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curation holds the allow-list of arXiv identifiers flagged as
// "selected" on the website. Identifiers are compared by base id, so
// "2101.01234" and "2101.01234v3" name the same paper.
//
// The list comes from configuration and, optionally, a plain-text file with
// one identifier per line. Blank lines and lines starting with "#" are ignored.
package curation

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// AllowList is a set of base identifiers.
type AllowList map[string]struct{}

// New builds an AllowList from ids, normalizing each to its base id.
func New(ids ...string) AllowList {
	l := make(AllowList, len(ids))
	l.Add(ids...)
	return l
}

// Add inserts ids, skipping blank ones.
func (l AllowList) Add(ids ...string) {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		l[types.BaseID(id)] = struct{}{}
	}
}

// Contains reports whether baseID is on the list. A versioned id is
// reduced to its base first.
func (l AllowList) Contains(baseID string) bool {
	_, ok := l[types.BaseID(baseID)]
	return ok
}

// IDs returns the sorted members.
func (l AllowList) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads identifiers from path, one per line. A missing file is
// not an error; LoadFile returns an empty list.
func LoadFile(path string) (AllowList, error) {
	l := New()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("opening selection file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading selection file %s: %w", path, err)
	}
	return l, nil
}

// Load merges ids with the contents of file. An empty file path loads
// only ids.
func Load(ids []string, file string) (AllowList, error) {
	l := New(ids...)
	if file == "" {
		return l, nil
	}
	fromFile, err := LoadFile(file)
	if err != nil {
		return nil, err
	}
	for id := range fromFile {
		l[id] = struct{}{}
	}
	return l, nil
}
