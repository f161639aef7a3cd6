// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed locates, fetches, and parses the arXiv author feed.
// The Atom document is parsed by gofeed; this package only maps gofeed
// items onto Records, which keep the arXiv extension fields explicit.
package feed

import (
	"net/url"
	"path"
	"strings"
)

const (
	profileSuffix = ".html"
	feedSuffix    = ".atom2"
)

// LocateFeed derives the Atom2 feed address from an author profile address
// ("https://arxiv.org/a/wang_t_9.html" → "https://arxiv.org/a/wang_t_9.atom2").
// It never fails: malformed input yields a malformed address that
// surfaces later as a fetch error.
func LocateFeed(profileURL string) string {
	u, err := url.Parse(profileURL)
	if err != nil {
		return swapSlug(profileURL)
	}
	u.Path = swapSlug(u.Path)
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// swapSlug replaces the final path segment with its feed form.
func swapSlug(p string) string {
	dir, slug := path.Split(p)
	return dir + strings.TrimSuffix(slug, profileSuffix) + feedSuffix
}
