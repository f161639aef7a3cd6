// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps raw feed Records onto canonical Publications.
// Per-field problems never abort the batch: a bad timestamp becomes the
// current time, a missing author list becomes an empty one, and absent
// extension fields stay nil.
package normalize

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tgwang98/tgwang98.github.io/internal/feed"
	"github.com/tgwang98/tgwang98.github.io/internal/text"
	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// timestampLayout is the layout of <published> and <updated> in arXiv feeds.
const timestampLayout = "2006-01-02T15:04:05Z"

// absBaseURL builds the fallback link when an entry has none.
const absBaseURL = "https://arxiv.org/abs/"

// Normalizer converts feed Records into Publications.
type Normalizer struct {
	// YearPolicy selects year resolution. Empty means YearJournal.
	YearPolicy types.YearPolicy

	// Now supplies the wall-clock fallback for unparseable timestamps.
	Now func() time.Time

	Logger *zap.Logger
}

// New returns a Normalizer using the real clock.
func New(policy types.YearPolicy, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{YearPolicy: policy, Now: time.Now, Logger: logger}
}

// Normalize converts records in feed order. Records with neither an id nor
// a link cannot be identified and are skipped.
func (n *Normalizer) Normalize(records []feed.Record) []types.Publication {
	pubs := make([]types.Publication, 0, len(records))
	for i, r := range records {
		p, ok := n.Entry(r)
		if !ok {
			n.logger().Warn("skipping feed entry without id or link",
				zap.Int("position", i), zap.String("title", text.Clean(r.Title)))
			continue
		}
		pubs = append(pubs, p)
	}
	return pubs
}

// Entry converts a single record. The boolean is false when no identifier
// can be derived.
func (n *Normalizer) Entry(r feed.Record) (types.Publication, bool) {
	raw := r.ID
	if raw == "" {
		raw = r.Link
	}
	id := ExtractID(raw)
	if id == "" {
		return types.Publication{}, false
	}

	updatedRaw := r.Updated
	if updatedRaw == "" {
		updatedRaw = r.Published
	}
	published := n.parseTime(id, "published", r.Published)
	updated := n.parseTime(id, "updated", updatedRaw)

	link := r.Link
	if link == "" {
		link = absBaseURL + id
	}

	authors := make([]string, 0, len(r.Authors))
	for _, a := range r.Authors {
		authors = append(authors, strings.TrimSpace(a))
	}

	journalRef := nonBlank(r.JournalRef)

	return types.Publication{
		ID:              id,
		Title:           text.Clean(r.Title),
		Authors:         authors,
		Year:            ResolveYear(n.YearPolicy, journalRef, published),
		Published:       published,
		Updated:         updated,
		PrimaryCategory: nonBlank(r.PrimaryCategory),
		JournalRef:      journalRef,
		DOI:             nonBlank(r.DOI),
		URL:             link,
		Abstract:        text.Clean(r.Summary),
	}, true
}

// ExtractID returns the final path segment of an id or link URL
// ("http://arxiv.org/abs/2301.07041v2" → "2301.07041v2").
func ExtractID(raw string) string {
	raw = strings.TrimSpace(raw)
	return raw[strings.LastIndex(raw, "/")+1:]
}

// parseTime parses an arXiv timestamp, substituting the current time when
// the value is missing or malformed.
func (n *Normalizer) parseTime(id, field, value string) time.Time {
	t, err := time.Parse(timestampLayout, strings.TrimSpace(value))
	if err == nil {
		return t
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	n.logger().Debug("unparseable timestamp, using current time",
		zap.String("id", id), zap.String("field", field), zap.String("value", value))
	return now().UTC()
}

func (n *Normalizer) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

// nonBlank trims s and returns nil for nil or blank values.
func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
