// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
)

// arxivPrefix is the namespace prefix the arXiv feeds declare for
// http://arxiv.org/schemas/atom.
const arxivPrefix = "arxiv"

// Record is one raw feed entry as delivered by the parser. Nothing is
// cleaned or resolved here; that is the normalizer's job.
type Record struct {
	ID        string
	Link      string
	Title     string
	Summary   string
	Authors   []string
	Published string
	Updated   string

	// arXiv extension fields; nil when the entry does not carry them.
	PrimaryCategory *string
	JournalRef      *string
	DOI             *string
}

// Parse decodes an RSS or Atom document into Records in feed order.
// A document gofeed cannot parse is an error.
func Parse(body []byte) ([]Record, error) {
	fp := gofeed.NewParser()
	fp.AtomTranslator = &atomTranslator{}
	parsed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	records := make([]Record, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		records = append(records, toRecord(item))
	}
	return records, nil
}

// atomTranslator keeps an absent <published> empty. The default translator
// substitutes <updated>, which would hide the missing value from the
// normalizer's current-time fallback.
type atomTranslator struct {
	gofeed.DefaultAtomTranslator
}

func (t *atomTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	out, err := t.DefaultAtomTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}
	af, ok := feed.(*atom.Feed)
	if !ok || len(af.Entries) != len(out.Items) {
		return out, nil
	}
	for i, entry := range af.Entries {
		if entry.Published == "" {
			out.Items[i].Published = ""
			out.Items[i].PublishedParsed = nil
		}
	}
	return out, nil
}

func toRecord(item *gofeed.Item) Record {
	r := Record{
		ID:        item.GUID,
		Link:      item.Link,
		Title:     item.Title,
		Summary:   item.Description,
		Published: item.Published,
		Updated:   item.Updated,
	}

	for _, a := range item.Authors {
		if a == nil {
			continue
		}
		r.Authors = append(r.Authors, a.Name)
	}

	r.PrimaryCategory = extensionAttr(item.Extensions, "primary_category", "term")
	r.JournalRef = extensionValue(item.Extensions, "journal_ref")
	r.DOI = extensionValue(item.Extensions, "doi")
	return r
}

// extensionValue returns the text of the first arxiv:<name> element, or nil.
func extensionValue(exts ext.Extensions, name string) *string {
	e := firstExtension(exts, name)
	if e == nil {
		return nil
	}
	v := strings.TrimSpace(e.Value)
	if v == "" {
		return nil
	}
	return &v
}

// extensionAttr returns attribute attr of the first arxiv:<name> element, or nil.
func extensionAttr(exts ext.Extensions, name, attr string) *string {
	e := firstExtension(exts, name)
	if e == nil {
		return nil
	}
	v := strings.TrimSpace(e.Attrs[attr])
	if v == "" {
		return nil
	}
	return &v
}

func firstExtension(exts ext.Extensions, name string) *ext.Extension {
	if exts == nil {
		return nil
	}
	elems := exts[arxivPrefix][name]
	if len(elems) == 0 {
		return nil
	}
	return &elems[0]
}
