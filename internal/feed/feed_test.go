// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgwang98/tgwang98.github.io/internal/httputil"
)

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>arXiv author feed</title>
  <id>http://arxiv.org/a/wang_t_9</id>
  <updated>2024-05-01T00:00:00Z</updated>
  <entry>
    <id>http://arxiv.org/abs/2101.01234v2</id>
    <updated>2021-06-01T10:00:00Z</updated>
    <published>2021-01-05T18:00:00Z</published>
    <title>Spin liquids
      on the kagome lattice</title>
    <summary>  We study spin liquids. They are interesting.
    </summary>
    <author><name>Alice Smith</name></author>
    <author><name>Tao Wang</name></author>
    <arxiv:doi>10.1103/PhysRevB.103.000001</arxiv:doi>
    <link href="http://arxiv.org/abs/2101.01234v2" rel="alternate" type="text/html"/>
    <arxiv:journal_ref>Phys. Rev. B 103, 000001 (2021)</arxiv:journal_ref>
    <arxiv:primary_category term="cond-mat.str-el" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2305.05678v1</id>
    <updated>2023-05-09T12:00:00Z</updated>
    <published>2023-05-09T12:00:00Z</published>
    <title>A preprint</title>
    <summary>Only a preprint.</summary>
    <author><name>Tao Wang</name></author>
    <link href="http://arxiv.org/abs/2305.05678v1" rel="alternate" type="text/html"/>
  </entry>
</feed>`

func TestLocateFeed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"html profile", "https://arxiv.org/a/wang_t_9.html", "https://arxiv.org/a/wang_t_9.atom2"},
		{"bare slug", "https://arxiv.org/a/wang_t_9", "https://arxiv.org/a/wang_t_9.atom2"},
		{"query dropped", "https://arxiv.org/a/wang_t_9.html?lang=en", "https://arxiv.org/a/wang_t_9.atom2"},
		{"other host kept", "http://127.0.0.1:8080/a/doe_j_1.html", "http://127.0.0.1:8080/a/doe_j_1.atom2"},
		{"malformed still returns", "://bad", "://bad.atom2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocateFeed(tt.in))
		})
	}
}

func TestParse_ArxivEntries(t *testing.T) {
	records, err := Parse([]byte(arxivFixture))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "http://arxiv.org/abs/2101.01234v2", first.ID)
	assert.Equal(t, "http://arxiv.org/abs/2101.01234v2", first.Link)
	assert.Contains(t, first.Title, "Spin liquids")
	assert.Contains(t, first.Summary, "We study spin liquids.")
	assert.Equal(t, []string{"Alice Smith", "Tao Wang"}, first.Authors)
	assert.Equal(t, "2021-01-05T18:00:00Z", first.Published)
	assert.Equal(t, "2021-06-01T10:00:00Z", first.Updated)
	require.NotNil(t, first.JournalRef)
	assert.Equal(t, "Phys. Rev. B 103, 000001 (2021)", *first.JournalRef)
	require.NotNil(t, first.DOI)
	assert.Equal(t, "10.1103/PhysRevB.103.000001", *first.DOI)
	require.NotNil(t, first.PrimaryCategory)
	assert.Equal(t, "cond-mat.str-el", *first.PrimaryCategory)

	second := records[1]
	assert.Equal(t, "http://arxiv.org/abs/2305.05678v1", second.ID)
	assert.Nil(t, second.JournalRef)
	assert.Nil(t, second.DOI)
	assert.Nil(t, second.PrimaryCategory)
}

func TestParse_MissingPublishedStaysEmpty(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>feed</title>
  <entry>
    <id>http://arxiv.org/abs/2402.00001v1</id>
    <updated>2024-02-01T09:00:00Z</updated>
    <title>No published date</title>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2402.00002v1</id>
    <updated>2024-02-03T09:00:00Z</updated>
    <published>2024-02-02T09:00:00Z</published>
    <title>Both dates</title>
  </entry>
</feed>`
	records, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Empty(t, records[0].Published)
	assert.Equal(t, "2024-02-01T09:00:00Z", records[0].Updated)
	assert.Equal(t, "2024-02-02T09:00:00Z", records[1].Published)
	assert.Equal(t, "2024-02-03T09:00:00Z", records[1].Updated)
}

func TestParse_EmptyFeed(t *testing.T) {
	records, err := Parse([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"><title>empty</title></feed>`))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("this is not a feed"))
	assert.Error(t, err)
}

func TestClientFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/a/wang_t_9.atom2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivFixture))
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client(), UserAgent: "pubsync/test"}

	records, err := c.Fetch(context.Background(), LocateFeed(ts.URL+"/a/wang_t_9.html"))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = c.Fetch(context.Background(), ts.URL+"/a/missing.atom2")
	var statusErr *httputil.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}
