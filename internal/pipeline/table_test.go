package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgwang98/tgwang98.github.io/internal/curation"
	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

func TestFormatTable(t *testing.T) {
	ref := "Phys. Rev. B 103, 000001 (2021)"
	b := Batch{
		Publications: []types.Publication{
			{ID: "2012.01234v2", Title: "Spin liquids on the kagome lattice", Authors: []string{"Tao Wang"}, Year: 2021, JournalRef: &ref},
			{ID: "2305.05678v1", Title: strings.Repeat("Very long title ", 10), Authors: []string{"Tao Wang"}, Year: 2023},
		},
		Selected: curation.New("2305.05678"),
		Parsed:   5,
	}

	var buf bytes.Buffer
	FormatTable(b, &buf)
	out := buf.String()

	assert.Contains(t, out, "wang2021spinliquidsonthe")
	assert.Contains(t, out, "article")
	assert.Contains(t, out, "misc")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "2 entries (3 more beyond max_entries)")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.NotContains(t, lines[2], "*")
	assert.Contains(t, lines[3], "*")
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Batch{}, &buf)
	assert.Equal(t, "No entries found.\n", buf.String())
}

func TestTruncate_MultiByteTitles(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"Müller", 6, "Müller"},
		{"Müller über Spinflüssigkeiten", 10, "Müller ..."},
		{"ÄÖÜäöüßÄÖÜ", 8, "ÄÖÜäö..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.limit)
		})
	}
}

func TestCollect_DoesNotWrite(t *testing.T) {
	ts := feedServer(t)
	cfg := testConfig(ts, t.TempDir())

	b, err := Collect(context.Background(), cfg, testOptions(ts))
	require.NoError(t, err)
	assert.Len(t, b.Publications, 2)
	assert.Equal(t, 2, b.Parsed)
	assert.NoFileExists(t, cfg.OutputPath)
}
