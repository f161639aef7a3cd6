// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"2301.07041v1", "2301.07041"},
		{"2301.07041v12", "2301.07041"},
		{"2301.07041", "2301.07041"},
		{"1905.12345v3", "1905.12345"},
		{"9901001v2", "9901001"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseID(tt.id))
			assert.Equal(t, tt.want, Publication{ID: tt.id}.BaseID())
		})
	}
}

func TestPublicationOptionalFields(t *testing.T) {
	empty := ""
	ref := "Phys. Rev. B 100, 085127 (2019)"
	doi := "10.1103/PhysRevB.100.085127"

	assert.False(t, Publication{}.HasJournalRef())
	assert.False(t, Publication{JournalRef: &empty}.HasJournalRef())
	assert.True(t, Publication{JournalRef: &ref}.HasJournalRef())

	assert.False(t, Publication{}.HasDOI())
	assert.True(t, Publication{DOI: &doi}.HasDOI())

	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, ref, Deref(&ref))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty profile", func(c *Config) { c.ProfileURL = "" }, "profile_url"},
		{"empty output", func(c *Config) { c.OutputPath = "" }, "output_path"},
		{"bad order", func(c *Config) { c.Order = "random" }, "order policy"},
		{"bad year policy", func(c *Config) { c.YearPolicy = "guess" }, "year policy"},
		{"bad format", func(c *Config) { c.Format = "ris" }, "output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		output string
		want   string
	}{
		{"bibtex default", FormatBibTeX, "", "content/publications.bib"},
		{"csl-yaml default", FormatCSLYAML, "", "content/publications.yaml"},
		{"explicit path kept", FormatCSLYAML, "cv/refs.yaml", "cv/refs.yaml"},
		{"explicit bib path kept for csl", FormatCSLYAML, "out.bib", "out.bib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Format = tt.format
			cfg.OutputPath = tt.output
			cfg.ResolveOutputPath()
			assert.Equal(t, tt.want, cfg.OutputPath)
			assert.NoError(t, cfg.Validate())
		})
	}
}
