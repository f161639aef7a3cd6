package types

import (
	"fmt"
	"time"
)

// OrderPolicy selects how normalized publications are ordered before rendering.
type OrderPolicy string

const (
	// OrderFeed preserves the feed's own order, which already reflects the
	// upstream profile page.
	OrderFeed OrderPolicy = "feed"

	// OrderYear sorts descending by (year, updated). Kept as a historical variant.
	OrderYear OrderPolicy = "year"
)

// YearPolicy selects how a publication's year is resolved.
type YearPolicy string

const (
	// YearJournal prefers a year found in the journal reference and falls
	// back to the published timestamp.
	YearJournal YearPolicy = "journal"

	// YearPublished always uses the published timestamp.
	YearPublished YearPolicy = "published"
)

// OutputFormat selects the rendering of the output document.
type OutputFormat string

const (
	FormatBibTeX  OutputFormat = "bibtex"
	FormatCSLYAML OutputFormat = "csl-yaml"
)

// HTTPConfig holds settings for the feed request.
type HTTPConfig struct {
	// Timeout bounds the single feed request (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "pubsync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Config is the explicit configuration passed into the pipeline entry point.
type Config struct {
	// ProfileURL is the human-facing arXiv author page
	// (e.g. "https://arxiv.org/a/wang_t_9.html").
	ProfileURL string `json:"profile_url" yaml:"profile_url" mapstructure:"profile_url"`

	// OutputPath is the destination file, overwritten on every run. When
	// empty, ResolveOutputPath picks the default for Format.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// MaxEntries caps the number of rendered records. Zero or negative means no cap.
	MaxEntries int `json:"max_entries" yaml:"max_entries" mapstructure:"max_entries"`

	// SelectedIDs is the curation allow-list of base identifiers.
	SelectedIDs []string `json:"selected_ids" yaml:"selected_ids" mapstructure:"selected_ids"`

	// SelectedFile optionally names a file with one identifier per line,
	// merged into SelectedIDs.
	SelectedFile string `json:"selected_file,omitempty" yaml:"selected_file,omitempty" mapstructure:"selected_file"`

	Order      OrderPolicy  `json:"order" yaml:"order" mapstructure:"order"`
	YearPolicy YearPolicy   `json:"year_policy" yaml:"year_policy" mapstructure:"year_policy"`
	Format     OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	HTTP HTTPConfig `json:"http" yaml:"http" mapstructure:"http"`

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Defaults used when a setting is not configured.
const (
	DefaultProfileURL = "https://arxiv.org/a/wang_t_9.html"
	DefaultOutputPath = "content/publications.bib"
	DefaultCSLPath    = "content/publications.yaml"
	DefaultMaxEntries = 500
	DefaultTimeout    = 30 * time.Second
)

// DefaultConfig returns a Config populated with the default settings.
func DefaultConfig() Config {
	return Config{
		ProfileURL: DefaultProfileURL,
		OutputPath: DefaultOutputPath,
		MaxEntries: DefaultMaxEntries,
		Order:      OrderFeed,
		YearPolicy: YearJournal,
		Format:     FormatBibTeX,
		HTTP: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: "pubsync/dev",
		},
		LogLevel: "info",
	}
}

// DefaultOutputPathFor returns the default destination for a format.
func DefaultOutputPathFor(f OutputFormat) string {
	if f == FormatCSLYAML {
		return DefaultCSLPath
	}
	return DefaultOutputPath
}

// ResolveOutputPath fills an empty OutputPath with the default for Format.
func (c *Config) ResolveOutputPath() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPathFor(c.Format)
	}
}

// Validate checks that the configuration names known policies and has
// the addresses the pipeline needs.
func (c Config) Validate() error {
	if c.ProfileURL == "" {
		return fmt.Errorf("profile_url is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	switch c.Order {
	case OrderFeed, OrderYear:
	default:
		return fmt.Errorf("unknown order policy %q (valid: %s, %s)", c.Order, OrderFeed, OrderYear)
	}
	switch c.YearPolicy {
	case YearJournal, YearPublished:
	default:
		return fmt.Errorf("unknown year policy %q (valid: %s, %s)", c.YearPolicy, YearJournal, YearPublished)
	}
	switch c.Format {
	case FormatBibTeX, FormatCSLYAML:
	default:
		return fmt.Errorf("unknown output format %q (valid: %s, %s)", c.Format, FormatBibTeX, FormatCSLYAML)
	}
	return nil
}
