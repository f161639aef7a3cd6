// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one full regeneration: locate the feed, fetch and
// parse it, normalize and order the entries, render them, and overwrite the
// output file. A run either completes or returns the first fatal error.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tgwang98/tgwang98.github.io/internal/bibtex"
	"github.com/tgwang98/tgwang98.github.io/internal/csl"
	"github.com/tgwang98/tgwang98.github.io/internal/curation"
	"github.com/tgwang98/tgwang98.github.io/internal/feed"
	"github.com/tgwang98/tgwang98.github.io/internal/httputil"
	"github.com/tgwang98/tgwang98.github.io/internal/normalize"
	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// DefaultGenerator names the tool in output headers.
const DefaultGenerator = "pubsync"

// Fetcher retrieves and parses the feed at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]feed.Record, error)
}

// Options carries the collaborators of a run. Zero values are replaced
// with the production defaults.
type Options struct {
	Fetcher   Fetcher
	Logger    *zap.Logger
	Now       func() time.Time
	Generator string
}

// Summary describes a completed run.
type Summary struct {
	FeedURL    string
	OutputPath string
	Parsed     int
	Written    int
	Selected   int
	Collisions []string
}

// Batch is the ordered, truncated set of publications ready to render.
type Batch struct {
	FeedURL      string
	Publications []types.Publication
	Selected     curation.AllowList
	Parsed       int
}

// Collect runs every stage up to rendering: it loads the allow-list,
// fetches and parses the feed, normalizes and orders the entries, and
// applies the entry cap.
func Collect(ctx context.Context, cfg types.Config, opts Options) (Batch, error) {
	cfg.ResolveOutputPath()
	if err := cfg.Validate(); err != nil {
		return Batch{}, fmt.Errorf("invalid config: %w", err)
	}
	opts = withDefaults(cfg, opts)
	log := opts.Logger

	selected, err := curation.Load(cfg.SelectedIDs, cfg.SelectedFile)
	if err != nil {
		return Batch{}, err
	}

	feedURL := feed.LocateFeed(cfg.ProfileURL)
	log.Info("fetching arXiv Atom2 feed", zap.String("feed_url", feedURL))

	records, err := opts.Fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return Batch{}, err
	}

	n := normalize.New(cfg.YearPolicy, log)
	n.Now = opts.Now
	pubs := normalize.Order(n.Normalize(records), cfg.Order)
	log.Info("parsed entries from the feed", zap.Int("entries", len(pubs)), zap.String("order", string(cfg.Order)))

	parsed := len(pubs)
	pubs = Truncate(pubs, cfg.MaxEntries)
	if len(pubs) < parsed {
		log.Info("truncated to max entries", zap.Int("max_entries", cfg.MaxEntries))
	}

	return Batch{
		FeedURL:      feedURL,
		Publications: pubs,
		Selected:     selected,
		Parsed:       parsed,
	}, nil
}

// Run executes the whole pipeline for cfg and overwrites the output file.
func Run(ctx context.Context, cfg types.Config, opts Options) (Summary, error) {
	cfg.ResolveOutputPath()
	batch, err := Collect(ctx, cfg, opts)
	if err != nil {
		return Summary{}, err
	}
	opts = withDefaults(cfg, opts)
	log := opts.Logger
	pubs := batch.Publications

	collisions := bibtex.Collisions(pubs)
	for _, k := range collisions {
		log.Warn("duplicate citation key", zap.String("key", k))
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case types.FormatCSLYAML:
		err = csl.Write(&buf, opts.Generator, cfg.ProfileURL, pubs)
	default:
		err = bibtex.Write(&buf, opts.Generator, cfg.ProfileURL, pubs, batch.Selected)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("rendering %s: %w", cfg.Format, err)
	}

	if err := writeFile(cfg.OutputPath, buf.Bytes()); err != nil {
		return Summary{}, err
	}
	selected := countSelected(pubs, batch.Selected)
	log.Info("wrote entries", zap.Int("entries", len(pubs)), zap.Int("selected", selected), zap.String("path", cfg.OutputPath))

	return Summary{
		FeedURL:    batch.FeedURL,
		OutputPath: cfg.OutputPath,
		Parsed:     batch.Parsed,
		Written:    len(pubs),
		Selected:   selected,
		Collisions: collisions,
	}, nil
}

// Truncate returns at most limit publications. A non-positive limit keeps all.
func Truncate(pubs []types.Publication, limit int) []types.Publication {
	if limit <= 0 || len(pubs) <= limit {
		return pubs
	}
	return pubs[:limit]
}

func countSelected(pubs []types.Publication, sel curation.AllowList) int {
	n := 0
	for _, p := range pubs {
		if sel.Contains(p.BaseID()) {
			n++
		}
	}
	return n
}

// writeFile creates parent directories and overwrites path with data.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func withDefaults(cfg types.Config, opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Generator == "" {
		opts.Generator = DefaultGenerator
	}
	if opts.Fetcher == nil {
		opts.Fetcher = &feed.Client{
			HTTP:      httputil.NewClient(cfg.HTTP.Timeout),
			UserAgent: cfg.HTTP.UserAgent,
		}
	}
	return opts
}
