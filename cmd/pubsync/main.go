// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubsync CLI, which regenerates
// the website's publication list from an arXiv author feed.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubsync CLI.
var rootCmd = &cobra.Command{
	Use:   "pubsync",
	Short: "Regenerate the publication list from an arXiv author feed",
	Long: `pubsync fetches the Atom2 feed behind an arXiv author profile and writes
content/publications.bib for the website generator.

Every run regenerates the whole file; manual edits to the output are lost.
Settings come from pubsync.yaml, a .env file, PUBSYNC_* environment
variables, and flags, in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is the common case.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.PersistentFlags()
	f.String("config", "", "config file (default: ./pubsync.yaml or ~/.config/pubsync/pubsync.yaml)")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("profile-url", "", "arXiv author profile URL (e.g. https://arxiv.org/a/wang_t_9.html)")
	f.StringP("output", "o", "", "output file (default content/publications.bib, or .yaml for csl-yaml)")
	f.Int("max-entries", 0, "maximum number of entries to write (default 500)")
	f.StringSlice("selected", nil, "arXiv ids to mark as selected (comma-separated)")
	f.String("selected-file", "", "file listing arXiv ids to mark as selected, one per line")
	f.String("order", "", "entry order: feed or year (default feed)")
	f.String("year-policy", "", "year resolution: journal or published (default journal)")
	f.String("format", "", "output format: bibtex or csl-yaml (default bibtex)")
	f.Duration("timeout", 0, "feed request timeout (default 30s)")

	viper.BindPFlag("log_level", f.Lookup("log-level"))
	viper.BindPFlag("profile_url", f.Lookup("profile-url"))
	viper.BindPFlag("output_path", f.Lookup("output"))
	viper.BindPFlag("max_entries", f.Lookup("max-entries"))
	viper.BindPFlag("selected_ids", f.Lookup("selected"))
	viper.BindPFlag("selected_file", f.Lookup("selected-file"))
	viper.BindPFlag("order", f.Lookup("order"))
	viper.BindPFlag("year_policy", f.Lookup("year-policy"))
	viper.BindPFlag("format", f.Lookup("format"))
	viper.BindPFlag("http.timeout", f.Lookup("timeout"))
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubsync"))
		}
	}

	viper.SetEnvPrefix("PUBSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment variables and
// config files can override it.
func setDefaults() {
	d := types.DefaultConfig()
	viper.SetDefault("profile_url", d.ProfileURL)
	// output_path has no fixed default; loadConfig derives it from format.
	viper.SetDefault("output_path", "")
	viper.SetDefault("max_entries", d.MaxEntries)
	viper.SetDefault("selected_ids", d.SelectedIDs)
	viper.SetDefault("selected_file", d.SelectedFile)
	viper.SetDefault("order", string(d.Order))
	viper.SetDefault("year_policy", string(d.YearPolicy))
	viper.SetDefault("format", string(d.Format))
	viper.SetDefault("http.timeout", d.HTTP.Timeout)
	viper.SetDefault("http.user_agent", "pubsync/"+version)
	viper.SetDefault("log_level", d.LogLevel)
}

// loadConfig decodes the merged settings into a validated Config.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ResolveOutputPath()
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
