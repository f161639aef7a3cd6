package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tgwang98/tgwang98.github.io/internal/logging"
	"github.com/tgwang98/tgwang98.github.io/internal/pipeline"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the entries an update would write, without writing",
	Long: `List runs the same fetch, normalization, ordering, and entry cap as update
and prints one row per entry with its citation key, year, BibTeX type, and
whether it is selected. The output file is not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		batch, err := pipeline.Collect(ctx, cfg, pipeline.Options{Logger: logger})
		if err != nil {
			return err
		}
		pipeline.FormatTable(batch, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
