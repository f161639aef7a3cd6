package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tgwang98/tgwang98.github.io/internal/logging"
	"github.com/tgwang98/tgwang98.github.io/internal/pipeline"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the author feed and rewrite the publication file",
	Long: `Update derives the Atom2 feed address from the profile URL, fetches it,
normalizes every entry, and overwrites the output file. Entries whose arXiv
id is on the selection list are marked selected and get a preview image.

Any fetch, parse, or write failure aborts the run without touching the
output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.LogLevel, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		_, err = pipeline.Run(ctx, cfg, pipeline.Options{Logger: logger})
		return err
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
