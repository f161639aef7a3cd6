package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tgwang98/tgwang98.github.io/internal/feed"
)

var locateCmd = &cobra.Command{
	Use:   "locate [profile-url]",
	Short: "Print the feed address derived from a profile URL",
	Long: `Locate prints the Atom2 feed address for an arXiv author profile. Without
an argument it uses the configured profile_url.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := viper.GetString("profile_url")
		if len(args) == 1 {
			profile = args[0]
		}
		fmt.Fprintln(cmd.OutOrStdout(), feed.LocateFeed(profile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
