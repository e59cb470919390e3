package cmd

import (
	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/mini"
	"github.com/aizenverse/aizen/player"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Start from the continue-watching list")
}

// miniCmd runs the prompt-driven interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Search and watch through simple prompts instead of the full-screen interface",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		checkDependencies()

		p, err := player.FromConfig()
		handleErr(err)

		ctx := cmd.Context()
		options := mini.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(mini.Run(ctx, api.FromConfig(ctx), p, &options))
	},
}
