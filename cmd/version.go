package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print the build metadata as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build metadata",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		build := version.Current()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(build.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(build))
			return
		}

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(build.App))
		for _, row := range build.Rows() {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-12s", row[0])), style.Bold(row[1]))
		}

		version.Notify(cmd.Context())
	},
}
