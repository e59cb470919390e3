package cmd

import (
	"os"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/preference"
	"github.com/aizenverse/aizen/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)

	for _, c := range []*cobra.Command{themeCmd, themeGetCmd, themeSetCmd, themeToggleCmd} {
		c.SetOut(os.Stdout)
	}
}

func printTheme(cmd *cobra.Command, theme preference.Theme) {
	cmd.Printf("%s theme is %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(string(theme)))
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme shared by the terminal and web front-ends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(preference.Get())
	},
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(preference.Get())
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(preference.Dark), string(preference.Light)},
	Run: func(cmd *cobra.Command, args []string) {
		theme, err := preference.ParseTheme(args[0])
		handleErr(err)

		preference.Set(theme)
		printTheme(cmd, theme)
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the dark and light themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printTheme(cmd, preference.Toggle())
	},
}
