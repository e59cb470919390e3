package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd("favorites", "favorites", favorites.Favorites))
	rootCmd.AddCommand(newSetCmd("watchlist", "watchlist", favorites.Watchlist))
}

func newSetCmd(name, what string, set func() *favorites.Set) *cobra.Command {
	completeIDs := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return set().List(), cobra.ShellCompDirectiveNoFileComp
	}

	list := func(cmd *cobra.Command, args []string) {
		ids := set().List()

		if lo.Must(cmd.Flags().GetBool("ids")) {
			for _, id := range ids {
				cmd.Println(id)
			}
			return
		}

		ctx := cmd.Context()
		animes := favorites.Resolve(ctx, api.FromConfig(ctx), ids)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.Ternary(animes == nil, []*source.AnimeSummary{}, animes)))
			return
		}

		if len(ids) == 0 {
			cmd.Println(style.Faint(fmt.Sprintf("Your %s is empty", what)))
			return
		}

		for _, anime := range animes {
			cmd.Printf("%s %s %s\n", style.Fg(color.Purple)(anime.Title), style.Faint(anime.Facts()), style.Faint(anime.ID))
		}

		if missing := len(ids) - len(animes); missing > 0 {
			cmd.Println(style.Fg(color.Yellow)(fmt.Sprintf("%s %d could not be loaded, see --ids", icon.Get(icon.Warn), missing)))
		}
	}

	addListFlags := func(cmd *cobra.Command) {
		cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
		cmd.Flags().Bool("ids", false, "Print the stored ids without looking them up")
		cmd.MarkFlagsMutuallyExclusive("json", "ids")
		cmd.SetOut(os.Stdout)
	}

	parent := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Show or edit your %s", what),
		Args:  cobra.NoArgs,
		Run:   list,
	}
	addListFlags(parent)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List your %s", what),
		Args:  cobra.NoArgs,
		Run:   list,
	}
	addListFlags(listCmd)

	toggleCmd := &cobra.Command{
		Use:               "toggle <animeID...>",
		Short:             fmt.Sprintf("Add anime to your %s, or remove them if already there", what),
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeIDs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range args {
				verb := lo.Ternary(set().Toggle(id), "added to", "removed from")
				cmd.Printf("%s %s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id), verb, what)
			}
		},
	}
	toggleCmd.SetOut(os.Stdout)

	removeCmd := &cobra.Command{
		Use:               "remove <animeID...>",
		Short:             fmt.Sprintf("Remove anime from your %s", what),
		Aliases:           []string{"rm"},
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeIDs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range args {
				set().Remove(id)
				cmd.Printf("%s %s removed from %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id), what)
			}
		},
	}
	removeCmd.SetOut(os.Stdout)

	parent.AddCommand(listCmd, toggleCmd, removeCmd)
	return parent
}
