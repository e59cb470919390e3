package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/inline"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// catalogCommands maps command names to listings. "recent" is shorter than the API's name.
var catalogCommands = map[string]api.Kind{
	"trending":      api.Trending,
	"top-airing":    api.TopAiring,
	"most-popular":  api.MostPopular,
	"most-favorite": api.MostFavorite,
	"movies":        api.Movies,
	"recent":        api.RecentlyAdded,
}

func addListingFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("page", "p", 1, "Page of results to fetch")
	cmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	cmd.SetOut(os.Stdout)
}

func listingOptions(cmd *cobra.Command) *inline.Options {
	return &inline.Options{
		Out:  cmd.OutOrStdout(),
		Json: lo.Must(cmd.Flags().GetBool("json")),
		Page: lo.Must(cmd.Flags().GetInt("page")),
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addListingFlags(searchCmd)
	searchCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output and exit")

	searchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

var searchCmd = &cobra.Command{
	Use:     "search <query...>",
	Short:   "Search anime by title",
	Example: "  aizen search frieren --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(inline.Schema()))
			return
		}

		q := strings.TrimSpace(strings.Join(args, " "))
		if q == "" {
			handleErr(cmd.Help())
			return
		}

		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}

		options := listingOptions(cmd)
		options.Query = q
		handleErr(inline.Run(cmd.Context(), api.FromConfig(cmd.Context()), options))
	},
}

func init() {
	for _, name := range lo.Keys(catalogCommands) {
		rootCmd.AddCommand(newCatalogCmd(name, catalogCommands[name]))
	}
}

func newCatalogCmd(name string, kind api.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Show the %s listing", kind.Title()),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			options := listingOptions(cmd)
			options.Catalog = mo.Some(kind)
			handleErr(inline.Run(cmd.Context(), api.FromConfig(cmd.Context()), options))
		},
	}

	addListingFlags(cmd)
	return cmd
}
