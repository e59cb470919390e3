package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
	"github.com/aizenverse/aizen/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "Audio category to request (sub or dub)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(source.Sub), string(source.Dub)}, cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().StringP("server", "s", "", "Streaming server to request, overrides "+key.PlayerServer)
	lo.Must0(cmd.RegisterFlagCompletionFunc("server", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(source.Servers, func(s source.Server, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().BoolP("embed", "e", false, "Open the embeddable player page in the browser instead of the direct stream")
	cmd.Flags().Bool("print", false, "Print the playback URL instead of launching a player")
	cmd.SetOut(os.Stdout)
}

// playEpisode opens the episode, which also records it in the history, and hands it to the player.
func playEpisode(cmd *cobra.Command, client *api.Client, episodeID string) {
	ctx := cmd.Context()

	var category source.Category
	if raw := lo.Must(cmd.Flags().GetString("category")); raw != "" {
		c, err := source.ParseCategory(raw)
		handleErr(err)
		category = c
	}

	if raw := lo.Must(cmd.Flags().GetString("server")); raw != "" {
		server, err := source.ParseServer(raw)
		handleErr(err)
		viper.Set(key.PlayerServer, string(server))
	}

	session, err := watch.Open(ctx, client, episodeID, category)
	handleErr(err)

	embed := lo.Must(cmd.Flags().GetBool("embed"))

	if lo.Must(cmd.Flags().GetBool("print")) {
		target, err := session.Target(embed)
		handleErr(err)
		cmd.Println(target.URL)
		return
	}

	if session.StreamErr != nil {
		cmd.PrintErrf("%s stream unavailable, falling back to the embedded player: %v\n", icon.Get(icon.Warn), session.StreamErr)
	}

	var p player.Player
	if embed {
		p = &player.Browser{}
	} else {
		p, err = player.FromConfig()
		handleErr(err)
		if p.Name() == player.NameMPV {
			checkDependencies()
		}
	}

	handleErr(session.Play(ctx, p))
	cmd.Printf(
		"%s Playing %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Play)),
		style.Fg(color.Purple)(session.Title()),
		style.Faint(fmt.Sprintf("(%s, %s)", session.Category, p.Name())),
	)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addPlaybackFlags(watchCmd)
	watchCmd.Flags().IntP("episode", "n", 0, "Treat the argument as an anime id or title and play this episode number")
}

var watchCmd = &cobra.Command{
	Use:   "watch <episodeID>",
	Short: "Play an episode",
	Example: `  aizen watch 'frieren-18542$episode$107257'
  aizen watch frieren --episode 3 --category dub`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		client := api.FromConfig(ctx)

		number := lo.Must(cmd.Flags().GetInt("episode"))
		if number == 0 && len(args) == 1 {
			playEpisode(cmd, client, args[0])
			return
		}

		detail, err := resolveAnime(ctx, client, args)
		handleErr(err)

		number = util.Max(number, 1)
		episode, ok := lo.Find(detail.Episodes, func(e *source.Episode) bool {
			return e.Number == number
		})
		if !ok {
			handleErr(fmt.Errorf("%s has no episode %d", detail.Title, number))
		}

		playEpisode(cmd, client, episode.ID)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	addPlaybackFlags(nextCmd)

	rootCmd.AddCommand(prevCmd)
	addPlaybackFlags(prevCmd)
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Play the episode after the one you watched last",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		playNeighbour(cmd, (*navigation.Episodes).Next, "this is the last episode")
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Play the episode before the one you watched last",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		playNeighbour(cmd, (*navigation.Episodes).Prev, "this is the first episode")
	},
}

func playNeighbour(cmd *cobra.Command, pick func(*navigation.Episodes) mo.Option[*source.Episode], atEnd string) {
	latest, ok := history.Latest().Get()
	if !ok {
		handleErr(errors.New("nothing to continue, watch something first"))
	}

	ctx := cmd.Context()
	client := api.FromConfig(ctx)

	detail, err := client.InfoForEpisode(ctx, latest.ID)
	handleErr(err)

	episode, ok := pick(navigation.NewEpisodes(detail.Episodes, latest.ID)).Get()
	if !ok {
		handleErr(fmt.Errorf("%s: %s", strings.TrimSpace(latest.AnimeTitle), atEnd))
	}

	playEpisode(cmd, client, episode.ID)
}
