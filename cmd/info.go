package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// resolveAnime treats a single word as an anime id and falls back to the closest search result.
func resolveAnime(ctx context.Context, client *api.Client, args []string) (*source.AnimeDetail, error) {
	arg := strings.TrimSpace(strings.Join(args, " "))
	if arg == "" {
		return nil, errors.New("anime id or title is required")
	}

	if !strings.Contains(arg, " ") {
		detail, err := client.Info(ctx, arg)
		if err == nil {
			return detail, nil
		}

		var status *api.StatusError
		if !errors.As(err, &status) {
			return nil, err
		}
		log.Infof("%q is not an anime id, searching instead", arg)
	}

	closest, err := client.FindClosest(ctx, arg)
	if err != nil {
		return nil, err
	}

	return client.Info(ctx, closest.ID)
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	infoCmd.SetOut(os.Stdout)
}

var infoCmd = &cobra.Command{
	Use:     "info <id|title...>",
	Short:   "Show an anime and its episodes",
	Example: "  aizen info frieren-18542\n  aizen info frieren beyond journey's end",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		detail, err := resolveAnime(ctx, api.FromConfig(ctx), args)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(detail))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = util.Min(w, 100)
		}

		handleErr(printDetail(cmd.OutOrStdout(), detail, width))
	},
}

func printDetail(w io.Writer, detail *source.AnimeDetail, width int) error {
	var b strings.Builder

	title := style.New().Bold(true).Foreground(color.Purple).Render(detail.Title)
	if favorites.Favorites().Has(detail.ID) {
		title += " " + style.Fg(color.Red)(icon.Get(icon.Favorite))
	}
	if favorites.Watchlist().Has(detail.ID) {
		title += " " + style.Faint("(in my list)")
	}
	b.WriteString(title + "\n")

	if detail.OtherName != "" {
		b.WriteString(style.Faint(detail.OtherName) + "\n")
	}
	if facts := detail.Facts(); facts != "" {
		b.WriteString(style.Fg(color.Yellow)(facts) + "\n")
	}
	if len(detail.Genres) > 0 {
		b.WriteString(style.Faint(strings.Join(detail.Genres, ", ")) + "\n")
	}
	b.WriteString(style.Faint(detail.ID) + "\n")

	if detail.Description != "" {
		b.WriteString("\n" + wordwrap.String(detail.Description, width) + "\n")
	}

	watched := lo.SliceToMap(history.History().List(), func(e history.WatchEntry) (string, bool) {
		return e.ID, true
	})

	b.WriteString("\n" + style.Bold(util.Quantify(len(detail.Episodes), "episode", "episodes")) + "\n")

	var episodes strings.Builder
	for _, e := range detail.Episodes {
		line := fmt.Sprintf("%3d. %s %s", e.Number, util.Ellipsize(e.DisplayTitle(), width/2), style.Faint(e.ID))
		if watched[e.ID] {
			line += " " + style.Fg(color.Green)(icon.Get(icon.Mark))
		}
		episodes.WriteString(line + "\n")
	}
	b.WriteString(indent.String(episodes.String(), 2))

	_, err := io.WriteString(w, b.String())
	return err
}
