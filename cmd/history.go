package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/recency"
	"github.com/aizenverse/aizen/style"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type listedEntry interface {
	recency.Entry
	fmt.Stringer
}

// recencyCommand describes one of the recency lists exposed on the command line.
type recencyCommand[T listedEntry] struct {
	name      string
	what      string
	store     func() *recency.Store[T]
	watchedAt func(T) time.Time
}

func init() {
	rootCmd.AddCommand(newRecencyCmd(recencyCommand[history.WatchEntry]{
		name:      "history",
		what:      "watch history",
		store:     history.History,
		watchedAt: func(e history.WatchEntry) time.Time { return e.WatchedAt },
	}))

	rootCmd.AddCommand(newRecencyCmd(recencyCommand[history.ContinueEntry]{
		name:      "continue",
		what:      "continue watching list",
		store:     history.Continue,
		watchedAt: func(e history.ContinueEntry) time.Time { return e.WatchedAt },
	}))
}

func newRecencyCmd[T listedEntry](r recencyCommand[T]) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) {
		entries := r.store().List()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint(fmt.Sprintf("The %s is empty", r.what)))
			return
		}

		for _, e := range entries {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(e.String()),
				style.Faint(humanize.Time(r.watchedAt(e))),
				style.Faint(e.Key()),
			)
		}
	}

	parent := &cobra.Command{
		Use:   r.name,
		Short: fmt.Sprintf("Show or edit the %s", r.what),
		Args:  cobra.NoArgs,
		Run:   list,
	}
	parent.Flags().BoolP("json", "j", false, "Format the output as JSON")
	parent.SetOut(os.Stdout)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the %s, newest first", r.what),
		Args:  cobra.NoArgs,
		Run:   list,
	}
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.SetOut(os.Stdout)

	removeCmd := &cobra.Command{
		Use:     "remove <episodeID...>",
		Short:   fmt.Sprintf("Remove episodes from the %s", r.what),
		Aliases: []string{"rm"},
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return lo.Map(r.store().List(), func(e T, _ int) string {
				return e.Key()
			}), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range args {
				r.store().Remove(id)
				cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
			}
		},
	}
	removeCmd.SetOut(os.Stdout)

	emptyCmd := &cobra.Command{
		Use:   "clear",
		Short: fmt.Sprintf("Remove every entry from the %s", r.what),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !confirm(cmd, fmt.Sprintf("Clear the %s?", r.what)) {
				return
			}

			r.store().Clear()
			cmd.Printf("%s %s cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)), r.what)
		},
	}
	addYesFlag(emptyCmd)
	emptyCmd.SetOut(os.Stdout)

	parent.AddCommand(listCmd, removeCmd, emptyCmd)
	return parent
}
