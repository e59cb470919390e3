package cmd

import (
	"fmt"
	"net"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/config"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/web"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (host:port)")
	lo.Must0(viper.BindPFlag(key.WebAddress, serveCmd.Flags().Lookup("addr")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web front-end",
	Long: `Serve the browser front-end: landing page, catalogs, search, details, the player and your lists.
Changes to the config file are picked up while serving.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		config.Watch(func() {
			log.ApplyLevel()
			log.Infof("config reloaded from %s", viper.ConfigFileUsed())
		})

		addr := viper.GetString(key.WebAddress)
		ln, err := net.Listen("tcp", addr)
		handleErr(err)

		fmt.Printf(
			"%s serving on %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)("http://"+ln.Addr().String()),
			style.Faint("(ctrl+c to stop)"),
		)

		server := web.NewServer(addr, web.Router(api.FromConfig(ctx)))
		handleErr(server.Serve(ctx, ln))
	},
}
