package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/config"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configSetCmd, configGetCmd, configWriteCmd, configDeleteCmd, configResetCmd)

	for _, c := range []*cobra.Command{configInfoCmd, configSetCmd, configGetCmd, configResetCmd} {
		c.Flags().StringP("key", "k", "", "Configuration key")
		lo.Must0(c.RegisterFlagCompletionFunc("key", completeConfigKeys))
	}
	for _, c := range configCmd.Commands() {
		c.SetOut(os.Stdout)
	}

	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "Value to assign, repeat for list keys")
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage " + constant.App + " configuration",
	Long: fmt.Sprintf(`Manage the settings stored in the config file (see "%[1]s where --config").
Environment variables listed by "%[1]s env" take precedence over the file.`, constant.App),
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func completeConfigKeys(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// lookupField resolves the key given as the first argument or with --key.
func lookupField(cmd *cobra.Command, args []string) config.Field {
	name := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		handleErr(errors.New("a key is required, pass it as an argument or with --key"))
	}

	field, err := config.Lookup(name)
	var unknown *config.UnknownKeyError
	if errors.As(err, &unknown) {
		err = fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(unknown.Key),
			style.Fg(color.Yellow)(unknown.Closest),
		)
	}
	handleErr(err)
	return field
}

// writeConfig persists viper's state, creating the file on first use.
func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func printDone(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe configuration fields with their current and default values",
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var fields []config.Field
		switch {
		case len(args) > 0:
			for _, arg := range args {
				fields = append(fields, lookupField(cmd, []string{arg}))
			}
		case cmd.Flags().Changed("key"):
			fields = []config.Field{lookupField(cmd, nil)}
		default:
			fields = lo.Values(config.Default)
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Println(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Set a configuration key and save it to the config file",
	Example:           fmt.Sprintf("  %[1]s config set player.default browser\n  %[1]s config set --key api.cache_ttl --value 0", constant.App),
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := lookupField(cmd, args)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		value, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(writeConfig())
		log.Infof("config %s set to %v", field.Key, value)

		printDone(cmd, "set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := lookupField(cmd, args)
		cmd.Println(viper.Get(field.Key))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		printDone(cmd, "wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		err := filesystem.API().Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			cmd.Printf("no config file at %s\n", path)
			return
		}
		handleErr(err)

		printDone(cmd, "deleted %s", path)
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a configuration key, or every key with --all, to its default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(writeConfig())
			printDone(cmd, "reset every key to its default")
			return
		}

		field := lookupField(cmd, args)
		viper.Set(field.Key, field.Value)
		handleErr(writeConfig())

		printDone(cmd, "reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
