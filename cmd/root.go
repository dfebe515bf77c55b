package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kirsle/configdir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
	"github.com/hsmod/hsmod-installer/cmd/internal/utils"
	"github.com/hsmod/hsmod-installer/resource"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hsmod-installer",
	Short: "Install or uninstall HsMod in a Hearthstone directory",
	Long: `hsmod-installer copies the bundled HsMod files into a Hearthstone installation,
or removes them again.

Without a subcommand it looks for Hearthstone.exe, asks for the directory if it
cannot find one, asks whether to install or uninstall, and waits for Enter
before exiting.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logs.SetDebug(viper.GetBool("debug"))
		logs.Debug.Println("Config file:", viper.ConfigFileUsed())
	},
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		defer s.pause()

		res, err := resource.Run(s.engine, s.resolver("", nil))
		if err != nil {
			logs.Err.Println(err)
			return
		}
		s.report(res)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default hsmod.yaml in the working or user config directory)")
	flags.Bool("debug", false, "Print debug output")
	flags.String("lang", "", "Message language (zh, en)")
	flags.String("dir", "", "Hearthstone directory, skips the search")
	flags.Bool("no-pause", false, "Do not wait for Enter before exiting")

	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("lang", flags.Lookup("lang"))
	_ = viper.BindPFlag("dir", flags.Lookup("dir"))
	_ = viper.BindPFlag("no_pause", flags.Lookup("no-pause"))

	viper.SetDefault("marker", utils.DefaultMarker)
	viper.SetDefault("max_depth", utils.DefaultMaxDepth)
	viper.SetDefault("search_paths", utils.DefaultSearchPaths())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hsmod")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(configdir.LocalConfig("hsmod"))
	}

	viper.SetEnvPrefix("HSMOD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logs.Err.Fatalln("Failed to read config:", err)
		}
	}
}
