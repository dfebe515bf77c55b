package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
	"github.com/hsmod/hsmod-installer/resource"
)

var installCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Install the bundled files",
	Long:  `Copy the bundled files into the Hearthstone directory, overwriting existing copies.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAction(resource.ActionInstall, args)
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [dir]",
	Short: "Remove the bundled files",
	Long: `Remove every bundled file from the Hearthstone directory, then every bundled
directory that is left empty. Directories holding other files are kept.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAction(resource.ActionUninstall, args)
	},
}

// runAction is the scripted flow: no action prompt, no pause, and a non-zero
// exit status when the action fails.
func runAction(action resource.Action, args []string) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	s := newSession()
	res, err := resource.Run(s.engine, s.resolver(dir, &action))
	if err != nil {
		logs.Err.Fatalln(err)
	}
	if !s.report(res) {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
