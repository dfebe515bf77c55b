package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hsmod/hsmod-installer/cmd/internal/libs"
	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
)

var libsCmd = &cobra.Command{
	Use:   "libs [dir]",
	Short: "Copy the game's managed assemblies",
	Long: `Copy every .dll from Hearthstone_Data/Managed into the output directory, skipping
the assemblies already present in the exclude directory (the Unity/Mono set).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		outDir, _ := cmd.Flags().GetString("out")
		exclude, _ := cmd.Flags().GetString("exclude")

		s := newSession()
		gameDir, err := s.resolver(dir, nil).ResolveTargetDirectory()
		if err != nil {
			logs.Err.Fatalln(err)
		}

		copied, err := libs.Export(libs.Options{GameDir: gameDir, OutDir: outDir, Exclude: exclude})
		if err != nil {
			logs.Err.Fatalln(s.tr.Get("libs_failed", err))
		}
		for _, name := range copied {
			logs.Debug.Println("Copied", name)
		}
		fmt.Fprintln(color.Output, s.tr.Get("libs_copied", len(copied), outDir))
	},
}

func init() {
	rootCmd.AddCommand(libsCmd)

	libsCmd.Flags().StringP("out", "o", "LibHearthstone", "Output directory")
	libsCmd.Flags().StringP("exclude", "x", "LibUnityMono", "Directory whose file names are not copied")
}
