package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
	"github.com/hsmod/hsmod-installer/cmd/internal/watcher"
	"github.com/hsmod/hsmod-installer/resource"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Install and keep the files installed",
	Long: `Install the bundled files, then watch the Hearthstone directory and reinstall
whenever a game update or repair removes one of them.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		debounce, _ := cmd.Flags().GetDuration("debounce")

		s := newSession()
		install := resource.ActionInstall
		res, err := resource.Run(s.engine, s.resolver(dir, &install))
		if err != nil {
			logs.Err.Fatalln(err)
		}
		if !s.report(res) {
			os.Exit(1)
		}
		root := res.Dir

		tree := s.engine.Tree()
		dirs := []string{root}
		for _, e := range tree.Entries() {
			if e.IsDir() {
				dirs = append(dirs, filepath.Join(root, filepath.FromSlash(e.Path)))
			}
		}
		owned := func(name string) bool {
			rel, err := filepath.Rel(root, name)
			if err != nil {
				return false
			}
			_, ok := tree.Lookup(filepath.ToSlash(rel))
			return ok
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle Ctrl-C
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			logs.Info.Println("Interrupt received, stopping")
			cancel()
		}()

		fmt.Fprintln(color.Output, s.tr.Get("watch_started", root))
		restored := 0
		err = watcher.WatchDirs(ctx, dirs, owned, debounce, func() {
			if err := s.engine.Install(root); err != nil {
				logs.Warn.Println("Reinstall failed:", err)
				return
			}
			restored++
			fmt.Fprintln(color.Output, s.tr.Get("watch_restored", restored))
		})
		if err != nil {
			logs.Err.Fatalln("Watch error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 2*time.Second, "Quiet period before reinstalling")
}
