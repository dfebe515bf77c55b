package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the bundled files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		tree := s.engine.Tree()

		table := tablewriter.NewWriter(color.Output)
		table.SetHeader([]string{"Kind", "Size", "Path"})
		table.SetBorder(false)
		for _, e := range tree.Entries() {
			size := ""
			if !e.IsDir() {
				size = humanize.Bytes(uint64(e.Size))
			}
			table.Append([]string{e.Kind.String(), size, e.Path})
		}
		table.Render()

		fmt.Fprintln(color.Output, s.tr.Get("list_summary", tree.Len(), humanize.Bytes(uint64(tree.Size()))))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
