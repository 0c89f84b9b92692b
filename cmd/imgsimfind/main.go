// Command imgsimfind is the demo CLI driving the imgsimfind similarity
// pipeline: scan a directory for near-duplicate images, compare two
// directories or two single images, group matches into clusters, and
// optionally clean up (or just inspect, via the web dashboard) what it
// finds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgsimfind",
		Short: "Find visually similar and duplicate images",
		Long: "imgsimfind walks a directory of images, perceptually hashes each one,\n" +
			"and reports near-duplicate clusters using a configurable similarity level.",
	}

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newGroupsCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
