package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imgsimfind"
)

func newGroupsCmd() *cobra.Command {
	var flags runFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "groups <directory>",
		Short: "Print similarity clusters as plain text, or as JSON with --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.toOptions()
			attachProgressBar(&opts, flags.quiet)

			groups, err := imgsimfind.FindSimilarGroups(args[0], opts)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}

			for i, g := range groups {
				fmt.Printf("cluster %d: %v\n", i+1, []string(g))
			}
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON instead of plain text")
	return cmd
}
