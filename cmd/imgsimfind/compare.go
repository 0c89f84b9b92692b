package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"imgsimfind"
)

func newCompareCmd() *cobra.Command {
	var flags runFlags
	var twoDirs bool

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two images directly, or two directories with --dirs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.toOptions()

			if twoDirs {
				attachProgressBar(&opts, flags.quiet)
				pairs, err := imgsimfind.CompareDirs(args[0], args[1], opts)
				if err != nil {
					return err
				}
				for _, p := range pairs {
					fmt.Printf("%.4f  %s  <->  %s\n", p.Similarity, p.PathA, p.PathB)
				}
				color.New(color.FgCyan).Printf("🔍 %d cross-directory matches\n", len(pairs))
				return nil
			}

			sim, dist, ok := imgsimfind.CompareTwoImages(args[0], args[1], opts)
			if !ok {
				return fmt.Errorf("could not decode one or both images")
			}
			fmt.Printf("similarity=%.4f hamming=%d\n", sim, dist)
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().BoolVar(&twoDirs, "dirs", false, "treat the arguments as two directories instead of two images")
	return cmd
}
