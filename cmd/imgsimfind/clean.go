package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"imgsimfind"
	"imgsimfind/internal/config"
)

func newCleanCmd() *cobra.Command {
	var flags runFlags
	var keep string
	var yes bool

	defaultKeep := config.Default().KeepPolicy
	if cfg, err := config.Load(); err == nil {
		defaultKeep = cfg.KeepPolicy
	}

	cmd := &cobra.Command{
		Use:   "clean <directory>",
		Short: "Find duplicate clusters and delete all but one member of each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.toOptions()
			attachProgressBar(&opts, flags.quiet)

			groups, err := imgsimfind.FindSimilarGroups(args[0], opts)
			if err != nil {
				return err
			}

			toDelete, err := imgsimfind.GetFilesToDeleteFromGroups(groups, keep, opts)
			if err != nil {
				return err
			}

			if len(toDelete) == 0 {
				fmt.Println("🗑️  nothing to delete")
				return nil
			}

			color.New(color.FgYellow).Printf("🗑️  %d files will be deleted (keep=%s):\n", len(toDelete), keep)
			for _, p := range toDelete {
				fmt.Printf("    %s\n", p)
			}

			if !yes {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Delete %d files", len(toDelete)),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					fmt.Println("aborted")
					return nil
				}
			}

			for _, p := range toDelete {
				if err := os.Remove(p); err != nil {
					fmt.Fprintf(os.Stderr, "failed to delete %s: %v\n", p, err)
				}
			}
			color.New(color.FgGreen).Println("✅ done")
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVar(&keep, "keep", defaultKeep, `which cluster member to keep: "newer" or "older"`)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without an interactive confirmation")
	return cmd
}
