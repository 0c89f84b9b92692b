package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imgsimfind/internal/config"
)

// newConfigCmd exposes the persisted CLI preferences scan/compare/groups/
// clean read their flag defaults from, the way the teacher's web dashboard
// let a user edit and save its AppConfig.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit persisted default preferences",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var level int
	var keep string
	var webPort int
	var recursive bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update and persist default preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				cfg.Level = level
			}
			if cmd.Flags().Changed("keep") {
				cfg.KeepPolicy = keep
			}
			if cmd.Flags().Changed("web-port") {
				cfg.WebPort = webPort
			}
			if cmd.Flags().Changed("recursive") {
				cfg.Recursive = recursive
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			path, _ := config.GetConfigPath()
			fmt.Printf("saved preferences to %s\n", path)
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 2, "default similarity level")
	cmd.Flags().StringVar(&keep, "keep", "newer", `default keep policy: "newer" or "older"`)
	cmd.Flags().IntVar(&webPort, "web-port", 8787, "default dashboard port")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "default recursive walk")
	return cmd
}
