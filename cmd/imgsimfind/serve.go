package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"imgsimfind"
	"imgsimfind/internal/config"
	"imgsimfind/internal/webui"
)

func newServeCmd() *cobra.Command {
	var flags runFlags
	var port int

	defaultPort := config.Default().WebPort
	if cfg, err := config.Load(); err == nil {
		defaultPort = cfg.WebPort
	}

	cmd := &cobra.Command{
		Use:   "serve <directory>",
		Short: "Scan a directory and serve a live dashboard of progress and clusters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			opts := flags.toOptions()

			server := webui.New()
			opts.Progress = server.Progress

			addr := fmt.Sprintf(":%d", port)
			go func() {
				log.Printf("🔍 dashboard listening on %s", addr)
				if err := server.Start(addr); err != nil {
					log.Printf("dashboard server stopped: %v", err)
				}
			}()

			groups, err := imgsimfind.FindSimilarGroups(dir, opts)
			if err != nil {
				return err
			}
			server.SetGroups(groups)

			log.Printf("🧮 %d clusters found, dashboard stays up at %s", len(groups), addr)
			select {}
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().IntVar(&port, "port", defaultPort, "dashboard listen port")
	return cmd
}
