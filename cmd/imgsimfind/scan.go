package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"imgsimfind"
	"imgsimfind/internal/levels"
	"imgsimfind/internal/report"
	"imgsimfind/internal/walker"
)

func newScanCmd() *cobra.Command {
	var flags runFlags
	var jsonOut, pdfOut string

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory for similar/duplicate images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			opts := flags.toOptions()
			attachProgressBar(&opts, flags.quiet)

			fmt.Printf("📂 Scanning %s\n", dir)
			start := time.Now()

			pairs, err := imgsimfind.FindSimilarPairsWithScores(dir, opts)
			if err != nil {
				return err
			}
			groups := imgsimfind.PairsToGroups(pairs)

			color.New(color.FgCyan, color.Bold).Printf("🧮 %d similarity clusters found\n", len(groups))
			for i, g := range groups {
				fmt.Printf("  cluster %d:\n", i+1)
				for _, p := range g {
					fmt.Printf("    %s\n", p)
				}
			}

			if jsonOut != "" || pdfOut != "" {
				rep := buildReport(dir, groups, opts, time.Since(start))
				if jsonOut != "" {
					if err := report.ExportJSON(rep, jsonOut); err != nil {
						return err
					}
				}
				if pdfOut != "" {
					if err := report.ExportPDF(rep, pdfOut); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON report to this path")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "write a PDF report to this path")
	return cmd
}

func buildReport(dir string, groups []imgsimfind.Cluster, opts imgsimfind.Options, elapsed time.Duration) report.Report {
	threshold := levels.Threshold(opts.Level, opts.Threshold)

	files := 0
	if paths, err := walker.Collect(dir, opts.Recursive); err == nil {
		files = len(paths)
	}
	clusters := make([]report.ClusterReport, 0, len(groups))
	for _, g := range groups {
		del, _ := imgsimfind.GetFilesToDeleteFromGroups([]imgsimfind.Cluster{g}, "newer", opts)
		clusters = append(clusters, report.ClusterReport{Members: g, DeleteCandidate: del})
	}

	return report.Report{
		Directory:      dir,
		ScannedAt:      time.Now(),
		FilesScanned:   files,
		Threshold:      threshold,
		Clusters:       clusters,
		ElapsedSeconds: elapsed.Seconds(),
	}
}
