// Package report exports a finished similarity run as JSON or PDF. It is a
// collaborator driven entirely by the core's return values — it never
// imports imgsimfind's internal pipeline packages, only the plain data it is
// handed.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
)

// ClusterReport is one similarity cluster plus its delete candidates, ready
// for export.
type ClusterReport struct {
	Members         []string `json:"members"`
	DeleteCandidate []string `json:"delete_candidates"`
}

// Report is the full machine-readable record of one run.
type Report struct {
	Directory      string          `json:"directory"`
	ScannedAt      time.Time       `json:"scanned_at"`
	FilesScanned   int             `json:"files_scanned"`
	Threshold      int             `json:"threshold"`
	Clusters       []ClusterReport `json:"clusters"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
}

// ExportJSON writes r as indented JSON to path.
func ExportJSON(r Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// PrintSummary prints a short human banner summarizing r, in the teacher's
// emoji-banner style.
func PrintSummary(r Report) {
	fmt.Printf("📂 Scanned %s\n", r.Directory)
	fmt.Printf("🔍 %d files scanned in %.1fs\n", r.FilesScanned, r.ElapsedSeconds)
	fmt.Printf("🧮 %d similarity clusters found (threshold %d)\n", len(r.Clusters), r.Threshold)
	total := 0
	for _, c := range r.Clusters {
		total += len(c.DeleteCandidate)
	}
	fmt.Printf("🗑️  %d files flagged for deletion\n", total)
}

// ExportPDF writes a simple one-section-per-cluster PDF report to path. The
// teacher's own PDF exporter file was never present in the retrieved pack
// (cmd/finder/main.go calls reporter.ExportPDF, but no definition of it
// shipped); this rebuilds it in the teacher's banner/section idiom.
func ExportPDF(r Report, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("imgsimfind report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Similarity report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Directory: %s", r.Directory), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Scanned at: %s", r.ScannedAt.Format(time.RFC1123)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Files scanned: %s", humanize.Comma(int64(r.FilesScanned))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Threshold: %d", r.Threshold), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, c := range r.Clusters {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Cluster %d (%d members)", i+1, len(c.Members)), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, m := range c.Members {
			marker := "keep"
			for _, d := range c.DeleteCandidate {
				if d == m {
					marker = "delete"
					break
				}
			}
			pdf.CellFormat(0, 6, fmt.Sprintf("  [%s] %s", marker, m), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf report %s: %w", path, err)
	}
	return nil
}
