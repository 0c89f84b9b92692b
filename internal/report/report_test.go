package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sample() Report {
	return Report{
		Directory:    "/photos",
		ScannedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FilesScanned: 3,
		Threshold:    15,
		Clusters: []ClusterReport{
			{Members: []string{"/photos/a.jpg", "/photos/b.jpg"}, DeleteCandidate: []string{"/photos/a.jpg"}},
		},
		ElapsedSeconds: 1.5,
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := ExportJSON(sample(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Directory != "/photos" || len(got.Clusters) != 1 {
		t.Errorf("unexpected round trip: %+v", got)
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := ExportPDF(sample(), path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF output")
	}
}
