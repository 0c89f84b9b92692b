package webui

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"imgsimfind"
)

func TestHandleGroupsReturnsLatest(t *testing.T) {
	s := New()
	s.SetGroups([]imgsimfind.Cluster{{"/a.jpg", "/b.jpg"}})

	req := httptest.NewRequest("GET", "/api/groups", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got [][]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0]) != 2 {
		t.Errorf("got %v", got)
	}
}

func TestHandleProgressReflectsLatestEvent(t *testing.T) {
	s := New()
	sim := 0.95
	s.Progress(imgsimfind.ProgressEvent{Phase: imgsimfind.PhaseCompare, Current: 3, Total: 10, Similarity: &sim})

	req := httptest.NewRequest("GET", "/api/progress", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["current"].(float64) != 3 {
		t.Errorf("current = %v, want 3", got["current"])
	}
}

func TestHandleThumbnailMissingPath(t *testing.T) {
	s := New()
	req := httptest.NewRequest("GET", "/api/thumbnail", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
