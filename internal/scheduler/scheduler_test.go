package scheduler

import (
	"errors"
	"testing"

	"imgsimfind/internal/candidates"
	"imgsimfind/internal/phash"
)

func TestHashFilesSkipsReadAndDecodeFailures(t *testing.T) {
	paths := []string{"ok.jpg", "unreadable.jpg", "undecodable.jpg"}
	read := func(p string) ([]byte, error) {
		if p == "unreadable.jpg" {
			return nil, errors.New("boom")
		}
		return []byte(p), nil
	}
	decode := func(data []byte) (phash.Hash, bool) {
		if string(data) == "undecodable.jpg" {
			return phash.Hash{}, false
		}
		return phash.Hash{}, true
	}

	got := HashFiles(paths, read, decode, nil, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 successfully hashed file, got %d: %v", len(got), got)
	}
	if _, ok := got["ok.jpg"]; !ok {
		t.Errorf("expected ok.jpg to be present")
	}
}

func TestHashFilesSequentialVsParallelSameResult(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e"}
	read := func(p string) ([]byte, error) { return []byte(p), nil }
	decode := func(data []byte) (phash.Hash, bool) { return phash.Hash{}, true }

	one := 1
	seq := HashFiles(paths, read, decode, &one, nil)
	four := 4
	par := HashFiles(paths, read, decode, &four, nil)

	if len(seq) != len(par) {
		t.Fatalf("sequential produced %d results, parallel produced %d", len(seq), len(par))
	}
	for p := range seq {
		if _, ok := par[p]; !ok {
			t.Errorf("parallel run missing %q present in sequential run", p)
		}
	}
}

func TestComparePairsReportsProgressTotals(t *testing.T) {
	refs := []PairRef{{Path1: "a", Path2: "b"}}
	var lastTotal uint
	progress := func(phase string, current, total uint, detail Detail, sim *float64) {
		lastTotal = total
	}
	_ = ComparePairs(refs, 256, nil, progress)
	if lastTotal != 1 {
		t.Errorf("expected total fixed at 1, got %d", lastTotal)
	}
}

func TestCompareByFolderOnlyComparesWithinFolder(t *testing.T) {
	entries := []candidates.Entry{
		{Path: "/a/1.jpg"},
		{Path: "/a/2.jpg"},
		{Path: "/b/3.jpg"},
	}
	results := CompareByFolder(entries, 256, nil, nil, nil)
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 intra-folder comparison, got %d: %v", len(results), results)
	}
	if results[0].Path1 != "/a/1.jpg" || results[0].Path2 != "/a/2.jpg" {
		t.Errorf("unexpected pair: %+v", results[0])
	}
}

func TestCompareByFolderFilterRejectsPair(t *testing.T) {
	entries := []candidates.Entry{
		{Path: "/a/1.jpg"},
		{Path: "/a/2.jpg"},
	}
	alwaysReject := func(a, b candidates.Entry) bool { return false }
	results := CompareByFolder(entries, 256, alwaysReject, nil, nil)
	if len(results) != 0 {
		t.Fatalf("expected the filter to reject the only pair, got %v", results)
	}
}
