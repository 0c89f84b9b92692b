package representative

import (
	"reflect"
	"sort"
	"testing"
	"time"
)

func TestSelectKeepNewer(t *testing.T) {
	members := []Member{
		{Path: "/a.jpg", ExifTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), HasExif: true},
		{Path: "/b.jpg", ExifTime: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), HasExif: true},
		{Path: "/c.jpg", HasExif: false},
	}
	got := Select(members, true)
	sort.Strings(got)
	want := []string{"/a.jpg", "/c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (keep /b.jpg, the newest)", got, want)
	}
}

func TestSelectKeepOlderPrefersMissingExif(t *testing.T) {
	members := []Member{
		{Path: "/a.jpg", ExifTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), HasExif: true},
		{Path: "/b.jpg", HasExif: false},
	}
	got := Select(members, false)
	want := []string{"/a.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (keep /b.jpg, missing-EXIF sorts oldest)", got, want)
	}
}

func TestSelectTieBreaksByPath(t *testing.T) {
	same := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	members := []Member{
		{Path: "/z.jpg", ExifTime: same, HasExif: true},
		{Path: "/a.jpg", ExifTime: same, HasExif: true},
	}
	got := Select(members, true)
	want := []string{"/a.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v (equal times tie-break by path, /z.jpg kept)", got, want)
	}
}
