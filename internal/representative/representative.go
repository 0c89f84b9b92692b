// Package representative picks, within a cluster of similar images, which
// members to keep and which to flag for deletion (spec component C8).
package representative

import (
	"sort"
	"time"
)

// Member is one cluster member under consideration.
type Member struct {
	Path     string
	ExifTime time.Time
	HasExif  bool
}

// Select returns the delete candidates (every member but the one kept) for
// one cluster. When keepNewer is true, the member with the latest EXIF
// timestamp is kept ("newer" policy); missing-EXIF members sort first
// (treated as oldest) either way. When keepNewer is false ("older" policy),
// the earliest-sorting member is kept, so a missing-EXIF member is kept in
// preference to any EXIF-bearing one.
func Select(members []Member, keepNewer bool) []string {
	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ar, br := exifRank(a), exifRank(b)
		if ar != br {
			return ar < br
		}
		if !a.ExifTime.Equal(b.ExifTime) {
			return a.ExifTime.Before(b.ExifTime)
		}
		return a.Path < b.Path
	})

	keepIdx := 0
	if keepNewer {
		keepIdx = len(sorted) - 1
	}

	out := make([]string, 0, len(sorted)-1)
	for i, m := range sorted {
		if i == keepIdx {
			continue
		}
		out = append(out, m.Path)
	}
	return out
}

func exifRank(m Member) int {
	if m.HasExif {
		return 1
	}
	return 0
}
