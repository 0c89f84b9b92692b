// Package candidates enumerates which pairs of images are worth comparing,
// applying whichever pruning heuristic the caller selected (spec
// component C4).
package candidates

import (
	"path/filepath"
	"sort"
	"time"

	"imgsimfind/internal/nametime"
	"imgsimfind/internal/phash"
)

// Entry is one image participating in candidate enumeration and comparison.
type Entry struct {
	Path     string
	Hash     phash.Hash
	Size     int64
	HasSize  bool
	ExifTime time.Time
	HasExif  bool
}

// Pair is an unordered candidate pair, referencing positions in the Entry
// slice Enumerate was given. A is always < B.
type Pair struct {
	A, B int
}

// CrossPair is an unordered candidate pair spanning two separate Entry
// slices (the two-directory mode), referencing a position in each.
type CrossPair struct {
	AIndex, BIndex int
}

// Options selects which pruning heuristics Enumerate applies.
type Options struct {
	// FastSameFolderOnly restricts candidates to pairs sharing a folder.
	FastSameFolderOnly bool
	// NameWindowSeconds, if non-nil, additionally drops any pair whose
	// filename-parsed timestamps both exist and differ by more than this
	// many seconds. If nil and FastSameFolderOnly is set, a 1-second
	// default applies.
	NameWindowSeconds *int
	// ExifWindowSeconds, if non-nil, selects the EXIF-time-windowed
	// enumeration instead of full/fast-same-folder (they are mutually
	// exclusive base strategies).
	ExifWindowSeconds *int
}

// Enumerate returns the candidate pairs for entries under opts.
func Enumerate(entries []Entry, opts Options) []Pair {
	var base []Pair
	switch {
	case opts.ExifWindowSeconds != nil:
		base = exifWindowPairs(entries, *opts.ExifWindowSeconds)
	case opts.FastSameFolderOnly:
		base = fastSameFolderPairs(entries)
	default:
		base = fullPairs(entries)
	}

	if w, ok := effectiveNameWindow(opts); ok {
		base = filterByNameWindow(entries, base, w)
	}
	return base
}

// CartesianProduct returns every pair spanning a and b (two-directory mode).
func CartesianProduct(a, b []Entry) []CrossPair {
	out := make([]CrossPair, 0, len(a)*len(b))
	for i := range a {
		for j := range b {
			out = append(out, CrossPair{AIndex: i, BIndex: j})
		}
	}
	return out
}

func effectiveNameWindow(opts Options) (int, bool) {
	if opts.NameWindowSeconds != nil {
		return *opts.NameWindowSeconds, true
	}
	if opts.FastSameFolderOnly {
		return 1, true
	}
	return 0, false
}

func fullPairs(entries []Entry) []Pair {
	var out []Pair
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			out = append(out, Pair{A: i, B: j})
		}
	}
	return out
}

func folderPartitions(entries []Entry) (dirs []string, byDir map[string][]int) {
	byDir = map[string][]int{}
	for i, e := range entries {
		dir := filepath.Dir(e.Path)
		byDir[dir] = append(byDir[dir], i)
	}
	dirs = make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, byDir
}

func fastSameFolderPairs(entries []Entry) []Pair {
	dirs, byDir := folderPartitions(entries)
	var out []Pair
	for _, d := range dirs {
		idxs := byDir[d]
		for a := 0; a < len(idxs); a++ {
			for b := a + 1; b < len(idxs); b++ {
				out = append(out, Pair{A: idxs[a], B: idxs[b]})
			}
		}
	}
	return out
}

// exifWindowPairs partitions entries by folder, then within each partition
// sorts EXIF-bearing entries by (time, path) ahead of the no-EXIF entries
// (sorted by path), slides a window of width windowSeconds over the
// EXIF-bearing prefix, and emits all pairs within the no-EXIF suffix. A
// trailing file-size proximity filter drops pairs whose sizes are both known
// and differ by more than 5% of the smaller.
func exifWindowPairs(entries []Entry, windowSeconds int) []Pair {
	w := time.Duration(windowSeconds) * time.Second
	dirs, byDir := folderPartitions(entries)

	var out []Pair
	for _, d := range dirs {
		idxs := byDir[d]

		var withExif, withoutExif []int
		for _, idx := range idxs {
			if entries[idx].HasExif {
				withExif = append(withExif, idx)
			} else {
				withoutExif = append(withoutExif, idx)
			}
		}
		sort.Slice(withExif, func(a, b int) bool {
			ea, eb := entries[withExif[a]], entries[withExif[b]]
			if !ea.ExifTime.Equal(eb.ExifTime) {
				return ea.ExifTime.Before(eb.ExifTime)
			}
			return ea.Path < eb.Path
		})
		sort.Slice(withoutExif, func(a, b int) bool {
			return entries[withoutExif[a]].Path < entries[withoutExif[b]].Path
		})

		for i := 0; i < len(withExif); i++ {
			for j := i + 1; j < len(withExif); j++ {
				diff := entries[withExif[j]].ExifTime.Sub(entries[withExif[i]].ExifTime)
				if diff > w {
					break
				}
				out = append(out, orderedPair(withExif[i], withExif[j]))
			}
		}
		for i := 0; i < len(withoutExif); i++ {
			for j := i + 1; j < len(withoutExif); j++ {
				out = append(out, orderedPair(withoutExif[i], withoutExif[j]))
			}
		}
	}
	return filterBySize(entries, out)
}

func orderedPair(i, j int) Pair {
	if i < j {
		return Pair{A: i, B: j}
	}
	return Pair{A: j, B: i}
}

func filterBySize(entries []Entry, pairs []Pair) []Pair {
	out := pairs[:0]
	for _, p := range pairs {
		a, b := entries[p.A], entries[p.B]
		if a.HasSize && b.HasSize {
			minSize := a.Size
			if b.Size < minSize {
				minSize = b.Size
			}
			diff := a.Size - b.Size
			if diff < 0 {
				diff = -diff
			}
			if float64(diff) > 0.05*float64(minSize) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// WithinNameWindow reports whether a and b's filename-parsed timestamps are
// either unparseable (on either side) or within windowSeconds of each other.
func WithinNameWindow(a, b Entry, windowSeconds int) bool {
	ta, aok := nametime.ParsePath(a.Path)
	tb, bok := nametime.ParsePath(b.Path)
	if !aok || !bok {
		return true
	}
	diff := ta.Sub(tb)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(windowSeconds)*time.Second
}

func filterByNameWindow(entries []Entry, pairs []Pair, windowSeconds int) []Pair {
	times := make([]time.Time, len(entries))
	ok := make([]bool, len(entries))
	for i, e := range entries {
		times[i], ok[i] = nametime.ParsePath(e.Path)
	}

	w := time.Duration(windowSeconds) * time.Second
	out := pairs[:0]
	for _, p := range pairs {
		if ok[p.A] && ok[p.B] {
			diff := times[p.A].Sub(times[p.B])
			if diff < 0 {
				diff = -diff
			}
			if diff > w {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
