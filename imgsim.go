// Package imgsimfind is the public API of the image-similarity pipeline:
// walk a directory (or two), perceptually hash its images, compare
// candidate pairs, and group the similar ones into clusters. The core never
// logs, never touches a database, and never imports a CLI or UI package —
// those live in cmd/imgsimfind, internal/report and internal/webui as
// collaborators driven entirely through this file's return values and the
// ProgressFunc callback.
package imgsimfind

import (
	"fmt"
	"os"
	"sort"

	"imgsimfind/internal/candidates"
	"imgsimfind/internal/compare"
	"imgsimfind/internal/exifreader"
	"imgsimfind/internal/imaging"
	"imgsimfind/internal/levels"
	"imgsimfind/internal/phash"
	"imgsimfind/internal/representative"
	"imgsimfind/internal/scheduler"
	"imgsimfind/internal/unionfind"
	"imgsimfind/internal/walker"
)

// Decoder decodes raw image bytes. Supply a custom one via Options.Decoder
// to support formats beyond internal/imaging's default set, or to fake
// decoding in tests.
type Decoder = phash.Decoder

// ExifReader resolves a path to an optional capture timestamp. Supply a
// custom one via Options.ExifReader to fake EXIF data in tests.
type ExifReader = exifreader.Reader

// Hash is an opaque perceptual hash, as produced internally during a run.
type Hash = phash.Hash

// ProgressPhase names the phase a ProgressEvent was reported for.
type ProgressPhase string

// The two phases a run reports progress for.
const (
	PhaseHash    ProgressPhase = scheduler.PhaseHash
	PhaseCompare ProgressPhase = scheduler.PhaseCompare
)

// ProgressEvent is delivered to a ProgressFunc as work completes. Total is
// fixed for the phase before the first event. Similarity is non-nil only
// for a PhaseCompare event that found a similar pair.
type ProgressEvent struct {
	Phase      ProgressPhase
	Current    uint
	Total      uint
	Path       string
	Path2      string
	HasPath2   bool
	Similarity *float64
}

// ProgressFunc receives ProgressEvents. It is invoked from whichever worker
// goroutine finished the unit of work, but calls are serialized — the sink
// is never entered concurrently.
type ProgressFunc func(ProgressEvent)

// SimilarPair is one pair of images found similar at or under the run's
// threshold.
type SimilarPair struct {
	PathA, PathB string
	Similarity   float64
}

// Cluster is a group of two or more mutually-similar paths, sorted
// ascending.
type Cluster []string

// Options configures a similarity run. The zero value is usable: it walks
// non-recursively at level 2 with the default decoder, EXIF reader and
// thread count.
type Options struct {
	// Level selects a default threshold (1, 2 or 3); 0 means "unset",
	// which resolves to level 2 unless Threshold overrides it.
	Level int
	// Threshold, if non-nil, overrides Level's default entirely.
	Threshold *int
	// Recursive walks subdirectories when true.
	Recursive bool
	// Progress, if non-nil, receives hash- and compare-phase updates.
	Progress ProgressFunc
	// FastSameFolderOnly restricts candidates to same-folder pairs.
	FastSameFolderOnly bool
	// TimeWindowSeconds, if non-nil, additionally restricts candidates to
	// pairs whose filename-parsed timestamps are within this many seconds
	// of each other (when both parse). FastSameFolderOnly defaults this to
	// 1 second when left nil.
	TimeWindowSeconds *int
	// ExifTimeWindowSeconds, if non-nil, selects the EXIF-time-windowed
	// candidate strategy instead of full/fast-same-folder.
	ExifTimeWindowSeconds *int
	// NumThreads, if non-nil and positive, overrides DefaultThreads(); 1
	// selects the strictly sequential path.
	NumThreads *int
	// Decoder overrides the default image decoder (internal/imaging).
	Decoder Decoder
	// ExifReader overrides the default EXIF reader (internal/exifreader).
	ExifReader ExifReader
}

func (o Options) decoder() Decoder {
	if o.Decoder != nil {
		return o.Decoder
	}
	return imaging.StdDecoder{}
}

func (o Options) exif() ExifReader {
	if o.ExifReader != nil {
		return o.ExifReader
	}
	return exifreader.Default{}
}

// DefaultThreads returns min(32, hardware_concurrency), the thread count a
// run uses when Options.NumThreads is nil.
func DefaultThreads() int { return scheduler.DefaultThreads() }

// SimilarityScore computes max(0, 1 - distance/bits) for two hashes,
// rounded to 4 decimal places. bits <= 0 falls back to h1's own length.
func SimilarityScore(h1, h2 Hash, bits int) float64 {
	if bits <= 0 {
		bits = h1.Bits()
	}
	return compare.Similarity(phash.Distance(h1, h2), bits)
}

func effectiveLevel(level int) int {
	if level == 0 {
		return levels.DefaultLevel
	}
	return level
}

func resolveThreshold(opts Options) (int, error) {
	if opts.Threshold != nil {
		if *opts.Threshold < 0 {
			return 0, fmt.Errorf("%w: threshold must be non-negative, got %d", ErrInvalidArgument, *opts.Threshold)
		}
		return *opts.Threshold, nil
	}
	lvl := effectiveLevel(opts.Level)
	if lvl != 1 && lvl != 2 && lvl != 3 {
		return 0, fmt.Errorf("%w: level must be 1, 2 or 3, got %d", ErrInvalidArgument, lvl)
	}
	return levels.Defaults[lvl], nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}
	return nil
}

func adaptProgress(fn ProgressFunc) scheduler.ProgressFunc {
	if fn == nil {
		return nil
	}
	return func(phase string, current, total uint, detail scheduler.Detail, similarity *float64) {
		fn(ProgressEvent{
			Phase:      ProgressPhase(phase),
			Current:    current,
			Total:      total,
			Path:       detail.Path,
			Path2:      detail.Path2,
			HasPath2:   detail.HasPath2,
			Similarity: similarity,
		})
	}
}

func makeDecode(opts Options) scheduler.DecodeFunc {
	d := opts.decoder()
	return func(data []byte) (phash.Hash, bool) {
		return phash.Compute(d, data, phash.DefaultSideLength)
	}
}

func buildEntries(paths []string, hashes map[string]phash.Hash, opts Options, withExif bool) []candidates.Entry {
	reader := opts.exif()
	entries := make([]candidates.Entry, 0, len(paths))
	for _, p := range paths {
		h, ok := hashes[p]
		if !ok {
			continue
		}
		e := candidates.Entry{Path: p, Hash: h}
		if withExif {
			if t, ok := reader.ReadTime(p); ok {
				e.ExifTime = t
				e.HasExif = true
			}
			if info, err := os.Stat(p); err == nil {
				e.Size = info.Size()
				e.HasSize = true
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func filterHashed(paths []string, hashes map[string]phash.Hash) []candidates.Entry {
	entries := make([]candidates.Entry, 0, len(paths))
	for _, p := range paths {
		if h, ok := hashes[p]; ok {
			entries = append(entries, candidates.Entry{Path: p, Hash: h})
		}
	}
	return entries
}

// FindSimilarPairsWithScores walks root (recursively per Options.Recursive),
// hashes every image it finds, and returns every pair at or under the
// resolved threshold together with its similarity score.
func FindSimilarPairsWithScores(root string, opts Options) ([]SimilarPair, error) {
	threshold, err := resolveThreshold(opts)
	if err != nil {
		return nil, err
	}
	if err := requireDir(root); err != nil {
		return nil, err
	}

	paths, err := walker.Collect(root, opts.Recursive)
	if err != nil {
		return nil, err
	}

	decode := makeDecode(opts)
	progress := adaptProgress(opts.Progress)
	useExifWindow := opts.ExifTimeWindowSeconds != nil

	var results []scheduler.CompareResult

	if opts.FastSameFolderOnly && !useExifWindow {
		hashes := scheduler.HashFiles(paths, os.ReadFile, decode, opts.NumThreads, progress)
		entries := buildEntries(paths, hashes, opts, false)

		windowSeconds := 1
		if opts.TimeWindowSeconds != nil {
			windowSeconds = *opts.TimeWindowSeconds
		}
		filter := func(a, b candidates.Entry) bool {
			return candidates.WithinNameWindow(a, b, windowSeconds)
		}
		results = scheduler.CompareByFolder(entries, threshold, filter, opts.NumThreads, progress)
	} else {
		hashes := scheduler.HashFiles(paths, os.ReadFile, decode, opts.NumThreads, progress)
		entries := buildEntries(paths, hashes, opts, useExifWindow)

		candOpts := candidates.Options{
			FastSameFolderOnly: opts.FastSameFolderOnly,
			NameWindowSeconds:  opts.TimeWindowSeconds,
			ExifWindowSeconds:  opts.ExifTimeWindowSeconds,
		}
		pairs := candidates.Enumerate(entries, candOpts)

		refs := make([]scheduler.PairRef, len(pairs))
		for i, p := range pairs {
			refs[i] = scheduler.PairRef{
				Path1: entries[p.A].Path, Path2: entries[p.B].Path,
				Hash1: entries[p.A].Hash, Hash2: entries[p.B].Hash,
			}
		}
		results = scheduler.ComparePairs(refs, threshold, opts.NumThreads, progress)
	}

	out := make([]SimilarPair, len(results))
	for i, r := range results {
		out[i] = SimilarPair{PathA: r.Path1, PathB: r.Path2, Similarity: r.Similarity}
	}
	return out, nil
}

// CompareDirs compares every image in dir1 against every image in dir2 (the
// two-directory mode) and returns the similar cross pairs. It never
// compares two images both drawn from the same directory.
func CompareDirs(dir1, dir2 string, opts Options) ([]SimilarPair, error) {
	threshold, err := resolveThreshold(opts)
	if err != nil {
		return nil, err
	}
	if err := requireDir(dir1); err != nil {
		return nil, err
	}
	if err := requireDir(dir2); err != nil {
		return nil, err
	}

	paths1, err := walker.Collect(dir1, opts.Recursive)
	if err != nil {
		return nil, err
	}
	paths2, err := walker.Collect(dir2, opts.Recursive)
	if err != nil {
		return nil, err
	}

	decode := makeDecode(opts)
	progress := adaptProgress(opts.Progress)

	all := make([]string, 0, len(paths1)+len(paths2))
	all = append(all, paths1...)
	all = append(all, paths2...)
	hashes := scheduler.HashFiles(all, os.ReadFile, decode, opts.NumThreads, progress)

	entries1 := filterHashed(paths1, hashes)
	entries2 := filterHashed(paths2, hashes)

	cross := candidates.CartesianProduct(entries1, entries2)
	refs := make([]scheduler.PairRef, len(cross))
	for i, c := range cross {
		refs[i] = scheduler.PairRef{
			Path1: entries1[c.AIndex].Path, Path2: entries2[c.BIndex].Path,
			Hash1: entries1[c.AIndex].Hash, Hash2: entries2[c.BIndex].Hash,
		}
	}
	results := scheduler.ComparePairs(refs, threshold, opts.NumThreads, progress)

	out := make([]SimilarPair, len(results))
	for i, r := range results {
		out[i] = SimilarPair{PathA: r.Path1, PathB: r.Path2, Similarity: r.Similarity}
	}
	return out, nil
}

// CompareTwoImages hashes and compares exactly two images, independent of
// any threshold. ok is false if either image fails to decode.
func CompareTwoImages(path1, path2 string, opts Options) (similarity float64, hamming int, ok bool) {
	decoder := opts.decoder()

	data1, err := os.ReadFile(path1)
	if err != nil {
		return 0, 0, false
	}
	data2, err := os.ReadFile(path2)
	if err != nil {
		return 0, 0, false
	}

	h1, ok1 := phash.Compute(decoder, data1, phash.DefaultSideLength)
	h2, ok2 := phash.Compute(decoder, data2, phash.DefaultSideLength)
	if !ok1 || !ok2 {
		return 0, 0, false
	}

	d := phash.Distance(h1, h2)
	return compare.Similarity(d, h1.Bits()), d, true
}

// PairsToGroups collapses a set of similar pairs into clusters via
// union-find. Clusters, and the members within each, are sorted ascending
// for determinism.
func PairsToGroups(pairs []SimilarPair) []Cluster {
	ids := map[string]int{}
	var paths []string
	idOf := func(p string) int {
		if id, ok := ids[p]; ok {
			return id
		}
		id := len(paths)
		ids[p] = id
		paths = append(paths, p)
		return id
	}

	type edge struct{ a, b int }
	edges := make([]edge, 0, len(pairs))
	for _, pr := range pairs {
		edges = append(edges, edge{idOf(pr.PathA), idOf(pr.PathB)})
	}

	dsu := unionfind.New(len(paths))
	for _, e := range edges {
		dsu.Union(e.a, e.b)
	}

	groups := dsu.Clusters()
	out := make([]Cluster, 0, len(groups))
	for _, g := range groups {
		members := make([]string, len(g))
		for i, idx := range g {
			members[i] = paths[idx]
		}
		sort.Strings(members)
		out = append(out, Cluster(members))
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// FindSimilarGroups is FindSimilarPairsWithScores followed by
// PairsToGroups.
func FindSimilarGroups(root string, opts Options) ([]Cluster, error) {
	pairs, err := FindSimilarPairsWithScores(root, opts)
	if err != nil {
		return nil, err
	}
	return PairsToGroups(pairs), nil
}

// GetFilesToDeleteFromGroups resolves, per cluster, which members to flag
// for deletion under the given keep policy ("newer" or "older").
func GetFilesToDeleteFromGroups(groups []Cluster, keep string, opts Options) ([]string, error) {
	if keep != "newer" && keep != "older" {
		return nil, fmt.Errorf("%w: keep must be \"newer\" or \"older\", got %q", ErrInvalidArgument, keep)
	}

	reader := opts.exif()
	var out []string
	for _, g := range groups {
		members := make([]representative.Member, len(g))
		for i, p := range g {
			t, ok := reader.ReadTime(p)
			members[i] = representative.Member{Path: p, ExifTime: t, HasExif: ok}
		}
		out = append(out, representative.Select(members, keep == "newer")...)
	}
	return out, nil
}
