// Package scheduler runs the hash and compare phases across a bounded
// worker pool and drives the caller's progress sink (spec component C6).
package scheduler

import (
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"imgsimfind/internal/candidates"
	"imgsimfind/internal/compare"
	"imgsimfind/internal/phash"
)

// Phase names reported to a ProgressFunc.
const (
	PhaseHash    = "hash"
	PhaseCompare = "compare"
)

// Detail carries the per-update payload of a progress callback: a single
// path during the hash phase, a pair of paths during the compare phase.
type Detail struct {
	Path     string
	Path2    string
	HasPath2 bool
}

// ProgressFunc is invoked as work completes. total is fixed for the phase
// before the first call; similarity is non-nil only for a
// compare-phase update that found a similar pair.
type ProgressFunc func(phase string, current, total uint, detail Detail, similarity *float64)

// DefaultThreads returns min(32, hardware_concurrency).
func DefaultThreads() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	return n
}

func resolveThreads(numThreads *int) int {
	if numThreads != nil && *numThreads > 0 {
		return *numThreads
	}
	return DefaultThreads()
}

// ReadFunc abstracts reading a file's bytes, letting callers inject a fake
// for tests without this package importing os directly.
type ReadFunc func(path string) ([]byte, error)

// DecodeFunc computes a hash from raw bytes, or reports failure.
type DecodeFunc func(data []byte) (phash.Hash, bool)

// HashFiles computes a perceptual hash for each path across numThreads
// workers (DefaultThreads() if nil; 1 selects the strictly sequential
// path). Files that fail to read or hash are silently excluded from the
// result, per the spec's soft-failure design. The path→hash map is built
// with a lock-free concurrent map since writers race under the worker pool.
func HashFiles(paths []string, read ReadFunc, decode DecodeFunc, numThreads *int, progress ProgressFunc) map[string]phash.Hash {
	threads := resolveThreads(numThreads)
	total := uint(len(paths))

	store := xsync.NewMapOf[string, phash.Hash]()

	var mu sync.Mutex
	var done uint

	process := func(p string) {
		data, err := read(p)
		if err == nil {
			if h, ok := decode(data); ok {
				store.Store(p, h)
			}
		}
		if progress != nil {
			mu.Lock()
			cur := done
			done++
			progress(PhaseHash, cur, total, Detail{Path: p}, nil)
			mu.Unlock()
		}
	}

	if threads <= 1 {
		for _, p := range paths {
			process(p)
		}
	} else {
		jobs := make(chan string, len(paths))
		var wg sync.WaitGroup
		for w := 0; w < threads; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { recover() }()
				for p := range jobs {
					process(p)
				}
			}()
		}
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
	}

	out := make(map[string]phash.Hash, store.Size())
	store.Range(func(k string, v phash.Hash) bool {
		out[k] = v
		return true
	})
	return out
}

// PairRef is one candidate pair carrying its already-hashed endpoints,
// ready for the compare phase.
type PairRef struct {
	Path1, Path2 string
	Hash1, Hash2 phash.Hash
}

// CompareResult is one pair that passed the similarity threshold.
type CompareResult struct {
	Path1, Path2 string
	Similarity   float64
	Distance     int
}

// ComparePairs evaluates candidate pairs across numThreads workers, each
// handling a contiguous chunk (the "non-fast" compare-phase scheduling).
func ComparePairs(pairs []PairRef, threshold int, numThreads *int, progress ProgressFunc) []CompareResult {
	if len(pairs) == 0 {
		return nil
	}
	threads := resolveThreads(numThreads)
	total := uint(len(pairs))

	var mu sync.Mutex
	var done uint
	var results []CompareResult

	evalOne := func(pr PairRef) {
		res, ok := compare.Pair(pr.Hash1, pr.Hash2, threshold)
		mu.Lock()
		cur := done
		done++
		if ok {
			results = append(results, CompareResult{Path1: pr.Path1, Path2: pr.Path2, Similarity: res.Similarity, Distance: res.Distance})
		}
		if progress != nil {
			var simPtr *float64
			if ok {
				simPtr = &res.Similarity
			}
			progress(PhaseCompare, cur, total, Detail{Path: pr.Path1, Path2: pr.Path2, HasPath2: true}, simPtr)
		}
		mu.Unlock()
	}

	if threads <= 1 {
		for _, pr := range pairs {
			evalOne(pr)
		}
		return results
	}

	chunkSize := (len(pairs) + threads - 1) / threads
	var wg sync.WaitGroup
	for i := 0; i < len(pairs); i += chunkSize {
		end := i + chunkSize
		if end > len(pairs) {
			end = len(pairs)
		}
		chunk := pairs[i:end]
		wg.Add(1)
		go func(chunk []PairRef) {
			defer wg.Done()
			defer func() { recover() }()
			for _, pr := range chunk {
				evalOne(pr)
			}
		}(chunk)
	}
	wg.Wait()
	return results
}

// CompareByFolder implements the fast-same-folder compare-phase scheduling:
// each folder partition of already-hashed entries is one task, comparing
// its own members locally with no cross-task coordination beyond the
// shared result/progress sink. filter, if non-nil, is consulted before
// computing a Hamming distance and can reject a pair outright (used for the
// fast-mode filename-window default).
func CompareByFolder(entries []candidates.Entry, threshold int, filter func(a, b candidates.Entry) bool, numThreads *int, progress ProgressFunc) []CompareResult {
	threads := resolveThreads(numThreads)

	byDir := map[string][]int{}
	for i, e := range entries {
		dir := filepath.Dir(e.Path)
		byDir[dir] = append(byDir[dir], i)
	}
	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var total uint
	for _, d := range dirs {
		n := len(byDir[d])
		total += uint(n * (n - 1) / 2)
	}

	var mu sync.Mutex
	var done uint
	var results []CompareResult

	task := func(idxs []int) {
		for a := 0; a < len(idxs); a++ {
			for b := a + 1; b < len(idxs); b++ {
				i, j := idxs[a], idxs[b]
				ei, ej := entries[i], entries[j]

				var res compare.Result
				ok := false
				if filter == nil || filter(ei, ej) {
					res, ok = compare.Pair(ei.Hash, ej.Hash, threshold)
				}

				mu.Lock()
				cur := done
				done++
				if ok {
					results = append(results, CompareResult{Path1: ei.Path, Path2: ej.Path, Similarity: res.Similarity, Distance: res.Distance})
				}
				if progress != nil {
					var simPtr *float64
					if ok {
						simPtr = &res.Similarity
					}
					progress(PhaseCompare, cur, total, Detail{Path: ei.Path, Path2: ej.Path, HasPath2: true}, simPtr)
				}
				mu.Unlock()
			}
		}
	}

	if threads <= 1 {
		for _, d := range dirs {
			task(byDir[d])
		}
		return results
	}

	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	for _, d := range dirs {
		idxs := byDir[d]
		sem <- struct{}{}
		wg.Add(1)
		go func(idxs []int) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() { recover() }()
			task(idxs)
		}(idxs)
	}
	wg.Wait()
	return results
}
