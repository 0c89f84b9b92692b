// Package compare turns a pair of perceptual hashes into a similarity score
// and a threshold verdict (spec component C5).
package compare

import (
	"math"

	"imgsimfind/internal/phash"
)

// Result is the outcome of comparing two hashes that passed the threshold.
type Result struct {
	Similarity float64
	Distance   int
	Duplicate  bool
}

// Pair compares two hashes. ok is false when the Hamming distance exceeds
// threshold, meaning the pair is not similar enough to report.
func Pair(h1, h2 phash.Hash, threshold int) (Result, bool) {
	d := phash.Distance(h1, h2)
	if d > threshold {
		return Result{}, false
	}
	return Result{
		Similarity: Similarity(d, h1.Bits()),
		Distance:   d,
		Duplicate:  d == 0,
	}, true
}

// Similarity computes max(0, 1 - distance/bits), rounded to 4 decimal
// places.
func Similarity(distance, bits int) float64 {
	if bits <= 0 {
		return 0
	}
	s := 1.0 - float64(distance)/float64(bits)
	if s < 0 {
		s = 0
	}
	return math.Round(s*10000) / 10000
}
