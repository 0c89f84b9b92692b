// Package phash computes fixed-length perceptual hashes for decoded images
// and the Hamming distance between them (spec component C3).
package phash

import (
	"image"

	"github.com/corona10/goimagehash"
)

// DefaultSideLength is the hash side length used when none is specified: a
// 16x16 DCT grid yields a 256-bit hash.
const DefaultSideLength = 16

// DefaultBits is the bit length produced by DefaultSideLength.
const DefaultBits = DefaultSideLength * DefaultSideLength

// Decoder turns raw image bytes into a decoded raster. It is the image
// decoder collaborator named by the spec, injected so callers can supply
// their own (or a fake, for tests).
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// Hash is a fixed-length perceptual hash. The zero value carries no hash.
type Hash struct {
	inner *goimagehash.ExtImageHash
	bits  int
}

// Bits reports the hash's bit length, or 0 for the zero value.
func (h Hash) Bits() int { return h.bits }

// IsZero reports whether h holds no computed hash.
func (h Hash) IsZero() bool { return h.inner == nil }

// Compute decodes data and produces a side*side-bit hash. Any decode or
// hashing failure is a soft failure — it returns (Hash{}, false), never an
// error; the file is simply excluded from the run.
func Compute(d Decoder, data []byte, side int) (Hash, bool) {
	if side <= 0 {
		side = DefaultSideLength
	}
	img, err := d.Decode(data)
	if err != nil {
		return Hash{}, false
	}
	eh, err := goimagehash.ExtPerceptionHash(img, side, side)
	if err != nil {
		return Hash{}, false
	}
	return Hash{inner: eh, bits: side * side}, true
}

// Distance returns the Hamming distance between two hashes of equal length.
// Comparing against a zero-value hash returns the full bit length of the
// non-zero side, i.e. maximally dissimilar.
func Distance(a, b Hash) int {
	if a.inner == nil || b.inner == nil {
		if a.Bits() > b.Bits() {
			return a.Bits()
		}
		return b.Bits()
	}
	d, err := a.inner.Distance(b.inner)
	if err != nil {
		return a.Bits()
	}
	return d
}
