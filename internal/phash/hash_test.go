package phash

import (
	"image"
	"image/color"
	"testing"
)

type fakeDecoder struct {
	img image.Image
	err error
}

func (f fakeDecoder) Decode(data []byte) (image.Image, error) {
	return f.img, f.err
}

func checkerboard(size int, invert bool) image.Image {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dark := (x/4+y/4)%2 == 0
			if invert {
				dark = !dark
			}
			v := uint8(220)
			if dark {
				v = 30
			}
			img.Set(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestComputeAndDistance(t *testing.T) {
	d1 := fakeDecoder{img: checkerboard(64, false)}
	d2 := fakeDecoder{img: checkerboard(64, false)}
	d3 := fakeDecoder{img: checkerboard(64, true)}

	h1, ok := Compute(d1, []byte("a"), DefaultSideLength)
	if !ok {
		t.Fatal("expected Compute to succeed")
	}
	if h1.Bits() != DefaultBits {
		t.Errorf("Bits() = %d, want %d", h1.Bits(), DefaultBits)
	}

	h2, ok := Compute(d2, []byte("b"), DefaultSideLength)
	if !ok {
		t.Fatal("expected Compute to succeed")
	}
	if d := Distance(h1, h2); d != 0 {
		t.Errorf("identical images should have distance 0, got %d", d)
	}

	h3, ok := Compute(d3, []byte("c"), DefaultSideLength)
	if !ok {
		t.Fatal("expected Compute to succeed")
	}
	if d := Distance(h1, h3); d == 0 {
		t.Errorf("inverted checkerboards should not hash identically")
	}
}

func TestComputeDecodeFailure(t *testing.T) {
	d := fakeDecoder{err: image.ErrFormat}
	_, ok := Compute(d, []byte("x"), DefaultSideLength)
	if ok {
		t.Error("expected Compute to report failure on decode error")
	}
}
