// Package imaging provides the default image Decoder, covering the stdlib
// codecs plus the formats golang.org/x/image adds.
package imaging

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imgsimfind/internal/phash"
)

// StdDecoder decodes JPEG, PNG, GIF, BMP, TIFF and WebP via the standard
// library's image.Decode registry. Formats outside this set (HEIC, RAW)
// simply fail to decode — a soft failure the caller treats like any other.
type StdDecoder struct{}

var _ phash.Decoder = StdDecoder{}

// Decode implements phash.Decoder.
func (StdDecoder) Decode(data []byte) (stdimage.Image, error) {
	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
