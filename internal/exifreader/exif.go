// Package exifreader resolves an image path to an optional capture
// timestamp, the collaborator the spec calls the EXIF reader.
package exifreader

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Reader resolves a path to a capture timestamp.
type Reader interface {
	// ReadTime returns the capture timestamp and true, or the zero time and
	// false if none could be determined.
	ReadTime(path string) (time.Time, bool)
}

// Default is the default EXIF reader: DateTimeOriginal, falling back to
// DateTimeDigitized, falling back to DateTime.
type Default struct{}

var _ Reader = Default{}

const exifTimeLayout = "2006:01:02 15:04:05"

var fallbackFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// ReadTime implements Reader. Any open/decode/parse failure along the way is
// a soft failure — it falls through to the next field, and ultimately to
// (zero, false) rather than an error.
func (Default) ReadTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, field := range fallbackFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		t, err := time.ParseInLocation(exifTimeLayout, s, time.Local)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}
