package nametime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		stem string
		want time.Time
		ok   bool
	}{
		{"IMG_20230615_143022", time.Date(2023, 6, 15, 14, 30, 22, 0, time.Local), true},
		{"20230615_143022_edited", time.Date(2023, 6, 15, 14, 30, 22, 0, time.Local), true},
		{"vacation-20230615", time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local), true},
		{"photo", time.Time{}, false},
		{"IMG_20231332_010203", time.Time{}, false},
		{"IMG_20230230_010203", time.Time{}, false},
		{"20230615_999999", time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local), true},
	}
	for _, c := range cases {
		got, ok := Parse(c.stem)
		if ok != c.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", c.stem, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.stem, got, c.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	got, ok := ParsePath("/photos/2023/IMG_20230615_143022.jpg")
	if !ok {
		t.Fatal("expected a match")
	}
	want := time.Date(2023, 6, 15, 14, 30, 22, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
