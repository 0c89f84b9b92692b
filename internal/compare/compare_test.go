package compare

import "testing"

func TestSimilarity(t *testing.T) {
	cases := []struct {
		distance, bits int
		want           float64
	}{
		{0, 256, 1.0},
		{256, 256, 0.0},
		{128, 256, 0.5},
		{300, 256, 0}, // distance beyond bits clamps to 0, never negative
		{15, 256, 0.9414},
	}
	for _, c := range cases {
		if got := Similarity(c.distance, c.bits); got != c.want {
			t.Errorf("Similarity(%d, %d) = %v, want %v", c.distance, c.bits, got, c.want)
		}
	}
}
