package unionfind

import (
	"reflect"
	"testing"
)

func TestClusters(t *testing.T) {
	d := New(6)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(4, 5)
	// 3 stays a singleton and must not appear in the output.

	got := d.Clusters()
	want := [][]int{{0, 1, 2}, {4, 5}}

	if len(got) != len(want) {
		t.Fatalf("got %d clusters, want %d: %v", len(got), len(want), got)
	}

	bySize := map[int][]int{}
	for _, g := range got {
		bySize[len(g)] = g
	}
	if !reflect.DeepEqual(bySize[3], []int{0, 1, 2}) {
		t.Errorf("size-3 cluster = %v, want [0 1 2]", bySize[3])
	}
	if !reflect.DeepEqual(bySize[2], []int{4, 5}) {
		t.Errorf("size-2 cluster = %v, want [4 5]", bySize[2])
	}
}

func TestFindPathCompression(t *testing.T) {
	d := New(4)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)
	root := d.Find(0)
	for i := 1; i < 4; i++ {
		if d.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d", i, d.Find(i), root)
		}
	}
}
