// Package unionfind implements a disjoint-set used to collapse a set of
// similar pairs into clusters (spec component C7).
package unionfind

import "sort"

// DSU is an array-backed disjoint-set with path compression and
// union-by-rank, addressed by path-interned integer IDs.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU over n singleton elements {0, ..., n-1}.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of x's set, compressing the path
// iteratively as it walks up.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b.
func (d *DSU) Union(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// Clusters groups every element by its representative, drops singleton
// groups, and returns each surviving group's members sorted ascending.
func (d *DSU) Clusters() [][]int {
	groups := map[int][]int{}
	for i := range d.parent {
		r := d.Find(i)
		groups[r] = append(groups[r], i)
	}
	var out [][]int
	for _, members := range groups {
		if len(members) >= 2 {
			sort.Ints(members)
			out = append(out, members)
		}
	}
	return out
}
