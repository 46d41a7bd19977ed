package curvetrace

import "gonum.org/v1/gonum/stat"

// cutDendrogram flattens the n-1 merges in rows into a partition of the n
// leaves 0..n-1, returning for each leaf the dense 0-based id of the
// cluster it lands in (ids are assigned in order of each cluster's first
// leaf, ascending).
//
// Without autoCut, the cut point is the first merge whose distance is at
// least t: every merge before that point is kept, every merge from that
// point on is undone. With autoCut, the cut point instead comes from the
// "unexpected jump" rule of original_source/src/cluster.cpp's compute_hc:
// starting at the dendrogram's midpoint merge, walk merges in merge
// order and stop at the first one whose distance exceeds the
// previous merge's distance by more than twice the sample standard
// deviation of every merge distance seen so far. Both the 1e-8 floor and
// the factor of 2 are load-bearing constants carried over unchanged.
func cutDendrogram(rows []dendrogramRow, n int, t float64, autoCut bool) []int {
	if n <= 1 {
		return make([]int, n)
	}

	cdists := make([]float64, len(rows))
	for i, r := range rows {
		cdists[i] = r.dist
	}

	var k int
	if autoCut {
		k = len(rows) / 2
		for ; k < len(rows); k++ {
			prev := 0.0
			if k > 0 {
				prev = cdists[k-1]
			}
			if (prev > 0.0 || cdists[k] > 1.0e-8) &&
				cdists[k] > prev+2*stat.StdDev(cdists[:k+1], nil) {
				break
			}
		}
	} else {
		for k = 0; k < len(rows); k++ {
			if cdists[k] >= t {
				break
			}
		}
	}

	return flattenMerges(rows, n, k)
}

// flattenMerges applies the first k merges of rows (in merge order) to n
// leaves via union-find and returns a dense 0-based label per
// leaf, assigned in order of each resulting cluster's lowest-index leaf.
//
// rows[i].left/right may themselves be synthetic ids (n+i' for some
// earlier row i') rather than raw leaves, per the scipy linkage-matrix
// convention; resolve tracks, for each synthetic id created so far, which
// union-find root it currently resolves to.
func flattenMerges(rows []dendrogramRow, n, k int) []int {
	uf := newUnionFind(n)
	resolve := make(map[int]int, k)
	leafOf := func(id int) int {
		if id < n {
			return id
		}
		return resolve[id]
	}

	for i := 0; i < k && i < len(rows); i++ {
		r := rows[i]
		root := uf.union(leafOf(r.left), leafOf(r.right))
		resolve[n+i] = root
	}

	labels := make([]int, n)
	rootLabel := make(map[int]int)
	next := 0
	for i := 0; i < n; i++ {
		root := uf.find(i)
		lbl, ok := rootLabel[root]
		if !ok {
			lbl = next
			rootLabel[root] = lbl
			next++
		}
		labels[i] = lbl
	}
	return labels
}
