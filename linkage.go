package curvetrace

import "math"

// Linkage selects how the distance between two clusters is derived from
// the distances between their members during hierarchical clustering.
type Linkage int

const (
	// SingleLinkage uses the minimum pairwise distance between the two
	// clusters' members.
	SingleLinkage Linkage = iota
	// CompleteLinkage uses the maximum pairwise distance.
	CompleteLinkage
	// AverageLinkage uses the size-weighted mean pairwise distance.
	AverageLinkage
)

// dendrogramRow is one merge step in scipy linkage-matrix format: the two
// cluster ids being merged, the distance at which they merge, and the
// size of the resulting cluster. Ids 0..n-1 are the original leaves; ids
// n..2n-2 are clusters created by earlier merges, in creation order.
type dendrogramRow struct {
	left, right int
	dist        float64
	size        int
}

// agglomerativeCluster runs generic agglomerative clustering over the
// condensed distance matrix dm, using Lance-Williams updates to fold a
// newly merged cluster's row back into the matrix after each step. It
// returns n-1 dendrogram rows in merge order.
//
// The teacher package builds a single-linkage dendrogram from an MST's
// sorted edges (label.go). That shortcut only holds for single linkage,
// so this rewrites the merge loop as the generic nearest-pair scan scipy
// uses for complete and average linkage, keeping the same dendrogram row
// shape and the same "new cluster id = n + merge count" convention.
func agglomerativeCluster(dm *condensedMatrix, n int, linkage Linkage) []dendrogramRow {
	if n < 2 {
		return nil
	}

	size := make([]int, n)
	id := make([]int, n)
	active := make([]bool, n)
	for i := 0; i < n; i++ {
		size[i] = 1
		id[i] = i
		active[i] = true
	}

	rows := make([]dendrogramRow, 0, n-1)
	nextLabel := n

	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if d := dm.at(i, j); d < best {
					best, bi, bj = d, i, j
				}
			}
		}

		left, right := id[bi], id[bj]
		if left > right {
			left, right = right, left
		}
		newSize := size[bi] + size[bj]
		rows = append(rows, dendrogramRow{left: left, right: right, dist: best, size: newSize})

		for k := 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			dik, djk := dm.at(bi, k), dm.at(bj, k)
			var nd float64
			switch linkage {
			case CompleteLinkage:
				nd = math.Max(dik, djk)
			case AverageLinkage:
				nd = (float64(size[bi])*dik + float64(size[bj])*djk) / float64(newSize)
			default: // SingleLinkage
				nd = math.Min(dik, djk)
			}
			dm.set(bi, k, nd)
		}

		size[bi] = newSize
		id[bi] = nextLabel
		nextLabel++
		active[bj] = false
	}

	return rows
}
