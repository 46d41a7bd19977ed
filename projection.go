package curvetrace

import "sort"

// projectCluster collects the distinct point indices referenced by a
// group of triplets — the union of each triplet's A, B and C — sorted
// ascending. This is the bridge from a triplet cluster (a set of
// approximately collinear 3-point samples) back to the point indices that
// make up the corresponding curve segment.
func projectCluster(triplets []Triplet, members []int) []int {
	seen := make(map[int]struct{}, 3*len(members))
	for _, idx := range members {
		t := triplets[idx]
		seen[t.A] = struct{}{}
		seen[t.B] = struct{}{}
		seen[t.C] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
