package curvetrace

import "sort"

// Triplet is an ordered 3-tuple (A, B, C) of point indices into the
// smoothed cloud with (C − B) nearly parallel to (B − A): a center (the
// arithmetic mean of the three points), a unit Direction (normalised
// C − B), and an Error in [0, 2] equal to 1 − cos(angle between B−A and
// C−B). When the cloud is ordered, A ≤ B ≤ C.
type Triplet struct {
	A, B, C   int
	Center    vec3
	Direction vec3
	Error     float64
}

// GenerateTriplets produces a bounded set of approximately collinear
// ordered point-triples per midpoint from the smoothed cloud.
//
// For every midpoint index b, it queries the k nearest neighbors of
// cloud[b] (including cloud[b] itself, which is always skipped as a
// zero-distance duplicate), considers every ordered pair (a, c) of
// distinct neighbors at increasing result positions, and keeps those
// whose collinearity error is at most alpha. Of the candidates collected
// for a given midpoint, at most n — the per-midpoint cap — are kept,
// chosen by ascending error.
//
// Adapted from original_source/src/triplet.cpp's generate_triplets,
// restructured around the package's own KD-tree instead of a third-party
// one.
func GenerateTriplets(cloud *PointCloud, k, n int, alpha float64) []Triplet {
	total := cloud.Len()
	if total == 0 || k < 2 {
		return nil
	}

	data := cloud.flatData()
	tree := newKDTree(data, total, 40)

	var triplets []Triplet

	for b := 0; b < total; b++ {
		q := data[3*b : 3*b+3]
		neighbors := tree.queryKNN(q, k)

		var candidates []Triplet

		for resultIndexA := 0; resultIndexA < len(neighbors); resultIndexA++ {
			na := neighbors[resultIndexA]
			if na.sqDist == 0 {
				continue
			}
			a := na.index
			if cloud.ordered && !(a <= b) {
				continue
			}

			pa, pb := cloud.points[a], cloud.points[b]
			u, ok := pb.sub(pa).unit()
			if !ok {
				continue
			}

			for resultIndexC := resultIndexA + 1; resultIndexC < len(neighbors); resultIndexC++ {
				nc := neighbors[resultIndexC]
				if nc.sqDist == 0 {
					continue
				}
				c := nc.index
				if cloud.ordered && !(b <= c) {
					continue
				}

				pc := cloud.points[c]
				v, ok := pc.sub(pb).unit()
				if !ok {
					continue
				}

				err := 1 - u.dot(v)
				if err > alpha {
					continue
				}

				center := pa.add(pb).add(pc.pos).divide(3)
				candidates = append(candidates, Triplet{
					A: a, B: b, C: c,
					Center:    center,
					Direction: v,
					Error:     err,
				})
			}
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Error < candidates[j].Error
		})

		cap := n
		if cap > len(candidates) {
			cap = len(candidates)
		}
		triplets = append(triplets, candidates[:cap]...)
	}

	return triplets
}
