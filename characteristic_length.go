package curvetrace

import "fmt"

// CharacteristicLength computes a scalar length scale for cloud: for every
// point, the squared distance to its single nearest other point, then the
// value at position ⌊N/4⌋ of that list in nth-element order (a lower
// quartile found by partial selection, not a full sort). Callers typically
// take √ of the result to get a length scale for defaulting radii.
//
// Returns an error if the quartile value is 0, which indicates duplicate
// points in cloud.
func CharacteristicLength(cloud *PointCloud) (float64, error) {
	n := cloud.Len()
	if n < 2 {
		return 0, fmt.Errorf("curvetrace: CharacteristicLength needs at least 2 points, got %d", n)
	}

	data := cloud.flatData()
	tree := newKDTree(data, n, 40)

	msd := make([]float64, n)
	for i := 0; i < n; i++ {
		q := data[3*i : 3*i+3]
		neighbors := tree.queryKNN(q, 2)
		for _, nb := range neighbors {
			if nb.index == i {
				continue
			}
			msd[i] = nb.sqDist
			break
		}
	}

	q1 := n / 4
	quartile := nthElement(msd, q1)

	if quartile == 0 {
		return 0, fmt.Errorf("curvetrace: characteristic length is 0, cloud contains duplicate points")
	}
	return quartile, nil
}

// nthElement partitions a in place (Hoare quickselect) so that a[k] holds
// the value that would occupy position k in a fully sorted copy of a, and
// returns that value. a's order is otherwise unspecified, matching
// std::nth_element semantics.
func nthElement(a []float64, k int) float64 {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := hoarePartition(a, lo, hi)
		switch {
		case k == p:
			return a[k]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return a[k]
}

func hoarePartition(a []float64, lo, hi int) int {
	pivot := a[(lo+hi)/2]
	a[(lo+hi)/2], a[hi] = a[hi], a[(lo+hi)/2]

	store := lo
	for i := lo; i < hi; i++ {
		if a[i] < pivot {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]
	return store
}
