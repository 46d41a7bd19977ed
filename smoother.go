package curvetrace

import "sync"

// Smooth replaces every point of cloud with the centroid of its neighbors
// within radius r (inclusive), returning a new cloud of identical length,
// order, original indices and Ordered/Is2D flags. The query point itself is
// always included in its own neighborhood, so the neighbor set is never
// empty. If r is 0, the result is an exact copy of cloud.
//
// workers controls how many goroutines compute per-point centroids; values
// <= 1 run sequentially. Partitioning follows the teacher package's
// parallel.go pattern: each worker owns a disjoint contiguous range of
// output rows, so no synchronization is needed on the shared output slice.
func Smooth(cloud *PointCloud, r float64, workers int) *PointCloud {
	n := cloud.Len()
	out := cloud.clone()

	if r == 0 || n == 0 {
		return out
	}

	data := cloud.flatData()
	tree := newKDTree(data, n, 40)

	smoothOne := func(i int) Point {
		q := data[3*i : 3*i+3]
		neighbors := tree.queryRadius(q, r)

		var sum vec3
		for _, idx := range neighbors {
			sum = sum.add(cloud.points[idx].pos)
		}
		centroid := sum.divide(float64(len(neighbors)))

		p := cloud.points[i]
		p.pos = centroid
		return p
	}

	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			out.points[i] = smoothOne(i)
		}
		return out
	}

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out.points[i] = smoothOne(i)
			}
		}(start, end)
	}
	wg.Wait()

	return out
}
