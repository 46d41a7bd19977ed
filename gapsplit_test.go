package curvetrace

import "testing"

// lineWithGap builds a 1D point cloud split into two 5-point segments with
// a 10-unit gap between them.
func lineWithGap() *PointCloud {
	pts := make([]Point, 10)
	for i := 0; i < 5; i++ {
		pts[i] = NewPoint(float64(i), 0, 0, i)
	}
	for i := 0; i < 5; i++ {
		pts[5+i] = NewPoint(float64(14+i), 0, 0, 5+i)
	}
	cloud, _ := NewPointCloud(pts, Is2D(true))
	return cloud
}

func TestGapSplitSeparatesAtGap(t *testing.T) {
	cloud := lineWithGap()
	all := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	got := gapSplit(cloud, all, 2.0, 3) // minSize = m+2 = 5

	if len(got) != 2 {
		t.Fatalf("got %d clusters after gap split, want 2: %v", len(got), got)
	}
	for _, c := range got {
		if len(c) != 5 {
			t.Fatalf("each side of the gap should have 5 points, got %v", c)
		}
	}
}

func TestGapSplitKeepsWholeClusterWhenNothingExceedsDMax(t *testing.T) {
	cloud := lineWithGap()
	all := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	// dmax large enough that no MST edge is pruned.
	got := gapSplit(cloud, all, 100.0, 3)

	if len(got) != 1 || len(got[0]) != 10 {
		t.Fatalf("expected a single unsplit cluster of 10, got %v", got)
	}
}

func TestGapSplitKeepsUndersizedComponentsWhenNothingWasRemoved(t *testing.T) {
	// A tiny 3-point cluster where dmax never prunes anything: even
	// though min_size (m+2=7) exceeds the cluster itself, nothing was
	// removed, so the whole thing must still come out as one cluster.
	pts := []Point{
		NewPoint(0, 0, 0, 0),
		NewPoint(1, 0, 0, 1),
		NewPoint(2, 0, 0, 2),
	}
	cloud, _ := NewPointCloud(pts, Is2D(true))

	got := gapSplit(cloud, []int{0, 1, 2}, 100.0, 5)
	if len(got) != 1 || len(got[0]) != 3 {
		t.Fatalf("expected the untouched 3-point cluster to survive, got %v", got)
	}
}

func TestGapSplitSingleton(t *testing.T) {
	cloud := lineWithGap()
	got := gapSplit(cloud, []int{3}, 1.0, 1)
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != 3 {
		t.Fatalf("gapSplit of a singleton = %v, want [[3]]", got)
	}
}
