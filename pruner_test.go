package curvetrace

import "testing"

func TestPruneSmallClustersDropsUndersized(t *testing.T) {
	clusters := [][]int{
		{1, 2, 3, 4, 5}, // size 5
		{1, 2},          // size 2
		{1, 2, 3},       // size 3
	}
	got := pruneSmallClusters(clusters, 3)
	if len(got) != 2 {
		t.Fatalf("got %d surviving clusters, want 2", len(got))
	}
	if len(got[0]) != 5 || len(got[1]) != 3 {
		t.Fatalf("unexpected surviving clusters: %v", got)
	}
}

func TestPruneSmallClustersKeepsOrder(t *testing.T) {
	clusters := [][]int{{1, 2, 3}, {4, 5, 6, 7}}
	got := pruneSmallClusters(clusters, 1)
	if len(got) != 2 {
		t.Fatalf("got %d clusters, want 2", len(got))
	}
	if got[0][0] != 1 || got[1][0] != 4 {
		t.Fatalf("pruning should preserve relative order, got %v", got)
	}
}
