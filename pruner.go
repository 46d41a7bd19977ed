package curvetrace

// pruneSmallClusters drops every triplet cluster with fewer than m member
// triplets. members maps a cluster id to the triplet indices assigned to
// it; the returned slice preserves the relative order of the surviving
// clusters.
//
// Adapted from original_source/src/cluster.cpp's cleanup_cluster_group,
// which erases undersized clusters from a std::vector<cluster> in place.
func pruneSmallClusters(members [][]int, m int) [][]int {
	out := make([][]int, 0, len(members))
	for _, cluster := range members {
		if len(cluster) >= m {
			out = append(out, cluster)
		}
	}
	return out
}
