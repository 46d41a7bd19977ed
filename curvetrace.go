package curvetrace

// ClusterGroup is an ordered sequence of clusters, each an ordered
// sequence of indices: a triplet-index cluster before projection (4.H),
// or a point-index cluster afterwards. It is reshaped in place by the
// hierarchical cluster engine, projection, pruning, gap-splitting and
// overlap extraction.
type ClusterGroup [][]int

// Result is the output of Cluster: the input cloud with per-point
// cluster ids written in, and the ClusterGroup those ids refer to. A
// point with an empty id set is noise and serialises to label -1.
type Result struct {
	Cloud  *PointCloud
	Groups ClusterGroup
}

// Cluster runs the full pipeline — smoothing, triplet generation,
// hierarchical clustering, projection, pruning and (optionally)
// gap-splitting — over cloud and writes the resulting cluster ids back
// onto a copy of cloud.
//
// Mirrors the driver sequence in original_source/src/main.cpp: smoothing
// and triplet generation run on a smoothed copy, but the gap-splitter and
// the final id writeback operate on the original, unsmoothed coordinates
// so that reported gaps reflect the input geometry, not the smoothed one.
func Cluster(cloud *PointCloud, cfg Config, extractOverlaps bool) (*Result, error) {
	cfg = applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	smoothed := Smooth(cloud, cfg.R, cfg.Workers)
	if cfg.Ordered {
		smoothed.ordered = true
	}
	triplets := GenerateTriplets(smoothed, cfg.K, cfg.N, cfg.Alpha)

	tripletClusters := clusterTriplets(triplets, cfg)
	tripletClusters = pruneSmallClusters(tripletClusters, cfg.M)

	pointClusters := make([][]int, len(tripletClusters))
	for i, members := range tripletClusters {
		pointClusters[i] = projectCluster(triplets, members)
	}

	if cfg.IsDMax {
		var split [][]int
		for _, pc := range pointClusters {
			split = append(split, gapSplit(cloud, pc, cfg.DMax, cfg.M)...)
		}
		pointClusters = split
	}

	out := cloud.clone()
	groups := make(ClusterGroup, len(pointClusters))
	for i, pc := range pointClusters {
		groups[i] = pc
		for _, pointIdx := range pc {
			out.writeClusterID(pointIdx, i)
		}
	}

	if extractOverlaps {
		groups = extractOverlapClusters(out, groups)
	}

	return &Result{Cloud: out, Groups: groups}, nil
}

// clusterTriplets runs the hierarchical cluster engine (4.G) over
// triplets and returns the resulting triplet-index clusters.
func clusterTriplets(triplets []Triplet, cfg Config) [][]int {
	n := len(triplets)
	if n == 0 {
		return nil
	}

	dm := buildTripletDistanceMatrix(triplets, cfg.S, cfg.Workers)
	rows := agglomerativeCluster(dm, n, cfg.Linkage)
	labels := cutDendrogram(rows, n, cfg.T, cfg.TAuto)

	count := 0
	for _, l := range labels {
		if l+1 > count {
			count = l + 1
		}
	}

	clusters := make([][]int, count)
	for i, l := range labels {
		clusters[l] = append(clusters[l], i)
	}
	return clusters
}

// extractOverlapClusters moves every point whose id set has size > 1 out
// of the clusters named in groups and into a new overlap cluster keyed
// by its exact id set, creating that overlap cluster on first encounter.
// Mirrors original_source/src/cluster.cpp's add_clusters gnuplot branch,
// but groups by idSet.key() in a map instead of a linear scan over
// already-discovered overlap vertices.
func extractOverlapClusters(cloud *PointCloud, groups ClusterGroup) ClusterGroup {
	overlapIndex := make(map[string]int)
	var overlaps ClusterGroup

	for i := 0; i < cloud.Len(); i++ {
		p := cloud.points[i]
		if p.ids.len() <= 1 {
			continue
		}

		key := p.ids.key()
		oi, ok := overlapIndex[key]
		if !ok {
			oi = len(overlaps)
			overlapIndex[key] = oi
			overlaps = append(overlaps, nil)
		}
		overlaps[oi] = append(overlaps[oi], i)

		for _, clusterID := range p.ids.values() {
			groups[clusterID] = removeValue(groups[clusterID], i)
		}
	}

	return append(groups, overlaps...)
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
