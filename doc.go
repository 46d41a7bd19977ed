// Package curvetrace implements the geometric core of a curve-reconstruction
// pipeline: it turns an unordered 2D or 3D point sample into a labeling in
// which points on the same underlying curve share a cluster id, while
// isolated points are tagged as noise. Points at curve intersections may
// carry more than one label.
//
// The pipeline has four stages: neighborhood smoothing, generation of
// locally-collinear point triplets, hierarchical clustering of those
// triplets under a bespoke geometric dissimilarity, and projection of
// triplet clusters back to point clusters with optional gap-splitting
// along each cluster's Euclidean minimum spanning tree.
//
// Basic usage:
//
//	cloud, err := curvetrace.NewPointCloud(points, curvetrace.Is2D(true))
//	cfg := curvetrace.DefaultConfig()
//	result, err := curvetrace.Cluster(cloud, cfg, false)
//	// result.Cloud.At(i).ClusterIDs() is the set of cluster ids for point i;
//	// an empty set means noise (serialised as label -1).
//
// curvetrace does not read CSV, parse command-line options, or emit plots —
// those are external collaborators. It also does not fit parametric curves
// or guarantee a globally optimal clustering; it processes a full point set
// in a single, non-incremental pass.
package curvetrace
