package curvetrace

import "fmt"

// PointCloud is an ordered sequence of Points carrying two flags: Is2D
// (every z coordinate is 0 by construction) and Ordered (the input is a
// chronological/parametric sequence, enabling index-ordered triplet
// filtering). A PointCloud is built once at ingest and is read-only
// thereafter except for the cluster-id writeback, which Cluster performs
// on its own copy after gap-splitting.
type PointCloud struct {
	points  []Point
	is2d    bool
	ordered bool
}

// CloudOption configures a PointCloud at construction time.
type CloudOption func(*PointCloud)

// Is2D marks every point's z coordinate as 0 by construction.
func Is2D(v bool) CloudOption { return func(c *PointCloud) { c.is2d = v } }

// Ordered marks the input as a chronological/parametric sequence.
func Ordered(v bool) CloudOption { return func(c *PointCloud) { c.ordered = v } }

// NewPointCloud builds a PointCloud from a copy of points; each point keeps
// the original index it was constructed with. It returns an error if Is2D(true) is requested but some point has a
// non-zero z coordinate.
func NewPointCloud(points []Point, opts ...CloudOption) (*PointCloud, error) {
	c := &PointCloud{points: append([]Point(nil), points...)}
	for _, opt := range opts {
		opt(c)
	}
	if c.is2d {
		for i, p := range c.points {
			if p.Z() != 0 {
				return nil, fmt.Errorf("curvetrace: point %d has non-zero z=%g in a 2D cloud", i, p.Z())
			}
		}
	}
	return c, nil
}

// Len returns the number of points in the cloud.
func (c *PointCloud) Len() int { return len(c.points) }

// IsOrdered reports whether the cloud is a chronological/parametric sequence.
func (c *PointCloud) IsOrdered() bool { return c.ordered }

// Is2D reports whether every point's z coordinate is 0 by construction.
func (c *PointCloud) Is2D() bool { return c.is2d }

// At returns the point at position i.
func (c *PointCloud) At(i int) Point { return c.points[i] }

// Points returns the underlying point slice. Callers must not mutate it;
// use clone or the cluster-id writeback helpers instead.
func (c *PointCloud) Points() []Point { return c.points }

// clone returns a deep copy preserving flags, indices and cluster ids.
func (c *PointCloud) clone() *PointCloud {
	pts := make([]Point, len(c.points))
	copy(pts, c.points)
	return &PointCloud{points: pts, is2d: c.is2d, ordered: c.ordered}
}

// flatData returns the cloud's coordinates as a flat row-major [x0,y0,z0,
// x1,y1,z1,...] array for consumption by the KD-tree.
func (c *PointCloud) flatData() []float64 {
	out := make([]float64, 3*len(c.points))
	for i, p := range c.points {
		out[3*i] = p.pos.x
		out[3*i+1] = p.pos.y
		out[3*i+2] = p.pos.z
	}
	return out
}

// dims returns 2 for a 2D cloud and 3 otherwise — used only for
// informational purposes; the KD-tree always stores 3 coordinates so
// that 2D and 3D clouds share the same indexing logic with z pinned to 0.
func (c *PointCloud) dims() int {
	if c.is2d {
		return 2
	}
	return 3
}

// writeClusterID inserts clusterID into the id set of point i.
func (c *PointCloud) writeClusterID(i, clusterID int) {
	c.points[i].ids.insert(clusterID)
}
