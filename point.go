package curvetrace

// Point is a single sample in a PointCloud: three real coordinates (z is
// fixed to 0 in 2D mode), an immutable original index used for tie-breaking
// and ordered-input filtering, and the set of cluster ids it has been
// assigned to. Equality is exact componentwise on coordinates.
type Point struct {
	pos   vec3
	index int
	ids   idSet
}

// NewPoint constructs a 3D point with the given original index.
func NewPoint(x, y, z float64, index int) Point {
	return Point{pos: vec3{x, y, z}, index: index}
}

// X, Y, Z return the point's coordinates.
func (p Point) X() float64 { return p.pos.x }
func (p Point) Y() float64 { return p.pos.y }
func (p Point) Z() float64 { return p.pos.z }

// Index returns the point's immutable original index.
func (p Point) Index() int { return p.index }

// ClusterIDs returns the sorted cluster ids this point belongs to. An empty
// result means the point is noise.
func (p Point) ClusterIDs() []int { return p.ids.values() }

// Label returns the point's serialised label: -1 if it belongs to no
// cluster (noise), or its sole cluster id if it belongs to exactly one.
// For a point with more than one id it returns the smallest; ClusterIDs
// gives the full set.
func (p Point) Label() int {
	if p.ids.len() == 0 {
		return -1
	}
	return p.ids.values()[0]
}

func (p Point) equal(o Point) bool { return p.pos == o.pos }

func (p Point) add(o Point) vec3      { return p.pos.add(o.pos) }
func (p Point) sub(o Point) vec3      { return p.pos.sub(o.pos) }
func (p Point) scalarProduct(o Point) float64 { return p.pos.dot(o.pos) }
