package curvetrace

import "math"

// tripletDissimilarity is the dissimilarity measure used by the
// hierarchical clustering stage to compare two triplets: it combines how
// far apart their supporting lines are (perpendicular distance, scaled by
// scale) with how sharply their directions diverge (the tangent of the
// angle between them).
//
// When the two directions are almost perpendicular (|cos| < 1e-8), the
// tangent term blows up; rather than propagate Inf/NaN into the
// clustering machinery, the function saturates at 1e8. That sentinel and
// the clamp on anglecos must be preserved exactly as in
// original_source/src/triplet.cpp's ScaleTripletMetric::operator(), since
// the automatic dendrogram cut's statistics are sensitive to its exact
// magnitude.
func tripletDissimilarity(lhs, rhs Triplet, scale float64) float64 {
	v := rhs.Center.sub(lhs.Center)
	perpA := v.sub(lhs.Direction.scale(v.dot(lhs.Direction))).squaredNorm()

	w := lhs.Center.sub(rhs.Center)
	perpB := w.sub(rhs.Direction.scale(w.dot(rhs.Direction))).squaredNorm()

	anglecos := lhs.Direction.dot(rhs.Direction)
	if anglecos > 1.0 {
		anglecos = 1.0
	}
	if anglecos < -1.0 {
		anglecos = -1.0
	}

	if math.Abs(anglecos) < 1.0e-8 {
		return 1.0e8
	}

	perp := perpA
	if perpB > perp {
		perp = perpB
	}

	return math.Sqrt(perp)/scale + math.Abs(math.Tan(math.Acos(anglecos)))
}
