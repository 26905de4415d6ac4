package sphere

// Intersection returns the two antipodal points where the great circle
// through (p1, p2) crosses the great circle through (p3, p4). ok is false
// when the two great circles coincide (the caller must treat that as a
// colinear edge case, not an error — see spec.md §4.1).
func Intersection(p1, p2, p3, p4 Point) (a, b Point, ok bool) {
	na := p1.Vec.Cross(p2.Vec)
	nb := p3.Vec.Cross(p4.Vec)
	c := na.Cross(nb)
	if c.Norm() < Epsilon {
		return Point{}, Point{}, false
	}
	u := NewPointFromVector(c)
	return u, u.Antipode(), true
}
