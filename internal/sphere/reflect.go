package sphere

// Reflect mirrors p across the great-circle plane through r and l. It is
// used to fold the goal across a search interval when the heuristic needs
// to measure a path that is forced to touch the interval.
//
// Reflect is an involution: Reflect(Reflect(p, r, l), r, l) == p.
func Reflect(p, r, l Point) Point {
	n := r.Vec.Cross(l.Vec).Normalize()
	proj := p.Vec.Dot(n)
	return NewPointFromVector(p.Vec.Sub(n.Scale(2 * proj)))
}
