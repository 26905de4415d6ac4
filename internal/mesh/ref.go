package mesh

// PolygonRef is a neighbour-slot value: either a traversable polygon id or
// the obstacle marker. spec.md's data model describes neighbours as plain
// ints with -1 as an "obstacle sentinel polygon id"; per spec.md §9's design
// note that conflates missing-ness with value, so here it is an explicit
// tagged variant instead, and no sentinel Polygon object exists anywhere in
// the mesh's polygon table. The wire format (§6) still uses -1; the parser
// converts it to Obstacle at the boundary and nothing downstream ever sees
// a bare -1 again.
type PolygonRef struct {
	id       int
	obstacle bool
}

// Obstacle is the neighbour value for a mesh border or an obstacle sector.
var Obstacle = PolygonRef{obstacle: true}

// Traversable wraps a real polygon id.
func Traversable(id int) PolygonRef {
	return PolygonRef{id: id}
}

func (r PolygonRef) IsObstacle() bool { return r.obstacle }

// ID returns the wrapped polygon id. Calling it on Obstacle is a caller
// error; it returns -1 for compatibility with debug formatting, not for use
// as an index.
func (r PolygonRef) ID() int {
	if r.obstacle {
		return -1
	}
	return r.id
}
