package mesh

import "github.com/benedrone/sphmesh/internal/sphere"

// Vertex is a named location on the sphere plus the ring of polygon
// sectors incident to it. It composes a sphere.Point rather than extending
// it (spec.md §9: "treat Vertex as a record that contains a Point, not a
// subtype") — downstream geometry code takes the Point field's
// coordinates directly.
type Vertex struct {
	ID       int
	Point    sphere.Point
	Incident []PolygonRef
}

// Corner reports whether at least one incident sector is an obstacle.
func (v Vertex) Corner() bool {
	for _, r := range v.Incident {
		if r.IsObstacle() {
			return true
		}
	}
	return false
}

// Ambiguous reports whether more than one incident sector is an obstacle.
func (v Vertex) Ambiguous() bool {
	count := 0
	for _, r := range v.Incident {
		if r.IsObstacle() {
			count++
		}
	}
	return count > 1
}

// validIncidentRing reports whether no two adjacent incident entries are
// both obstacles — two obstacle sectors cannot share a vertex sector
// without an intervening traversable polygon.
func validIncidentRing(incident []PolygonRef) bool {
	n := len(incident)
	if n == 0 {
		return true
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if incident[i].IsObstacle() && incident[j].IsObstacle() {
			return false
		}
	}
	return true
}
