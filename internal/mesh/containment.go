package mesh

import "github.com/benedrone/sphmesh/internal/sphere"

// PointClass classifies a point's relationship to a polygon.
type PointClass int

const (
	Outside PointClass = iota
	Inside
	OnVertex
	OnEdge
)

// Containment is the result of testing a point against one polygon.
// AdjPoly is the neighbour across the edge for OnEdge (may itself be
// Obstacle) and is Obstacle otherwise. Verts holds the two edge endpoints
// for OnEdge, the single vertex id for OnVertex, and is empty otherwise.
type Containment struct {
	Type    PointClass
	AdjPoly PolygonRef
	Verts   []int
}

// ContainsPoint walks poly's ring once, classifying p against each directed
// edge (V[i], V[i+1]), per spec.md §4.2.
func (m *Mesh) ContainsPoint(poly *Polygon, p sphere.Point) Containment {
	n := poly.Len()

	pending := false
	var pendingNeighbour PolygonRef
	var pendingVerts []int

	for i := 0; i < n; i++ {
		v1id, v2id := poly.Edge(i)
		v1, v2 := m.Vertices[v1id].Point, m.Vertices[v2id].Point

		if p.Equal(v1) {
			return Containment{Type: OnVertex, AdjPoly: Obstacle, Verts: []int{v1id}}
		}

		if pending {
			pending = false
			return Containment{Type: OnEdge, AdjPoly: pendingNeighbour, Verts: pendingVerts}
		}

		switch sphere.Orient(v1, v2, p) {
		case sphere.Clockwise:
			return Containment{Type: Outside, AdjPoly: Obstacle}
		case sphere.Colinear:
			if sphere.IsBounded(p, v1, v2) {
				pending = true
				pendingNeighbour = poly.Neighbour(i)
				pendingVerts = []int{v1id, v2id}
			}
		}
	}

	if pending {
		return Containment{Type: OnEdge, AdjPoly: pendingNeighbour, Verts: pendingVerts}
	}

	return Containment{Type: Inside, AdjPoly: Obstacle}
}
