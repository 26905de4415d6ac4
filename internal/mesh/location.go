package mesh

import "github.com/benedrone/sphmesh/internal/sphere"

// LocationType is the classification returned by Mesh.Locate, per
// spec.md §4.3.
type LocationType int

const (
	InObstacle LocationType = iota
	InPolygon
	OnMeshBorder
	OnSharedEdge
	OnAmbigCornerVertex
	OnUnambigCornerVertex
	OnNonCornerVertex
)

// Location is the result of locating a point in the mesh. Polygons holds
// the traversable polygons relevant to the location — exactly the set
// spec.md §4.6 (initial node generation) iterates over: one for InPolygon,
// two for OnSharedEdge, all non-obstacle incident polygons for a vertex kind.
// Vertex is the vertex id for the ON_*_VERTEX kinds, or -1. Edge holds the
// two edge endpoint vertex ids for OnSharedEdge/OnMeshBorder, or {-1,-1}.
type Location struct {
	Type     LocationType
	Polygons []int
	Vertex   int
	Edge     [2]int
}

// Locate classifies p against the mesh. When the band index is enabled it
// is consulted first; if it returns no conclusive result (a point exactly
// on a band boundary, or a bounding-box edge case), Locate falls back to a
// full linear scan, so the band index can never change the outcome, only
// the work done to reach it.
func (m *Mesh) Locate(p sphere.Point) Location {
	if m.bands != nil {
		candidates := m.bands.candidatePolygons(p.Lat, p.Lon)
		if loc, ok := m.locateAmong(p, candidates); ok {
			return loc
		}
	}

	all := make([]int, len(m.Polygons))
	for i := range m.Polygons {
		all[i] = m.Polygons[i].ID
	}
	if loc, ok := m.locateAmong(p, all); ok {
		return loc
	}
	return Location{Type: InObstacle, Vertex: -1, Edge: [2]int{-1, -1}}
}

// locateAmong runs ContainsPoint against each of the given polygon ids and
// resolves the result. ok is false only when none of the candidates
// produced a conclusive (non-outside) classification.
func (m *Mesh) locateAmong(p sphere.Point, ids []int) (Location, bool) {
	for _, id := range ids {
		poly := &m.Polygons[id]
		c := m.ContainsPoint(poly, p)

		switch c.Type {
		case Inside:
			return Location{Type: InPolygon, Polygons: []int{poly.ID}, Vertex: -1, Edge: [2]int{-1, -1}}, true

		case OnVertex:
			vid := c.Verts[0]
			v := &m.Vertices[vid]
			loc := Location{Vertex: vid, Edge: [2]int{-1, -1}}
			switch {
			case v.Ambiguous():
				loc.Type = OnAmbigCornerVertex
			case v.Corner():
				loc.Type = OnUnambigCornerVertex
			default:
				loc.Type = OnNonCornerVertex
			}
			for _, r := range v.Incident {
				if !r.IsObstacle() {
					loc.Polygons = append(loc.Polygons, r.ID())
				}
			}
			return loc, true

		case OnEdge:
			loc := Location{Edge: [2]int{c.Verts[0], c.Verts[1]}, Vertex: -1, Polygons: []int{poly.ID}}
			if c.AdjPoly.IsObstacle() {
				loc.Type = OnMeshBorder
			} else {
				loc.Type = OnSharedEdge
				loc.Polygons = append(loc.Polygons, c.AdjPoly.ID())
			}
			return loc, true
		}
	}
	return Location{}, false
}
