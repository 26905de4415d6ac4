package mesh

import "github.com/paulmach/orb"

// Polygon is a mesh face: an ordered vertex-id ring V[0..n) and a parallel
// neighbour ring N[0..n), where N[i] is the polygon (or Obstacle) across the
// edge (V[i], V[(i+1)%n]). Vertices are listed counter-clockwise as seen
// from outside the sphere, so the interior lies to the left when walking the
// ring. Bound, WrapsLon and IsPolar are derived once at mesh construction.
type Polygon struct {
	ID    int
	V     []int
	N     []PolygonRef
	Bound orb.Bound

	// WrapsLon is true when the polygon's raw longitude span exceeds 180°,
	// meaning it straddles the antimeridian rather than genuinely spanning
	// most of the globe. For such a polygon Bound's longitudes are measured
	// eastward across the seam (western longitudes shifted by +360°).
	WrapsLon bool

	// IsPolar is true when the polygon strictly contains a pole.
	IsPolar bool
}

// Len returns the number of vertices (and edges) in the ring.
func (p *Polygon) Len() int { return len(p.V) }

// Edge returns the vertex-id endpoints of edge i: (V[i], V[(i+1)%n]).
func (p *Polygon) Edge(i int) (int, int) {
	n := len(p.V)
	return p.V[i], p.V[(i+1)%n]
}

// Neighbour returns the neighbour across edge i.
func (p *Polygon) Neighbour(i int) PolygonRef {
	return p.N[i]
}

// IndexOf returns the local ring index of vertex id vid, or -1 if it is not
// one of p's vertices. Polygons are small, so a linear scan is cheap enough
// to avoid carrying a reverse-lookup map alongside every ring.
func (p *Polygon) IndexOf(vid int) int {
	for i, v := range p.V {
		if v == vid {
			return i
		}
	}
	return -1
}

// IsOneWay is true iff at most one neighbour entry is non-obstacle — a
// dead end for search expansion.
func (p *Polygon) IsOneWay() bool {
	count := 0
	for _, r := range p.N {
		if !r.IsObstacle() {
			count++
			if count > 1 {
				return false
			}
		}
	}
	return true
}
