package mesh

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

// Mesh is a vector of vertices and a vector of polygons, both indexed by
// id, plus an optional latitude-band acceleration index. There is no
// obstacle sentinel polygon (see PolygonRef) — a missing neighbour is the
// Obstacle value, never an id into Polygons.
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon

	bands *bandIndex
}

// NewMesh validates vertices and polygons and derives each polygon's
// bounding box, WrapsLon and IsPolar flags. It does not build the
// latitude-band index; call EnableBandIndex for that.
func NewMesh(vertices []Vertex, polygons []Polygon) (*Mesh, error) {
	for _, v := range vertices {
		if !validIncidentRing(v.Incident) {
			return nil, errors.Wrapf(xerrors.ErrMalformedInput,
				"vertex %d: two adjacent incident sectors are both obstacles", v.ID)
		}
	}

	m := &Mesh{Vertices: vertices, Polygons: polygons}

	for i := range m.Polygons {
		p := &m.Polygons[i]
		if p.Len() < 3 {
			return nil, errors.Wrapf(xerrors.ErrMalformedInput,
				"polygon %d: fewer than 3 vertices", p.ID)
		}
		if len(p.N) != len(p.V) {
			return nil, errors.Wrapf(xerrors.ErrMalformedInput,
				"polygon %d: neighbour ring length does not match vertex ring", p.ID)
		}
		for _, vid := range p.V {
			if vid < 0 || vid >= len(m.Vertices) {
				return nil, errors.Wrapf(xerrors.ErrMalformedInput,
					"polygon %d: vertex id %d out of range", p.ID, vid)
			}
		}
		for _, nb := range p.N {
			if !nb.IsObstacle() && (nb.ID() < 0 || nb.ID() >= len(m.Polygons)) {
				return nil, errors.Wrapf(xerrors.ErrMalformedInput,
					"polygon %d: neighbour polygon id %d out of range", p.ID, nb.ID())
			}
		}

		p.Bound, p.WrapsLon = m.polygonBound(p)
		p.IsPolar = m.polygonIsPolar(p)
	}

	return m, nil
}

func (m *Mesh) polygonBound(p *Polygon) (orb.Bound, bool) {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)

	for _, vid := range p.V {
		pt := m.Vertices[vid].Point
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
		minLon = math.Min(minLon, pt.Lon)
		maxLon = math.Max(maxLon, pt.Lon)
	}

	wraps := (maxLon - minLon) > 180
	if wraps {
		// Measure the longitude extent across the antimeridian instead:
		// western longitudes are shifted east by 360°, so the bound runs
		// eastward over the seam and its Max[0] may exceed 180.
		minLon, maxLon = math.Inf(1), math.Inf(-1)
		for _, vid := range p.V {
			lon := m.Vertices[vid].Point.Lon
			if lon < 0 {
				lon += 360
			}
			minLon = math.Min(minLon, lon)
			maxLon = math.Max(maxLon, lon)
		}
	}
	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}, wraps
}

// polygonIsPolar reports whether p strictly contains a pole, by running the
// ordinary containment test against both poles. It is safe to call before
// p.IsPolar is set, since ContainsPoint never reads that flag.
func (m *Mesh) polygonIsPolar(p *Polygon) bool {
	north := sphere.NewPoint(90, 0)
	south := sphere.NewPoint(-90, 0)
	return m.ContainsPoint(p, north).Type == Inside || m.ContainsPoint(p, south).Type == Inside
}

// EnableBandIndex builds the optional latitude-band acceleration structure
// described in spec.md §4.3 / SPEC_FULL.md §4.9. It never changes the
// outcome of point location, only the candidate set scanned to find it.
func (m *Mesh) EnableBandIndex() {
	m.bands = buildBandIndex(m)
}

// BandIndexEnabled reports whether the acceleration index is active.
func (m *Mesh) BandIndexEnabled() bool {
	return m.bands != nil
}

func (m *Mesh) String() string {
	return fmt.Sprintf("mesh{vertices=%d polygons=%d bandIndex=%v}", len(m.Vertices), len(m.Polygons), m.bands != nil)
}
