package mesh

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// bandIndex is the optional latitude-band acceleration structure from
// spec.md §4.3 / SPEC_FULL.md §4.9. It narrows point location to a small
// candidate list; it is never the sole source of correctness, since
// candidatePolygons may under-return near a band boundary or a bounding-box
// edge case, and Mesh.Locate falls back to a full scan whenever the band
// search comes up empty.
type bandIndex struct {
	lats      []float64
	bandPolys [][]int
	tree      *rtreego.Rtree
}

// polyEntry adapts a polygon's (possibly antimeridian-shifted) bounding box
// to rtreego.Spatial.
type polyEntry struct {
	id   int
	rect rtreego.Rect
}

func (e *polyEntry) Bounds() rtreego.Rect { return e.rect }

func buildBandIndex(m *Mesh) *bandIndex {
	latSet := make(map[float64]struct{})
	for _, v := range m.Vertices {
		latSet[v.Point.Lat] = struct{}{}
	}
	lats := make([]float64, 0, len(latSet))
	for l := range latSet {
		lats = append(lats, l)
	}
	sort.Float64s(lats)

	idx := &bandIndex{lats: lats}

	if len(lats) < 2 {
		band := make([]int, len(m.Polygons))
		for i := range m.Polygons {
			band[i] = m.Polygons[i].ID
		}
		idx.bandPolys = [][]int{band}
		return idx
	}

	nBands := len(lats) - 1
	idx.bandPolys = make([][]int, nBands)

	for bi := 0; bi < nBands; bi++ {
		lo, hi := lats[bi], lats[bi+1]
		for i := range m.Polygons {
			p := &m.Polygons[i]
			if p.Bound.Max[1] >= lo && p.Bound.Min[1] <= hi {
				idx.bandPolys[bi] = append(idx.bandPolys[bi], p.ID)
			}
		}
	}

	// Polar polygons must be reachable from a query at either extreme of
	// the sphere regardless of what their own bounding box says.
	for i := range m.Polygons {
		p := &m.Polygons[i]
		if p.IsPolar {
			idx.bandPolys[0] = appendIfMissing(idx.bandPolys[0], p.ID)
			idx.bandPolys[nBands-1] = appendIfMissing(idx.bandPolys[nBands-1], p.ID)
		}
	}

	idx.tree = buildRtree(m.Polygons)
	return idx
}

func appendIfMissing(s []int, id int) []int {
	for _, x := range s {
		if x == id {
			return s
		}
	}
	return append(s, id)
}

// buildRtree inserts each polygon's bounding box, and a second copy shifted
// by 360° of longitude for antimeridian-wrapping polygons, so a single
// rectangular query finds them on whichever side of the seam it lands.
func buildRtree(polys []Polygon) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	for i := range polys {
		p := &polys[i]
		insertPolyRect(tree, p, false)
		if p.WrapsLon {
			insertPolyRect(tree, p, true)
		}
	}
	return tree
}

func insertPolyRect(tree *rtreego.Rtree, p *Polygon, shifted bool) {
	minLon, maxLon := p.Bound.Min[0], p.Bound.Max[0]
	if shifted {
		minLon -= 360
		maxLon -= 360
	}
	minLat, maxLat := p.Bound.Min[1], p.Bound.Max[1]

	lenLon := maxLon - minLon
	lenLat := maxLat - minLat
	if lenLon <= 0 {
		lenLon = 1e-9
	}
	if lenLat <= 0 {
		lenLat = 1e-9
	}

	rect, err := rtreego.NewRect(rtreego.Point{minLon, minLat}, []float64{lenLon, lenLat})
	if err != nil {
		return
	}
	tree.Insert(&polyEntry{id: p.ID, rect: rect})
}

// candidatePolygons returns the polygon ids the index believes may contain
// (lat, lon). It is advisory: the caller must still run ContainsPoint
// against each candidate.
func (idx *bandIndex) candidatePolygons(lat, lon float64) []int {
	bi := sort.SearchFloat64s(idx.lats, lat) - 1
	if bi < 0 {
		bi = 0
	}
	if bi >= len(idx.bandPolys) {
		bi = len(idx.bandPolys) - 1
	}
	band := idx.bandPolys[bi]

	if idx.tree == nil || len(band) == 0 {
		return band
	}

	bbox, err := rtreego.NewRect(rtreego.Point{lon, lat}, []float64{1e-9, 1e-9})
	if err != nil {
		return band
	}
	hits := idx.tree.SearchIntersect(bbox)
	hitSet := make(map[int]struct{}, len(hits))
	for _, h := range hits {
		hitSet[h.(*polyEntry).id] = struct{}{}
	}

	out := make([]int, 0, len(band))
	for _, id := range band {
		if _, ok := hitSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
