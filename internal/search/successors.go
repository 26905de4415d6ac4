package search

import (
	"github.com/benedrone/sphmesh/internal/mesh"
	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

// successors projects a popped node's interval across its next polygon and
// splits the result into child nodes, per spec.md §4.7. idx is the popped
// node's arena index, reused as every child's ParentIdx.
func (s *Instance) successors(idx int, n Node) []Node {
	q := &s.mesh.Polygons[n.NextPolygon]
	cnt := q.Len()

	rl := q.IndexOf(n.EntryRight)
	ll := q.IndexOf(n.EntryLeft)
	if rl < 0 || ll < 0 {
		xerrors.Precondition("entry edge vertices %d,%d not found in polygon %d", n.EntryRight, n.EntryLeft, q.ID)
	}

	rightFixed, leftFixed := false, false
	var newRight, newLeft sphere.Point
	newRightVertex, newLeftVertex := noVertex, noVertex
	a, b := -1, -1

	i := rl
	for !(rightFixed && leftFixed) {
		vi, vj := q.Edge(i)
		e0, e1 := s.mesh.Vertices[vi].Point, s.mesh.Vertices[vj].Point

		if !rightFixed {
			p, ok := s.insideIntersection(q, n.Root, n.Right, e0, e1)
			if !ok {
				newRight, newRightVertex, a = e0, vi, i
				rightFixed = true
			} else {
				switch sphere.Orient(n.Root, p, e1) {
				case sphere.Clockwise:
					i = (i + 1) % cnt
					continue
				case sphere.Colinear:
					newRight, newRightVertex, a = e1, vj, (i+1)%cnt
					rightFixed = true
				default: // Anticlockwise
					newRight = p
					if p.Equal(e0) {
						newRightVertex, a = vi, i
					} else {
						newRightVertex, a = noVertex, i
					}
					rightFixed = true
				}
			}
		}

		if rightFixed && !leftFixed {
			p, ok := s.insideIntersection(q, n.Root, n.Left, e0, e1)
			if !ok {
				newLeft, newLeftVertex, b = e1, vj, (i+1)%cnt
				leftFixed = true
			} else {
				switch sphere.Orient(n.Root, p, e0) {
				case sphere.Anticlockwise:
					i = (i + 1) % cnt
					continue
				case sphere.Colinear:
					newLeft, newLeftVertex, b = e0, vi, i
					leftFixed = true
				default: // Clockwise
					newLeft = p
					if p.Equal(e1) {
						newLeftVertex, b = vj, (i+1)%cnt
					} else {
						newLeftVertex, b = noVertex, (i+1)%cnt
					}
					leftFixed = true
				}
			}
		}

		if rightFixed && leftFixed {
			break
		}
	}

	var out []Node

	if a != b {
		last := (b - 1 + cnt) % cnt
		for i := a; ; i = (i + 1) % cnt {
			vi, vj := q.Edge(i)
			neigh := q.Neighbour(i)
			if !neigh.IsObstacle() {
				rp, rpv := s.mesh.Vertices[vi].Point, vi
				if i == a {
					rp, rpv = newRight, newRightVertex
				}
				lp, lpv := s.mesh.Vertices[vj].Point, vj
				if i == last {
					lp, lpv = newLeft, newLeftVertex
				}
				child := NewNode(idx, n.Root, rp, lp, rpv, lpv, neigh.ID(), n.G, s.goal)
				child.EntryRight, child.EntryLeft = vi, vj
				out = append(out, child)
			}
			if i == last {
				break
			}
		}
	}

	if newRightVertex != noVertex && s.mesh.Vertices[newRightVertex].Corner() && a != rl {
		g := n.G + sphere.Distance(n.Root, newRight)
		for i := rl; i != a; i = (i + 1) % cnt {
			vi, vj := q.Edge(i)
			neigh := q.Neighbour(i)
			if neigh.IsObstacle() {
				continue
			}
			child := NewNode(idx, newRight, s.mesh.Vertices[vi].Point, s.mesh.Vertices[vj].Point, vi, vj, neigh.ID(), g, s.goal)
			child.EntryRight, child.EntryLeft = vi, vj
			out = append(out, child)
		}
	}

	if newLeftVertex != noVertex && s.mesh.Vertices[newLeftVertex].Corner() && b != ll {
		g := n.G + sphere.Distance(n.Root, newLeft)
		for i := b; i != ll; i = (i + 1) % cnt {
			vi, vj := q.Edge(i)
			neigh := q.Neighbour(i)
			if neigh.IsObstacle() {
				continue
			}
			child := NewNode(idx, newLeft, s.mesh.Vertices[vi].Point, s.mesh.Vertices[vj].Point, vi, vj, neigh.ID(), g, s.goal)
			child.EntryRight, child.EntryLeft = vi, vj
			out = append(out, child)
		}
	}

	return out
}

// insideIntersection returns the one of the two antipodal intersections of
// great circles (p1,p2) and (p3,p4) that lies inside or on the boundary of
// q, per spec.md §4.7's "keep the one that lies inside Q" rule.
func (s *Instance) insideIntersection(q *mesh.Polygon, p1, p2, p3, p4 sphere.Point) (sphere.Point, bool) {
	x, y, ok := sphere.Intersection(p1, p2, p3, p4)
	if !ok {
		return sphere.Point{}, false
	}
	if s.mesh.ContainsPoint(q, x).Type != mesh.Outside {
		return x, true
	}
	return y, true
}
