// Package search implements the interval search engine: the priority
// queue, the immutable search node and the A*-style search instance that
// drives expansion, successor projection and path reconstruction.
package search

import (
	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

// noVertex marks a Right/Left endpoint that is an intersection point
// interior to an edge, not a mesh vertex.
const noVertex = -1

// Node is an immutable record of a root point plus an observable interval
// on an edge of NextPolygon. ParentIdx indexes into the owning Arena rather
// than holding a pointer, per spec.md §9's design note against doubly
// linked search nodes — parents never point to children, and the arena is
// the sole owner.
type Node struct {
	ParentIdx int // -1 for the root of the search

	Root  sphere.Point
	Right sphere.Point
	Left  sphere.Point

	RightVertex int // mesh vertex id, or noVertex
	LeftVertex  int // mesh vertex id, or noVertex

	NextPolygon int // mesh polygon id; never the obstacle sentinel

	// EntryRight and EntryLeft are the two mesh vertex ids of the full edge
	// this node was projected across, oriented so EntryRight sits on the
	// root's right side. They are always concrete vertex ids, even when
	// Right/Left themselves are interior intersection points, because the
	// entry edge is always a full ring edge of the polygon the node came
	// from (spec.md §4.7). successors uses them to locate the entry
	// edge's local index within NextPolygon without needing the previous
	// polygon at all.
	EntryRight int
	EntryLeft  int

	G float64
	H float64
}

// F is the total estimated cost g + h.
func (n Node) F() float64 { return n.G + n.H }

// NewNode builds a node, computing H via the spherical Polyanya heuristic
// (spec.md §4.5) and enforcing the precondition that root is not clockwise
// of the directed arc right -> left.
func NewNode(parentIdx int, root, right, left sphere.Point, rightVertex, leftVertex, nextPolygon int, g float64, goal sphere.Point) Node {
	if sphere.Orient(right, left, root) == sphere.Clockwise {
		xerrors.Precondition("search node root is clockwise of interval: root=%+v right=%+v left=%+v", root, right, left)
	}
	return Node{
		ParentIdx:   parentIdx,
		Root:        root,
		Right:       right,
		Left:        left,
		RightVertex: rightVertex,
		LeftVertex:  leftVertex,
		NextPolygon: nextPolygon,
		G:           g,
		H:           heuristic(root, right, left, goal),
	}
}

// heuristic is the admissible lower bound from spec.md §4.5: the geodesic
// from root to goal is forced to touch the interval's endpoints whenever
// the direct chord would pass outside the interval.
func heuristic(root, right, left, goal sphere.Point) float64 {
	if root.Equal(right) || root.Equal(left) {
		return sphere.Distance(root, goal)
	}

	g := goal
	if sphere.Orient(right, left, goal) == sphere.Anticlockwise {
		// goal is on the same side of the interval as root; fold it across
		// so the obstruction tests below see a goal on the far side.
		g = sphere.Reflect(goal, right, left)
	}

	switch {
	case sphere.Orient(root, right, g) == sphere.Clockwise:
		return sphere.Distance(root, right) + sphere.Distance(right, g)
	case sphere.Orient(root, left, g) == sphere.Anticlockwise:
		return sphere.Distance(root, left) + sphere.Distance(left, g)
	default:
		return sphere.Distance(root, g)
	}
}

// Arena owns every Node allocated during one search instance's lifetime.
// Indices are stable for the life of the arena; nodes are never removed or
// mutated once appended.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// Alloc appends n and returns its stable index.
func (a *Arena) Alloc(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// Get returns the node at idx.
func (a *Arena) Get(idx int) Node { return a.nodes[idx] }

// Len returns the number of nodes ever allocated.
func (a *Arena) Len() int { return len(a.nodes) }
