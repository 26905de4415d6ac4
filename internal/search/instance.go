package search

import (
	"math"

	"go.uber.org/zap"

	"github.com/benedrone/sphmesh/internal/mesh"
	"github.com/benedrone/sphmesh/internal/sphere"
)

// Result is the outcome of one search.
type Result struct {
	Found  bool
	Path   []sphere.Point
	Length float64
}

// historyKey is a quantised root position, used to dedupe re-expansion of
// roots reached by an equal or worse path (spec.md §4.8). The bucket width
// matches sphere.Epsilon, per the spec's own instruction that the
// quantisation tolerance track the geometric tolerance.
type historyKey struct {
	lat int64
	lon int64
}

func quantize(p sphere.Point) historyKey {
	return historyKey{
		lat: int64(math.Round(p.Lat / sphere.Epsilon)),
		lon: int64(math.Round(p.Lon / sphere.Epsilon)),
	}
}

// Instance drives one A*-style search from start to goal over m. It is not
// reused across searches: a fresh Instance owns its own arena, queue and
// history table.
type Instance struct {
	mesh  *mesh.Mesh
	start sphere.Point
	goal  sphere.Point
	log   *zap.Logger

	arena   *Arena
	queue   *Queue
	history map[historyKey]float64
	endSet  map[int]bool
}

// Run searches m for a shortest path from start to goal, per spec.md §4.6-§4.8.
func Run(m *mesh.Mesh, start, goal sphere.Point, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}
	inst := &Instance{
		mesh:    m,
		start:   start,
		goal:    goal,
		log:     log,
		arena:   NewArena(),
		queue:   NewQueue(),
		history: make(map[historyKey]float64),
	}
	return inst.run()
}

func (s *Instance) run() Result {
	startLoc := s.mesh.Locate(s.start)
	if startLoc.Type == mesh.InObstacle {
		s.log.Debug("start point lies in an obstacle", zap.Float64("lat", s.start.Lat), zap.Float64("lon", s.start.Lon))
		return Result{Found: false}
	}

	endLoc := s.mesh.Locate(s.goal)
	if endLoc.Type == mesh.InObstacle {
		s.log.Debug("end point lies in an obstacle", zap.Float64("lat", s.goal.Lat), zap.Float64("lon", s.goal.Lon))
		return Result{Found: false}
	}
	s.endSet = toSet(endLoc.Polygons)
	if len(s.endSet) == 0 {
		return Result{Found: false}
	}

	if finalIdx, ok := s.genInitNodes(startLoc); ok {
		return s.reconstruct(finalIdx, s.arena.Get(finalIdx).ParentIdx, s.arena.Get(finalIdx))
	}

	for {
		idx, ok := s.queue.Pop()
		if !ok {
			return Result{Found: false}
		}
		node := s.arena.Get(idx)

		if s.endSet[node.NextPolygon] {
			finalIdx := s.buildTerminal(idx, node)
			return s.reconstruct(finalIdx, idx, s.arena.Get(finalIdx))
		}

		for _, succ := range s.successors(idx, node) {
			key := quantize(succ.Root)
			if g, seen := s.history[key]; !seen || g >= succ.G {
				s.history[key] = succ.G
				childIdx := s.arena.Alloc(succ)
				s.queue.Push(childIdx, succ.F(), succ.G)
			}
		}
	}
}

func toSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// genInitNodes seeds the open list from every non-obstacle polygon incident
// to start, per spec.md §4.6. If start shares a polygon with the goal it
// allocates the trivial chord node and returns its index with ok=true,
// short-circuiting the rest of the search.
func (s *Instance) genInitNodes(startLoc mesh.Location) (finalIdx int, ok bool) {
	for _, polyID := range startLoc.Polygons {
		if s.endSet[polyID] {
			idx := s.arena.Alloc(NewNode(-1, s.start, s.goal, s.goal, noVertex, noVertex, polyID, 0, s.goal))
			return idx, true
		}
	}

	for _, polyID := range startLoc.Polygons {
		poly := &s.mesh.Polygons[polyID]
		n := poly.Len()
		for i := 0; i < n; i++ {
			vi, vj := poly.Edge(i)
			neigh := poly.Neighbour(i)
			if neigh.IsObstacle() {
				continue
			}
			right := s.mesh.Vertices[vi].Point
			left := s.mesh.Vertices[vj].Point
			if s.start.Equal(right) || s.start.Equal(left) {
				continue
			}
			if sphere.Orient(right, left, s.start) == sphere.Colinear && sphere.IsBounded(s.start, right, left) {
				continue
			}

			node := NewNode(-1, s.start, right, left, vi, vj, neigh.ID(), 0, s.goal)
			node.EntryRight, node.EntryLeft = vi, vj
			idx := s.arena.Alloc(node)
			s.queue.Push(idx, node.F(), node.G)
		}
	}
	return 0, false
}

// buildTerminal resolves visibility of the goal through the popped node's
// interval and allocates the terminal node, per spec.md §4.8.
func (s *Instance) buildTerminal(poppedIdx int, n Node) int {
	switch {
	case sphere.Orient(n.Root, n.Right, s.goal) != sphere.Anticlockwise:
		g := n.G + sphere.Distance(n.Root, n.Right)
		return s.arena.Alloc(NewNode(poppedIdx, n.Right, s.goal, s.goal, noVertex, noVertex, n.NextPolygon, g, s.goal))
	case sphere.Orient(n.Root, n.Left, s.goal) != sphere.Clockwise:
		g := n.G + sphere.Distance(n.Root, n.Left)
		return s.arena.Alloc(NewNode(poppedIdx, n.Left, s.goal, s.goal, noVertex, noVertex, n.NextPolygon, g, s.goal))
	default:
		return s.arena.Alloc(NewNode(poppedIdx, n.Root, s.goal, s.goal, noVertex, noVertex, n.NextPolygon, n.G, s.goal))
	}
}

// reconstruct walks parent links from poppedIdx back to a root node,
// prepending a root whenever it differs from its parent's, per spec.md
// §4.8's path reconstruction rule.
func (s *Instance) reconstruct(finalIdx, poppedIdx int, final Node) Result {
	path := []sphere.Point{s.goal}

	if poppedIdx >= 0 {
		popped := s.arena.Get(poppedIdx)
		if !final.Root.Equal(popped.Root) {
			path = append([]sphere.Point{final.Root}, path...)
		}
	}

	cur := poppedIdx
	for cur >= 0 {
		n := s.arena.Get(cur)
		if n.ParentIdx < 0 {
			break
		}
		parent := s.arena.Get(n.ParentIdx)
		if !n.Root.Equal(parent.Root) {
			path = append([]sphere.Point{n.Root}, path...)
		}
		cur = n.ParentIdx
	}

	path = append([]sphere.Point{s.start}, path...)
	return Result{Found: true, Path: path, Length: final.F()}
}
