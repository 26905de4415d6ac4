package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedrone/sphmesh/internal/sphere"
)

// singleTriangle builds the S1 scenario mesh from spec.md §8: the unit
// octahedron's upper-front face, bordered entirely by obstacle.
func singleTriangle(t *testing.T) *Mesh {
	t.Helper()
	vertices := []Vertex{
		{ID: 0, Point: sphere.NewPoint(90, 0), Incident: []PolygonRef{Traversable(0)}},
		{ID: 1, Point: sphere.NewPoint(0, 0), Incident: []PolygonRef{Traversable(0)}},
		{ID: 2, Point: sphere.NewPoint(0, 90), Incident: []PolygonRef{Traversable(0)}},
	}
	polygons := []Polygon{
		{ID: 0, V: []int{0, 1, 2}, N: []PolygonRef{Obstacle, Obstacle, Obstacle}},
	}
	m, err := NewMesh(vertices, polygons)
	require.NoError(t, err)
	return m
}

func TestContainsPointRoundTripOnEveryVertex(t *testing.T) {
	m := singleTriangle(t)
	poly := &m.Polygons[0]
	for _, v := range m.Vertices {
		c := m.ContainsPoint(poly, v.Point)
		require.Equal(t, OnVertex, c.Type)
		assert.Equal(t, v.ID, c.Verts[0])
	}
}

func TestContainsPointInterior(t *testing.T) {
	m := singleTriangle(t)
	poly := &m.Polygons[0]
	interior := sphere.NewPoint(30, 10)
	c := m.ContainsPoint(poly, interior)
	assert.Equal(t, Inside, c.Type)
}

func TestContainsPointOutside(t *testing.T) {
	m := singleTriangle(t)
	poly := &m.Polygons[0]
	outside := sphere.NewPoint(-30, -30)
	c := m.ContainsPoint(poly, outside)
	assert.Equal(t, Outside, c.Type)
}

func TestContainsPointOnEdge(t *testing.T) {
	m := singleTriangle(t)
	poly := &m.Polygons[0]
	onEdge := sphere.NewPoint(0, 45)
	c := m.ContainsPoint(poly, onEdge)
	require.Equal(t, OnEdge, c.Type)
	assert.True(t, c.AdjPoly.IsObstacle())
}
