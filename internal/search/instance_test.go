package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedrone/sphmesh/internal/mesh"
	"github.com/benedrone/sphmesh/internal/sphere"
)

// singleTriangle is the S1 scenario mesh: the unit octahedron's upper-front
// face, bordered entirely by obstacle.
func singleTriangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	vertices := []mesh.Vertex{
		{ID: 0, Point: sphere.NewPoint(90, 0), Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 1, Point: sphere.NewPoint(0, 0), Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 2, Point: sphere.NewPoint(0, 90), Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
	}
	polygons := []mesh.Polygon{
		{ID: 0, V: []int{0, 1, 2}, N: []mesh.PolygonRef{mesh.Obstacle, mesh.Obstacle, mesh.Obstacle}},
	}
	m, err := mesh.NewMesh(vertices, polygons)
	require.NoError(t, err)
	return m
}

func TestSearchSamePolygon(t *testing.T) {
	m := singleTriangle(t)
	start := sphere.NewPoint(30, 10)
	end := sphere.NewPoint(30, 40)

	result := Run(m, start, end, nil)
	require.True(t, result.Found)
	require.Len(t, result.Path, 2)
	assert.True(t, result.Path[0].Equal(start))
	assert.True(t, result.Path[1].Equal(end))
	assert.InDelta(t, sphere.Distance(start, end), result.Length, 1e-9)
}

func TestSearchStartInObstacle(t *testing.T) {
	m := singleTriangle(t)
	start := sphere.NewPoint(-30, -30)
	end := sphere.NewPoint(30, 10)

	result := Run(m, start, end, nil)
	assert.False(t, result.Found)
	assert.Equal(t, 0.0, result.Length)
}

func TestSearchEndInObstacle(t *testing.T) {
	m := singleTriangle(t)
	start := sphere.NewPoint(30, 10)
	end := sphere.NewPoint(-30, -30)

	result := Run(m, start, end, nil)
	assert.False(t, result.Found)
}

// twoTriangles is the S4 scenario mesh: a square split along its diagonal
// (A, D) into two triangles, the straight chord between an interior point of
// each crossing that shared edge.
func twoTriangles(t *testing.T) *mesh.Mesh {
	t.Helper()
	a := sphere.NewPoint(0, 0)
	b := sphere.NewPoint(0, 20)
	c := sphere.NewPoint(20, 0)
	d := sphere.NewPoint(20, 20)

	vertices := []mesh.Vertex{
		{ID: 0, Point: a, Incident: []mesh.PolygonRef{mesh.Traversable(0), mesh.Traversable(1)}},
		{ID: 1, Point: b, Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 2, Point: c, Incident: []mesh.PolygonRef{mesh.Traversable(1)}},
		{ID: 3, Point: d, Incident: []mesh.PolygonRef{mesh.Traversable(0), mesh.Traversable(1)}},
	}
	polygons := []mesh.Polygon{
		{ID: 0, V: []int{0, 1, 3}, N: []mesh.PolygonRef{mesh.Obstacle, mesh.Obstacle, mesh.Traversable(1)}},
		{ID: 1, V: []int{0, 3, 2}, N: []mesh.PolygonRef{mesh.Traversable(0), mesh.Obstacle, mesh.Obstacle}},
	}
	m, err := mesh.NewMesh(vertices, polygons)
	require.NoError(t, err)
	return m
}

func TestSearchTwoPolygonTraverse(t *testing.T) {
	m := twoTriangles(t)
	start := sphere.NewPoint(3, 15)
	end := sphere.NewPoint(15, 3)

	result := Run(m, start, end, nil)
	require.True(t, result.Found)
	require.Len(t, result.Path, 2)
	assert.InDelta(t, sphere.Distance(start, end), result.Length, 1e-6)
}

func TestSearchAntimeridianCrossing(t *testing.T) {
	// A single polygon whose longitude span wraps the antimeridian
	// (minLon 170, maxLon -170), per S6.
	p0 := sphere.NewPoint(-10, 170)
	p1 := sphere.NewPoint(-10, -170)
	p2 := sphere.NewPoint(10, -170)
	p3 := sphere.NewPoint(10, 170)

	vertices := []mesh.Vertex{
		{ID: 0, Point: p0, Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 1, Point: p1, Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 2, Point: p2, Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
		{ID: 3, Point: p3, Incident: []mesh.PolygonRef{mesh.Traversable(0)}},
	}
	polygons := []mesh.Polygon{
		{ID: 0, V: []int{0, 1, 2, 3}, N: []mesh.PolygonRef{mesh.Obstacle, mesh.Obstacle, mesh.Obstacle, mesh.Obstacle}},
	}
	m, err := mesh.NewMesh(vertices, polygons)
	require.NoError(t, err)

	start := sphere.NewPoint(0, 175)
	end := sphere.NewPoint(0, -175)

	result := Run(m, start, end, nil)
	require.True(t, result.Found)
	assert.InDelta(t, 10.0, result.Length, 1e-6)
}

func TestSearchPathLengthMatchesConsecutiveDistances(t *testing.T) {
	m := twoTriangles(t)
	start := sphere.NewPoint(3, 3)
	end := sphere.NewPoint(15, 15)

	result := Run(m, start, end, nil)
	require.True(t, result.Found)

	var sum float64
	for i := 1; i < len(result.Path); i++ {
		sum += sphere.Distance(result.Path[i-1], result.Path[i])
	}
	assert.InDelta(t, sum, result.Length, 1e-6)
}
