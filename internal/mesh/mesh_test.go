package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

func TestNewMeshRejectsShortPolygon(t *testing.T) {
	vertices := []Vertex{
		{ID: 0, Point: sphere.NewPoint(0, 0), Incident: []PolygonRef{Traversable(0)}},
		{ID: 1, Point: sphere.NewPoint(0, 10), Incident: []PolygonRef{Traversable(0)}},
	}
	polygons := []Polygon{
		{ID: 0, V: []int{0, 1}, N: []PolygonRef{Obstacle, Obstacle}},
	}
	_, err := NewMesh(vertices, polygons)
	require.Error(t, err)
	assert.True(t, xerrors.IsMalformedInput(err))
}

func TestNewMeshRejectsAdjacentObstacleSectors(t *testing.T) {
	vertices := []Vertex{
		{ID: 0, Point: sphere.NewPoint(0, 0), Incident: []PolygonRef{Obstacle, Obstacle}},
	}
	_, err := NewMesh(vertices, nil)
	require.Error(t, err)
	assert.True(t, xerrors.IsMalformedInput(err))
}

func TestNewMeshRejectsOutOfRangeVertexID(t *testing.T) {
	vertices := []Vertex{
		{ID: 0, Point: sphere.NewPoint(0, 0), Incident: []PolygonRef{Traversable(0)}},
	}
	polygons := []Polygon{
		{ID: 0, V: []int{0, 1, 2}, N: []PolygonRef{Obstacle, Obstacle, Obstacle}},
	}
	_, err := NewMesh(vertices, polygons)
	require.Error(t, err)
}

func TestPolygonWrapsLon(t *testing.T) {
	vertices := []Vertex{
		{ID: 0, Point: sphere.NewPoint(0, 170), Incident: []PolygonRef{Traversable(0)}},
		{ID: 1, Point: sphere.NewPoint(0, -170), Incident: []PolygonRef{Traversable(0)}},
		{ID: 2, Point: sphere.NewPoint(10, 180), Incident: []PolygonRef{Traversable(0)}},
	}
	polygons := []Polygon{
		{ID: 0, V: []int{0, 1, 2}, N: []PolygonRef{Obstacle, Obstacle, Obstacle}},
	}
	m, err := NewMesh(vertices, polygons)
	require.NoError(t, err)
	assert.True(t, m.Polygons[0].WrapsLon)
}
