package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionAntipodal(t *testing.T) {
	p1, p2 := NewPoint(0, -10), NewPoint(0, 10)
	p3, p4 := NewPoint(-10, 0), NewPoint(10, 0)

	a, b, ok := Intersection(p1, p2, p3, p4)
	require.True(t, ok)

	assert.InDelta(t, 0, Distance(a, b.Antipode()), 1e-6)

	assert.Less(t, dotAbs(a.Vec.Dot(p1.Vec.Cross(p2.Vec))), 1e-9)
	assert.Less(t, dotAbs(a.Vec.Dot(p3.Vec.Cross(p4.Vec))), 1e-9)
}

func TestIntersectionCoincidentCircles(t *testing.T) {
	p1, p2 := NewPoint(0, 0), NewPoint(0, 10)
	p3, p4 := NewPoint(0, 20), NewPoint(0, 30)

	_, _, ok := Intersection(p1, p2, p3, p4)
	assert.False(t, ok)
}

func dotAbs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
