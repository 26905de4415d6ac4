package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBoundedEndpoints(t *testing.T) {
	r := NewPoint(0, -10)
	l := NewPoint(0, 10)
	assert.True(t, IsBounded(r, r, l))
	assert.True(t, IsBounded(l, r, l))
}

func TestIsBoundedMidpoint(t *testing.T) {
	r := NewPoint(0, -10)
	l := NewPoint(0, 10)
	mid := NewPoint(0, 0)
	assert.True(t, IsBounded(mid, r, l))
}

func TestIsBoundedOutsideMinorArc(t *testing.T) {
	r := NewPoint(0, -10)
	l := NewPoint(0, 10)
	beyond := NewPoint(0, 170)
	assert.False(t, IsBounded(beyond, r, l))
}

func TestIsBoundedAntipodeOfEndpoint(t *testing.T) {
	r := NewPoint(0, -10)
	l := NewPoint(0, 10)
	assert.False(t, IsBounded(r.Antipode(), r, l))
}
