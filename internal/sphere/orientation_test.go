package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientAntisymmetry(t *testing.T) {
	a := NewPoint(10, 10)
	b := NewPoint(20, 30)
	c := NewPoint(5, 40)

	got := Orient(a, b, c)
	swapped := Orient(b, a, c)

	switch got {
	case Anticlockwise:
		assert.Equal(t, Clockwise, swapped)
	case Clockwise:
		assert.Equal(t, Anticlockwise, swapped)
	case Colinear:
		assert.Equal(t, Colinear, swapped)
	}
}

func TestOrientCyclicInvariance(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(0, 30)
	c := NewPoint(30, 15)

	want := Orient(a, b, c)
	assert.Equal(t, want, Orient(b, c, a))
	assert.Equal(t, want, Orient(c, a, b))
}

func TestOrientDegenerate(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(10, 10)
	assert.Equal(t, Colinear, Orient(a, a, b))
	assert.Equal(t, Colinear, Orient(a, b, a))
	assert.Equal(t, Colinear, Orient(a, b, b))
}
