package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectInvolution(t *testing.T) {
	r := NewPoint(0, -20)
	l := NewPoint(0, 20)
	p := NewPoint(40, 5)

	once := Reflect(p, r, l)
	twice := Reflect(once, r, l)

	assert.True(t, p.Equal(twice), "reflecting twice should return the original point")
}

func TestReflectFlipsSideOfPlane(t *testing.T) {
	r := NewPoint(0, -20)
	l := NewPoint(0, 20)
	p := NewPoint(60, 10)

	reflected := Reflect(p, r, l)
	assert.NotEqual(t, Orient(r, l, p), Orient(r, l, reflected))
}
