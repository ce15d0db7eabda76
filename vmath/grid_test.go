package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorNegative(t *testing.T) {
	assert.Equal(t, 1, Floor(1.9))
	assert.Equal(t, -1, Floor(-0.1))
	assert.Equal(t, -2, Floor(-1.0000001))
	assert.Equal(t, 2, Floor(2.0), "boundaries belong to the upper cell")
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, GridPos{X: 1, Y: -1, Z: 0}, CellOf(Vec3{X: 1.5, Y: -0.5, Z: 0.99}))
}

func TestManhattan(t *testing.T) {
	a := GridPos{X: 1, Y: 2, Z: 3}
	b := GridPos{X: -1, Y: 5, Z: 3}
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 5, b.Manhattan(a))
	assert.Equal(t, 0, a.Manhattan(a))
}

func TestGridCenter(t *testing.T) {
	c := GridPos{X: 2, Y: 3, Z: -1}.Center()
	assert.Equal(t, Vec3{X: 2.5, Y: 3, Z: -0.5}, c)
}

func TestAxisAccessors(t *testing.T) {
	p := GridPos{X: 1, Y: 2, Z: 3}
	assert.Equal(t, 1, p.Axis(0))
	assert.Equal(t, 2, p.Axis(1))
	assert.Equal(t, 3, p.Axis(2))

	p.SetAxis(2, 9)
	assert.Equal(t, GridPos{X: 1, Y: 2, Z: 9}, p)

	v := Vec3{X: 1, Y: 2, Z: 3}
	v.SetAxis(0, 7)
	assert.Equal(t, 7.0, v.Axis(0))
}

func TestNormalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 1, v.Length(), 1e-9)
	assert.True(t, Vec3{}.Normalize().IsZero(), "the zero vector stays zero")
}

func TestClampAndSign(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(-1, 0, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 0, 2))
	assert.Equal(t, 1, Sign(0.3))
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
}
