package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeteSumners/cornerstone/vmath"
)

func openField(x, y, z int) bool { return true }

// wallPlaneX blocks the single cell layer at the given x.
func wallPlaneX(wall int) PassFn {
	return func(x, y, z int) bool { return x != wall }
}

// floorBelow blocks every cell under the given y.
func floorBelow(level int) PassFn {
	return func(x, y, z int) bool { return y >= level }
}

func TestSweepFreeMove(t *testing.T) {
	box := NewAABB(vmath.Vec3{X: 0.5, Y: 10, Z: 0.5}, 0.6, 1.8)
	var resting [3]int

	hit := Sweep(&box, vmath.Vec3{X: 2, Y: -1, Z: 3}, &resting, openField)

	assert.False(t, hit)
	assert.Equal(t, [3]int{}, resting)
	c := box.Center()
	assert.InDelta(t, 2.5, c.X, 1e-9)
	assert.InDelta(t, 9, c.Y, 1e-9)
	assert.InDelta(t, 3.5, c.Z, 1e-9)
}

func TestSweepZeroDelta(t *testing.T) {
	box := NewAABB(vmath.Vec3{X: 0.5, Y: 1, Z: 0.5}, 0.6, 1.8)
	before := box
	resting := [3]int{1, -1, 1}

	hit := Sweep(&box, vmath.Vec3{}, &resting, openField)

	assert.False(t, hit)
	assert.Equal(t, before, box)
	assert.Equal(t, [3]int{1, -1, 1}, resting, "a no-op move keeps the previous contacts")
}

func TestSweepStopsFlushOnFloor(t *testing.T) {
	box := NewAABB(vmath.Vec3{X: 0.5, Y: 5, Z: 0.5}, 0.6, 1)
	var resting [3]int

	hit := Sweep(&box, vmath.Vec3{Y: -10}, &resting, floorBelow(0))

	require.True(t, hit)
	assert.Equal(t, 0.0, box.Min.Y, "hit axis snaps exactly onto the boundary")
	assert.Equal(t, -1, resting[1])
	assert.Equal(t, 0, resting[0])
	assert.Equal(t, 0, resting[2])
}

func TestSweepNoTunnelThroughThinWall(t *testing.T) {
	box := NewAABB(vmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 0.6, 1)
	var resting [3]int

	// A delta many cells long must still stop at the one-cell wall.
	hit := Sweep(&box, vmath.Vec3{X: 100}, &resting, wallPlaneX(5))

	require.True(t, hit)
	assert.Equal(t, 5.0, box.Max.X)
	assert.Equal(t, 1, resting[0])
}

func TestSweepExactBoundaryTouchIsContact(t *testing.T) {
	// The box already sits flush against the wall face.
	box := NewAABB(vmath.Vec3{X: 4.7, Y: 0.5, Z: 0.5}, 0.6, 1)
	require.Equal(t, 5.0, box.Max.X)
	var resting [3]int

	hit := Sweep(&box, vmath.Vec3{X: 1}, &resting, wallPlaneX(5))

	require.True(t, hit)
	assert.Equal(t, 5.0, box.Max.X, "flush contact must not move the box")
	assert.Equal(t, 1, resting[0])
}

func TestSweepDiagonalSlidesAlongWall(t *testing.T) {
	box := NewAABB(vmath.Vec3{X: 1.5, Y: 0.5, Z: 1.5}, 0.6, 1)
	var resting [3]int

	// X is blocked partway in; the Z component must still complete.
	hit := Sweep(&box, vmath.Vec3{X: 1, Z: 1}, &resting, wallPlaneX(2))

	require.True(t, hit)
	assert.Equal(t, 2.0, box.Max.X)
	assert.Equal(t, 1, resting[0])
	assert.Equal(t, 0, resting[2])
	assert.InDelta(t, 2.5, box.Center().Z, 1e-9, "motion blocked on x keeps the full z travel")
}

func TestSweepCornerStopsBothAxes(t *testing.T) {
	solid := func(x, y, z int) bool { return x != 2 && z != 2 }
	box := NewAABB(vmath.Vec3{X: 1.5, Y: 0.5, Z: 1.5}, 0.6, 1)
	var resting [3]int

	hit := Sweep(&box, vmath.Vec3{X: 2, Z: 2}, &resting, solid)

	require.True(t, hit)
	assert.Equal(t, 2.0, box.Max.X)
	assert.Equal(t, 2.0, box.Max.Z)
	assert.Equal(t, 1, resting[0])
	assert.Equal(t, 1, resting[2])
}
