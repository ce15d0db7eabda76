package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeteSumners/cornerstone/vmath"
)

// flatGround is an infinite plane: cells below y=1 are solid.
func flatGround(x, y, z int) bool { return y >= 1 }

func TestFindPathStraightLine(t *testing.T) {
	start := vmath.GridPos{X: 0, Y: 1, Z: 0}
	target := vmath.GridPos{X: 5, Y: 1, Z: 0}

	path := FindPath(start, target, flatGround, Options{})

	require.Len(t, path, 5, "the start cell is excluded")
	assert.Equal(t, target, path[len(path)-1].Pos)
	prev := start
	for _, n := range path {
		assert.Equal(t, 1, prev.Manhattan(n.Pos), "consecutive nodes are unit steps")
		assert.False(t, n.Jump)
		prev = n.Pos
	}
}

func TestFindPathSameCell(t *testing.T) {
	c := vmath.GridPos{X: 2, Y: 1, Z: 2}
	assert.Nil(t, FindPath(c, c, flatGround, Options{}))
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	// A wall across x=2, three cells tall, with a gap at z=5.
	isPassable := func(x, y, z int) bool {
		if x == 2 && y >= 1 && y <= 3 && z != 5 {
			return false
		}
		return y >= 1
	}
	start := vmath.GridPos{X: 0, Y: 1, Z: 2}
	target := vmath.GridPos{X: 4, Y: 1, Z: 2}

	path := FindPath(start, target, isPassable, Options{})

	require.NotEmpty(t, path)
	assert.Equal(t, target, path[len(path)-1].Pos)
	crossedGap := false
	for _, n := range path {
		if n.Pos.X == 2 {
			assert.Equal(t, 5, n.Pos.Z, "the only crossing is the gap")
			crossedGap = true
		}
	}
	assert.True(t, crossedGap)
}

func TestFindPathMarksJumpSteps(t *testing.T) {
	// Ground rises one cell at x=3.
	isPassable := func(x, y, z int) bool {
		if x >= 3 {
			return y >= 2
		}
		return y >= 1
	}
	start := vmath.GridPos{X: 0, Y: 1, Z: 0}
	target := vmath.GridPos{X: 4, Y: 2, Z: 0}

	path := FindPath(start, target, isPassable, Options{})

	require.NotEmpty(t, path)
	jumps := 0
	for _, n := range path {
		if n.Jump {
			jumps++
			assert.Equal(t, vmath.GridPos{X: 3, Y: 2, Z: 0}, n.Pos)
		}
	}
	assert.Equal(t, 1, jumps)
}

func TestFindPathFallsOffLedge(t *testing.T) {
	isPassable := func(x, y, z int) bool {
		if x >= 3 {
			return y >= 2
		}
		return y >= 1
	}
	start := vmath.GridPos{X: 4, Y: 2, Z: 0}
	target := vmath.GridPos{X: 0, Y: 1, Z: 0}

	path := FindPath(start, target, isPassable, Options{})

	require.NotEmpty(t, path)
	assert.Equal(t, target, path[len(path)-1].Pos)
	for _, n := range path {
		assert.False(t, n.Jump, "dropping down needs no jump")
	}
}

func TestFindPathRespectsMaxDrop(t *testing.T) {
	// A cliff five cells tall between the plateau and the plain.
	isPassable := func(x, y, z int) bool {
		if x < 3 {
			return y >= 6
		}
		return y >= 1
	}
	start := vmath.GridPos{X: 0, Y: 6, Z: 0}
	target := vmath.GridPos{X: 5, Y: 1, Z: 0}

	path := FindPath(start, target, isPassable, Options{MaxNodes: 500})

	assert.Empty(t, path, "a drop beyond MaxDrop is not a step")
}

func TestFindPathUnreachableTarget(t *testing.T) {
	path := FindPath(
		vmath.GridPos{X: 0, Y: 1, Z: 0},
		vmath.GridPos{X: 3, Y: 9, Z: 0},
		flatGround,
		Options{MaxNodes: 300},
	)
	assert.Empty(t, path)
}

func TestFindPathNodeCap(t *testing.T) {
	start := vmath.GridPos{X: 0, Y: 1, Z: 0}
	target := vmath.GridPos{X: 50, Y: 1, Z: 0}

	path := FindPath(start, target, flatGround, Options{MaxNodes: 10})

	assert.Empty(t, path)
}

func TestStandable(t *testing.T) {
	assert.True(t, Standable(vmath.GridPos{X: 0, Y: 1, Z: 0}, flatGround, 2))
	assert.False(t, Standable(vmath.GridPos{X: 0, Y: 2, Z: 0}, flatGround, 2), "no floor underneath")
	assert.False(t, Standable(vmath.GridPos{X: 0, Y: 0, Z: 0}, flatGround, 2), "cell itself is solid")

	lowCeiling := func(x, y, z int) bool { return y == 1 }
	assert.False(t, Standable(vmath.GridPos{X: 0, Y: 1, Z: 0}, lowCeiling, 2), "headroom blocked")
	assert.True(t, Standable(vmath.GridPos{X: 0, Y: 1, Z: 0}, lowCeiling, 1))
}
