package physics

import "github.com/PeteSumners/cornerstone/vmath"

// AABB is an axis-aligned box given by min/max corner vectors.
// Invariant: Min <= Max componentwise.
type AABB struct {
	Min, Max vmath.Vec3
}

// NewAABB builds a box from a center point, full horizontal width and full
// height. The footprint is square.
func NewAABB(center vmath.Vec3, width, height float64) AABB {
	hw := width / 2
	hh := height / 2
	return AABB{
		Min: vmath.Vec3{X: center.X - hw, Y: center.Y - hh, Z: center.Z - hw},
		Max: vmath.Vec3{X: center.X + hw, Y: center.Y + hh, Z: center.Z + hw},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() vmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents on each axis.
func (b AABB) Size() vmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// Translate returns the box shifted by d.
func (b AABB) Translate(d vmath.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// FootCell returns the grid cell containing the center of the box floor.
func (b AABB) FootCell() vmath.GridPos {
	c := b.Center()
	return vmath.GridPos{
		X: vmath.Floor(c.X),
		Y: vmath.Floor(b.Min.Y + footSampleEps),
		Z: vmath.Floor(c.Z),
	}
}

// footSampleEps nudges the foot sample upward so a box resting flush on a
// cell boundary samples the cell its feet are in, not the floor below.
const footSampleEps = 1e-9
