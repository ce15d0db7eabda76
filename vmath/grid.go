package vmath

import "math"

// GridPos is an integer cell coordinate. A cell c covers the half-open
// interval [c, c+1) on each axis.
type GridPos struct {
	X, Y, Z int
}

// Manhattan returns the L1 distance between two cells.
func (p GridPos) Manhattan(o GridPos) int {
	return absInt(p.X-o.X) + absInt(p.Y-o.Y) + absInt(p.Z-o.Z)
}

// Center returns the continuous coordinate at the middle of the cell floor.
func (p GridPos) Center() Vec3 {
	return Vec3{float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5}
}

// Axis returns the component selected by index (0=X, 1=Y, 2=Z).
func (p GridPos) Axis(i int) int {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// SetAxis overwrites the component selected by index.
func (p *GridPos) SetAxis(i, v int) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

// Floor converts a continuous coordinate to its containing cell index.
func Floor(x float64) int {
	return int(math.Floor(x))
}

// CellOf returns the cell containing a continuous point.
func CellOf(v Vec3) GridPos {
	return GridPos{Floor(v.X), Floor(v.Y), Floor(v.Z)}
}

// Sign returns -1, 0 or +1 matching the sign of x.
func Sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
