package physics

import (
	"math"

	"github.com/PeteSumners/cornerstone/vmath"
)

// PassFn reports whether an AABB may occupy the cell at (x,y,z). The sweep
// has no block semantics of its own; passability is entirely the caller's.
type PassFn func(x, y, z int) bool

// Sweep moves box by delta, mutating it in place to the furthest point
// reachable without penetrating any impassable cell, and writes the
// per-axis contact direction (-1/0/+1) into resting.
//
// The leading faces of the box are traced through the grid boundary by
// boundary, so no delta magnitude can tunnel through a solid cell. Landing
// exactly on a cell boundary counts as contact, not passage. When an axis
// collides it is clamped flush against the obstructing face and the
// remaining motion continues on the other axes, so motion blocked on one
// axis cannot slide the box through an obstacle on another.
//
// Returns true when any axis collided. A zero delta is a complete no-op:
// box and resting both keep their previous values.
func Sweep(box *AABB, delta vmath.Vec3, resting *[3]int, isPassable PassFn) bool {
	if delta.IsZero() {
		return false
	}
	*resting = [3]int{}

	min := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	max := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}
	d := [3]float64{delta.X, delta.Y, delta.Z}
	collided := false

	// At most one collision per axis; each one clamps that axis and
	// re-traces the remainder.
	for pass := 0; pass < 3; pass++ {
		axis, t, boundary := trace(min, max, d, isPassable)
		if axis < 0 {
			for i := 0; i < 3; i++ {
				min[i] += d[i]
				max[i] += d[i]
			}
			break
		}
		collided = true

		// Advance to the time of impact.
		for i := 0; i < 3; i++ {
			min[i] += d[i] * t
			max[i] += d[i] * t
		}
		// Snap the hit axis exactly flush against the obstructing face so
		// float drift can never accumulate into penetration.
		width := max[axis] - min[axis]
		if d[axis] > 0 {
			max[axis] = float64(boundary)
			min[axis] = max[axis] - width
			resting[axis] = 1
		} else {
			min[axis] = float64(boundary)
			max[axis] = min[axis] + width
			resting[axis] = -1
		}

		rem := 1 - t
		for i := 0; i < 3; i++ {
			d[i] *= rem
		}
		d[axis] = 0
		if d[0] == 0 && d[1] == 0 && d[2] == 0 {
			break
		}
	}

	box.Min = vmath.Vec3{X: min[0], Y: min[1], Z: min[2]}
	box.Max = vmath.Vec3{X: max[0], Y: max[1], Z: max[2]}
	return collided
}

type axisTrace struct {
	active   bool
	lead     float64
	d        float64
	step     int
	boundary int
	t        float64
}

func (a *axisTrace) recompute() {
	a.t = (float64(a.boundary) - a.lead) / a.d
}

// trace walks the box's leading faces through the grid and returns the
// axis, fractional time and integer boundary of the first crossing into an
// impassable cell slab, or axis -1 when the whole delta is clear.
func trace(min, max, d [3]float64, isPassable PassFn) (axis int, t float64, boundary int) {
	var st [3]axisTrace
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			continue
		}
		st[i].active = true
		st[i].d = d[i]
		if d[i] > 0 {
			st[i].lead = max[i]
			st[i].step = 1
			st[i].boundary = int(math.Ceil(max[i]))
		} else {
			st[i].lead = min[i]
			st[i].step = -1
			st[i].boundary = int(math.Floor(min[i]))
		}
		st[i].recompute()
	}

	for {
		a := -1
		for i := 0; i < 3; i++ {
			if st[i].active && st[i].t <= 1 && (a < 0 || st[i].t < st[a].t) {
				a = i
			}
		}
		if a < 0 {
			return -1, 0, 0
		}
		tt := st[a].t

		// The cell layer the leading face enters at this crossing.
		layer := st[a].boundary
		if st[a].step < 0 {
			layer--
		}
		// Box cross-section on the other axes at the moment of crossing.
		var lo, hi [3]int
		for i := 0; i < 3; i++ {
			if i == a {
				lo[i], hi[i] = layer, layer
				continue
			}
			lo[i] = int(math.Floor(min[i] + d[i]*tt))
			hi[i] = int(math.Ceil(max[i]+d[i]*tt)) - 1
			if hi[i] < lo[i] {
				hi[i] = lo[i]
			}
		}
		for x := lo[0]; x <= hi[0]; x++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for z := lo[2]; z <= hi[2]; z++ {
					if !isPassable(x, y, z) {
						return a, tt, st[a].boundary
					}
				}
			}
		}

		st[a].boundary += st[a].step
		st[a].recompute()
	}
}
