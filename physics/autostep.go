package physics

import (
	"math"

	"github.com/PeteSumners/cornerstone/config"
	"github.com/PeteSumners/cornerstone/vmath"
)

// tryAutoStep lifts a body over the ledge that blocked its horizontal
// motion. The climb is rehearsed first: the pre-sweep box is raised by the
// ledge gap and the original horizontal delta is retried. A clean rehearsal
// commits the full step in one tick; anything else commits only a small
// lift capped at AutoStep, which reads as a smooth partial climb.
func (s *Simulator) tryAutoStep(b *Body, prev AABB, wanted vmath.Vec3) {
	// Stepping needs ground under the feet, unless swimming.
	if !b.OnGround() && !b.InFluid {
		return
	}

	xBlocked := b.Resting[0] != 0 && wanted.X != 0
	zBlocked := b.Resting[2] != 0 && wanted.Z != 0
	if !xBlocked && !zBlocked {
		return
	}

	// Speed gate: the blocked axis must strongly dominate the
	// perpendicular one, so grazing diagonal contact never climbs.
	if xBlocked && math.Abs(wanted.X) <= config.AutoStepSpeedRatio*math.Abs(wanted.Z) {
		xBlocked = false
	}
	if zBlocked && math.Abs(wanted.Z) <= config.AutoStepSpeedRatio*math.Abs(wanted.X) {
		zBlocked = false
	}
	if !xBlocked && !zBlocked {
		return
	}

	axis := 0
	if zBlocked {
		axis = 2
	}

	// Probe the obstructing cell directly ahead at foot height. The swept
	// box sits flush against it, so its face is an exact integer.
	var ahead int
	if wanted.Axis(axis) > 0 {
		ahead = int(math.Round(b.Aabb.Max.Axis(axis)))
	} else {
		ahead = int(math.Round(b.Aabb.Min.Axis(axis))) - 1
	}
	foot := b.Aabb.FootCell()
	probe := foot
	probe.SetAxis(axis, ahead)
	if s.Terrain.IsPassable(probe.X, probe.Y, probe.Z) {
		// The obstruction is above foot height; nothing to step onto.
		return
	}

	gap := float64(probe.Y) + 1 - prev.Min.Y
	if gap <= 0 || gap > b.AutoStepMax {
		return
	}

	// Rehearse: raise the pre-sweep box by the gap, then retry the
	// original horizontal delta.
	trial := prev
	var tr [3]int
	Sweep(&trial, vmath.Vec3{Y: gap}, &tr, s.Terrain.IsPassable)
	if tr[1] != 0 {
		s.partialClimb(b, xBlocked, zBlocked, gap)
		return
	}
	Sweep(&trial, vmath.Vec3{X: wanted.X, Z: wanted.Z}, &tr, s.Terrain.IsPassable)
	if (xBlocked && tr[0] != 0) || (zBlocked && tr[2] != 0) {
		s.partialClimb(b, xBlocked, zBlocked, gap)
		return
	}

	// Commit the stepped-up box. The body now stands on the ledge.
	b.Aabb = trial
	b.Resting[0], b.Resting[2] = tr[0], tr[2]
	b.Resting[1] = -1
	b.Velocity.Y = 0
}

// partialClimb lifts the post-sweep box by at most AutoStep, respecting
// ceilings, and kills the velocity on the blocked horizontal axes.
func (s *Simulator) partialClimb(b *Body, xBlocked, zBlocked bool, gap float64) {
	lift := math.Min(gap, b.AutoStep)
	var tr [3]int
	Sweep(&b.Aabb, vmath.Vec3{Y: lift}, &tr, s.Terrain.IsPassable)
	if xBlocked {
		b.Velocity.X = 0
	}
	if zBlocked {
		b.Velocity.Z = 0
	}
}
