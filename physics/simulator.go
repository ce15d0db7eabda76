package physics

import (
	"math"

	"github.com/PeteSumners/cornerstone/config"
	"github.com/PeteSumners/cornerstone/vmath"
)

// Terrain supplies the block queries the integrator needs. The world map
// implements it; tests pass small synthetic fields.
type Terrain interface {
	IsPassable(x, y, z int) bool
	IsFluid(x, y, z int) bool
	IsGrass(x, y, z int) bool
}

// Simulator integrates rigid bodies against a terrain.
type Simulator struct {
	Gravity vmath.Vec3
	Terrain Terrain

	// FluidGravityFactor scales gravity while the body's feet are in fluid.
	FluidGravityFactor float64
	// FluidDrag is the linear drag coefficient applied in fluid.
	FluidDrag float64
	// MaxVelocity clamps each velocity component; zero means unlimited.
	MaxVelocity float64
}

// NewSimulator returns a simulator with the default tunables over the
// given terrain.
func NewSimulator(terrain Terrain) *Simulator {
	return &Simulator{
		Gravity:            vmath.Vec3{Y: config.Gravity},
		Terrain:            terrain,
		FluidGravityFactor: config.FluidGravityFactor,
		FluidDrag:          config.FluidDrag,
		MaxVelocity:        config.MaxVelocity,
	}
}

// Step advances one body by dt. The fixed order is: medium classification,
// force/impulse integration, contact friction, the collision sweep,
// auto-stepping, restitution. Bodies with mass <= 0 are inert.
func (s *Simulator) Step(b *Body, dt float64) {
	if b.Mass <= 0 {
		return
	}

	s.classifyMedium(b)

	// Acceleration from accumulated forces and (possibly reduced) gravity.
	g := s.Gravity.Scale(b.GravityMultiplier)
	if b.InFluid {
		g = g.Scale(s.FluidGravityFactor)
	}
	dv := b.Forces.Scale(1 / b.Mass).Add(g).Scale(dt)
	b.Velocity = b.Velocity.Add(dv)

	// Impulses are an instantaneous velocity delta.
	b.Velocity = b.Velocity.Add(b.Impulses.Scale(1 / b.Mass))

	if b.InFluid {
		b.Velocity = b.Velocity.Scale(1 / (1 + s.FluidDrag*dt))
	}

	// Friction only bites while pressed against a surface, and it slows
	// the two axes lateral to the contact.
	s.applyFriction(b, dv)
	s.clampVelocity(b)

	prev := b.Aabb
	step := b.Velocity.Scale(dt)
	preVel := b.Velocity

	Sweep(&b.Aabb, step, &b.Resting, s.Terrain.IsPassable)

	if b.AutoStep > 0 {
		s.tryAutoStep(b, prev, step)
	}

	// Restitution: reflect the velocity on every contact axis. A zero
	// restitution kills it outright.
	for i := 0; i < 3; i++ {
		if b.Resting[i] != 0 {
			b.Velocity.SetAxis(i, -b.Restitution*b.Velocity.Axis(i))
		}
	}

	if b.OnCollide != nil && (b.Resting[0] != 0 || b.Resting[1] != 0 || b.Resting[2] != 0) {
		b.OnCollide(b.Velocity.Sub(preVel).Scale(b.Mass))
	}

	b.Forces = vmath.Vec3{}
	b.Impulses = vmath.Vec3{}
}

// classifyMedium samples the block at the body's foot cell.
func (s *Simulator) classifyMedium(b *Body) {
	foot := b.Aabb.FootCell()
	b.InFluid = s.Terrain.IsFluid(foot.X, foot.Y, foot.Z)
	b.InGrass = s.Terrain.IsGrass(foot.X, foot.Y, foot.Z)
}

// applyFriction shrinks the velocity lateral to each pressed contact by
// friction times the velocity delta absorbed on the contact axis, floored
// at zero.
func (s *Simulator) applyFriction(b *Body, dv vmath.Vec3) {
	if b.Friction == 0 {
		return
	}
	for axis := 0; axis < 3; axis++ {
		rest := b.Resting[axis]
		if rest == 0 {
			continue
		}
		dva := dv.Axis(axis)
		// The tick's velocity delta must point into the contact.
		if float64(rest)*dva <= 0 {
			continue
		}
		reduce := b.Friction * math.Abs(dva)
		for j := 0; j < 3; j++ {
			if j == axis {
				continue
			}
			vj := b.Velocity.Axis(j)
			if vj == 0 {
				continue
			}
			mag := math.Abs(vj) - reduce
			if mag < 0 {
				mag = 0
			}
			b.Velocity.SetAxis(j, math.Copysign(mag, vj))
		}
	}
}

func (s *Simulator) clampVelocity(b *Body) {
	if s.MaxVelocity <= 0 {
		return
	}
	for i := 0; i < 3; i++ {
		v := b.Velocity.Axis(i)
		if math.Abs(v) > s.MaxVelocity {
			b.Velocity.SetAxis(i, math.Copysign(s.MaxVelocity, v))
		}
	}
}
