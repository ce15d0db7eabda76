package physics

import "github.com/PeteSumners/cornerstone/vmath"

// Body is a rigid body integrated against the block field. Bodies with
// Mass <= 0 are fully inert: the integrator leaves them untouched.
type Body struct {
	Aabb AABB

	Velocity vmath.Vec3
	// Forces accumulates continuous forces for the coming tick and is
	// cleared after integration.
	Forces vmath.Vec3
	// Impulses accumulates instantaneous velocity deltas (scaled by 1/mass)
	// and is cleared after integration.
	Impulses vmath.Vec3

	// Resting holds the contact direction of the most recent sweep per
	// axis: -1, 0 or +1. Only the sweep writes it.
	Resting [3]int

	Friction          float64
	Restitution       float64
	Mass              float64
	GravityMultiplier float64

	// AutoStep caps the per-tick partial climb; zero disables stepping.
	AutoStep float64
	// AutoStepMax is the tallest ledge the body may step onto.
	AutoStepMax float64

	// Medium occupancy at the foot cell, refreshed each tick.
	InFluid bool
	InGrass bool

	// OnCollide, when set, receives the collision impulse (mass times the
	// velocity change) whenever a sweep ends in contact.
	OnCollide func(impulse vmath.Vec3)
}

// NewBody returns a unit-mass body with full gravity and no bounce,
// centered at the given point.
func NewBody(center vmath.Vec3, width, height float64) Body {
	return Body{
		Aabb:              NewAABB(center, width, height),
		Friction:          1,
		Mass:              1,
		GravityMultiplier: 1,
	}
}

// OnGround reports whether the last sweep ended in downward contact.
func (b *Body) OnGround() bool {
	return b.Resting[1] < 0
}

// ApplyForce adds a continuous force for the coming tick.
func (b *Body) ApplyForce(f vmath.Vec3) {
	b.Forces = b.Forces.Add(f)
}

// ApplyImpulse adds an instantaneous impulse for the coming tick.
func (b *Body) ApplyImpulse(i vmath.Vec3) {
	b.Impulses = b.Impulses.Add(i)
}
