package systems

import (
	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/vmath"
)

// MovementSystem turns movement input axes and jump requests into forces
// and impulses on the body. It runs after path following, so both player
// input and the follower's steering land in the same place.
type MovementSystem struct {
	movements *ecs.Store[components.MovementComponent]
	bodies    *ecs.Store[components.BodyComponent]
}

// NewMovementSystem creates the movement pass.
func NewMovementSystem(movements *ecs.Store[components.MovementComponent], bodies *ecs.Store[components.BodyComponent]) *MovementSystem {
	return &MovementSystem{movements: movements, bodies: bodies}
}

// Update processes every movement component.
func (s *MovementSystem) Update(dt float64) {
	s.movements.Each(func(id ecs.EntityID, m *components.MovementComponent) {
		b := s.bodies.Get(id)
		if b == nil {
			return
		}
		onGround := b.OnGround()
		if onGround {
			m.AirJumpCount = 0
		}

		s.processJump(m, b, onGround, dt)
		s.processMove(m, b, onGround)
	})
}

// processJump starts a jump on request and sustains the jump force while
// impulse time remains.
func (s *MovementSystem) processJump(m *components.MovementComponent, b *components.BodyComponent, onGround bool, dt float64) {
	if !m.Jumping {
		m.IsJumping = false
		m.CurrentJumpTime = 0
		return
	}
	if m.IsJumping {
		if m.CurrentJumpTime > 0 {
			f := m.JumpForce
			if m.CurrentJumpTime < dt {
				f *= m.CurrentJumpTime / dt
			}
			b.Forces.Y += f
			m.CurrentJumpTime -= dt
		}
		return
	}
	if onGround || b.InFluid || m.AirJumpCount < m.AirJumps {
		if !onGround && !b.InFluid {
			m.AirJumpCount++
		}
		m.IsJumping = true
		m.CurrentJumpTime = m.JumpTime
		b.Impulses.Y += m.JumpImpulse
	}
}

// processMove pushes the body toward the desired horizontal velocity and
// selects the body friction for the coming tick.
func (s *MovementSystem) processMove(m *components.MovementComponent, b *components.BodyComponent, onGround bool) {
	in := vmath.Vec3{X: m.InputX, Z: m.InputZ}
	if in.IsZero() {
		b.Friction = m.StandingFriction
		return
	}
	if in.LengthSq() > 1 {
		in = in.Normalize()
	}
	b.Friction = m.RunningFriction

	desired := in.Scale(m.MaxSpeed)
	current := vmath.Vec3{X: b.Velocity.X, Z: b.Velocity.Z}
	push := desired.Sub(current)
	if push.IsZero() {
		return
	}
	force := push.Scale(m.Responsiveness)
	maxForce := m.MoveForce
	if !onGround {
		maxForce *= m.AirMoveMult
	}
	if force.Length() > maxForce {
		force = force.Normalize().Scale(maxForce)
	}
	b.Forces = b.Forces.Add(force)
}
