package systems

import (
	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/physics"
)

// PhysicsSystem integrates every body and writes the resolved AABB back to
// the position component. It runs first in the tick, so everything after
// it observes fully-resolved state.
type PhysicsSystem struct {
	sim       *physics.Simulator
	bodies    *ecs.Store[components.BodyComponent]
	positions *ecs.Store[components.PositionComponent]
}

// NewPhysicsSystem creates the physics pass.
func NewPhysicsSystem(sim *physics.Simulator, bodies *ecs.Store[components.BodyComponent], positions *ecs.Store[components.PositionComponent]) *PhysicsSystem {
	return &PhysicsSystem{sim: sim, bodies: bodies, positions: positions}
}

// Update steps every body by dt.
func (s *PhysicsSystem) Update(dt float64) {
	s.bodies.Each(func(id ecs.EntityID, b *components.BodyComponent) {
		s.sim.Step(&b.Body, dt)

		// Every body-bearing entity carries a position; absence is a bug.
		pos := s.positions.GetX(id)
		c := b.Aabb.Center()
		size := b.Aabb.Size()
		pos.X, pos.Y, pos.Z = c.X, c.Y, c.Z
		pos.W = size.X
		pos.H = size.Y
	})
}
