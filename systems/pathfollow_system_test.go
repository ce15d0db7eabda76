package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/physics"
	"github.com/PeteSumners/cornerstone/vmath"
	"github.com/PeteSumners/cornerstone/world"
)

const tWalkStone world.BlockID = 1

// walkFixture is a full simulation slice: a block field, the three tick
// passes in engine order, and one walker entity.
type walkFixture struct {
	terrain *world.Map
	wld     *ecs.World
	bodies  *ecs.Store[components.BodyComponent]
	moves   *ecs.Store[components.MovementComponent]
	paths   *ecs.Store[components.PathFollowComponent]

	physics *PhysicsSystem
	follow  *PathFollowSystem
	move    *MovementSystem

	walker    ecs.EntityID
	completed int
	failed    int
}

// newWalkFixture builds a flat 24x8x24 field with its surface at y=2 and
// places the walker's feet at the given cell.
func newWalkFixture(t *testing.T, startX, startZ int) *walkFixture {
	t.Helper()
	reg := world.NewRegistry(2)
	reg.Define(tWalkStone, true, true, false)
	terrain := world.NewMap(reg, 24, 8, 24, nil)
	for x := 0; x < 24; x++ {
		for z := 0; z < 24; z++ {
			terrain.SetBlock(x, 0, z, tWalkStone)
			terrain.SetBlock(x, 1, z, tWalkStone)
		}
	}

	wld := ecs.NewWorld(nil)
	positions := ecs.RegisterStore[components.PositionComponent](wld, "position", ecs.Hooks[components.PositionComponent]{})
	bodies := ecs.RegisterStore[components.BodyComponent](wld, "physics", ecs.Hooks[components.BodyComponent]{})
	moves := ecs.RegisterStore[components.MovementComponent](wld, "movement", ecs.Hooks[components.MovementComponent]{
		OnAdd: func(id ecs.EntityID, m *components.MovementComponent) {
			*m = components.DefaultMovement()
		},
	})
	paths := ecs.RegisterStore[components.PathFollowComponent](wld, "path-follow", ecs.Hooks[components.PathFollowComponent]{})

	f := &walkFixture{
		terrain: terrain,
		wld:     wld,
		bodies:  bodies,
		moves:   moves,
		paths:   paths,
	}
	f.physics = NewPhysicsSystem(physics.NewSimulator(terrain), bodies, positions)
	f.follow = NewPathFollowSystem(terrain.IsPassable, wld.Events(), paths, moves, bodies, nil)
	f.move = NewMovementSystem(moves, bodies)

	terrain.SetChangeHandler(func(x, y, z int, old, new world.BlockID) {
		wld.Events().Emit(BlockChangedEvent{X: x, Y: y, Z: z, Old: old, New: new})
	})
	wld.Events().Subscribe(EventPathCompleted, func(ev ecs.Event) { f.completed++ })
	wld.Events().Subscribe(EventPathFailed, func(ev ecs.Event) { f.failed++ })

	f.walker = wld.AddEntity()
	center := vmath.Vec3{X: float64(startX) + 0.5, Y: 2.9, Z: float64(startZ) + 0.5}
	pos := positions.Add(f.walker)
	pos.X, pos.Y, pos.Z = center.X, center.Y, center.Z
	pos.W, pos.H = 0.6, 1.8

	b := bodies.Add(f.walker)
	b.Body = physics.NewBody(center, 0.6, 1.8)
	b.AutoStep = 0.1
	b.AutoStepMax = 1.05

	m := moves.Add(f.walker)
	m.MaxSpeed = 3

	paths.Add(f.walker)
	return f
}

// tick runs one fixed step in engine pass order.
func (f *walkFixture) tick() {
	f.physics.Update(tickDT)
	f.follow.Update(tickDT)
	f.move.Update(tickDT)
}

func TestPathFollowWalksToTarget(t *testing.T) {
	f := newWalkFixture(t, 2, 2)
	target := vmath.GridPos{X: 10, Y: 2, Z: 7}
	f.paths.GetX(f.walker).RequestTarget(target)

	for i := 0; i < 1800 && f.completed == 0; i++ {
		f.tick()
	}

	require.Equal(t, 1, f.completed, "the walker reaches the goal")
	assert.Equal(t, 0, f.failed)

	p := f.paths.GetX(f.walker)
	assert.Nil(t, p.Path)
	assert.False(t, p.Active())

	b := f.bodies.GetX(f.walker)
	c := target.Center()
	got := b.Aabb.Center()
	assert.Less(t, math.Hypot(got.X-c.X, got.Z-c.Z), 0.6)
	assert.Equal(t, target, b.Aabb.FootCell())

	m := f.moves.GetX(f.walker)
	assert.Zero(t, m.InputX)
	assert.Zero(t, m.InputZ)
}

func TestPathFollowSoftTargetOverridesCellCenter(t *testing.T) {
	f := newWalkFixture(t, 2, 2)
	soft := vmath.Vec3{X: 8.85, Y: 2, Z: 4.15}
	f.paths.GetX(f.walker).RequestSoftTarget(soft)

	for i := 0; i < 1800 && f.completed == 0; i++ {
		f.tick()
	}

	require.Equal(t, 1, f.completed)
	b := f.bodies.GetX(f.walker)
	got := b.Aabb.Center()
	assert.Less(t, math.Hypot(got.X-soft.X, got.Z-soft.Z), 0.6,
		"arrival is measured against the exact point, not the cell center")
}

func TestPathFollowUnreachableEmitsFailure(t *testing.T) {
	f := newWalkFixture(t, 2, 2)
	// A cell inside the ground is never standable.
	f.paths.GetX(f.walker).RequestTarget(vmath.GridPos{X: 10, Y: 0, Z: 10})

	f.tick()

	assert.Equal(t, 1, f.failed)
	p := f.paths.GetX(f.walker)
	assert.Nil(t, p.Path)
	assert.False(t, p.HasRequest)
}

func TestPathFollowRequestToOwnCellIsIdle(t *testing.T) {
	f := newWalkFixture(t, 5, 5)
	f.paths.GetX(f.walker).RequestTarget(vmath.GridPos{X: 5, Y: 2, Z: 5})

	f.tick()

	assert.Equal(t, 0, f.failed, "already-there is not a failure")
	assert.Equal(t, 0, f.completed)
	assert.False(t, f.paths.GetX(f.walker).Active())
}

func TestPathFollowBlockChangeTriggersReplan(t *testing.T) {
	f := newWalkFixture(t, 2, 2)
	target := vmath.GridPos{X: 12, Y: 2, Z: 2}
	f.paths.GetX(f.walker).RequestTarget(target)
	f.tick()

	p := f.paths.GetX(f.walker)
	require.True(t, p.Active())
	require.False(t, p.HasRequest)

	// Drop a block onto a cell ahead on the path.
	ahead := p.Path[len(p.Path)/2].Pos
	f.terrain.SetBlock(ahead.X, ahead.Y, ahead.Z, tWalkStone)

	assert.True(t, p.HasRequest, "the goal is re-requested")
	assert.Equal(t, target, p.Request)
}

func TestPathFollowUnrelatedBlockChangeIgnored(t *testing.T) {
	f := newWalkFixture(t, 2, 2)
	f.paths.GetX(f.walker).RequestTarget(vmath.GridPos{X: 12, Y: 2, Z: 2})
	f.tick()

	p := f.paths.GetX(f.walker)
	require.True(t, p.Active())

	f.terrain.SetBlock(2, 2, 20, tWalkStone)

	assert.False(t, p.HasRequest)
}

func TestPathFollowWalksAroundNewObstacle(t *testing.T) {
	f := newWalkFixture(t, 2, 12)
	target := vmath.GridPos{X: 14, Y: 2, Z: 12}
	f.paths.GetX(f.walker).RequestTarget(target)
	f.tick()

	// Wall the direct corridor after the path was computed. Replanning
	// kicks in through the block-change events.
	for z := 10; z <= 14; z++ {
		f.terrain.SetBlock(8, 2, z, tWalkStone)
		f.terrain.SetBlock(8, 3, z, tWalkStone)
	}

	for i := 0; i < 3600 && f.completed == 0; i++ {
		f.tick()
	}

	require.Equal(t, 1, f.completed)
	assert.Equal(t, target, f.bodies.GetX(f.walker).Aabb.FootCell())
}
