// Package engine wires the entity store, physics, pathfinding and the
// render bridge under a fixed-timestep scheduler.
package engine

import (
	"log/slog"

	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/physics"
	"github.com/PeteSumners/cornerstone/resource"
	"github.com/PeteSumners/cornerstone/systems"
	"github.com/PeteSumners/cornerstone/vmath"
	"github.com/PeteSumners/cornerstone/world"
)

// Engine owns the simulation: the entity world, the component stores, the
// ordered system passes and the scheduler. Within a tick the order is
// fixed: physics resolves positions first, path following and movement
// consume them and write inputs and forces for the next tick, rendering
// observes only fully-resolved post-physics state.
type Engine struct {
	Log      *slog.Logger
	Entities *ecs.World
	Terrain  *world.Map
	Sim      *physics.Simulator
	Sched    *Scheduler

	Positions *ecs.Store[components.PositionComponent]
	Bodies    *ecs.Store[components.BodyComponent]
	Movements *ecs.Store[components.MovementComponent]
	Paths     *ecs.Store[components.PathFollowComponent]
	Meshes    *ecs.Store[components.MeshComponent]

	// MeshTable maps mesh handles to renderer-owned instances.
	MeshTable *resource.Table[MeshInstance]

	renderer Renderer
	passes   []systems.System
}

// New builds an engine over the given terrain. The renderer may be nil for
// headless hosts; mesh components are then unavailable.
func New(terrain *world.Map, renderer Renderer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		Log:       logger,
		Entities:  ecs.NewWorld(logger),
		Terrain:   terrain,
		Sim:       physics.NewSimulator(terrain),
		MeshTable: resource.NewTable[MeshInstance](),
		renderer:  renderer,
	}

	e.Positions = ecs.RegisterStore[components.PositionComponent](e.Entities, "position", ecs.Hooks[components.PositionComponent]{})
	e.Bodies = ecs.RegisterStore[components.BodyComponent](e.Entities, "physics", ecs.Hooks[components.BodyComponent]{})
	e.Movements = ecs.RegisterStore[components.MovementComponent](e.Entities, "movement", ecs.Hooks[components.MovementComponent]{
		OnAdd: func(id ecs.EntityID, m *components.MovementComponent) {
			*m = components.DefaultMovement()
		},
	})
	e.Paths = ecs.RegisterStore[components.PathFollowComponent](e.Entities, "path-follow", ecs.Hooks[components.PathFollowComponent]{})
	e.Meshes = ecs.RegisterStore[components.MeshComponent](e.Entities, "mesh", ecs.Hooks[components.MeshComponent]{
		OnAdd: func(id ecs.EntityID, m *components.MeshComponent) {
			m.Handle = resource.NoHandle
		},
		OnRemove: func(id ecs.EntityID, m *components.MeshComponent) {
			if e.MeshTable.Live(m.Handle) {
				e.MeshTable.Free(m.Handle).Dispose()
			}
		},
		OnRender: e.syncMeshes,
	})

	e.passes = []systems.System{
		systems.NewPhysicsSystem(e.Sim, e.Bodies, e.Positions),
		systems.NewPathFollowSystem(terrain.IsPassable, e.Entities.Events(), e.Paths, e.Movements, e.Bodies, logger),
		systems.NewMovementSystem(e.Movements, e.Bodies),
	}

	e.Sched = NewScheduler(e.tick, e.frame, logger)

	// World edits invalidate stale paths through the event manager.
	terrain.SetChangeHandler(func(x, y, z int, old, new world.BlockID) {
		e.Entities.Events().Emit(systems.BlockChangedEvent{X: x, Y: y, Z: z, Old: old, New: new})
	})

	return e
}

// AddSystem appends an extra pass (e.g. input) to the tick pipeline.
func (e *Engine) AddSystem(s systems.System) {
	e.passes = append(e.passes, s)
}

// AddEntity creates a new entity.
func (e *Engine) AddEntity() ecs.EntityID {
	return e.Entities.AddEntity()
}

// RemoveEntity removes an entity and all its components, disposing any
// render resources it held.
func (e *Engine) RemoveEntity(id ecs.EntityID) {
	e.Entities.RemoveEntity(id)
}

// SpawnBody creates an entity with a position and a rigid body. Every body
// gets a position: physics writes the resolved AABB back to it each tick.
func (e *Engine) SpawnBody(center vmath.Vec3, width, height float64) ecs.EntityID {
	id := e.AddEntity()
	pos := e.Positions.Add(id)
	pos.X, pos.Y, pos.Z = center.X, center.Y, center.Z
	pos.W, pos.H = width, height
	b := e.Bodies.Add(id)
	b.Body = physics.NewBody(center, width, height)
	return id
}

// AddMesh creates a renderer mesh for the entity and records its handle.
func (e *Engine) AddMesh(id ecs.EntityID, name string, at vmath.Vec3) *components.MeshComponent {
	if e.renderer == nil {
		panic("engine: no renderer attached")
	}
	inst := e.renderer.CreateMesh(name, at)
	mc := e.Meshes.Add(id)
	mc.Handle = e.MeshTable.Allocate(inst)
	return mc
}

// tick runs the ordered system passes, then the per-store update hooks.
func (e *Engine) tick(dt float64) {
	for _, s := range e.passes {
		s.Update(dt)
	}
	e.Entities.Update(dt)
}

// frame runs the per-store render hooks.
func (e *Engine) frame(dt float64) {
	e.Entities.Render(dt)
}

// syncMeshes pushes resolved positions, frames and light levels into the
// renderer-owned instances.
func (e *Engine) syncMeshes(dt float64, st *ecs.Store[components.MeshComponent]) {
	st.Each(func(id ecs.EntityID, m *components.MeshComponent) {
		if !e.MeshTable.Live(m.Handle) {
			return
		}
		pos := e.Positions.Get(id)
		if pos == nil {
			return
		}
		inst := e.MeshTable.Get(m.Handle)
		at := vmath.Vec3{X: pos.X, Y: pos.Y + m.OffsetY, Z: pos.Z}
		inst.SetPosition(at)
		inst.SetFrame(m.Frame)
		cell := vmath.CellOf(at)
		inst.SetLight(e.Terrain.GetLight(cell.X, cell.Y, cell.Z))
	})
}
