package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/engine"
	"github.com/PeteSumners/cornerstone/systems"
	"github.com/PeteSumners/cornerstone/vmath"
)

// repathInterval is how often the chaser re-targets the player.
const repathInterval = 0.5

// Game hosts the engine inside the ebiten run loop: Update feeds wall-clock
// time into the fixed-timestep scheduler, Draw runs the render hooks and
// paints the frame.
type Game struct {
	log      *slog.Logger
	eng      *engine.Engine
	renderer *TopDownRenderer

	player ecs.EntityID
	chaser ecs.EntityID

	lastUpdate time.Time
}

func NewGame(logger *slog.Logger) *Game {
	terrain := buildTerrain(logger)
	renderer := NewTopDownRenderer(terrain)
	eng := engine.New(terrain, renderer, logger)

	g := &Game{
		log:      logger,
		eng:      eng,
		renderer: renderer,
	}

	g.player = g.spawnActor("player", 8.5, 8.5)
	eng.AddSystem(systems.NewInputSystem(g.player, eng.Movements))

	g.chaser = g.spawnActor("chaser", 40.5, 40.5)
	eng.Paths.Add(g.chaser)
	g.scheduleRepath()

	eng.AddSystem(&animSystem{meshes: eng.Meshes})

	return g
}

// animSystem advances every mesh frame counter once per tick.
type animSystem struct {
	meshes *ecs.Store[components.MeshComponent]
}

func (a *animSystem) Update(dt float64) {
	a.meshes.Each(func(_ ecs.EntityID, m *components.MeshComponent) {
		m.Frame++
	})
}

// spawnActor drops a body onto the surface at (x, z) with a mesh and
// movement state.
func (g *Game) spawnActor(name string, x, z float64) ecs.EntityID {
	floor := g.eng.Terrain.GetBaseHeight(int(x), int(z))
	center := vmath.Vec3{X: x, Y: float64(floor) + 0.95, Z: z}
	id := g.eng.SpawnBody(center, 0.6, 1.8)

	b := g.eng.Bodies.GetX(id)
	b.AutoStep = 0.1
	b.AutoStepMax = 1.05

	g.eng.Movements.Add(id)
	g.eng.AddMesh(id, name, center)
	return id
}

// scheduleRepath points the chaser at the player's current feet, then
// re-arms itself. Deferred calls run at tick start, so the request lands
// before the path system's next pass.
func (g *Game) scheduleRepath() {
	g.eng.Sched.Defer(repathInterval, func() {
		pos := g.eng.Positions.Get(g.player)
		follow := g.eng.Paths.Get(g.chaser)
		if pos != nil && follow != nil {
			feet := vmath.Vec3{X: pos.X, Y: pos.Y - pos.H/2, Z: pos.Z}
			follow.RequestSoftTarget(feet)
		}
		g.scheduleRepath()
	})
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.eng.Sched.Advance(elapsed)
	// A halted scheduler stays halted; surface the cause and stop the
	// run loop rather than render a frozen simulation.
	return g.eng.Sched.Err()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.eng.Sched.Render(1.0 / float64(ebiten.TPS()))
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
