package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/ecs"
)

// inputDir is a horizontal input direction contributed by a held key.
type inputDir struct {
	dx, dz float64
}

// InputSystem maps held keys onto the player's movement input axes. Only
// the demo uses it; headless hosts drive movement components directly.
type InputSystem struct {
	player    ecs.EntityID
	movements *ecs.Store[components.MovementComponent]
	moveKeys  map[ebiten.Key]inputDir
	jumpKey   ebiten.Key
}

// NewInputSystem creates the input pass with the default key bindings.
func NewInputSystem(player ecs.EntityID, movements *ecs.Store[components.MovementComponent]) *InputSystem {
	system := &InputSystem{
		player:    player,
		movements: movements,
		moveKeys:  make(map[ebiten.Key]inputDir),
		jumpKey:   ebiten.KeySpace,
	}

	// WASD
	system.moveKeys[ebiten.KeyW] = inputDir{0, -1}
	system.moveKeys[ebiten.KeyS] = inputDir{0, 1}
	system.moveKeys[ebiten.KeyA] = inputDir{-1, 0}
	system.moveKeys[ebiten.KeyD] = inputDir{1, 0}

	// Arrow keys
	system.moveKeys[ebiten.KeyArrowUp] = inputDir{0, -1}
	system.moveKeys[ebiten.KeyArrowDown] = inputDir{0, 1}
	system.moveKeys[ebiten.KeyArrowLeft] = inputDir{-1, 0}
	system.moveKeys[ebiten.KeyArrowRight] = inputDir{1, 0}

	return system
}

// Update reads the held keys and writes the player's input axes.
func (s *InputSystem) Update(dt float64) {
	m := s.movements.Get(s.player)
	if m == nil {
		return
	}

	var dx, dz float64
	for key, dir := range s.moveKeys {
		if ebiten.IsKeyPressed(key) {
			dx += dir.dx
			dz += dir.dz
		}
	}
	m.InputX = dx
	m.InputZ = dz
	m.Jumping = ebiten.IsKeyPressed(s.jumpKey)
}
