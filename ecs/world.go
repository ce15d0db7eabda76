package ecs

import (
	"log/slog"

	"github.com/TheBitDrifter/mask"
)

// World manages all entities and the component stores registered on it.
// Stores are created once at startup via RegisterStore; update and render
// hooks run in store-registration order.
type World struct {
	logger *slog.Logger
	nextID EntityID
	// Per-entity mask of the stores that may hold a component for it.
	// Bits are marked on Add and never cleared, so the mask is a superset;
	// store removal tolerates entities it does not hold.
	masks map[EntityID]mask.Mask
	// Stores in registration order.
	stores []anyStore
	// Event manager for cross-system notifications.
	eventManager *EventManager
}

// anyStore is the type-erased view of a Store[T] held by the world.
type anyStore interface {
	Name() string
	bit() uint32
	removeEntity(id EntityID)
	update(dt float64)
	render(dt float64)
}

// NewWorld creates an empty world. A nil logger falls back to slog.Default.
func NewWorld(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		logger:       logger,
		masks:        make(map[EntityID]mask.Mask),
		eventManager: NewEventManager(),
	}
}

// AddEntity creates a new entity and returns its id. IDs start at 1; the
// zero value is the NoEntity sentinel.
func (w *World) AddEntity() EntityID {
	w.nextID++
	id := w.nextID
	w.masks[id] = mask.Mask{}
	return id
}

// Alive reports whether the entity has been created and not yet removed.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.masks[id]
	return ok
}

// RemoveEntity removes the entity and every component it holds, invoking
// each store's OnRemove hook.
func (w *World) RemoveEntity(id EntityID) {
	m, ok := w.masks[id]
	if !ok {
		return
	}
	for _, st := range w.stores {
		var bit mask.Mask
		bit.Mark(st.bit())
		if m.ContainsAll(bit) {
			st.removeEntity(id)
		}
	}
	delete(w.masks, id)
}

// Update runs every store's OnUpdate hook once, in registration order.
func (w *World) Update(dt float64) {
	for _, st := range w.stores {
		st.update(dt)
	}
}

// Render runs every store's OnRender hook once, in registration order.
func (w *World) Render(dt float64) {
	for _, st := range w.stores {
		st.render(dt)
	}
}

// Events returns the world's event manager.
func (w *World) Events() *EventManager {
	return w.eventManager
}

// Logger returns the world's logger.
func (w *World) Logger() *slog.Logger {
	return w.logger
}

func (w *World) markComponent(id EntityID, bit uint32) {
	m := w.masks[id]
	m.Mark(bit)
	w.masks[id] = m
}
