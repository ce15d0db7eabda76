package world

import "log/slog"

// ChangeHandler is notified after a block is overwritten.
type ChangeHandler func(x, y, z int, old, new BlockID)

// Map is a bounded in-memory block field. It is the single-writer world
// surface the simulation reads: physics and pathfinding query it freely
// within a tick, and only the orchestration layer writes to it.
//
// Cells below y=0 and outside the horizontal bounds read as solid so
// bodies cannot leave the field; cells at or above the top read as air.
type Map struct {
	logger   *slog.Logger
	registry *Registry
	// Dimensions in cells.
	W, H, D  int
	blocks   []BlockID
	onChange ChangeHandler
}

// NewMap creates an all-air map of the given dimensions.
func NewMap(registry *Registry, w, h, d int, logger *slog.Logger) *Map {
	if logger == nil {
		logger = slog.Default()
	}
	return &Map{
		logger:   logger,
		registry: registry,
		W:        w,
		H:        h,
		D:        d,
		blocks:   make([]BlockID, w*h*d),
	}
}

// Registry returns the block-type tables backing this map.
func (m *Map) Registry() *Registry { return m.registry }

// SetChangeHandler installs the callback fired on every SetBlock.
func (m *Map) SetChangeHandler(fn ChangeHandler) { m.onChange = fn }

func (m *Map) inBounds(x, y, z int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H && z >= 0 && z < m.D
}

func (m *Map) idx(x, y, z int) int {
	return (y*m.D+z)*m.W + x
}

// GetBlock returns the block id at a cell. Out-of-bounds cells read as air
// above the field and as a synthetic solid id elsewhere; callers should use
// IsPassable for collision queries.
func (m *Map) GetBlock(x, y, z int) BlockID {
	if !m.inBounds(x, y, z) {
		return BlockAir
	}
	return m.blocks[m.idx(x, y, z)]
}

// SetBlock overwrites a cell and fires the change handler. Writes outside
// the bounds are dropped.
func (m *Map) SetBlock(x, y, z int, id BlockID) {
	if !m.inBounds(x, y, z) {
		m.logger.Debug("setBlock out of bounds", "x", x, "y", y, "z", z)
		return
	}
	i := m.idx(x, y, z)
	old := m.blocks[i]
	if old == id {
		return
	}
	m.blocks[i] = id
	if m.onChange != nil {
		m.onChange(x, y, z, old, id)
	}
}

// IsPassable reports whether an AABB may occupy the cell. This is the
// predicate handed to the collision sweep and the pathfinder.
func (m *Map) IsPassable(x, y, z int) bool {
	if y >= m.H {
		return true
	}
	if !m.inBounds(x, y, z) {
		return false
	}
	return !m.registry.Solid[m.blocks[m.idx(x, y, z)]]
}

// IsFluid reports whether the cell holds a fluid block.
func (m *Map) IsFluid(x, y, z int) bool {
	if !m.inBounds(x, y, z) {
		return false
	}
	return m.registry.Fluid[m.blocks[m.idx(x, y, z)]]
}

// IsGrass reports whether the cell holds the registry's grass block.
func (m *Map) IsGrass(x, y, z int) bool {
	if m.registry.GrassID == 0 || !m.inBounds(x, y, z) {
		return false
	}
	return m.blocks[m.idx(x, y, z)] == m.registry.GrassID
}

// GetLight returns a skylight factor in [0,1]: full light with no opaque
// block above the cell, attenuated per opaque block otherwise.
func (m *Map) GetLight(x, y, z int) float64 {
	if !m.inBounds(x, y, z) {
		return 1
	}
	light := 1.0
	for cy := y + 1; cy < m.H; cy++ {
		if m.registry.Opaque[m.blocks[m.idx(x, cy, z)]] {
			light *= 0.5
		}
	}
	if light < 0.05 {
		light = 0.05
	}
	return light
}

// GetBaseHeight returns the y of the first air cell above the topmost
// solid block in the column, or 0 for an empty column.
func (m *Map) GetBaseHeight(x, z int) int {
	if x < 0 || x >= m.W || z < 0 || z >= m.D {
		return 0
	}
	for y := m.H - 1; y >= 0; y-- {
		if m.registry.Solid[m.blocks[m.idx(x, y, z)]] {
			return y + 1
		}
	}
	return 0
}
