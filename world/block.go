package world

// BlockID indexes the block-type registry.
type BlockID uint16

// BlockAir is the empty block.
const BlockAir BlockID = 0

// Registry holds the per-block-type lookup tables. Tables are indexed by
// BlockID and must all be the same length.
type Registry struct {
	Solid  []bool
	Opaque []bool
	Fluid  []bool
	// GrassID is the block id physics reports as grass occupancy, or 0
	// when the world has none.
	GrassID BlockID
}

// NewRegistry creates a registry with room for n block types. Id 0 is air:
// not solid, not opaque, not fluid.
func NewRegistry(n int) *Registry {
	return &Registry{
		Solid:  make([]bool, n),
		Opaque: make([]bool, n),
		Fluid:  make([]bool, n),
	}
}

// Define sets the tables for one block id and returns it for chaining into
// constant declarations.
func (r *Registry) Define(id BlockID, solid, opaque, fluid bool) BlockID {
	r.Solid[id] = solid
	r.Opaque[id] = opaque
	r.Fluid[id] = fluid
	return id
}
