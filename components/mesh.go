package components

import "github.com/PeteSumners/cornerstone/resource"

// MeshComponent records the handle of an externally-owned render mesh.
// The handle is freed and the mesh disposed when the component is removed.
type MeshComponent struct {
	Handle resource.Handle
	// Frame is the sprite/animation frame pushed to the mesh each render.
	Frame int
	// OffsetY shifts the rendered mesh relative to the body center.
	OffsetY float64
}
