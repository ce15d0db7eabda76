package engine

import "github.com/PeteSumners/cornerstone/vmath"

// MeshInstance is a render resource owned by the renderer. The simulation
// refers to it only through the handle table and must stop using it after
// Dispose.
type MeshInstance interface {
	SetPosition(pos vmath.Vec3)
	SetFrame(frame int)
	SetLight(light float64)
	Dispose()
}

// Renderer is the externally-owned render module the engine bridges to.
type Renderer interface {
	// CreateMesh builds a mesh for the named kind at a starting position.
	CreateMesh(name string, at vmath.Vec3) MeshInstance
}
