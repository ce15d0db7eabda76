package components

import "github.com/PeteSumners/cornerstone/physics"

// BodyComponent attaches a rigid body to the entity. Every entity holding
// a body must also hold a PositionComponent for the write-back.
type BodyComponent struct {
	physics.Body
}
