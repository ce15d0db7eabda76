package ecs

// EntityID is a unique identifier for an entity. Entities own no data
// directly; the ID indexes into component stores.
type EntityID uint32

// NoEntity is the reserved sentinel meaning "no entity".
const NoEntity EntityID = 0
