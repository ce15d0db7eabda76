package systems

import (
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/world"
)

// Event type constants for system communication
const (
	EventBlockChanged  ecs.EventType = "block_changed"
	EventPathCompleted ecs.EventType = "path_completed"
	EventPathFailed    ecs.EventType = "path_failed"
)

// BlockChangedEvent is emitted when the orchestration layer overwrites a
// block; the path system uses it to invalidate stale paths.
type BlockChangedEvent struct {
	X, Y, Z  int
	Old, New world.BlockID
}

// Type returns the event type
func (e BlockChangedEvent) Type() ecs.EventType { return EventBlockChanged }

// PathCompletedEvent is emitted when a follower exhausts its path.
type PathCompletedEvent struct {
	EntityID ecs.EntityID
}

// Type returns the event type
func (e PathCompletedEvent) Type() ecs.EventType { return EventPathCompleted }

// PathFailedEvent is emitted when a path is abandoned: the target was
// unreachable or the bounded self-correction ran out of retries.
type PathFailedEvent struct {
	EntityID ecs.EntityID
}

// Type returns the event type
func (e PathFailedEvent) Type() ecs.EventType { return EventPathFailed }
