package ecs

import "fmt"

// DeadEntityError is raised when a component is added to an entity that was
// never created or has already been removed.
type DeadEntityError struct {
	ID EntityID
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %d is not alive", e.ID)
}

// ComponentExistsError is raised when a component is added twice.
type ComponentExistsError struct {
	ID    EntityID
	Store string
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("entity %d already has component %q", e.ID, e.Store)
}

// ComponentNotFoundError is raised by GetX when the component is absent.
type ComponentNotFoundError struct {
	ID    EntityID
	Store string
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %d has no component %q", e.ID, e.Store)
}
