package ecs

// Hooks are the lifecycle callbacks a component store may carry. All of
// them are optional.
type Hooks[T any] struct {
	// OnAdd runs right after a component is default-initialized.
	OnAdd func(id EntityID, state *T)
	// OnRemove runs right before a component is dropped, and is the place
	// for resource cleanup (e.g. disposing a mesh handle).
	OnRemove func(id EntityID, state *T)
	// OnUpdate runs once per simulation tick over the whole store.
	OnUpdate func(dt float64, st *Store[T])
	// OnRender runs once per rendered frame over the whole store.
	OnRender func(dt float64, st *Store[T])
}

// Store holds the dense per-component state for one component type.
// Deletion is O(1) swap-remove, so iteration order is not stable across
// removals. Pointers returned by Add/Get/GetX stay valid only until the
// store next mutates.
type Store[T any] struct {
	world     *World
	storeName string
	storeBit  uint32
	hooks     Hooks[T]
	dense     []T
	owners    []EntityID
	index     map[EntityID]int
}

// RegisterStore creates a component store on the world. All stores must be
// registered at startup, before entities are created; the registry is fixed
// from then on.
func RegisterStore[T any](w *World, name string, hooks Hooks[T]) *Store[T] {
	st := &Store[T]{
		world:     w,
		storeName: name,
		storeBit:  uint32(len(w.stores)),
		hooks:     hooks,
		index:     make(map[EntityID]int),
	}
	w.stores = append(w.stores, st)
	return st
}

// Name returns the store's registered name.
func (s *Store[T]) Name() string { return s.storeName }

// Len returns the number of live components in the store.
func (s *Store[T]) Len() int { return len(s.dense) }

// Add default-initializes a component for the entity and returns the
// mutable state. Adding to a dead entity or adding twice is a programmer
// error and panics.
func (s *Store[T]) Add(id EntityID) *T {
	if !s.world.Alive(id) {
		panic(DeadEntityError{ID: id})
	}
	if _, ok := s.index[id]; ok {
		panic(ComponentExistsError{ID: id, Store: s.storeName})
	}
	var zero T
	s.dense = append(s.dense, zero)
	s.owners = append(s.owners, id)
	n := len(s.dense) - 1
	s.index[id] = n
	s.world.markComponent(id, s.storeBit)
	if s.hooks.OnAdd != nil {
		s.hooks.OnAdd(id, &s.dense[n])
	}
	return &s.dense[n]
}

// Get returns the entity's state, or nil when the entity does not hold
// this component.
func (s *Store[T]) Get(id EntityID) *T {
	n, ok := s.index[id]
	if !ok {
		return nil
	}
	return &s.dense[n]
}

// GetX returns the entity's state and panics when it is absent. Use it
// where absence is a bug rather than a branch.
func (s *Store[T]) GetX(id EntityID) *T {
	n, ok := s.index[id]
	if !ok {
		panic(ComponentNotFoundError{ID: id, Store: s.storeName})
	}
	return &s.dense[n]
}

// Has reports whether the entity holds this component.
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Each calls fn for every live component. Removing the visited entity from
// inside fn is safe; removals of other entities are not.
func (s *Store[T]) Each(fn func(id EntityID, state *T)) {
	for i := 0; i < len(s.dense); i++ {
		id := s.owners[i]
		fn(id, &s.dense[i])
		// The visited entry may have been swap-removed by fn; re-run the
		// index when the owner changed under us.
		if i < len(s.owners) && s.owners[i] != id {
			i--
		}
	}
}

// Remove drops the entity's component, invoking OnRemove first. Removing
// an absent component is a no-op.
func (s *Store[T]) Remove(id EntityID) {
	n, ok := s.index[id]
	if !ok {
		return
	}
	if s.hooks.OnRemove != nil {
		s.hooks.OnRemove(id, &s.dense[n])
	}
	last := len(s.dense) - 1
	if n != last {
		s.dense[n] = s.dense[last]
		s.owners[n] = s.owners[last]
		s.index[s.owners[n]] = n
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.index, id)
}

func (s *Store[T]) bit() uint32 { return s.storeBit }

func (s *Store[T]) removeEntity(id EntityID) { s.Remove(id) }

func (s *Store[T]) update(dt float64) {
	if s.hooks.OnUpdate != nil {
		s.hooks.OnUpdate(dt, s)
	}
}

func (s *Store[T]) render(dt float64) {
	if s.hooks.OnRender != nil {
		s.hooks.OnRender(dt, s)
	}
}
