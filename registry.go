package surface

import (
	"fmt"
	"slices"
	"sync"
)

// Registry owns every component and dispatches updates to them by id.
//
// Iteration order is insertion order and is part of the output contract:
// snapshots come out in the order components were added.
//
// One mutex guards the whole registry. Add, Remove and Dispatch hold it
// exclusively; RenderAll and the read accessors share it.
type Registry struct {
	mu         sync.RWMutex
	components []Component
	index      map[string]int // id -> position in components
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Add registers components in order.
//
// Fails with ErrDuplicateID if an id is already registered or repeated within
// the call. The call is all-or-nothing: on error nothing is added.
func (reg *Registry) Add(components ...Component) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	seen := make(map[string]struct{}, len(components))
	for _, comp := range components {
		if comp == nil {
			return fmt.Errorf("%w: nil component", ErrInvalidComponent)
		}
		id := comp.ID()
		if _, exists := reg.index[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	for _, comp := range components {
		reg.index[comp.ID()] = len(reg.components)
		reg.components = append(reg.components, comp)
	}
	return nil
}

// MustAdd is like Add but panics on error.
// Use it at startup, where a bad component set is a configuration bug.
func (reg *Registry) MustAdd(components ...Component) {
	if err := reg.Add(components...); err != nil {
		panic(err)
	}
}

// Remove unregisters the component with the given id, keeping the relative
// order of the rest.
func (reg *Registry) Remove(id string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	i, ok := reg.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	reg.components = slices.Delete(reg.components, i, i+1)
	delete(reg.index, id)
	for j := i; j < len(reg.components); j++ {
		reg.index[reg.components[j].ID()] = j
	}
	return nil
}

// Dispatch applies patch to the component with the given id.
//
// Returns ErrUnknownID when no component matches; nothing is mutated in that
// case. At most one component is touched per call.
func (reg *Registry) Dispatch(id string, patch Patch) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	i, ok := reg.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	reg.components[i].Update(patch)
	return nil
}

// RenderAll renders every component in insertion order.
func (reg *Registry) RenderAll() []Snapshot {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]Snapshot, len(reg.components))
	for i, comp := range reg.components {
		out[i] = comp.Render()
	}
	return out
}

// Lookup renders the single component with the given id.
func (reg *Registry) Lookup(id string) (Snapshot, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	i, ok := reg.index[id]
	if !ok {
		return nil, false
	}
	return reg.components[i].Render(), true
}

// Len returns the number of registered components.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// IDs returns the registered ids in insertion order.
func (reg *Registry) IDs() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	ids := make([]string, len(reg.components))
	for i, comp := range reg.components {
		ids[i] = comp.ID()
	}
	return ids
}
