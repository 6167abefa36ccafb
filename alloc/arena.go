package alloc

import "github.com/flier/goutil/pkg/arena"

// Arena is the bump-allocator collaborator: every Slab it produces is
// carved out of a caller-owned *arena.Arena via arena.New, which allocates
// without registering a destructor. Nothing is freed per-Slab; the caller
// releases everything at once by resetting (or dropping) the underlying
// arena.Arena. Payloads stored through this path must therefore be
// trivially destructible.
type Arena[E any] struct {
	a *arena.Arena
}

// NewArena wraps an existing *arena.Arena as an Allocator[E]. The arena
// must outlive every Tree built on top of it.
func NewArena[E any](a *arena.Arena) *Arena[E] {
	return &Arena[E]{a: a}
}

// Make carves a new, empty Slab out of the arena.
func (s *Arena[E]) Make() *Slab[E] {
	return arena.New(s.a, Slab[E]{items: make([]E, 0, MaxItems)})
}
