package ranno

// MutGuard is a scoped mutable view of a container's child.
//
// The cache was already cleared when the guard was handed out, so releasing
// it never touches the cache again. While a guard is outstanding the
// container counts the child as mutably borrowed: annotation reads, splits,
// clones, and further guards panic until Release.
type MutGuard[C, A any] struct {
	annotated *Annotated[C, A]
	released  bool
}

// Child returns the mutable child view. It panics if the guard was
// released.
func (g *MutGuard[C, A]) Child() *C {
	if g.released {
		panic("ranno: use of a released mutable-access guard")
	}
	return &g.annotated.child
}

// Release ends the mutable access. Releasing is idempotent.
func (g *MutGuard[C, A]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.annotated.guards--
}
