package ranno

// Annotated pairs an owned child with a single-slot cache for an annotation
// derived from it.
//
// Annotations are computed lazily, triggered when a reference to them is
// asked for through [Annotated.Anno], and cached until the child is exposed
// for mutation. A container is meant for a single logical owner; see the
// package documentation for the aliasing rules.
type Annotated[C, A any] struct {
	child    C
	derive   Annotator[C, A]
	anno     *A
	epoch    uint64
	deriving bool
	guards   int
	observer Observer
}

// New creates a container over a child. The cache starts empty; nothing is
// computed until Anno is called. New is also the conversion from a bare
// child into its annotated form.
func New[C, A any](child C, derive Annotator[C, A], opts ...Option[C, A]) *Annotated[C, A] {
	if derive == nil {
		panic("ranno: nil annotator")
	}

	a := &Annotated[C, A]{
		child:  child,
		derive: derive,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Zero creates a container over the zero value of C.
func Zero[C, A any](derive Annotator[C, A], opts ...Option[C, A]) *Annotated[C, A] {
	var child C
	return New(child, derive, opts...)
}

// Child returns a read view of the child. It never computes or invalidates
// the annotation. The child must not be mutated through this view; all
// mutation goes through ChildMut or Mutate so the cache stays honest.
func (a *Annotated[C, A]) Child() *C {
	a.checkLive()
	return &a.child
}

// Anno returns the annotation over the child, deriving and caching it if
// the cache is empty. Repeated calls between invalidations return the
// cached value without invoking the annotator again.
//
// Calling Anno while a mutable-access guard is outstanding, or on the same
// container from inside its own annotator, is a contract violation and
// panics: a value derived mid-mutation could never be trusted.
func (a *Annotated[C, A]) Anno() A {
	a.checkLive()
	a.checkUnguarded()

	if a.anno == nil {
		if a.deriving {
			panic("ranno: annotation read re-entered while deriving")
		}

		v := a.runDerive()

		a.anno = &v
		if a.observer != nil {
			a.observer.OnDerive(a.epoch)
		}
	}

	return *a.anno
}

// Peek returns the cached annotation without deriving.
func (a *Annotated[C, A]) Peek() (A, bool) {
	a.checkLive()

	if a.anno == nil {
		var zero A
		return zero, false
	}
	return *a.anno, true
}

// IsCached reports whether the annotation is currently cached.
func (a *Annotated[C, A]) IsCached() bool {
	a.checkLive()
	return a.anno != nil
}

// Epoch returns the current epoch. Epochs start at zero and advance on
// every invalidation.
func (a *Annotated[C, A]) Epoch() uint64 {
	a.checkLive()
	return a.epoch
}

// ChildMut clears the cached annotation and returns a guard exposing the
// child for mutation. Invalidation happens here, at acquisition, since the
// mutation may happen at any point during the guard's lifetime and a
// half-mutated child must never back a cached annotation.
func (a *Annotated[C, A]) ChildMut() *MutGuard[C, A] {
	a.checkUnguarded()
	a.invalidate()
	a.guards++
	return &MutGuard[C, A]{annotated: a}
}

// Mutate exposes the child for mutation for the duration of fn. The cache
// is cleared before fn runs, even if fn ends up not mutating anything.
func (a *Annotated[C, A]) Mutate(fn func(child *C)) {
	guard := a.ChildMut()
	defer guard.Release()
	fn(guard.Child())
}

// Split consumes the container, returning the owned child and the cached
// annotation if one was computed. No derivation is triggered. The container
// must not be used afterwards; further access panics.
func (a *Annotated[C, A]) Split() (C, A, bool) {
	a.checkLive()
	a.checkUnguarded()
	if a.deriving {
		panic("ranno: split while deriving")
	}

	child := a.child
	var anno A
	cached := a.anno != nil
	if cached {
		anno = *a.anno
	}

	if a.observer != nil {
		a.observer.OnSplit(cached)
	}

	var zero C
	a.child = zero
	a.anno = nil
	a.derive = nil

	return child, anno, cached
}

// Clone returns a new container over a copy of the child. The clone's cache
// always starts empty: two independently mutable children must never share
// one cached value. If C implements Clone() C that is used for the copy,
// otherwise the child is copied by assignment.
func (a *Annotated[C, A]) Clone() *Annotated[C, A] {
	a.checkLive()
	a.checkUnguarded()

	child := a.child
	if c, ok := any(child).(interface{ Clone() C }); ok {
		child = c.Clone()
	}

	return &Annotated[C, A]{
		child:    child,
		derive:   a.derive,
		observer: a.observer,
	}
}

func (a *Annotated[C, A]) invalidate() {
	a.checkLive()
	if a.deriving {
		panic("ranno: child mutated while deriving")
	}

	a.anno = nil
	a.epoch++
	if a.observer != nil {
		a.observer.OnInvalidate(a.epoch)
	}
}

// runDerive invokes the annotator with the re-entrancy flag held, resetting
// it even when a contract-violating annotator panics so later diagnostics
// stay truthful.
func (a *Annotated[C, A]) runDerive() A {
	a.deriving = true
	defer func() { a.deriving = false }()
	return a.derive(&a.child)
}

func (a *Annotated[C, A]) checkLive() {
	if a.derive == nil {
		panic("ranno: use of a split container")
	}
}

func (a *Annotated[C, A]) checkUnguarded() {
	if a.guards > 0 {
		panic("ranno: access while a mutable-access guard is outstanding")
	}
}
