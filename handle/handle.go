// Package handle provides the ownership indirections annotated recursive
// structures are usually built over: a reference-counted shared handle, an
// atomically counted variant, and a unique owning box.
//
// Every type exposes its child through Deref, which is what lets an
// annotator written for the bare child type apply through any of them via
// ranno.Via.
package handle

import "sync/atomic"

// Shared is a reference-counted handle to a single child. Retain creates
// further handles to the same child; TryUnwrap recovers exclusive ownership
// once this is the only handle left.
//
// The count is not synchronized; use SyncShared when handles cross
// goroutines.
type Shared[C any] struct {
	child *C
	count *int
}

// NewShared boxes a child into a shared handle with a count of one.
func NewShared[C any](child C) *Shared[C] {
	count := 1
	return &Shared[C]{child: &child, count: &count}
}

// Retain returns a new handle to the same child, incrementing the count.
func (s *Shared[C]) Retain() *Shared[C] {
	s.check()
	*s.count++
	return &Shared[C]{child: s.child, count: s.count}
}

// Release drops this handle's claim on the child. The handle is dead
// afterwards; any further use panics.
func (s *Shared[C]) Release() {
	s.check()
	*s.count--
	s.child = nil
	s.count = nil
}

// Deref returns the shared child.
func (s *Shared[C]) Deref() *C {
	s.check()
	return s.child
}

// Count returns the number of live handles to the child.
func (s *Shared[C]) Count() int {
	s.check()
	return *s.count
}

// TryUnwrap consumes the handle and returns the owned child if this is the
// sole holder. On failure the handle stays live and usable.
func (s *Shared[C]) TryUnwrap() (C, bool) {
	s.check()
	if *s.count != 1 {
		var zero C
		return zero, false
	}

	child := *s.child
	s.Release()
	return child, true
}

func (s *Shared[C]) check() {
	if s.child == nil {
		panic("handle: use of a released handle")
	}
}

// SyncShared is Shared with an atomic count, for handles that are retained
// and released across goroutines. Only the count is synchronized; access to
// the child itself follows the usual single-owner rules.
type SyncShared[C any] struct {
	child *C
	count *atomic.Int64
}

// NewSyncShared boxes a child into an atomically counted handle.
func NewSyncShared[C any](child C) *SyncShared[C] {
	count := new(atomic.Int64)
	count.Store(1)
	return &SyncShared[C]{child: &child, count: count}
}

// Retain returns a new handle to the same child, incrementing the count.
func (s *SyncShared[C]) Retain() *SyncShared[C] {
	s.check()
	s.count.Add(1)
	return &SyncShared[C]{child: s.child, count: s.count}
}

// Release drops this handle's claim on the child.
func (s *SyncShared[C]) Release() {
	s.check()
	s.count.Add(-1)
	s.child = nil
	s.count = nil
}

// Deref returns the shared child.
func (s *SyncShared[C]) Deref() *C {
	s.check()
	return s.child
}

// Count returns the number of live handles to the child.
func (s *SyncShared[C]) Count() int {
	s.check()
	return int(s.count.Load())
}

// TryUnwrap consumes the handle and returns the owned child if this is the
// sole holder, deciding with a single compare-and-swap on the count.
func (s *SyncShared[C]) TryUnwrap() (C, bool) {
	s.check()
	if !s.count.CompareAndSwap(1, 0) {
		var zero C
		return zero, false
	}

	child := *s.child
	s.child = nil
	s.count = nil
	return child, true
}

func (s *SyncShared[C]) check() {
	if s.child == nil {
		panic("handle: use of a released handle")
	}
}

// Owned is a unique owning box around a child.
type Owned[C any] struct {
	child *C
}

// NewOwned boxes a child.
func NewOwned[C any](child C) *Owned[C] {
	return &Owned[C]{child: &child}
}

// Deref returns the owned child.
func (o *Owned[C]) Deref() *C {
	if o.child == nil {
		panic("handle: use of a consumed box")
	}
	return o.child
}

// Into consumes the box and returns the owned child.
func (o *Owned[C]) Into() C {
	if o.child == nil {
		panic("handle: use of a consumed box")
	}

	child := *o.child
	o.child = nil
	return child
}
