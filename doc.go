// Package ranno provides lazily computed, cached annotations over recursive
// data structures.
//
// # Overview
//
// An annotation is a summary value derived from a child's content: a
// subtree's element count, its height, an aggregate hash. Ranno organizes
// this around three pieces:
//
//  1. Annotated: a container pairing an owned child with a single-slot
//     annotation cache
//  2. Annotator: the capability deriving an annotation from a child view
//  3. MutGuard: the mutable-access path that invalidates the cache
//
// # Basic Usage
//
// Build a container around a child and an annotator:
//
//	type Words []string
//
//	count := func(w *Words) int { return len(*w) }
//
//	a := ranno.New(Words{"lazy", "cached"}, ranno.Annotator[Words, int](count))
//
//	a.Anno() // derives: 2
//	a.Anno() // cached: 2, count not called again
//
// Reading the child never touches the cache:
//
//	first := (*a.Child())[0]
//
// # Invalidation
//
// All mutation goes through the mutable-access path. The cache is cleared
// when the access is granted, before any mutation could have happened:
//
//	a.Mutate(func(w *Words) {
//	    *w = append(*w, "invalidated")
//	})
//
//	a.Anno() // re-derives: 3
//
// The guard form is equivalent and useful when the mutation spans more than
// a closure:
//
//	guard := a.ChildMut() // cache already cleared here
//	w := guard.Child()
//	*w = (*w)[:1]
//	guard.Release()
//
// Acquiring the guard without mutating still invalidates; that is the
// pessimistic trade the design makes for soundness.
//
// # Splitting
//
// Split consumes the container, handing back the child and whatever the
// cache happened to hold:
//
//	child, anno, cached := a.Split()
//
// No derivation is triggered; cached is false if Anno was never called in
// the current epoch.
//
// # Recursive Structures
//
// Annotators roll up exactly one level. When the child nests further
// containers, read their summaries through Anno so memoized descendants are
// reused instead of recomputed:
//
//	type Node struct {
//	    elem int
//	    next *ranno.Annotated[Node, int]
//	}
//
//	var card ranno.Annotator[Node, int]
//	card = func(n *Node) int {
//	    if n.next == nil {
//	        return 1
//	    }
//	    return 1 + n.next.Anno()
//	}
//
// # Adapters
//
// An annotator written for a bare C applies unchanged through indirections.
// Ptr lifts it over *C, and Via lifts it over any ownership handle exposing
// the child with a Deref() *C method, including the types in the handle
// package:
//
//	derive := ranno.Via[*handle.Shared[Node]](card)
//	a := ranno.New(handle.NewShared(node), derive)
//
// # Observers
//
// Containers are silent by default. An Observer attached at construction
// receives derive, invalidate, and split events, each stamped with the
// container's epoch; the extensions package has a slog-backed one:
//
//	obs := extensions.NewLoggingObserver(handler, "index")
//	a := ranno.New(child, derive, ranno.WithObserver[C, A](obs))
//
// # Contract
//
// Annotators are total and infallible: no operation in this package returns
// an error. Contract violations the container can see are met with a panic
// carrying a ranno: diagnostic: reading the annotation, splitting, cloning,
// or requesting another guard while a mutable-access guard is outstanding,
// re-entering the same container from inside its own annotator, and any use
// of a split container. The one violation it cannot see is mutating a child
// outside the guard path, which silently yields stale annotations.
//
// # Thread Safety
//
// A container belongs to one logical owner: none of its operations are safe
// for concurrent use without external synchronization. The lazy fill behind
// Anno is plain single-owner mutation, not a concurrency mechanism.
package ranno
