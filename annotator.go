package ranno

// Annotator derives an annotation of type A from a read-only view of a
// child of type C. Implementations must be total and pure: no error channel
// exists, and the same child content must always produce the same
// annotation. Fallible derivation has to be encoded into A itself.
//
// When C contains nested annotated containers, an annotator rolls up one
// level only and reads sub-summaries through their Anno method, so already
// memoized descendants are never recomputed.
type Annotator[C, A any] func(child *C) A

// Handle is satisfied by ownership wrappers that expose their child through
// a pointer, such as the types in the handle package.
type Handle[C any] interface {
	Deref() *C
}

// Ptr lifts an annotator over C to an annotator over *C. Derivation only
// reads, so a single adapter covers both shared and exclusive pointers.
func Ptr[C, A any](fn Annotator[C, A]) Annotator[*C, A] {
	return func(child **C) A {
		return fn(*child)
	}
}

// Via lifts an annotator over C to an annotator over any ownership handle
// wrapping C. One generic adapter replaces per-wrapper boilerplate: the
// handle is dereferenced and the unwrapped annotator does the rest.
//
//	card := func(l *List) Cardinality { ... }
//	derive := ranno.Via[*handle.Shared[List]](ranno.Annotator[List, Cardinality](card))
func Via[W Handle[C], C, A any](fn Annotator[C, A]) Annotator[W, A] {
	return func(w *W) A {
		return fn((*w).Deref())
	}
}
