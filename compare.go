package ranno

import "cmp"

// Identity of a container is the identity of its child. Annotations are
// derived data: two containers with equal children compare equal no matter
// how their caches are populated.

// Equal reports whether two containers hold equal children.
func Equal[C comparable, A any](x, y *Annotated[C, A]) bool {
	return x.child == y.child
}

// EqualFunc is like Equal for children that are not comparable, using eq on
// the two child views.
func EqualFunc[C, A any](x, y *Annotated[C, A], eq func(x, y *C) bool) bool {
	return eq(&x.child, &y.child)
}

// Compare orders two containers by their children.
func Compare[C cmp.Ordered, A any](x, y *Annotated[C, A]) int {
	return cmp.Compare(x.child, y.child)
}

// CompareFunc is like Compare for children without a natural order, using
// cmpFn on the two child views.
func CompareFunc[C, A any](x, y *Annotated[C, A], cmpFn func(x, y *C) int) int {
	return cmpFn(&x.child, &y.child)
}

// Less reports whether x's child orders before y's.
func Less[C cmp.Ordered, A any](x, y *Annotated[C, A]) bool {
	return cmp.Less(x.child, y.child)
}
