package ranno

// Observer receives annotation lifecycle events from a container. Observers
// are optional and purely passive: they cannot alter the cache or the child.
//
// Epochs count the spans between invalidations. A container starts in epoch
// zero; every invalidation begins the next epoch. Within one epoch at most
// one derive event fires.
type Observer interface {
	// OnDerive fires after the annotation was computed and stored.
	OnDerive(epoch uint64)
	// OnInvalidate fires after the cache was cleared, with the new epoch.
	OnInvalidate(epoch uint64)
	// OnSplit fires when the container is consumed. cached reports whether
	// an annotation was in the cache at that moment.
	OnSplit(cached bool)
}

// Option is a modifier for containers at construction time.
type Option[C, A any] func(*Annotated[C, A])

// WithObserver returns an option that attaches an observer to a container.
func WithObserver[C, A any](obs Observer) Option[C, A] {
	return func(a *Annotated[C, A]) {
		a.observer = obs
	}
}
