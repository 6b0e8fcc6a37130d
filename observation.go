package forgetful

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Observation is proof that an item is observed. Release makes the Observer
// that issued it forget the item.
//
// An Observation dropped without Release is released once it is garbage
// collected, without emitting EventRelease. That never happens if the item
// can reach its own Observation (e.g. a *node that stores its token), so such
// tokens must always be released explicitly.
type Observation[T comparable] struct {
	lease   lease[T]
	cleanup runtime.Cleanup
}

// lease is the part of an Observation needed to undo it. It is kept apart
// from the Observation so the runtime cleanup can run once the Observation
// itself is unreachable.
type lease[T comparable] struct {
	item     T
	registry *registry[T]
	released *atomic.Bool
}

func (l lease[T]) release(notify bool) {
	if l.released.CompareAndSwap(false, true) {
		l.registry.remove(l.item, notify)
	}
}

func (l lease[T]) collect() {
	l.release(false)
}

func newObservation[T comparable](r *registry[T], item T) *Observation[T] {
	obs := &Observation[T]{
		lease: lease[T]{
			item:     item,
			registry: r,
			released: new(atomic.Bool),
		},
	}
	obs.cleanup = runtime.AddCleanup(obs, lease[T].collect, obs.lease)
	return obs
}

// Item returns the observed item.
func (o *Observation[T]) Item() T {
	return o.lease.item
}

// Release unregisters the item. Only the first call has an effect, and it is
// safe to call on a nil Observation.
func (o *Observation[T]) Release() {
	if o == nil {
		return
	}
	o.cleanup.Stop()
	o.lease.release(true)
}

// Close calls Release. It always returns nil.
func (o *Observation[T]) Close() error {
	o.Release()
	return nil
}

func (o *Observation[T]) String() string {
	if o == nil {
		return "<nil>"
	}
	return fmt.Sprint(o.lease.item)
}
