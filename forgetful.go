package forgetful

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Observer records which items are currently observed. An item stays
// observed while the Observation returned for it is held.
//
// The zero value is an empty Observer with no listener. An Observer must not
// be copied after first use.
type Observer[T comparable] struct {
	once     sync.Once
	registry *registry[T]
}

// New returns an Observer with nothing observed.
func New[T comparable](opts ...Option) *Observer[T] {
	return &Observer[T]{registry: newRegistry[T](collect(opts))}
}

func (o *Observer[T]) reg() *registry[T] {
	o.once.Do(func() {
		if o.registry == nil {
			o.registry = newRegistry[T](settings{})
		}
	})
	return o.registry
}

// Notice registers item and returns an Observation that unregisters it on
// Release. If item is already observed, Notice returns nil, false and leaves
// the observer unchanged.
func (o *Observer[T]) Notice(item T) (*Observation[T], bool) {
	r := o.reg()
	if !r.insert(item) {
		return nil, false
	}
	return newObservation(r, item), true
}

// Enter is Notice with the repeat reported as a *CycleError.
func (o *Observer[T]) Enter(item T) (*Observation[T], error) {
	obs, ok := o.Notice(item)
	if !ok {
		return nil, &CycleError[T]{Item: item}
	}
	return obs, nil
}

// Within observes item for the duration of fn. The observation is released
// when fn returns or panics. If item is already observed, fn is not called
// and a *CycleError is returned.
func (o *Observer[T]) Within(item T, fn func() error) error {
	obs, err := o.Enter(item)
	if err != nil {
		return err
	}
	defer obs.Release()
	return fn()
}

// Observing reports whether item is currently observed.
func (o *Observer[T]) Observing(item T) bool {
	return o.reg().contains(item)
}

// Len returns the number of items currently observed.
func (o *Observer[T]) Len() int {
	return o.reg().len()
}

// String lists the observed items in sorted order, e.g. "{bar, foo}".
func (o *Observer[T]) String() string {
	items := o.reg().snapshot()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = fmt.Sprint(item)
	}
	slices.Sort(names)
	return "{" + strings.Join(names, ", ") + "}"
}

type contextKey[T comparable] struct{}

// WithObserver returns a child context that carries a new Observer for items
// of type T. Contexts carry at most one observer per item type.
func WithObserver[T comparable](ctx context.Context, opts ...Option) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, New[T](opts...))
}

// FromContext retrieves the Observer for T from ctx, or nil if none is present.
func FromContext[T comparable](ctx context.Context) *Observer[T] {
	o, _ := ctx.Value(contextKey[T]{}).(*Observer[T])
	return o
}

// Visit calls fn while item is observed by the context's Observer, returning
// a *CycleError without calling fn if item is already observed.
//
// If ctx has no Observer for T (WithObserver was not called), fn is called
// directly and no cycle detection takes place: cyclic input recurses without
// bound.
func Visit[T comparable](ctx context.Context, item T, fn func(context.Context) error) error {
	o := FromContext[T](ctx)
	if o == nil {
		return fn(ctx)
	}
	return o.Within(item, func() error {
		return fn(ctx)
	})
}
