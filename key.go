package forgetful

// Keyed observes items by a derived key. Use it when T is not comparable, or
// when two distinct values should count as the same item.
type Keyed[T any, K comparable] struct {
	observer *Observer[K]
	key      func(T) K
}

// NewKeyed creates a Keyed observer that identifies items by key(item).
// key must return the same value for an item for as long as it is observed.
func NewKeyed[T any, K comparable](key func(T) K, opts ...Option) *Keyed[T, K] {
	return &Keyed[T, K]{
		observer: New[K](opts...),
		key:      key,
	}
}

// Notice registers the key of item. See Observer.Notice.
func (k *Keyed[T, K]) Notice(item T) (*Observation[K], bool) {
	return k.observer.Notice(k.key(item))
}

// Enter registers the key of item. See Observer.Enter.
func (k *Keyed[T, K]) Enter(item T) (*Observation[K], error) {
	return k.observer.Enter(k.key(item))
}

// Within runs fn while the key of item is observed. See Observer.Within.
func (k *Keyed[T, K]) Within(item T, fn func() error) error {
	return k.observer.Within(k.key(item), fn)
}

// Observer returns the underlying Observer of keys.
func (k *Keyed[T, K]) Observer() *Observer[K] {
	return k.observer
}
