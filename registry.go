package forgetful

import "sync"

// registry is the set of items currently observed. It is shared by an
// Observer and every Observation it has issued.
type registry[T comparable] struct {
	mu       sync.Mutex
	items    map[T]struct{}
	listener Listener
}

func newRegistry[T comparable](s settings) *registry[T] {
	return &registry[T]{
		items:    make(map[T]struct{}),
		listener: s.listener,
	}
}

// insert adds item unless it is already present. It reports whether the item
// was added. Events are emitted under the lock so listeners see them in the
// order the registry changed.
func (r *registry[T]) insert(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.items[item]; seen {
		r.emit(EventRepeat, item)
		return false
	}
	r.items[item] = struct{}{}
	r.emit(EventNotice, item)
	return true
}

// remove deletes item. When notify is false no event is emitted; the runtime
// cleanup path uses this so listeners are never called from the cleanup
// goroutine.
func (r *registry[T]) remove(item T, notify bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, item)
	if notify {
		r.emit(EventRelease, item)
	}
}

func (r *registry[T]) contains(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[item]
	return ok
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *registry[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]T, 0, len(r.items))
	for item := range r.items {
		items = append(items, item)
	}
	return items
}

// emit must be called with r.mu held.
func (r *registry[T]) emit(event Event, item T) {
	if r.listener == nil {
		return
	}
	r.listener.On(EventData{
		Event: event,
		Item:  item,
	})
}
