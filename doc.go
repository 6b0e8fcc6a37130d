// Package forgetful provides scoped membership tracking for recursive and
// graph-like traversals.
//
// An [Observer] remembers an item only while the [Observation] returned by
// [Observer.Notice] is held. Releasing the observation makes the observer
// forget the item again. This is the shape needed to detect cycles: notice a
// node before descending into it, keep the observation for the duration of
// the descent, and release it when backtracking.
//
//	seen := forgetful.New[string]()
//
//	func findLeaf(graph map[string]string, node string) (string, error) {
//		obs, err := seen.Enter(node)
//		if err != nil {
//			return "", err // cycle detected: node
//		}
//		defer obs.Release()
//
//		next, ok := graph[node]
//		if !ok {
//			return node, nil
//		}
//		return findLeaf(graph, next)
//	}
//
// Notice reports a repeat by returning ok == false; it never returns an error
// or panics. [Observer.Enter], [Observer.Within] and [Visit] turn a repeat into
// a [*CycleError] that matches [ErrCycle].
//
// Items are compared with ==. Use a pointer type for identity semantics, or
// [NewKeyed] to track items by a derived key.
//
// Observations must be released on every exit path, usually with defer. An
// observation that becomes unreachable without being released is released by
// a runtime cleanup as a last resort; do not rely on its timing. Such a
// release emits no EventRelease to the observer's [Listener].
//
// Observers are safe for concurrent use: the containment check and insert of
// Notice are atomic with respect to Release.
package forgetful
