package forgetful

import (
	"errors"
	"fmt"
)

// ErrCycle is matched by every CycleError.
var ErrCycle = errors.New("cycle detected")

// CycleError reports that Item was already observed in an enclosing scope.
type CycleError[T comparable] struct {
	Item T
}

func (e *CycleError[T]) Error() string {
	return fmt.Sprintf("%v: %v", ErrCycle, e.Item)
}

func (e *CycleError[T]) Unwrap() error {
	return ErrCycle
}
