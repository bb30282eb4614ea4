package stack

import "errors"

// Sentinel errors returned by Stack operations. Returned errors wrap them; match with errors.Is.
var (
	// ErrInvalidArgument is returned when a nil element is pushed or searched for.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyContainer is returned when an element is requested from an empty stack.
	ErrEmptyContainer = errors.New("stack is empty")

	// ErrIndexOutOfRange is returned by PeekN for an index outside the stack.
	ErrIndexOutOfRange = errors.New("index out of range")
)
