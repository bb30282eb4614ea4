// Package stack provides a generic Last-In-First-Out container built on a singly-linked chain of nodes.
//
// A Stack is not safe for concurrent use. Callers sharing one across goroutines must guard it themselves.
package stack

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// node holds one element and owns the link to the node pushed before it.
type node[T any] struct {
	value T
	below *node[T]
}

// Stack is a parameterized LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top   mo.Option[*node[T]]
	size  int
	equal func(a, b T) bool
}

// New returns an empty stack whose Contains compares elements with ==. Interface-typed
// elements holding values == cannot compare, such as slices or maps, are compared deeply.
func New[T comparable]() *Stack[T] {
	return NewFunc(func(a, b T) bool {
		if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
			return a == b
		}
		return reflect.DeepEqual(a, b)
	})
}

// NewFunc returns an empty stack whose Contains compares elements with eq.
func NewFunc[T any](eq func(a, b T) bool) *Stack[T] {
	return &Stack[T]{equal: eq}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Size returns the number of elements currently stored in the stack.
func (s *Stack[T]) Size() int {
	return s.size
}

// Push places item on top of the stack. Nil pointers, maps, slices, channels, functions and interfaces are rejected.
func (s *Stack[T]) Push(item T) error {
	if lo.IsNil(item) {
		return fmt.Errorf("push: %w: item is nil", ErrInvalidArgument)
	}

	s.top = mo.Some(&node[T]{
		value: item,
		below: s.top.OrEmpty(),
	})
	s.size++
	return nil
}

// Peek returns the topmost element without removing it, or None if the stack is empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	top, ok := s.top.Get()
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(top.value)
}

// Pop removes and returns the topmost element.
func (s *Stack[T]) Pop() (item T, err error) {
	top, ok := s.top.Get()
	if !ok {
		return item, fmt.Errorf("pop: %w", ErrEmptyContainer)
	}

	s.top = link(top.below)
	s.size--
	return top.value, nil
}

// Contains reports whether any element of the stack equals target. Every element is compared, the bottom one included.
func (s *Stack[T]) Contains(target T) (bool, error) {
	if lo.IsNil(target) {
		return false, fmt.Errorf("contains: %w: target is nil", ErrInvalidArgument)
	}

	eq := s.equal
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}

	for n := s.top.OrEmpty(); n != nil; n = n.below {
		if eq(n.value, target) {
			return true, nil
		}
	}
	return false, nil
}

// PeekN returns the element at position index counted from the bottom, starting at 1.
// PeekN(Size()) is the top element and PeekN(1) the bottom one.
//
// Index 0 addresses the slot below the bottom: on an empty stack it fails with ErrEmptyContainer,
// otherwise with ErrIndexOutOfRange.
func (s *Stack[T]) PeekN(index int) (item T, err error) {
	if index < 0 || index > s.size {
		return item, fmt.Errorf("peekn: %w: index %d, size %d", ErrIndexOutOfRange, index, s.size)
	}

	n, ok := s.top.Get()
	if !ok {
		return item, fmt.Errorf("peekn: %w", ErrEmptyContainer)
	}
	if index == 0 {
		return item, fmt.Errorf("peekn: %w: index 0 is below the bottom element", ErrIndexOutOfRange)
	}

	for i := s.size; i != index; i-- {
		n = n.below
	}
	return n.value, nil
}

// Clear removes all elements from the stack, releasing the whole chain.
func (s *Stack[T]) Clear() {
	s.top = mo.None[*node[T]]()
	s.size = 0
}

func link[T any](n *node[T]) mo.Option[*node[T]] {
	if n == nil {
		return mo.None[*node[T]]()
	}
	return mo.Some(n)
}
