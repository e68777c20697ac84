// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package stack implements a focus-aware ordered sequence.
//
// A Stack holds at most one focused element at a time. Order is independent
// of focus and only changes via Push, Remove or the Shuffle* operations;
// focus moves independently via Focus, FocusNext and FocusPrevious. Focus
// is a plain positional index rather than a reference to the element, so
// there's no stale pointer to invalidate when the sequence changes.
package stack

// Stack is a finite ordered sequence of T with at most one focused element.
// Create one with New or From: the zero value's focus index is 0 rather
// than -1, so it is not a valid empty Stack.
type Stack[T any] struct {
	elems []T
	focus int // index into elems, or -1 if nothing is focused
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{focus: -1}
}

// From builds a Stack from an ordered sequence, focusing the first element.
func From[T any](elems []T) *Stack[T] {
	s := &Stack[T]{
		elems: append([]T(nil), elems...),
		focus: -1,
	}
	if len(s.elems) > 0 {
		s.focus = 0
	}
	return s
}

// Len returns the number of elements in the Stack.
func (s *Stack[T]) Len() int {
	return len(s.elems)
}

// IsEmpty reports whether the Stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Push appends v to the end of the Stack and focuses it.
func (s *Stack[T]) Push(v T) {
	s.elems = append(s.elems, v)
	s.focus = len(s.elems) - 1
}

// Slice returns a copy of the Stack's elements in order.
func (s *Stack[T]) Slice() []T {
	return append([]T(nil), s.elems...)
}

// Each calls fn for every element in order. fn may mutate the element
// in place via the pointer it's given.
func (s *Stack[T]) Each(fn func(int, *T)) {
	for i := range s.elems {
		fn(i, &s.elems[i])
	}
}

// Focused returns the focused element, or the zero value and false if the
// Stack is empty.
func (s *Stack[T]) Focused() (T, bool) {
	var zero T
	if s.focus < 0 {
		return zero, false
	}
	return s.elems[s.focus], true
}

// FocusedPtr returns a pointer to the focused element, or nil if the Stack
// is empty.
func (s *Stack[T]) FocusedPtr() *T {
	if s.focus < 0 {
		return nil
	}
	return &s.elems[s.focus]
}

// Focus focuses the first element matching p.
//
// Focus panics if no element matches p: a caller asking to focus something
// that isn't there is a programming bug, not a recoverable runtime
// condition.
func (s *Stack[T]) Focus(p func(T) bool) {
	idx := s.indexOf(p)
	if idx < 0 {
		panic("stack: Focus: no element matches predicate")
	}
	s.focus = idx
}

// TryFocus focuses the first element matching p and reports whether one
// was found, without panicking.
func (s *Stack[T]) TryFocus(p func(T) bool) bool {
	idx := s.indexOf(p)
	if idx < 0 {
		return false
	}
	s.focus = idx
	return true
}

func (s *Stack[T]) indexOf(p func(T) bool) int {
	for i, v := range s.elems {
		if p(v) {
			return i
		}
	}
	return -1
}

func (s *Stack[T]) nextIndex(i int) int {
	return (i + 1) % len(s.elems)
}

func (s *Stack[T]) previousIndex(i int) int {
	if i == 0 {
		return len(s.elems) - 1
	}
	return i - 1
}

// FocusNext rotates focus to the next element cyclically. No-op if the
// Stack has fewer than two elements.
func (s *Stack[T]) FocusNext() {
	if len(s.elems) < 2 || s.focus < 0 {
		return
	}
	s.focus = s.nextIndex(s.focus)
}

// FocusPrevious rotates focus to the previous element cyclically. No-op if
// the Stack has fewer than two elements.
func (s *Stack[T]) FocusPrevious() {
	if len(s.elems) < 2 || s.focus < 0 {
		return
	}
	s.focus = s.previousIndex(s.focus)
}

// ShuffleNext moves the focused element one position forward cyclically in
// the order, keeping focus on the same element. No-op if the Stack has
// fewer than two elements.
func (s *Stack[T]) ShuffleNext() {
	if len(s.elems) < 2 || s.focus < 0 {
		return
	}
	next := s.nextIndex(s.focus)
	if next == 0 {
		v := s.elems[s.focus]
		s.elems = append(s.elems[:s.focus], s.elems[s.focus+1:]...)
		s.elems = append([]T{v}, s.elems...)
		s.focus = 0
	} else {
		s.elems[s.focus], s.elems[next] = s.elems[next], s.elems[s.focus]
		s.focus = next
	}
}

// ShufflePrevious moves the focused element one position backward
// cyclically in the order, keeping focus on the same element. No-op if the
// Stack has fewer than two elements.
func (s *Stack[T]) ShufflePrevious() {
	if len(s.elems) < 2 || s.focus < 0 {
		return
	}
	prev := s.previousIndex(s.focus)
	if prev == len(s.elems)-1 {
		v := s.elems[s.focus]
		s.elems = append(s.elems[:s.focus], s.elems[s.focus+1:]...)
		s.elems = append(s.elems, v)
		s.focus = len(s.elems) - 1
	} else {
		s.elems[s.focus], s.elems[prev] = s.elems[prev], s.elems[s.focus]
		s.focus = prev
	}
}

// Remove removes and returns the first element matching p. If the removed
// element was focused, focus moves to the element that was next (or, if the
// removed element was last, to the element that was previous; to none if
// the Stack is now empty).
//
// Remove panics if no element matches p, in line with Focus: it represents
// a caller asking to remove something it should already know is there.
func (s *Stack[T]) Remove(p func(T) bool) T {
	v, ok := s.TryRemove(p)
	if !ok {
		panic("stack: Remove: no element matches predicate")
	}
	return v
}

// TryRemove removes and returns the first element matching p, and reports
// whether one was found. Refocus rules match Remove.
func (s *Stack[T]) TryRemove(p func(T) bool) (T, bool) {
	idx := s.indexOf(p)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return s.removeAt(idx), true
}

// RemoveFocused removes and returns the focused element, applying the same
// refocus rule as Remove. Returns false if the Stack is empty.
func (s *Stack[T]) RemoveFocused() (T, bool) {
	if s.focus < 0 {
		var zero T
		return zero, false
	}
	return s.removeAt(s.focus), true
}

func (s *Stack[T]) removeAt(idx int) T {
	v := s.elems[idx]
	wasFocused := idx == s.focus
	s.elems = append(s.elems[:idx], s.elems[idx+1:]...)

	switch {
	case len(s.elems) == 0:
		s.focus = -1
	case wasFocused:
		if idx < len(s.elems) {
			// The element that was "next" has shifted down into idx.
			s.focus = idx
		} else {
			// The removed element was last; focus the new last element.
			s.focus = len(s.elems) - 1
		}
	case idx < s.focus:
		s.focus--
	}
	return v
}
