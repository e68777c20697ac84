// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFocusesNewElement(t *testing.T) {
	s := New[int]()
	s.Push(2)
	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 2, f)

	s.Push(3)
	f, ok = s.Focused()
	require.True(t, ok)
	assert.Equal(t, 3, f)
	assert.Equal(t, []int{2, 3}, s.Slice())
}

func TestEmptyStackHasNoFocus(t *testing.T) {
	s := New[int]()
	_, ok := s.Focused()
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	s := New[int]()
	s.Push(2)
	s.Push(3)
	s.Push(4)

	v := s.Remove(func(x int) bool { return x == 3 })
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{2, 4}, s.Slice())
}

func TestRemoveRefocusToNext(t *testing.T) {
	// [2, 3, 4], focus 3 (idx 1). Removing 3 should refocus to 4 (what was
	// next), not back to 2.
	s := New[int]()
	s.Push(2)
	s.Push(3)
	s.Push(4)
	s.Focus(func(x int) bool { return x == 3 })

	s.Remove(func(x int) bool { return x == 3 })
	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 4, f)
}

func TestRemoveFocusedLastRefocusesPrevious(t *testing.T) {
	// [2, 3, 4], focus 4 (the last element, no "next"). Removing it should
	// refocus to 3.
	s := New[int]()
	s.Push(2)
	s.Push(3)
	s.Push(4)

	s.Remove(func(x int) bool { return x == 4 })
	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 3, f)
}

func TestRemoveLastElementLeavesNoFocus(t *testing.T) {
	s := New[int]()
	s.Push(2)
	s.Remove(func(x int) bool { return x == 2 })
	_, ok := s.Focused()
	assert.False(t, ok)
}

func TestPushThenRemoveRestoresPriorStack(t *testing.T) {
	// push(v) then remove(v) restores the prior stack, with focus restored
	// to whatever was focused before the push.
	s := New[int]()
	s.Push(2)
	s.Push(3)
	s.Focus(func(x int) bool { return x == 2 })

	s.Push(4)
	v := s.Remove(func(x int) bool { return x == 4 })

	assert.Equal(t, 4, v)
	assert.Equal(t, []int{2, 3}, s.Slice())
	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 2, f)
}

func TestIterYieldsInsertionOrder(t *testing.T) {
	s := New[int]()
	s.Push(2)
	s.Push(3)
	s.Push(4)
	assert.Equal(t, []int{2, 3, 4}, s.Slice())
}

func TestFocusNext(t *testing.T) {
	s := From([]int{2, 3, 4})
	f, _ := s.Focused()
	assert.Equal(t, 2, f)

	s.FocusNext()
	f, _ = s.Focused()
	assert.Equal(t, 3, f)

	s.FocusNext()
	f, _ = s.Focused()
	assert.Equal(t, 4, f)

	s.FocusNext()
	f, _ = s.Focused()
	assert.Equal(t, 2, f)
}

func TestFocusPrevious(t *testing.T) {
	s := From([]int{2, 3, 4})

	s.FocusPrevious()
	f, _ := s.Focused()
	assert.Equal(t, 4, f)

	s.FocusPrevious()
	f, _ = s.Focused()
	assert.Equal(t, 3, f)

	s.FocusPrevious()
	f, _ = s.Focused()
	assert.Equal(t, 2, f)
}

func TestFocusNextThenPreviousIsIdentity(t *testing.T) {
	s := From([]int{2, 3, 4})
	s.Focus(func(x int) bool { return x == 3 })

	s.FocusNext()
	s.FocusPrevious()

	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 3, f)
}

func TestFocusNextNoopBelowTwoElements(t *testing.T) {
	s := From([]int{2})
	s.FocusNext()
	f, _ := s.Focused()
	assert.Equal(t, 2, f)
}

func TestShuffleNext(t *testing.T) {
	s := From([]int{2, 3, 4})
	f, _ := s.Focused()
	assert.Equal(t, 2, f)

	s.ShuffleNext()
	assert.Equal(t, []int{3, 2, 4}, s.Slice())
	f, _ = s.Focused()
	assert.Equal(t, 2, f)

	s.ShuffleNext()
	assert.Equal(t, []int{3, 4, 2}, s.Slice())
	f, _ = s.Focused()
	assert.Equal(t, 2, f)

	s.ShuffleNext()
	assert.Equal(t, []int{2, 3, 4}, s.Slice())
	f, _ = s.Focused()
	assert.Equal(t, 2, f)
}

func TestShufflePrevious(t *testing.T) {
	s := From([]int{2, 3, 4})

	s.ShufflePrevious()
	assert.Equal(t, []int{3, 4, 2}, s.Slice())

	s.ShufflePrevious()
	assert.Equal(t, []int{3, 2, 4}, s.Slice())

	s.ShufflePrevious()
	assert.Equal(t, []int{2, 3, 4}, s.Slice())
}

func TestShuffleNextPreservesFocusedValueThroughFullCycle(t *testing.T) {
	s := From([]string{"A", "B", "C"})
	s.Focus(func(x string) bool { return x == "C" })

	s.ShuffleNext()
	assert.Equal(t, []string{"C", "A", "B"}, s.Slice())
	f, _ := s.Focused()
	assert.Equal(t, "C", f)

	s.ShuffleNext()
	assert.Equal(t, []string{"A", "C", "B"}, s.Slice())
	f, _ = s.Focused()
	assert.Equal(t, "C", f)

	s.ShuffleNext()
	assert.Equal(t, []string{"A", "B", "C"}, s.Slice())
	f, _ = s.Focused()
	assert.Equal(t, "C", f)
}

func TestShuffleNextNTimesOnLenNStackIsIdentityOnOrder(t *testing.T) {
	orig := []int{1, 2, 3, 4, 5}
	s := From(orig)
	for i := 0; i < len(orig); i++ {
		s.ShuffleNext()
	}
	assert.Equal(t, orig, s.Slice())
}

func TestFromFocusesFirstElement(t *testing.T) {
	s := From([]int{7, 8, 9})
	f, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, 7, f)
}

func TestFocusPanicsWhenNotFound(t *testing.T) {
	s := From([]int{1, 2})
	assert.Panics(t, func() {
		s.Focus(func(x int) bool { return x == 99 })
	})
}

func TestTryFocusReportsNotFound(t *testing.T) {
	s := From([]int{1, 2})
	ok := s.TryFocus(func(x int) bool { return x == 99 })
	assert.False(t, ok)
}

func TestRemoveFocusedOnEmptyReturnsFalse(t *testing.T) {
	s := New[int]()
	_, ok := s.RemoveFocused()
	assert.False(t, ok)
}
