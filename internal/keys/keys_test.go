// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	invocations int
}

func TestGetReturnsBoundCommand(t *testing.T) {
	combo := Combo{ModMask: Mod4, Keysym: 'j'}
	table := NewTable(map[Combo]Command[*fakeManager]{
		combo: func(m *fakeManager) error {
			m.invocations++
			return nil
		},
	})

	cmd, ok := table.Get(combo)
	require.True(t, ok)

	m := &fakeManager{}
	require.NoError(t, cmd(m))
	assert.Equal(t, 1, m.invocations)
}

func TestGetUnboundComboReturnsFalse(t *testing.T) {
	table := NewTable(map[Combo]Command[*fakeManager]{})
	_, ok := table.Get(Combo{ModMask: Mod4, Keysym: 'j'})
	assert.False(t, ok)
}

func TestBindReplacesExistingBinding(t *testing.T) {
	combo := Combo{ModMask: Control, Keysym: 'x'}
	first, second := false, false
	table := NewTable(map[Combo]Command[*fakeManager]{
		combo: func(m *fakeManager) error { first = true; return nil },
	})
	table.Bind(combo, func(m *fakeManager) error { second = true; return nil })

	cmd, ok := table.Get(combo)
	require.True(t, ok)
	require.NoError(t, cmd(nil))
	assert.False(t, first)
	assert.True(t, second)
}

func TestMaskDropsUnsupportedBits(t *testing.T) {
	state := uint16(Mod4) | uint16(Shift) | (1 << 13)
	assert.Equal(t, Mod4|Shift, Mask(state))
}

func TestMaskKeepsEverySupportedModifier(t *testing.T) {
	assert.Equal(t, All(), Mask(uint16(All())))
}

func TestCombosCoversEveryBinding(t *testing.T) {
	table := NewTable(map[Combo]Command[*fakeManager]{
		{ModMask: Mod4, Keysym: 'j'}:         func(m *fakeManager) error { return nil },
		{ModMask: Mod4 | Shift, Keysym: 'c'}: func(m *fakeManager) error { return nil },
		{ModMask: Control, Keysym: 0xff0d}:   func(m *fakeManager) error { return nil },
	})

	combos := table.Combos()
	assert.Len(t, combos, 3)

	syms := make(map[uint32]uint16)
	for _, c := range combos {
		syms[c.Keysym] = c.ModMask
	}
	assert.Equal(t, uint16(Mod4), syms['j'])
	assert.Equal(t, uint16(Mod4|Shift), syms['c'])
	assert.Equal(t, uint16(Control), syms[0xff0d])
}
