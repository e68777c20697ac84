// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package keys implements the key-binding table: a map from (modifier
// mask, keysym) to a command, plus the modifier enumeration used to mask
// the driver's reported event state before lookup.
package keys

import "github.com/mjkillough/lanta/internal/driver"

// ModMask is a bitmask of modifier keys, matching the X11 KeyButMask bits.
type ModMask uint16

// The modifiers this table understands. Bits outside All() are dropped
// from any reported event state before a lookup. Lock (CapsLock) and Mod2
// (usually NumLock) are part of All() and are kept, so a combo reported with
// either of them set only matches a binding that includes it.
const (
	Shift   ModMask = 1 << 0
	Lock    ModMask = 1 << 1
	Control ModMask = 1 << 2
	Mod1    ModMask = 1 << 3
	Mod2    ModMask = 1 << 4
	Mod3    ModMask = 1 << 5
	Mod4    ModMask = 1 << 6
	Mod5    ModMask = 1 << 7
)

// All returns the bit-or of every modifier this table supports.
func All() ModMask {
	return Shift | Lock | Control | Mod1 | Mod2 | Mod3 | Mod4 | Mod5
}

// Combo is a single key binding: a set of modifiers plus a keysym, of the
// same type as the X11 keysym constants.
type Combo struct {
	ModMask ModMask
	Keysym  uint32
}

// Mask drops any bits of state outside All(), for matching a raw
// driver-reported event state against the table.
func Mask(state uint16) ModMask {
	return ModMask(state) & All()
}

// Command is a user command bound to a key combo, over some manager type M.
// It runs synchronously inside the event handler and must not block. Table
// is generic over M (rather than importing internal/wm) so that internal/wm
// can depend on internal/keys without a cycle; internal/wm instantiates
// Table[*wm.Manager].
type Command[M any] func(m M) error

// Table maps key combos to commands. Keys are unique: binding the same
// combo twice replaces the previous command.
type Table[M any] struct {
	handlers map[Combo]Command[M]
}

// NewTable builds a Table from a set of bindings.
func NewTable[M any](bindings map[Combo]Command[M]) *Table[M] {
	t := &Table[M]{handlers: make(map[Combo]Command[M], len(bindings))}
	for combo, cmd := range bindings {
		t.handlers[combo] = cmd
	}
	return t
}

// Get returns the command bound to combo, if any.
func (t *Table[M]) Get(combo Combo) (Command[M], bool) {
	cmd, ok := t.handlers[combo]
	return cmd, ok
}

// Bind adds or replaces the binding for combo.
func (t *Table[M]) Bind(combo Combo, cmd Command[M]) {
	if t.handlers == nil {
		t.handlers = make(map[Combo]Command[M])
	}
	t.handlers[combo] = cmd
}

// Combos returns every bound combo, translated into driver.KeyCombo so the
// driver can grab them without needing to know about commands. It
// implements driver.KeyTable.
func (t *Table[M]) Combos() []driver.KeyCombo {
	combos := make([]driver.KeyCombo, 0, len(t.handlers))
	for c := range t.handlers {
		combos = append(combos, driver.KeyCombo{ModMask: uint16(c.ModMask), Keysym: c.Keysym})
	}
	return combos
}
