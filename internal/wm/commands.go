// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package wm

import (
	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/keys"
)

// toKeysCombo masks the driver's reported modifier state against
// keys.All() before building the table's lookup key, dropping any lock-
// state bits beyond the supported enumeration.
func toKeysCombo(ev driver.KeyCombo) keys.Combo {
	return keys.Combo{
		ModMask: keys.Mask(ev.ModMask),
		Keysym:  ev.Keysym,
	}
}

// Command is the type every user-bindable action has: a callable over the
// Manager that may fail, logged by the dispatcher rather than propagated.
type Command = keys.Command[*Manager]

// CloseFocusedWindow closes the active group's focused window.
func CloseFocusedWindow() Command {
	return func(m *Manager) error {
		m.CloseFocusedWindow()
		return nil
	}
}

// FocusNext moves focus to the next window in the active group.
func FocusNext() Command {
	return func(m *Manager) error {
		m.FocusNextWindow()
		return nil
	}
}

// FocusPrevious moves focus to the previous window in the active group.
func FocusPrevious() Command {
	return func(m *Manager) error {
		m.FocusPreviousWindow()
		return nil
	}
}

// ShuffleNext moves the focused window one position forward in the active
// group.
func ShuffleNext() Command {
	return func(m *Manager) error {
		m.ShuffleNextWindow()
		return nil
	}
}

// ShufflePrevious moves the focused window one position backward in the
// active group.
func ShufflePrevious() Command {
	return func(m *Manager) error {
		m.ShufflePreviousWindow()
		return nil
	}
}

// LayoutNext cycles the active group to its next layout.
func LayoutNext() Command {
	return func(m *Manager) error {
		m.CycleLayoutNext()
		return nil
	}
}

// LayoutPrevious cycles the active group to its previous layout.
func LayoutPrevious() Command {
	return func(m *Manager) error {
		m.CycleLayoutPrevious()
		return nil
	}
}

// SwitchGroup switches to the named group.
func SwitchGroup(name string) Command {
	return func(m *Manager) error {
		return m.SwitchGroup(name)
	}
}

// MoveFocusedToGroup moves the active group's focused window to the named
// group.
func MoveFocusedToGroup(name string) Command {
	return func(m *Manager) error {
		return m.MoveFocusedToGroup(name)
	}
}

// Spawn runs fn, which is expected to start a subprocess (e.g. via
// os/exec). The core never execs anything itself; it only invokes the
// callback it's given, which cmd/lanta supplies.
func Spawn(fn func() error) Command {
	return func(m *Manager) error {
		return fn()
	}
}
