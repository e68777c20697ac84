// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package wm implements the workspace manager: the top-level state
// machine that owns the connection, the group stack, the screen and the
// key table, and that turns driver events into group/screen mutations and
// layout passes.
package wm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/group"
	"github.com/mjkillough/lanta/internal/keys"
	"github.com/mjkillough/lanta/internal/layout"
	"github.com/mjkillough/lanta/internal/screen"
	"github.com/mjkillough/lanta/internal/stack"
)

// GroupSpec describes a group to build at construction time: a name, plus
// the layout (by name) it should start focused on, within the shared layout
// list every group cycles through. DefaultLayout may be empty,
// in which case the group starts on the first layout in the list.
type GroupSpec struct {
	Name          string
	DefaultLayout string
}

// Manager is the workspace manager: it owns the driver connection, the
// group stack, the screen and the key table, and runs the event loop.
// Exactly one group is active at any time, and it is the focused element of
// the group stack.
type Manager struct {
	conn   driver.Driver
	keys   *keys.Table[*Manager]
	groups *stack.Stack[*group.Group]
	scr    *screen.Screen
	log    *logrus.Entry
}

// New takes an already-connected driver.Driver. It installs itself as the
// window manager, builds one Group per spec in groupSpecs (each gets its
// own copy of layouts and starts on the spec's DefaultLayout, or on the
// first layout when that is empty or names no layout), adopts every
// pre-existing top-level window, activates the first group and publishes
// EWMH desktop metadata.
//
// Construction errors are fatal: the caller should abort start-up.
func New(conn driver.Driver, table *keys.Table[*Manager], groupSpecs []GroupSpec, layouts []layout.Layout, log *logrus.Logger) (*Manager, error) {
	if len(groupSpecs) == 0 {
		return nil, ErrNoGroups
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	if err := conn.InstallAsWM(table); err != nil {
		return nil, fmt.Errorf("wm: installing as window manager: %w", err)
	}

	groups := make([]*group.Group, len(groupSpecs))
	for i, spec := range groupSpecs {
		groups[i] = group.New(spec.Name, conn, layouts, spec.DefaultLayout, log)
	}

	m := &Manager{
		conn:   conn,
		keys:   table,
		groups: stack.From(groups),
		scr:    screen.New(conn),
		log:    log.WithField("component", "wm"),
	}

	existing, err := conn.TopLevelWindows()
	if err != nil {
		return nil, fmt.Errorf("wm: listing existing top-level windows: %w", err)
	}
	for _, id := range existing {
		m.manage(id)
	}

	vp, err := m.currentViewport()
	if err != nil {
		return nil, fmt.Errorf("wm: computing initial viewport: %w", err)
	}
	m.activeGroup().Activate(vp)
	m.publishDesktops()

	return m, nil
}

// Group returns the active group.
func (m *Manager) Group() *group.Group {
	return m.activeGroup()
}

// activeGroup returns the focused group. Exactly one group is always
// focused once construction has succeeded.
func (m *Manager) activeGroup() *group.Group {
	g, ok := m.groups.Focused()
	if !ok {
		panic("wm: no active group")
	}
	return g
}

// findGroup returns the group named name, if any, active or not.
func (m *Manager) findGroup(name string) (*group.Group, bool) {
	for _, g := range m.groups.Slice() {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

func (m *Manager) currentViewport() (driver.Rect, error) {
	root := m.conn.RootWindowID()
	w, h, err := m.conn.GetWindowGeometry(root)
	if err != nil {
		return driver.Rect{}, err
	}
	return m.scr.Viewport(w, h), nil
}

func (m *Manager) publishDesktops() {
	groups := m.groups.Slice()
	names := make([]string, len(groups))
	currentIndex := 0
	active := m.activeGroup()
	for i, g := range groups {
		names[i] = g.Name()
		if g == active {
			currentIndex = i
		}
	}
	m.conn.UpdateEWMHDesktops(names, currentIndex)
}

func (m *Manager) updateActiveViewport() {
	vp, err := m.currentViewport()
	if err != nil {
		m.log.WithError(err).Error("failed to compute viewport")
		return
	}
	m.activeGroup().UpdateViewport(vp)
}

// SwitchGroup deactivates the current group and activates the one named
// name, republishing EWMH desktop metadata. No-op if name is already
// current. Returns ErrGroupNotFound if no group has that name.
func (m *Manager) SwitchGroup(name string) error {
	if m.activeGroup().Name() == name {
		return nil
	}
	if _, ok := m.findGroup(name); !ok {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	m.activeGroup().Deactivate()
	m.groups.Focus(func(g *group.Group) bool { return g.Name() == name })

	vp, err := m.currentViewport()
	if err != nil {
		return fmt.Errorf("wm: computing viewport: %w", err)
	}
	m.activeGroup().Activate(vp)
	m.publishDesktops()
	return nil
}

// MoveFocusedToGroup removes the focused window from the active group and
// appends it to the group named name. No-op if name is the active group.
// If name doesn't name an existing group, the window is removed from its
// current group regardless and the error is returned for the caller to log:
// a binding referencing a group that was never configured is a configuration
// bug to surface loudly, not to paper over.
func (m *Manager) MoveFocusedToGroup(name string) error {
	if m.activeGroup().Name() == name {
		return nil
	}

	removed, ok := m.activeGroup().RemoveFocused()
	if !ok {
		return nil
	}

	target, ok := m.findGroup(name)
	if !ok {
		return fmt.Errorf("%w: moved window %v to non-existent group %q", ErrGroupNotFound, removed, name)
	}
	target.AddWindow(removed)
	return nil
}

// CloseFocusedWindow asks the driver to close the active group's focused
// window.
func (m *Manager) CloseFocusedWindow() { m.activeGroup().CloseFocused() }

// FocusNextWindow moves focus to the next window in the active group.
func (m *Manager) FocusNextWindow() { m.activeGroup().FocusNext() }

// FocusPreviousWindow moves focus to the previous window in the active
// group.
func (m *Manager) FocusPreviousWindow() { m.activeGroup().FocusPrevious() }

// ShuffleNextWindow moves the active group's focused window one position
// forward in order.
func (m *Manager) ShuffleNextWindow() { m.activeGroup().ShuffleNext() }

// ShufflePreviousWindow moves the active group's focused window one
// position backward in order.
func (m *Manager) ShufflePreviousWindow() { m.activeGroup().ShufflePrevious() }

// CycleLayoutNext cycles the active group to its next layout.
func (m *Manager) CycleLayoutNext() { m.activeGroup().LayoutNext() }

// CycleLayoutPrevious cycles the active group to its previous layout.
func (m *Manager) CycleLayoutPrevious() { m.activeGroup().LayoutPrevious() }
