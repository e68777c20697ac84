// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package wm

import "github.com/mjkillough/lanta/internal/driver"

// isManaged reports whether id is already tracked, either as a window in
// some group or as a dock.
func (m *Manager) isManaged(id driver.WindowID) bool {
	if m.scr.Contains(id) {
		return true
	}
	for _, g := range m.groups.Slice() {
		if g.Contains(id) {
			return true
		}
	}
	return false
}

// manage brings a window under control, shared between construction
// (pre-existing windows) and MapRequest handling. It classifies the
// window as a dock or not via its EWMH window-type list, grabs every bound
// key combo on it, and either tracks it in the screen (docks) or adds it to
// the active group (everything else) — which is what actually maps it, via
// the subsequent layout pass.
func (m *Manager) manage(id driver.WindowID) {
	if m.isManaged(id) {
		m.log.Warnf("asked to manage window that's already managed: %v", id)
		return
	}

	types, err := m.conn.GetWindowTypes(id)
	if err != nil {
		m.log.WithError(err).Warnf("couldn't get window types for %v, assuming normal", id)
	}
	isDock := false
	for _, t := range types {
		if t == driver.WindowTypeDock {
			isDock = true
			break
		}
	}

	m.conn.EnableWindowKeyEvents(id, m.keys)

	if isDock {
		m.conn.MapWindow(id)
		if err := m.scr.AddDock(id); err != nil {
			m.log.WithError(err).Errorf("couldn't read strut for dock %v", id)
		}
		m.updateActiveViewport()
		return
	}

	m.conn.EnableWindowTracking(id)
	m.activeGroup().AddWindow(id)
}

// unmanage removes id from whichever group owns it, and/or from the
// screen's docks, then recomputes the active group's viewport (docks may
// have changed).
func (m *Manager) unmanage(id driver.WindowID) {
	for _, g := range m.groups.Slice() {
		if g.Contains(id) {
			g.RemoveWindow(id)
			break
		}
	}
	m.scr.RemoveDock(id)
	m.updateActiveViewport()
}
