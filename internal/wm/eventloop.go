// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package wm

import "github.com/mjkillough/lanta/internal/driver"

// Run blocks, iterating the driver's event loop until the underlying
// connection ends. Control is strictly single-threaded and
// synchronous: each iteration flushes any writes queued by the previous
// event, blocks for the next one, dispatches it to completion, then loops.
//
// Event handlers never propagate errors: one misbehaving client must not be
// able to kill the manager.
func (m *Manager) Run() {
	loop := m.conn.GetEventLoop()
	for {
		if err := m.conn.Flush(); err != nil {
			m.log.WithError(err).Error("flush failed")
		}

		ev, ok := loop.Next()
		if !ok {
			break
		}
		m.dispatch(ev)
	}
	m.log.Info("event loop exiting")
}

func (m *Manager) dispatch(ev driver.Event) {
	switch ev.Kind {
	case driver.EventMapRequest:
		m.onMapRequest(ev.Window)
	case driver.EventUnmapNotify:
		m.onUnmapNotify(ev.Window)
	case driver.EventDestroyNotify:
		m.onDestroyNotify(ev.Window)
	case driver.EventKeyPress:
		m.onKeyPress(ev.KeyCombo)
	case driver.EventEnterNotify:
		m.onEnterNotify(ev.Window)
	}
}

func (m *Manager) onMapRequest(id driver.WindowID) {
	if !m.isManaged(id) {
		m.manage(id)
		return
	}
	if m.activeGroup().Contains(id) {
		m.log.Debugf("MapRequest for already-managed window %v in active group, focusing it", id)
		m.activeGroup().Focus(id)
	}
	// Else: managed, but in an inactive group or tracked as a dock — ignored.
}

func (m *Manager) onUnmapNotify(id driver.WindowID) {
	m.unmanage(id)
}

func (m *Manager) onDestroyNotify(id driver.WindowID) {
	m.unmanage(id)
}

func (m *Manager) onKeyPress(combo driver.KeyCombo) {
	key := toKeysCombo(combo)
	cmd, ok := m.keys.Get(key)
	if !ok {
		return
	}
	if err := cmd(m); err != nil {
		m.log.WithError(err).Errorf("command failed for key combo %+v", key)
	}
}

func (m *Manager) onEnterNotify(id driver.WindowID) {
	m.activeGroup().Focus(id)
}
