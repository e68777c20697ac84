// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package group implements a workspace: a stack of window IDs, a stack of
// layouts, an active/inactive flag and the current viewport. A Group
// executes a layout pass on any state change while active, and hides its
// windows while inactive.
package group

import (
	"github.com/sirupsen/logrus"

	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/layout"
	"github.com/mjkillough/lanta/internal/stack"
)

// Group is a named workspace. All operations are total: driver errors are
// logged and swallowed at this level, so one misbehaving client can't
// propagate a failure up into the workspace manager.
type Group struct {
	name     string
	conn     driver.Driver
	layouts  *stack.Stack[layout.Layout]
	windows  *stack.Stack[driver.WindowID]
	active   bool
	viewport driver.Rect
	log      *logrus.Entry
}

// New creates a Group, inactive, with an empty window stack and the given
// layouts. layouts must be non-empty. defaultLayout names the layout (by
// Name()) the group should start focused on; if it's empty, or it doesn't
// match any layout in layouts, the first layout is used instead (logged as a
// warning in the latter case, since it means a configuration referenced a
// layout name that doesn't exist).
func New(name string, conn driver.Driver, layouts []layout.Layout, defaultLayout string, log *logrus.Logger) *Group {
	if len(layouts) == 0 {
		panic("group: New: at least one layout is required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	entry := log.WithField("group", name)

	layoutStack := stack.From(layouts)
	if defaultLayout != "" {
		if !layoutStack.TryFocus(func(l layout.Layout) bool { return l.Name() == defaultLayout }) {
			entry.Warnf("default layout %q not found, falling back to %q", defaultLayout, layouts[0].Name())
		}
	}

	return &Group{
		name:    name,
		conn:    conn,
		layouts: layoutStack,
		windows: stack.New[driver.WindowID](),
		log:     entry,
	}
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// Active reports whether the group is currently the visible one.
func (g *Group) Active() bool { return g.active }

// Viewport returns the group's current viewport.
func (g *Group) Viewport() driver.Rect { return g.viewport }

// Windows returns the group's window stack, for read-only inspection by the
// workspace manager (membership checks, iteration).
func (g *Group) Windows() *stack.Stack[driver.WindowID] { return g.windows }

// Contains reports whether id belongs to this group.
func (g *Group) Contains(id driver.WindowID) bool {
	found := false
	g.windows.Each(func(_ int, existing *driver.WindowID) {
		if *existing == id {
			found = true
		}
	})
	return found
}

// Activate marks the group active, stores viewport and runs a layout pass.
func (g *Group) Activate(viewport driver.Rect) {
	g.active = true
	g.viewport = viewport
	g.performLayout()
}

// Deactivate unmaps every window in the group (tracking disabled, so the
// resulting UnmapNotify doesn't echo back into the event loop) and clears
// the active flag.
func (g *Group) Deactivate() {
	g.windows.Each(func(_ int, id *driver.WindowID) {
		g.conn.DisableWindowTracking(*id)
		g.conn.UnmapWindow(*id)
		g.conn.EnableWindowTracking(*id)
	})
	g.active = false
}

// UpdateViewport stores a new viewport and, if active, re-lays out.
func (g *Group) UpdateViewport(viewport driver.Rect) {
	g.viewport = viewport
	g.performLayout()
}

// AddWindow pushes id (focusing it, per Stack semantics) and re-lays out.
func (g *Group) AddWindow(id driver.WindowID) {
	g.windows.Push(id)
	g.performLayout()
}

// RemoveWindow removes id, unmaps it (tracking disabled) and re-lays out.
// No-op if id isn't in this group.
func (g *Group) RemoveWindow(id driver.WindowID) {
	_, ok := g.windows.TryRemove(func(existing driver.WindowID) bool { return existing == id })
	if !ok {
		return
	}
	g.conn.DisableWindowTracking(id)
	g.conn.UnmapWindow(id)
	g.conn.EnableWindowTracking(id)
	g.performLayout()
}

// RemoveFocused removes and returns the focused window, unmapping it
// (tracking disabled) and re-laying out. Returns false if the group has no
// windows.
func (g *Group) RemoveFocused() (driver.WindowID, bool) {
	id, ok := g.windows.RemoveFocused()
	if !ok {
		return 0, false
	}
	g.conn.DisableWindowTracking(id)
	g.conn.UnmapWindow(id)
	g.conn.EnableWindowTracking(id)
	g.performLayout()
	return id, true
}

// CloseFocused asks the driver to close the focused window. The window
// itself is only removed from the group once its UnmapNotify/DestroyNotify
// arrives.
func (g *Group) CloseFocused() {
	id, ok := g.windows.Focused()
	if !ok {
		return
	}
	g.conn.CloseWindow(id)
}

// Focus focuses id within the group and re-lays out. No-op if id isn't
// present.
func (g *Group) Focus(id driver.WindowID) {
	if !g.windows.TryFocus(func(existing driver.WindowID) bool { return existing == id }) {
		return
	}
	g.performLayout()
}

// FocusNext rotates focus to the next window and re-lays out.
func (g *Group) FocusNext() {
	g.windows.FocusNext()
	g.performLayout()
}

// FocusPrevious rotates focus to the previous window and re-lays out.
func (g *Group) FocusPrevious() {
	g.windows.FocusPrevious()
	g.performLayout()
}

// ShuffleNext moves the focused window one position forward in order and
// re-lays out.
func (g *Group) ShuffleNext() {
	g.windows.ShuffleNext()
	g.performLayout()
}

// ShufflePrevious moves the focused window one position backward in order
// and re-lays out.
func (g *Group) ShufflePrevious() {
	g.windows.ShufflePrevious()
	g.performLayout()
}

// LayoutNext cycles to the next layout and re-lays out.
func (g *Group) LayoutNext() {
	g.layouts.FocusNext()
	g.performLayout()
}

// LayoutPrevious cycles to the previous layout and re-lays out.
func (g *Group) LayoutPrevious() {
	g.layouts.FocusPrevious()
	g.performLayout()
}

// performLayout is the layout pass: if inactive, it's a no-op;
// otherwise the focused layout renders the window stack, and the driver is
// told to focus whatever is now focused (or to clear focus if the group
// has no windows).
func (g *Group) performLayout() {
	if !g.active {
		return
	}

	l, ok := g.layouts.Focused()
	if !ok {
		g.log.Error("group has no focused layout, skipping layout pass")
		return
	}
	l.Apply(g.conn, g.viewport, g.windows)

	if id, ok := g.windows.Focused(); ok {
		g.conn.FocusWindow(id)
	} else {
		g.conn.FocusNothing()
	}
}
