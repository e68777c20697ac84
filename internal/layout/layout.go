// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package layout implements the strategy objects that turn a viewport and a
// stack of window IDs into concrete geometries and visibility decisions.
// The two variants here (Tiled, StackLayout) are a closed set rather than
// an open plug-in surface; third-party layouts aren't a goal.
package layout

import (
	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/stack"
)

// Layout computes geometries and visibility for a stack of windows within a
// viewport, driving the driver directly. Implementations must be safe to
// copy by value (so a Group can hold a Stack of them without indirection).
type Layout interface {
	Name() string
	Apply(d driver.Driver, viewport driver.Rect, windows *stack.Stack[driver.WindowID])
}

// withTrackingDisabled brackets a single self-initiated driver call between
// DisableWindowTracking and EnableWindowTracking, so the manager doesn't
// see its own unmap/configure as a client-initiated event.
func withTrackingDisabled(d driver.Driver, id driver.WindowID, fn func()) {
	d.DisableWindowTracking(id)
	fn()
	d.EnableWindowTracking(id)
}
