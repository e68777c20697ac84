// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package layout

import (
	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/stack"
)

// Tiled arranges every window in the stack as an equal-height vertical row,
// in stack order.
type Tiled struct {
	name    string
	padding int
}

// NewTiled returns a Tiled layout with the given display name and padding,
// in pixels, applied around and between every row.
func NewTiled(name string, padding int) *Tiled {
	return &Tiled{name: name, padding: padding}
}

func (t *Tiled) Name() string { return t.name }

func (t *Tiled) Apply(d driver.Driver, viewport driver.Rect, windows *stack.Stack[driver.WindowID]) {
	n := windows.Len()
	if n == 0 {
		return
	}

	rowHeight := (viewport.Height-t.padding)/n - t.padding

	windows.Each(func(i int, id *driver.WindowID) {
		x := viewport.X + t.padding
		y := viewport.Y + t.padding + i*(rowHeight+t.padding)
		w := viewport.Width - 2*t.padding
		h := rowHeight

		withTrackingDisabled(d, *id, func() {
			d.MapWindow(*id)
			d.ConfigureWindow(*id, x, y, w, h)
		})
	})
}
