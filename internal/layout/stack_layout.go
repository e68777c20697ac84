// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package layout

import (
	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/stack"
)

// StackLayout shows only the focused window, maximized within the viewport
// minus padding; every other window in the stack is unmapped.
type StackLayout struct {
	name    string
	padding int
}

// NewStackLayout returns a StackLayout with the given display name and
// padding, in pixels.
func NewStackLayout(name string, padding int) *StackLayout {
	return &StackLayout{name: name, padding: padding}
}

func (s *StackLayout) Name() string { return s.name }

func (s *StackLayout) Apply(d driver.Driver, viewport driver.Rect, windows *stack.Stack[driver.WindowID]) {
	if windows.IsEmpty() {
		return
	}

	// A non-empty Stack always has something focused.
	focused, _ := windows.Focused()

	windows.Each(func(_ int, id *driver.WindowID) {
		if *id == focused {
			return
		}
		withTrackingDisabled(d, *id, func() {
			d.UnmapWindow(*id)
		})
	})

	withTrackingDisabled(d, focused, func() {
		d.MapWindow(focused)
		d.ConfigureWindow(
			focused,
			viewport.X+s.padding,
			viewport.Y+s.padding,
			viewport.Width-2*s.padding,
			viewport.Height-2*s.padding,
		)
	})
}
