// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/drivertest"
	"github.com/mjkillough/lanta/internal/layout"
	"github.com/mjkillough/lanta/internal/stack"
)

func TestTiledThreeWindows(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.From([]driver.WindowID{10, 11, 12})
	viewport := driver.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

	l := layout.NewTiled("tiled", 10)
	l.Apply(d, viewport, windows)

	require.Len(t, d.Configures, 3)
	assert.Equal(t, drivertest.Configure{ID: 10, X: 10, Y: 10, Width: 980, Height: 253}, d.Configures[0])
	assert.Equal(t, drivertest.Configure{ID: 11, X: 10, Y: 273, Width: 980, Height: 253}, d.Configures[1])
	assert.Equal(t, drivertest.Configure{ID: 12, X: 10, Y: 536, Width: 980, Height: 253}, d.Configures[2])

	assert.True(t, d.Mapped[10])
	assert.True(t, d.Mapped[11])
	assert.True(t, d.Mapped[12])
}

func TestTiledEmptyStackIsNoop(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.New[driver.WindowID]()
	layout.NewTiled("tiled", 10).Apply(d, driver.Rect{Width: 1000, Height: 800}, windows)
	assert.Empty(t, d.Configures)
	assert.Empty(t, d.Calls)
}

func TestTiledBracketsEachWindowWithTrackingToggle(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.From([]driver.WindowID{10})
	layout.NewTiled("tiled", 0).Apply(d, driver.Rect{Width: 100, Height: 100}, windows)

	// DisableWindowTracking, then the driver calls, then
	// EnableWindowTracking, per window.
	require.Len(t, d.Calls, 4)
	assert.Equal(t, "DisableWindowTracking", d.Calls[0])
	assert.Equal(t, "EnableWindowTracking", d.Calls[3])
	assert.False(t, d.TrackingDisabled[10])
}

// Only the focused window stays visible, maximized within the padded
// viewport; everything else is unmapped.
func TestStackLayoutVisibility(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.From([]driver.WindowID{10, 11, 12}) // focus defaults to 10...
	windows.Focus(func(id driver.WindowID) bool { return id == 12 })
	viewport := driver.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

	l := layout.NewStackLayout("stack", 20)
	l.Apply(d, viewport, windows)

	assert.False(t, d.Mapped[10])
	assert.False(t, d.Mapped[11])
	assert.True(t, d.Mapped[12])

	require.Len(t, d.Configures, 1)
	assert.Equal(t, drivertest.Configure{ID: 12, X: 20, Y: 20, Width: 960, Height: 760}, d.Configures[0])
}

func TestStackLayoutEmptyStackIsNoop(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.New[driver.WindowID]()
	layout.NewStackLayout("stack", 10).Apply(d, driver.Rect{Width: 1000, Height: 800}, windows)
	assert.Empty(t, d.Calls)
}

func TestStackLayoutSingleWindow(t *testing.T) {
	d := drivertest.New(1)
	windows := stack.From([]driver.WindowID{5})
	layout.NewStackLayout("stack", 0).Apply(d, driver.Rect{X: 0, Y: 0, Width: 100, Height: 100}, windows)

	assert.True(t, d.Mapped[5])
	require.Len(t, d.Configures, 1)
	assert.Equal(t, drivertest.Configure{ID: 5, X: 0, Y: 0, Width: 100, Height: 100}, d.Configures[0])
}
