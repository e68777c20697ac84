// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjkillough/lanta/internal/driver"
	"github.com/mjkillough/lanta/internal/drivertest"
	"github.com/mjkillough/lanta/internal/screen"
)

func TestViewportWithNoDocksIsFullScreen(t *testing.T) {
	d := drivertest.New(1)
	s := screen.New(d)
	vp := s.Viewport(1920, 1080)
	assert.Equal(t, driver.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, vp)
}

func TestViewportSubtractsStrut(t *testing.T) {
	d := drivertest.New(1)
	d.StrutPartials[100] = &driver.StrutPartial{Top: 30}
	s := screen.New(d)
	require.NoError(t, s.AddDock(100))

	vp := s.Viewport(1920, 1080)
	assert.Equal(t, driver.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}, vp)
}

func TestViewportTakesMaxAcrossMultipleDocks(t *testing.T) {
	d := drivertest.New(1)
	d.StrutPartials[100] = &driver.StrutPartial{Top: 30}
	d.StrutPartials[101] = &driver.StrutPartial{Top: 50, Left: 10}
	s := screen.New(d)
	require.NoError(t, s.AddDock(100))
	require.NoError(t, s.AddDock(101))

	vp := s.Viewport(1920, 1080)
	// Per-side max, not sum.
	assert.Equal(t, driver.Rect{X: 10, Y: 50, Width: 1910, Height: 1030}, vp)
}

func TestRemoveDock(t *testing.T) {
	d := drivertest.New(1)
	d.StrutPartials[100] = &driver.StrutPartial{Top: 30}
	s := screen.New(d)
	require.NoError(t, s.AddDock(100))
	s.RemoveDock(100)

	vp := s.Viewport(1920, 1080)
	assert.Equal(t, driver.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, vp)
}

func TestDockWithNoStrutDoesNotReserveSpace(t *testing.T) {
	d := drivertest.New(1)
	s := screen.New(d)
	require.NoError(t, s.AddDock(100)) // no StrutPartials entry -> nil

	vp := s.Viewport(1920, 1080)
	assert.Equal(t, driver.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, vp)
}
