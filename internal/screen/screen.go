// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package screen tracks dock windows and their struts, and derives the
// usable viewport by subtracting the componentwise maximum of all struts'
// four sides from the root geometry.
package screen

import (
	"github.com/mjkillough/lanta/internal/driver"
)

// dock pairs a window ID with its optional strut.
type dock struct {
	id    driver.WindowID
	strut *driver.StrutPartial
}

// Screen is the ordered set of docks for the single X screen this manager
// controls; multi-monitor spanning is out of scope.
type Screen struct {
	conn  driver.Driver
	docks []dock
}

// New returns an empty Screen.
func New(conn driver.Driver) *Screen {
	return &Screen{conn: conn}
}

// AddDock reads id's partial strut via the driver and tracks it.
func (s *Screen) AddDock(id driver.WindowID) error {
	strut, err := s.conn.GetStrutPartial(id)
	if err != nil {
		return err
	}
	s.docks = append(s.docks, dock{id: id, strut: strut})
	return nil
}

// RemoveDock removes id from the tracked docks, if present.
func (s *Screen) RemoveDock(id driver.WindowID) {
	out := s.docks[:0]
	for _, d := range s.docks {
		if d.id != id {
			out = append(out, d)
		}
	}
	s.docks = out
}

// Contains reports whether id is tracked as a dock.
func (s *Screen) Contains(id driver.WindowID) bool {
	for _, d := range s.docks {
		if d.id == id {
			return true
		}
	}
	return false
}

// Viewport folds every dock's strut with max on each of the four sides and
// returns the usable rectangle within a screenWidth x screenHeight root.
// The start/end extents of each partial strut are intentionally ignored:
// docks act as full-width/full-height reservations.
func (s *Screen) Viewport(screenWidth, screenHeight int) driver.Rect {
	var left, right, top, bottom int
	for _, d := range s.docks {
		if d.strut == nil {
			continue
		}
		left = maxInt(left, int(d.strut.Left))
		right = maxInt(right, int(d.strut.Right))
		top = maxInt(top, int(d.strut.Top))
		bottom = maxInt(bottom, int(d.strut.Bottom))
	}
	return driver.Rect{
		X:      left,
		Y:      top,
		Width:  screenWidth - left - right,
		Height: screenHeight - top - bottom,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
