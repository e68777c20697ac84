// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package drivertest provides a fake driver.Driver that records every call
// instead of talking to an X server, for use by the core packages' tests.
package drivertest

import (
	"sort"

	"github.com/mjkillough/lanta/internal/driver"
)

// Configure records a single ConfigureWindow call.
type Configure struct {
	ID                  driver.WindowID
	X, Y, Width, Height int
}

// Fake is an in-memory driver.Driver. It tracks which windows are mapped,
// which window (if any) is focused, and appends every mutating call to a
// Calls log so tests can assert on ordering.
type Fake struct {
	Calls []string

	Mapped     map[driver.WindowID]bool
	Focused    driver.WindowID
	HasFocus   bool
	Configures []Configure

	TrackingDisabled map[driver.WindowID]bool

	WindowTypes   map[driver.WindowID][]driver.WindowType
	StrutPartials map[driver.WindowID]*driver.StrutPartial
	Geometries    map[driver.WindowID][2]int

	DeleteProtocol map[driver.WindowID]bool
	Closed         []driver.WindowID
	Destroyed      []driver.WindowID

	DesktopNames []string
	CurrentIndex int

	root driver.WindowID

	events []driver.Event
	pos    int
}

// New returns a ready-to-use Fake with the given root window ID.
func New(root driver.WindowID) *Fake {
	return &Fake{
		Mapped:           make(map[driver.WindowID]bool),
		TrackingDisabled: make(map[driver.WindowID]bool),
		WindowTypes:      make(map[driver.WindowID][]driver.WindowType),
		StrutPartials:    make(map[driver.WindowID]*driver.StrutPartial),
		Geometries:       make(map[driver.WindowID][2]int),
		DeleteProtocol:   make(map[driver.WindowID]bool),
		root:             root,
	}
}

func (f *Fake) InstallAsWM(keys driver.KeyTable) error {
	f.Calls = append(f.Calls, "InstallAsWM")
	return nil
}

func (f *Fake) RootWindowID() driver.WindowID { return f.root }

func (f *Fake) TopLevelWindows() ([]driver.WindowID, error) {
	ids := make([]driver.WindowID, 0, len(f.Mapped))
	for id := range f.Mapped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *Fake) GetWindowGeometry(id driver.WindowID) (int, int, error) {
	g, ok := f.Geometries[id]
	if !ok {
		return 0, 0, nil
	}
	return g[0], g[1], nil
}

func (f *Fake) GetWindowTypes(id driver.WindowID) ([]driver.WindowType, error) {
	return f.WindowTypes[id], nil
}

func (f *Fake) GetStrutPartial(id driver.WindowID) (*driver.StrutPartial, error) {
	return f.StrutPartials[id], nil
}

func (f *Fake) ConfigureWindow(id driver.WindowID, x, y, width, height int) {
	f.Calls = append(f.Calls, "ConfigureWindow")
	f.Configures = append(f.Configures, Configure{ID: id, X: x, Y: y, Width: width, Height: height})
}

func (f *Fake) MapWindow(id driver.WindowID) {
	f.Calls = append(f.Calls, "MapWindow")
	f.Mapped[id] = true
}

func (f *Fake) UnmapWindow(id driver.WindowID) {
	f.Calls = append(f.Calls, "UnmapWindow")
	f.Mapped[id] = false
}

func (f *Fake) CloseWindow(id driver.WindowID) {
	f.Calls = append(f.Calls, "CloseWindow")
	if f.DeleteProtocol[id] {
		f.Closed = append(f.Closed, id)
	} else {
		f.Destroyed = append(f.Destroyed, id)
	}
}

func (f *Fake) FocusWindow(id driver.WindowID) {
	f.Calls = append(f.Calls, "FocusWindow")
	f.Focused = id
	f.HasFocus = true
}

func (f *Fake) FocusNothing() {
	f.Calls = append(f.Calls, "FocusNothing")
	f.HasFocus = false
}

func (f *Fake) EnableWindowKeyEvents(id driver.WindowID, keys driver.KeyTable) {
	f.Calls = append(f.Calls, "EnableWindowKeyEvents")
}

func (f *Fake) EnableWindowTracking(id driver.WindowID) {
	f.Calls = append(f.Calls, "EnableWindowTracking")
	f.TrackingDisabled[id] = false
}

func (f *Fake) DisableWindowTracking(id driver.WindowID) {
	f.Calls = append(f.Calls, "DisableWindowTracking")
	f.TrackingDisabled[id] = true
}

func (f *Fake) UpdateEWMHDesktops(names []string, currentIndex int) {
	f.Calls = append(f.Calls, "UpdateEWMHDesktops")
	f.DesktopNames = append([]string(nil), names...)
	f.CurrentIndex = currentIndex
}

// Enqueue appends events for a subsequent GetEventLoop/Next to yield.
func (f *Fake) Enqueue(events ...driver.Event) {
	f.events = append(f.events, events...)
}

func (f *Fake) GetEventLoop() driver.EventLoop {
	return f
}

// Next implements driver.EventLoop.
func (f *Fake) Next() (driver.Event, bool) {
	if f.pos >= len(f.events) {
		return driver.Event{}, false
	}
	ev := f.events[f.pos]
	f.pos++
	return ev, true
}

func (f *Fake) Flush() error {
	f.Calls = append(f.Calls, "Flush")
	return nil
}
