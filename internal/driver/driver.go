// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package driver defines the contract between the window manager core and
// the X display server. The core never talks to X directly; it calls
// through this interface, which keeps the connection, atoms and protocol
// detail confined to a single implementation (internal/xconn) and makes the
// core trivially testable with a fake.
package driver

import "fmt"

// WindowID is an opaque handle to an X window produced by the driver. The
// core carries it around but never interprets its bits; the X server owns
// the resource it names.
type WindowID uint32

func (w WindowID) String() string {
	return fmt.Sprintf("0x%x", uint32(w))
}

// Rect is an axis-aligned rectangle in root-window coordinates. It is used
// both for the screen's root geometry and for the usable viewport derived
// from it.
type Rect struct {
	X, Y          int
	Width, Height int
}

// WindowType is a semantic EWMH window-type tag.
type WindowType int

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDesktop
	WindowTypeDock
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeUtility
	WindowTypeSplash
	WindowTypeDialog
	WindowTypeDropdownMenu
	WindowTypePopupMenu
	WindowTypeTooltip
	WindowTypeNotification
	WindowTypeCombo
	WindowTypeDND
)

// StrutPartial is a window's reserved-edge request, in pixels. The
// start/end extents from the EWMH _NET_WM_STRUT_PARTIAL property are
// deliberately not modeled: every strut acts as a full-width/full-height
// reservation.
type StrutPartial struct {
	Left, Right, Top, Bottom uint32
}

// EventKind identifies which of the five events the core handles an Event
// carries.
type EventKind int

const (
	EventMapRequest EventKind = iota
	EventUnmapNotify
	EventDestroyNotify
	EventKeyPress
	EventEnterNotify
)

// KeyCombo is a modifier mask plus keysym, as reported by the driver for a
// KeyPress event and as used as the key-binding table's lookup key.
type KeyCombo struct {
	ModMask uint16
	Keysym  uint32
}

// Event is one of the five event kinds the core's event loop reacts to.
// Only the fields relevant to Kind are populated.
type Event struct {
	Kind     EventKind
	Window   WindowID
	KeyCombo KeyCombo
}

// KeyTable is the minimal view of the key-binding table the driver needs:
// enough to grab every bound combo on a window, without the driver needing
// to know what a combo runs.
type KeyTable interface {
	Combos() []KeyCombo
}

// Driver is the core's entire view of the X server. An
// implementation built on xgb/xgbutil lives in internal/xconn; tests use a
// hand-rolled fake that records calls instead.
type Driver interface {
	// InstallAsWM registers for substructure notify+redirect on the root
	// window and grabs every combo in keys on the root. Fails if another
	// window manager already holds that selection.
	InstallAsWM(keys KeyTable) error

	RootWindowID() WindowID

	// TopLevelWindows blocks on a QueryTree of the root window.
	TopLevelWindows() ([]WindowID, error)

	GetWindowGeometry(id WindowID) (width, height int, err error)
	GetWindowTypes(id WindowID) ([]WindowType, error)
	GetStrutPartial(id WindowID) (*StrutPartial, error)

	ConfigureWindow(id WindowID, x, y, width, height int)
	MapWindow(id WindowID)
	UnmapWindow(id WindowID)

	// CloseWindow sends a WM_DELETE_WINDOW client message if the window
	// supports the ICCCM delete protocol, otherwise destroys it outright.
	CloseWindow(id WindowID)

	// FocusWindow sets input focus to id and publishes it as the EWMH
	// active window. FocusNothing clears the active-window property.
	FocusWindow(id WindowID)
	FocusNothing()

	EnableWindowKeyEvents(id WindowID, keys KeyTable)

	// EnableWindowTracking/DisableWindowTracking toggle whether the driver
	// reports structure/enter events for id. Layouts and groups bracket
	// every self-initiated map/unmap/configure with Disable then Enable so
	// the resulting notification doesn't echo back into the event loop.
	EnableWindowTracking(id WindowID)
	DisableWindowTracking(id WindowID)

	// UpdateEWMHDesktops publishes _NET_NUMBER_OF_DESKTOPS,
	// _NET_DESKTOP_NAMES and _NET_CURRENT_DESKTOP from the given group
	// names and focused index.
	UpdateEWMHDesktops(names []string, currentIndex int)

	// GetEventLoop returns a blocking iterator over the driver's event
	// stream, already filtered to the five kinds the core handles. It ends
	// when the underlying connection closes.
	GetEventLoop() EventLoop

	// Flush pushes any buffered requests to the server. The core's event
	// loop calls it once at the top of every iteration.
	Flush() error
}

// EventLoop is a blocking, restartable sequence of Events.
type EventLoop interface {
	// Next blocks until an event is available or the stream ends, in which
	// case ok is false.
	Next() (ev Event, ok bool)
}
