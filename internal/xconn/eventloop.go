// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/mjkillough/lanta/internal/driver"
)

// eventLoop adapts xevent's callback-registration style to the pull-based
// driver.EventLoop interface the workspace manager drives synchronously.
// xevent.Main runs on its own goroutine and feeds parsed events
// into a channel; Next() is the only thing that ever reads from it, so the
// manager's loop stays single-threaded even though the underlying X
// library is callback-driven.
type eventLoop struct {
	xu     *xgbutil.XUtil
	root   driver.WindowID
	events chan driver.Event
}

func newEventLoop(xu *xgbutil.XUtil, root driver.WindowID) *eventLoop {
	l := &eventLoop{
		xu:     xu,
		root:   root,
		events: make(chan driver.Event, 64),
	}
	l.connect()
	go xevent.Main(xu)
	return l
}

func (l *eventLoop) connect() {
	xevent.MapRequestFun(func(xu *xgbutil.XUtil, ev xevent.MapRequestEvent) {
		l.events <- driver.Event{Kind: driver.EventMapRequest, Window: driver.WindowID(ev.Window)}
	}).Connect(l.xu, xproto.Window(l.root))

	xevent.UnmapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.UnmapNotifyEvent) {
		// The root's SubstructureNotify selection delivers a copy of every
		// UnmapNotify in the session, including ones caused by our own
		// DisableWindowTracking-bracketed calls. The direct StructureNotify
		// selection made in EnableWindowTracking only reaches us while
		// tracking is enabled, so only react to that copy (Event == Window).
		if ev.Event != ev.Window {
			return
		}
		l.events <- driver.Event{Kind: driver.EventUnmapNotify, Window: driver.WindowID(ev.Window)}
	}).Connect(l.xu, xproto.Window(l.root))

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		l.events <- driver.Event{Kind: driver.EventDestroyNotify, Window: driver.WindowID(ev.Window)}
	}).Connect(l.xu, xproto.Window(l.root))

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		l.events <- driver.Event{
			Kind: driver.EventKeyPress,
			KeyCombo: driver.KeyCombo{
				ModMask: ev.State,
				Keysym:  uint32(xevent.LookupKeysym(xu, ev.Detail, ev.State)),
			},
		}
	}).Connect(l.xu, xproto.Window(l.root))

	xevent.EnterNotifyFun(func(xu *xgbutil.XUtil, ev xevent.EnterNotifyEvent) {
		l.events <- driver.Event{Kind: driver.EventEnterNotify, Window: driver.WindowID(ev.Event)}
	}).Connect(l.xu, xproto.Window(l.root))

	// Honor ConfigureRequest verbatim instead of turning it into an event:
	// the manager's layouts are authoritative for managed windows, but an
	// unmanaged or not-yet-mapped window's request still has to be granted
	// or it'll never reach a usable geometry. Only the bits the client set
	// in ValueMask are passed through, and in the protocol's mandated order,
	// since xproto.ConfigureWindow's values slice must line up positionally
	// with the set bits.
	xevent.ConfigureRequestFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureRequestEvent) {
		var values []uint32
		if ev.ValueMask&xproto.ConfigWindowX != 0 {
			values = append(values, uint32(ev.X))
		}
		if ev.ValueMask&xproto.ConfigWindowY != 0 {
			values = append(values, uint32(ev.Y))
		}
		if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
			values = append(values, uint32(ev.Width))
		}
		if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
			values = append(values, uint32(ev.Height))
		}
		if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			values = append(values, uint32(ev.BorderWidth))
		}
		if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
			values = append(values, uint32(ev.Sibling))
		}
		if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
			values = append(values, uint32(ev.StackMode))
		}
		xproto.ConfigureWindow(xu.Conn(), ev.Window, ev.ValueMask, values)
	}).Connect(l.xu, xproto.Window(l.root))
}

// Next blocks until another event arrives. It never returns false: a real
// X connection only ends by the process exiting.
func (l *eventLoop) Next() (driver.Event, bool) {
	ev, ok := <-l.events
	return ev, ok
}
