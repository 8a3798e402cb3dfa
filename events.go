package ggwin

import "github.com/gogpu/gpucontext"

// WindowID identifies a window for the lifetime of its registration.
// IDs are opaque and unique among currently registered windows; the
// windowing driver decides if and when an id is reused after a window
// is destroyed.
type WindowID uint64

// Modifiers is a bitmask of the keyboard modifier keys held down.
// The shell only stores the last-known state; it never inspects
// individual bits.
type Modifiers uint8

// Modifier key bits.
const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Event is an OS event addressed to a single window. The windowing driver
// translates native events into these values and the application dispatcher
// routes them by window id.
//
// The vocabulary is wider than the behavior: the dispatcher acts on resize,
// close, keyboard, modifier and redraw events and accepts everything else
// as a no-op.
type Event interface {
	// EventWindow returns the id of the window the event is addressed to.
	EventWindow() WindowID
}

// ResizeEvent reports a new physical framebuffer size in pixels.
type ResizeEvent struct {
	Window        WindowID
	Width, Height int
}

// CloseRequestedEvent reports that the OS or the user asked the window
// to close.
type CloseRequestedEvent struct {
	Window WindowID
}

// KeyEvent reports a key state change. Key identity uses the gogpu
// ecosystem vocabulary ([gpucontext.Key]).
type KeyEvent struct {
	Window   WindowID
	Key      gpucontext.Key
	Mods     Modifiers
	Released bool
	Repeat   bool
}

// ModifiersEvent reports a change of the held modifier keys.
type ModifiersEvent struct {
	Window WindowID
	Mods   Modifiers
}

// RedrawEvent asks a window to repaint. Drivers emit it for OS-initiated
// damage (expose/refresh); the dispatcher also queues it internally for
// frame ticks and the redraw cascade.
type RedrawEvent struct {
	Window WindowID
}

// FocusEvent reports keyboard focus entering or leaving a window.
type FocusEvent struct {
	Window  WindowID
	Focused bool
}

// MoveEvent reports a new window position.
type MoveEvent struct {
	Window WindowID
	X, Y   int
}

// CursorEvent reports pointer motion in logical window coordinates.
type CursorEvent struct {
	Window WindowID
	X, Y   float64
}

// MouseButtonEvent reports a mouse button state change.
type MouseButtonEvent struct {
	Window  WindowID
	Button  int
	Pressed bool
	Mods    Modifiers
}

// ScrollEvent reports scroll wheel or trackpad motion.
type ScrollEvent struct {
	Window WindowID
	DX, DY float64
}

// ScaleChangedEvent reports a new display content scale for the window,
// for example after moving it to a monitor with a different DPI.
type ScaleChangedEvent struct {
	Window WindowID
	Scale  float64
}

// OccludedEvent reports that the window became fully obscured or visible
// again.
type OccludedEvent struct {
	Window   WindowID
	Occluded bool
}

func (e ResizeEvent) EventWindow() WindowID         { return e.Window }
func (e CloseRequestedEvent) EventWindow() WindowID { return e.Window }
func (e KeyEvent) EventWindow() WindowID            { return e.Window }
func (e ModifiersEvent) EventWindow() WindowID      { return e.Window }
func (e RedrawEvent) EventWindow() WindowID         { return e.Window }
func (e FocusEvent) EventWindow() WindowID          { return e.Window }
func (e MoveEvent) EventWindow() WindowID           { return e.Window }
func (e CursorEvent) EventWindow() WindowID         { return e.Window }
func (e MouseButtonEvent) EventWindow() WindowID    { return e.Window }
func (e ScrollEvent) EventWindow() WindowID         { return e.Window }
func (e ScaleChangedEvent) EventWindow() WindowID   { return e.Window }
func (e OccludedEvent) EventWindow() WindowID       { return e.Window }
