package ggwin

import "image"

// WindowAttributes describes a window to be created by the windowing
// driver. Width and Height are in logical (scale-independent) units.
type WindowAttributes struct {
	Title  string
	Width  int
	Height int

	// Icon holds the window icon in multiple sizes, best first.
	// Drivers that cannot set icons ignore it.
	Icon []image.Image
}

// Platform is the windowing-layer contract. Implementations own native
// window creation, event delivery and pixel presentation; everything else
// (context discipline, canvas lifecycle, dispatch) lives in the shell.
//
// A Platform is confined to the thread that created it. All methods are
// called from the dispatch thread only.
type Platform interface {
	// CapabilityCandidates returns the surface capability sets the driver
	// is prepared to request, in the driver's preferred probing order.
	// The shell reduces them to one winner at startup.
	CapabilityCandidates() []Capabilities

	// CreateWindow creates a native window bound to a GPU rendering
	// context with the given capabilities. If the primary context profile
	// cannot be created the driver retries once with a reduced fallback
	// profile before failing.
	CreateWindow(attrs WindowAttributes, caps Capabilities) (PlatformWindow, error)

	// Poll pumps pending OS events and delivers their translated form to
	// sink, in delivery order. It does not block.
	Poll(sink func(Event))

	// Terminate releases the windowing layer. No other method may be
	// called afterwards.
	Terminate()
}

// PlatformWindow is one native window with its GPU context and presentable
// surface. Context-touching methods follow the single-current-context
// protocol: the shell makes a context current before drawing, resizing
// surface state or releasing resources, and detaches it afterwards.
type PlatformWindow interface {
	// ID returns the identifier the driver delivers events under.
	ID() WindowID

	// SetTitle sets the window title.
	SetTitle(title string)

	// FramebufferSize returns the current physical pixel size.
	FramebufferSize() (width, height int)

	// ContentScale returns the display scale factor mapping logical
	// drawing units to physical pixels.
	ContentScale() float64

	// MakeContextCurrent binds the window's GPU context to the calling
	// thread.
	MakeContextCurrent() error

	// DetachContext clears the thread's current GPU context. It may be
	// called once more after Destroy, while the teardown guard unwinds.
	DetachContext()

	// ResizeSurface resizes the presentable surface in place to the given
	// physical pixel size. Requires the window's context to be current.
	ResizeSurface(width, height int)

	// Present uploads the RGBA pixels (width*height*4 bytes, rows top to
	// bottom) to the surface and swaps it to the display. Requires the
	// window's context to be current.
	Present(pixels []byte, width, height int) error

	// Destroy releases the window and its GPU resources. The shell makes
	// the window's context current one final time before calling it; GPU
	// drivers require the owning context current when resources are freed.
	Destroy()
}
