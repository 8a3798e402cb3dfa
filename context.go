package ggwin

import "fmt"

// currentContext tracks which graphics context is current on the dispatch
// thread. The shell is single-threaded, so plain package state is enough;
// the invariant it protects is a driver protocol, not a data race: at most
// one GPU context may be current at any instant, and every draw, resize and
// teardown path must establish the right one before touching GPU state.
var currentContext *graphicsContext

// graphicsContext owns the GPU rendering context and presentable swap
// surface bound to one native window.
type graphicsContext struct {
	win    PlatformWindow
	width  int
	height int
}

// newGraphicsContext wraps the context and surface of a freshly created
// native window.
func newGraphicsContext(win PlatformWindow) *graphicsContext {
	w, h := win.FramebufferSize()
	return &graphicsContext{win: win, width: w, height: h}
}

// contextGuard is a scoped acquisition of the current-context slot.
// Construction asserts no other guard is live on the thread; release
// clears the slot again. Guards must not outlive the dispatch of the
// event that created them.
type contextGuard struct {
	gc       *graphicsContext
	released bool
}

// acquire makes the context current and returns the guard protecting it.
// Returns ErrContextCurrent if any context (including this one) is already
// current: re-entrant acquisition means a paint callback is calling back
// into the shell, which the protocol forbids.
func (gc *graphicsContext) acquire() (*contextGuard, error) {
	if currentContext != nil {
		return nil, fmt.Errorf("%w (held by window %d)", ErrContextCurrent, currentContext.win.ID())
	}
	if err := gc.win.MakeContextCurrent(); err != nil {
		return nil, fmt.Errorf("ggwin: make context current: %w", err)
	}
	currentContext = gc
	return &contextGuard{gc: gc}, nil
}

// release detaches the context and clears the current-context slot.
// Safe to call more than once.
func (g *contextGuard) release() {
	if g.released {
		return
	}
	g.released = true
	g.gc.win.DetachContext()
	currentContext = nil
}

// surfaceSize returns the current size of the presentable surface in
// physical pixels.
func (gc *graphicsContext) surfaceSize() (int, int) {
	return gc.width, gc.height
}

// resizeSurface resizes the swap surface in place. The caller must hold
// the guard for this context.
func (gc *graphicsContext) resizeSurface(width, height int) {
	gc.win.ResizeSurface(width, height)
	gc.width, gc.height = width, height
}

// present pushes the finished frame pixels to the surface and swaps it to
// the display. The caller must hold the guard for this context.
func (gc *graphicsContext) present(pixels []byte, width, height int) error {
	if currentContext != gc {
		return fmt.Errorf("ggwin: present without current context: %w", ErrContextCurrent)
	}
	if err := gc.win.Present(pixels, width, height); err != nil {
		return fmt.Errorf("ggwin: present: %w", err)
	}
	return nil
}
