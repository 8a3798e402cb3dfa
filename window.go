package ggwin

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
)

// PaintFunc draws one frame onto a window's canvas. The shell invokes it
// synchronously between a canvas reset and a flush, with a valid current
// GPU context. frame is the window's frame counter, starting at 1 for the
// first painted frame.
//
// The callback must not call back into the shell and must not retain dc
// past the call.
type PaintFunc func(frame uint64, dc *gg.Context)

// Window aggregates one native window handle, its graphics context, its
// canvas and per-frame pacing state. Windows are created and driven by the
// [App]; they are not safe to use from other goroutines.
type Window struct {
	plat   PlatformWindow
	gc     *graphicsContext
	canvas *canvas
	caps   Capabilities

	frame              uint64
	previousFrameStart time.Time
}

// newWindow attaches a graphics context and canvas to a freshly created
// native window. The canvas is sized to the window's current physical
// framebuffer and carries the shared sample count and stencil depth.
func newWindow(plat PlatformWindow, caps Capabilities) (*Window, error) {
	gc := newGraphicsContext(plat)
	guard, err := gc.acquire()
	if err != nil {
		return nil, err
	}
	defer guard.release()

	w, h := plat.FramebufferSize()
	return &Window{
		plat:               plat,
		gc:                 gc,
		canvas:             newCanvas(w, h, plat.ContentScale(), caps),
		caps:               caps,
		previousFrameStart: time.Now(),
	}, nil
}

// ID returns the window's identifier, stable for its registered lifetime.
func (w *Window) ID() WindowID {
	return w.plat.ID()
}

// Size returns the canvas size in physical pixels.
func (w *Window) Size() (width, height int) {
	return w.canvas.width, w.canvas.height
}

// Frame returns the number of frames painted so far.
func (w *Window) Frame() uint64 {
	return w.frame
}

// resetCanvas restores the canvas to its default state and clears it to
// background, under the window's context.
func (w *Window) resetCanvas(background gg.RGBA) error {
	guard, err := w.gc.acquire()
	if err != nil {
		return err
	}
	defer guard.release()
	w.canvas.reset(background)
	return nil
}

// draw makes the window's context current, invokes paint on the canvas,
// flushes queued GPU work and presents the surface.
func (w *Window) draw(paint func(dc *gg.Context)) error {
	guard, err := w.gc.acquire()
	if err != nil {
		return err
	}
	defer guard.release()

	// Balance any transform/clip state the callback pushes and forgets.
	w.canvas.dc.Push()
	paint(w.canvas.dc)
	w.canvas.dc.Pop()

	if err := w.canvas.dc.FlushGPU(); err != nil {
		return fmt.Errorf("ggwin: flush: %w", err)
	}
	return w.gc.present(w.canvas.pixels(), w.canvas.width, w.canvas.height)
}

// resize resizes the swap surface in place to the new physical size, then
// discards and rebuilds the canvas from the resized framebuffer with the
// shared sample count and stencil depth. Drawn content is lost.
func (w *Window) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		// Minimized windows report zero; keep the old surface until a
		// real size arrives.
		return nil
	}
	guard, err := w.gc.acquire()
	if err != nil {
		return err
	}
	defer guard.release()

	w.gc.resizeSurface(width, height)
	old := w.canvas
	w.canvas = newCanvas(width, height, old.scale, w.caps)
	if err := old.close(); err != nil {
		Logger().Warn("ggwin: closing old canvas", "window", w.ID(), "err", err)
	}
	return nil
}

// destroy releases the window's resources. The graphics context is made
// current one final time first; GPU drivers require the owning context
// current when its resources are freed.
func (w *Window) destroy() {
	guard, err := w.gc.acquire()
	if err != nil {
		Logger().Warn("ggwin: context not current for teardown", "window", w.ID(), "err", err)
	}
	if err := w.canvas.close(); err != nil {
		Logger().Warn("ggwin: closing canvas", "window", w.ID(), "err", err)
	}
	w.plat.Destroy()
	if guard != nil {
		guard.release()
	}
}
