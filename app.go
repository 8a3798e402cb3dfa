package ggwin

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// loopRan guards the run-once rule: the OS event loop may be entered
// exactly once per process, ever. Windowing layers do not support loop
// recreation.
var loopRan atomic.Bool

// App owns the window registry and the negotiated surface capabilities and
// runs the single-threaded event loop. Construction negotiates capabilities
// and opens the first window synchronously; [App.Run] then dispatches OS
// events until every window has closed.
//
// An App is confined to the goroutine that created it, which must be
// locked to the main OS thread by the windowing driver.
type App struct {
	plat Platform
	caps Capabilities
	reg  *windowRegistry
	opts appOptions

	// last-known modifier keys, process-wide
	mods Modifiers

	// pending events, in delivery order; drivers append via Poll and the
	// dispatcher appends redraw requests for ticks and the cascade
	queue []Event
}

// NewApp selects a windowing driver, negotiates the shared surface
// capability set and creates the first window. Failure leaves no window
// behind; a shell with zero usable windows has no degraded mode.
func NewApp(options ...Option) (*App, error) {
	opts := defaultAppOptions()
	for _, opt := range options {
		opt(&opts)
	}

	plat := opts.platform
	if plat == nil {
		var err error
		plat, err = drivers.newPlatform()
		if err != nil {
			return nil, err
		}
	}

	caps, err := negotiateCapabilities(plat.CapabilityCandidates())
	if err != nil {
		plat.Terminate()
		return nil, err
	}
	Logger().Info("ggwin: capabilities negotiated",
		"transparent", caps.Transparent, "samples", caps.Samples, "stencilBits", caps.StencilBits)

	a := &App{
		plat: plat,
		caps: caps,
		reg:  newWindowRegistry(),
		opts: opts,
	}
	// The first window exists before the loop starts.
	if _, err := a.openWindow(opts.title); err != nil {
		plat.Terminate()
		return nil, err
	}
	return a, nil
}

// Capabilities returns the capability set shared by every window.
func (a *App) Capabilities() Capabilities {
	return a.caps
}

// NumWindows returns the number of currently registered windows.
func (a *App) NumWindows() int {
	return a.reg.len()
}

// openWindow creates a native window with the shared capability set,
// attaches context and canvas, and registers it.
func (a *App) openWindow(title string) (*Window, error) {
	pw, err := a.plat.CreateWindow(WindowAttributes{
		Title:  title,
		Width:  a.opts.width,
		Height: a.opts.height,
		Icon:   a.opts.icon,
	}, a.caps)
	if err != nil {
		return nil, fmt.Errorf("ggwin: create window: %w", err)
	}
	w, err := newWindow(pw, a.caps)
	if err != nil {
		pw.Destroy()
		return nil, err
	}
	id := a.reg.open(w)
	Logger().Info("ggwin: window opened", "window", id, "title", title, "windows", a.reg.len())
	return w, nil
}

// closeWindow removes the window from the registry and releases its
// resources. A second close of the same id is a no-op.
func (a *App) closeWindow(w *Window) {
	id := w.ID()
	if !a.reg.close(id) {
		return
	}
	w.destroy()
	Logger().Info("ggwin: window closed", "window", id, "windows", a.reg.len())
}

// requestRedraw queues a redraw event for the window, to be handled later
// in the same dispatch pass.
func (a *App) requestRedraw(id WindowID) {
	a.queue = append(a.queue, RedrawEvent{Window: id})
}

// enqueue appends a driver-delivered event to the pending queue.
func (a *App) enqueue(ev Event) {
	a.queue = append(a.queue, ev)
}

// Run pumps OS events and dispatches them until every window has closed.
// It must be called from the thread that created the App and may be called
// exactly once per process; a second call returns ErrLoopRecreation.
//
// paint is invoked once per painted frame per window; it may be nil.
//
// A present or flush failure aborts the loop and is returned as is. The
// remaining windows are destroyed before Run returns.
func (a *App) Run(paint PaintFunc) error {
	if !loopRan.CompareAndSwap(false, true) {
		return ErrLoopRecreation
	}
	defer a.plat.Terminate()
	defer a.closeRemaining()

	for !a.reg.empty() {
		a.plat.Poll(a.enqueue)

		if len(a.queue) == 0 {
			// Idle tick: start a redraw cascade at the first window.
			// Each window's redraw handling requests the next window's
			// redraw, so one pass paints each window at most once.
			if w := a.reg.at(0); w != nil {
				a.requestRedraw(w.ID())
			}
		}

		for len(a.queue) > 0 && !a.reg.empty() {
			ev := a.queue[0]
			a.queue = a.queue[1:]
			if err := a.dispatch(ev, paint); err != nil {
				return err
			}
		}
	}
	return nil
}

// dispatch routes one event to its target window. Events addressed to a
// window that is no longer registered are silently dropped: a close action
// and already-queued events for that window race by design.
func (a *App) dispatch(ev Event, paint PaintFunc) error {
	w := a.reg.get(ev.EventWindow())
	if w == nil {
		Logger().Debug("ggwin: dropping event for closed window", "window", ev.EventWindow())
		return nil
	}

	switch e := ev.(type) {
	case ResizeEvent:
		return w.resize(e.Width, e.Height)

	case CloseRequestedEvent:
		a.closeWindow(w)

	case KeyEvent:
		if !e.Released || e.Repeat {
			return nil
		}
		switch e.Key {
		case gpucontext.KeyQ:
			// Same path as an external close request.
			a.closeWindow(w)
		case gpucontext.KeyA:
			// Titled by the live window count at the moment of the
			// event, not a running counter; numbers repeat after closes.
			title := fmt.Sprintf("Window %d", a.reg.len())
			if _, err := a.openWindow(title); err != nil {
				return err
			}
		}

	case ModifiersEvent:
		a.mods = e.Mods

	case RedrawEvent:
		return a.redraw(w, paint)

	default:
		// The rest of the OS event vocabulary carries no behavior here.
	}
	return nil
}

// redraw repaints the window if its frame interval has elapsed, then
// requests the next window's redraw regardless, so one external tick walks
// the whole registry in order.
func (a *App) redraw(w *Window, paint PaintFunc) error {
	frameStart := time.Now()
	if frameStart.Sub(w.previousFrameStart) > a.opts.frameInterval {
		w.previousFrameStart = frameStart
		w.frame++
		if err := w.resetCanvas(a.opts.background); err != nil {
			return err
		}
		frame := w.frame
		err := w.draw(func(dc *gg.Context) {
			if paint != nil {
				paint(frame, dc)
			}
		})
		if err != nil {
			return err
		}
	}

	if i, ok := a.reg.indexOf(w.ID()); ok {
		if next := a.reg.at(i + 1); next != nil {
			a.requestRedraw(next.ID())
		}
	}
	return nil
}

// closeRemaining destroys any windows still registered when the loop
// exits, newest first.
func (a *App) closeRemaining() {
	for i := a.reg.len() - 1; i >= 0; i-- {
		a.closeWindow(a.reg.at(i))
	}
}
