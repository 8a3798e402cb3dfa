// Package ggwin is a minimal multi-window shell for the gg 2D graphics
// library.
//
// # Overview
//
// ggwin owns one or more OS windows, attaches a GPU rendering context and a
// gg drawing canvas to each, pumps OS events on a single thread, and invokes
// a caller-supplied paint callback on each frame tick. It is the glue between
// the windowing layer and gg; all actual drawing happens inside the paint
// callback through the ordinary gg API.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ggwin"
//	    _ "github.com/gogpu/ggwin/driver/glfwdriver"
//	)
//
//	app, err := ggwin.NewApp(ggwin.WithTitle("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run(func(frame uint64, dc *gg.Context) {
//	    dc.SetRGB(1, 0, 0)
//	    dc.DrawCircle(250, 250, 100)
//	    dc.Fill()
//	})
//
// # Architecture
//
// The shell is organized into:
//   - Application: the single-threaded event loop and dispatcher
//   - Window registry: ordered windows with a stable id-to-index map
//   - Window: one OS window handle + graphics context + canvas + frame pacing
//   - Graphics context: the GPU context and presentable surface of a window
//   - Canvas: a gg drawing target sized to the window's physical framebuffer
//   - Driver registry: pluggable windowing-layer implementations
//
// Drivers register themselves in an init function, so a blank import of the
// driver package is enough to make it available. The stock driver is
// github.com/gogpu/ggwin/driver/glfwdriver (GLFW + OpenGL).
//
// # Threading
//
// Everything runs on one OS thread: window creation, event dispatch, drawing
// and presentation. At most one graphics context is current on that thread at
// any instant, and every operation that touches GPU or canvas state
// re-establishes the correct context first. None of the ggwin API is safe to
// call from other goroutines.
//
// # Keyboard shortcuts
//
// The dispatcher implements two built-in shortcuts: "q" closes the focused
// window (the last window closing ends the application), and "a" opens an
// additional window.
package ggwin
