// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggwin"
)

// installCallbacks wires the GLFW callbacks for one window. Callbacks run
// inside glfw.PollEvents on the main thread; they only translate and queue.
func (p *platform) installCallbacks(w *platformWindow) {
	glw := w.glw

	glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		p.push(ggwin.ResizeEvent{Window: w.id, Width: width, Height: height})
	})

	glw.SetCloseCallback(func(_ *glfw.Window) {
		p.push(ggwin.CloseRequestedEvent{Window: w.id})
	})

	glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		p.syncModifiers(w.id, translateModifiers(mods))
		k, ok := translateKey(key)
		if !ok {
			return
		}
		p.push(ggwin.KeyEvent{
			Window:   w.id,
			Key:      k,
			Mods:     p.lastMods,
			Released: action == glfw.Release,
			Repeat:   action == glfw.Repeat,
		})
	})

	glw.SetRefreshCallback(func(_ *glfw.Window) {
		p.push(ggwin.RedrawEvent{Window: w.id})
	})

	glw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		p.push(ggwin.FocusEvent{Window: w.id, Focused: focused})
	})

	glw.SetPosCallback(func(_ *glfw.Window, x, y int) {
		p.push(ggwin.MoveEvent{Window: w.id, X: x, Y: y})
	})

	glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p.push(ggwin.CursorEvent{Window: w.id, X: x, Y: y})
	})

	glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		p.syncModifiers(w.id, translateModifiers(mods))
		p.push(ggwin.MouseButtonEvent{
			Window:  w.id,
			Button:  int(button),
			Pressed: action == glfw.Press,
			Mods:    p.lastMods,
		})
	})

	glw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		p.push(ggwin.ScrollEvent{Window: w.id, DX: xoff, DY: yoff})
	})

	glw.SetContentScaleCallback(func(_ *glfw.Window, sx, _ float32) {
		p.push(ggwin.ScaleChangedEvent{Window: w.id, Scale: float64(sx)})
	})

	glw.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		p.push(ggwin.OccludedEvent{Window: w.id, Occluded: iconified})
	})
}

// syncModifiers queues a modifiers event when the modifier state reported
// by a callback differs from the last one delivered. GLFW has no dedicated
// modifier-change callback, so the change is synthesized here.
func (p *platform) syncModifiers(id ggwin.WindowID, mods ggwin.Modifiers) {
	if mods == p.lastMods {
		return
	}
	p.lastMods = mods
	p.push(ggwin.ModifiersEvent{Window: id, Mods: mods})
}

func translateModifiers(mods glfw.ModifierKey) ggwin.Modifiers {
	var m ggwin.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= ggwin.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ggwin.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ggwin.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= ggwin.ModSuper
	}
	return m
}

// translateKey maps a GLFW key code to the gpucontext vocabulary. The shell
// only acts on a small set of keys; everything unmapped is dropped.
func translateKey(key glfw.Key) (gpucontext.Key, bool) {
	switch key {
	case glfw.KeyQ:
		return gpucontext.KeyQ, true
	case glfw.KeyA:
		return gpucontext.KeyA, true
	case glfw.KeySpace:
		return gpucontext.KeySpace, true
	case glfw.KeyEscape:
		return gpucontext.KeyEscape, true
	case glfw.KeyEnter:
		return gpucontext.KeyEnter, true
	default:
		return 0, false
	}
}
