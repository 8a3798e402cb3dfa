// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ggwin"
)

// platformWindow implements ggwin.PlatformWindow over a GLFW window and a
// small amount of OpenGL presentation state.
type platformWindow struct {
	plat *platform
	id   ggwin.WindowID
	glw  *glfw.Window

	// presentation surface, in pixels; tracks the framebuffer size
	surfW, surfH int

	// staging texture and read framebuffer for the blit present path,
	// created lazily in this window's context
	tex        uint32
	fbo        uint32
	texW, texH int
}

func (w *platformWindow) ID() ggwin.WindowID {
	return w.id
}

func (w *platformWindow) SetTitle(title string) {
	w.glw.SetTitle(title)
}

func (w *platformWindow) FramebufferSize() (int, int) {
	return w.glw.GetFramebufferSize()
}

func (w *platformWindow) ContentScale() float64 {
	sx, _ := w.glw.GetContentScale()
	return float64(sx)
}

func (w *platformWindow) MakeContextCurrent() error {
	w.glw.MakeContextCurrent()
	return nil
}

// DetachContext leaves the thread with no current context. GLFW detaches
// globally, so this is safe to call after the window itself is destroyed.
func (w *platformWindow) DetachContext() {
	glfw.DetachCurrentContext()
}

func (w *platformWindow) ResizeSurface(width, height int) {
	w.surfW, w.surfH = width, height
}

// Present uploads the RGBA pixels into the staging texture and blits it,
// flipped vertically, onto the window's default framebuffer, then swaps.
// The window's context must be current.
func (w *platformWindow) Present(pixels []byte, width, height int) error {
	if len(pixels) < width*height*4 {
		return fmt.Errorf("glfwdriver: present: pixel buffer %d bytes, need %d", len(pixels), width*height*4)
	}

	if w.tex == 0 {
		gl.GenTextures(1, &w.tex)
		gl.GenFramebuffers(1, &w.fbo)
		gl.BindTexture(gl.TEXTURE_2D, w.tex)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	} else {
		gl.BindTexture(gl.TEXTURE_2D, w.tex)
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if width != w.texW || height != w.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		w.texW, w.texH = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.tex, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(w.surfW), int32(w.surfH))

	// Canvas rows run top-down, GL runs bottom-up; flip during the blit.
	gl.BlitFramebuffer(0, int32(height), int32(width), 0,
		0, 0, int32(w.surfW), int32(w.surfH),
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("glfwdriver: present: gl error 0x%04x", e)
	}
	w.glw.SwapBuffers()
	return nil
}

// Destroy frees the presentation resources and the native window. The
// window's context must be current on entry; the caller detaches it after.
func (w *platformWindow) Destroy() {
	if w.tex != 0 {
		gl.DeleteFramebuffers(1, &w.fbo)
		gl.DeleteTextures(1, &w.tex)
		w.tex, w.fbo = 0, 0
	}
	delete(w.plat.windows, w.glw)
	w.glw.Destroy()
}
