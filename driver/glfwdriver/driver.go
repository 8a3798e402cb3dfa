// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ggwin"
)

// DriverName is the registry name of this driver.
const DriverName = "glfw"

// driverPriority ranks the driver in the ggwin registry. GLFW is the
// stock desktop driver, so it registers high.
const driverPriority = 100

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()

	ggwin.RegisterDriver(DriverName, driverPriority, func() (ggwin.Platform, error) {
		return newPlatform()
	}, nil)
}

// platform implements ggwin.Platform on top of GLFW and OpenGL.
type platform struct {
	windows  map[*glfw.Window]*platformWindow
	queue    []ggwin.Event
	lastID   uint64
	lastMods ggwin.Modifiers
	glInited bool
}

func newPlatform() (*platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwdriver: init: %w", err)
	}
	return &platform{
		windows: make(map[*glfw.Window]*platformWindow),
	}, nil
}

// CapabilityCandidates returns the framebuffer configurations the driver
// is prepared to request. GLFW selects framebuffers through creation hints
// rather than enumeration, so the candidates are the hint combinations the
// driver supports, in probing order.
func (p *platform) CapabilityCandidates() []ggwin.Capabilities {
	return []ggwin.Capabilities{
		{Transparent: false, Samples: 4, StencilBits: 8},
		{Transparent: true, Samples: 4, StencilBits: 8},
		{Transparent: true, Samples: 0, StencilBits: 8},
		{Transparent: false, Samples: 0, StencilBits: 8},
	}
}

// context profiles, primary first. The fallback drops to the lowest
// version the blit path supports.
const (
	profilePrimary = iota
	profileFallback
)

func applyContextHints(profile int) {
	switch profile {
	case profilePrimary:
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	default:
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 3)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
}

func createGLWindow(attrs ggwin.WindowAttributes, caps ggwin.Capabilities, profile int) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	applyContextHints(profile)

	if caps.Transparent {
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	}
	glfw.WindowHint(glfw.Samples, caps.Samples)
	glfw.WindowHint(glfw.StencilBits, caps.StencilBits)

	return glfw.CreateWindow(attrs.Width, attrs.Height, attrs.Title, nil, nil)
}

// CreateWindow creates a native window with its own OpenGL context. If the
// primary context profile fails, it retries once with the fallback profile;
// a window without a usable context is not allowed to exist.
func (p *platform) CreateWindow(attrs ggwin.WindowAttributes, caps ggwin.Capabilities) (ggwin.PlatformWindow, error) {
	glw, err := createGLWindow(attrs, caps, profilePrimary)
	if err != nil {
		ggwin.Logger().Warn("glfwdriver: primary context profile failed, retrying with fallback", "err", err)
		glw, err = createGLWindow(attrs, caps, profileFallback)
		if err != nil {
			return nil, fmt.Errorf("glfwdriver: create window: %w", err)
		}
	}

	if len(attrs.Icon) > 0 {
		glw.SetIcon(attrs.Icon)
	}

	// Load OpenGL once and enable vsync for this context, then leave the
	// thread with no context current; the shell owns that protocol.
	glw.MakeContextCurrent()
	if !p.glInited {
		if err := gl.Init(); err != nil {
			glw.Destroy()
			glfw.DetachCurrentContext()
			return nil, fmt.Errorf("glfwdriver: gl init: %w", err)
		}
		p.glInited = true
	}
	glfw.SwapInterval(1)
	glfw.DetachCurrentContext()

	p.lastID++
	pw := &platformWindow{
		plat: p,
		id:   ggwin.WindowID(p.lastID),
		glw:  glw,
	}
	pw.surfW, pw.surfH = glw.GetFramebufferSize()
	p.windows[glw] = pw
	p.installCallbacks(pw)
	return pw, nil
}

// Poll pumps pending OS events; the GLFW callbacks append their translated
// form to the queue, which is then drained to sink in delivery order.
func (p *platform) Poll(sink func(ggwin.Event)) {
	glfw.PollEvents()
	if len(p.queue) == 0 {
		return
	}
	pending := p.queue
	p.queue = nil
	for _, ev := range pending {
		sink(ev)
	}
}

func (p *platform) push(ev ggwin.Event) {
	p.queue = append(p.queue, ev)
}

// Terminate shuts GLFW down.
func (p *platform) Terminate() {
	glfw.Terminate()
}
