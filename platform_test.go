package ggwin

import (
	"fmt"
)

// fakeWindow implements PlatformWindow in memory and records every call the
// shell makes against it, in order, both locally and in the shared platform
// log for cross-window ordering checks.
type fakeWindow struct {
	plat  *fakePlatform
	id    WindowID
	title string
	fbW   int
	fbH   int
	scale float64

	calls     []string
	presented int
	destroyed bool

	makeCurrentErr error
	presentErr     error
}

func (w *fakeWindow) record(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	w.calls = append(w.calls, s)
	if w.plat != nil {
		w.plat.log = append(w.plat.log, fmt.Sprintf("%d:%s", w.id, s))
	}
}

func (w *fakeWindow) ID() WindowID               { return w.id }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.fbW, w.fbH }
func (w *fakeWindow) ContentScale() float64       { return w.scale }

func (w *fakeWindow) SetTitle(title string) {
	w.title = title
	w.record("title %s", title)
}

func (w *fakeWindow) MakeContextCurrent() error {
	if w.makeCurrentErr != nil {
		return w.makeCurrentErr
	}
	w.record("current")
	return nil
}

func (w *fakeWindow) DetachContext() {
	w.record("detach")
}

func (w *fakeWindow) ResizeSurface(width, height int) {
	w.fbW, w.fbH = width, height
	w.record("resizeSurface %dx%d", width, height)
}

func (w *fakeWindow) Present(pixels []byte, width, height int) error {
	if w.presentErr != nil {
		return w.presentErr
	}
	if len(pixels) != width*height*4 {
		return fmt.Errorf("present: %d bytes for %dx%d", len(pixels), width, height)
	}
	w.presented++
	w.record("present %dx%d", width, height)
	return nil
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	w.record("destroy")
}

// fakePlatform implements Platform with a scripted event stream. Each Poll
// delivers the next script entry; once the script is exhausted, every live
// window receives a close request so Run terminates.
type fakePlatform struct {
	candidates []Capabilities
	windows    []*fakeWindow
	nextID     WindowID
	script     [][]Event
	polls      int
	terminated bool
	createErr  error
	log        []string
}

func newFakePlatform(script ...[]Event) *fakePlatform {
	return &fakePlatform{
		candidates: []Capabilities{
			{Transparent: false, Samples: 4, StencilBits: 8},
			{Transparent: true, Samples: 4, StencilBits: 8},
			{Transparent: true, Samples: 0, StencilBits: 8},
		},
		script: script,
	}
}

func (p *fakePlatform) CapabilityCandidates() []Capabilities {
	return p.candidates
}

func (p *fakePlatform) CreateWindow(attrs WindowAttributes, _ Capabilities) (PlatformWindow, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.nextID++
	w := &fakeWindow{
		plat:  p,
		id:    p.nextID,
		title: attrs.Title,
		fbW:   attrs.Width,
		fbH:   attrs.Height,
		scale: 1,
	}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakePlatform) Poll(sink func(Event)) {
	if p.polls < len(p.script) {
		for _, ev := range p.script[p.polls] {
			sink(ev)
		}
		p.polls++
		return
	}
	for _, w := range p.windows {
		if !w.destroyed {
			sink(CloseRequestedEvent{Window: w.id})
		}
	}
}

func (p *fakePlatform) Terminate() {
	p.terminated = true
}
