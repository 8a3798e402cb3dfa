package ggwin

import "github.com/gogpu/gg"

// canvas is the 2D drawing target of one window: a gg context sized to the
// window's physical framebuffer, with the display scale factor applied as
// the base transform so logical drawing coordinates match physical pixels
// on high-DPI displays.
//
// A canvas has no identity across resizes. Resizing the window discards
// the canvas and builds a new one from the resized surface; previously
// drawn content is lost and callers must repaint.
type canvas struct {
	dc     *gg.Context
	width  int
	height int
	scale  float64

	// copied from the shared capability set at creation
	samples     int
	stencilBits int
}

// newCanvas builds a canvas for a framebuffer of the given physical size.
func newCanvas(width, height int, scale float64, caps Capabilities) *canvas {
	c := &canvas{
		dc:          gg.NewContext(width, height),
		width:       width,
		height:      height,
		scale:       scale,
		samples:     caps.Samples,
		stencilBits: caps.StencilBits,
	}
	c.dc.Scale(scale, scale)
	return c
}

// reset restores the transform and clip to their default state, reapplies
// the display-scale transform and clears to background. It must run before
// each logical frame's paint; without it the canvas accumulates transform
// and clip state across frames indefinitely.
func (c *canvas) reset(background gg.RGBA) {
	c.dc.Identity()
	c.dc.ResetClip()
	c.dc.ClearPath()
	c.dc.Scale(c.scale, c.scale)
	c.dc.ClearWithColor(background)
}

// pixels returns the canvas's raw RGBA pixel buffer for presentation.
func (c *canvas) pixels() []byte {
	return c.dc.ResizeTarget().Data()
}

// close releases the gg context. The window's graphics context must be
// current, matching the teardown protocol for GPU-backed targets.
func (c *canvas) close() error {
	return c.dc.Close()
}
