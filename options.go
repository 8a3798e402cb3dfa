package ggwin

import (
	"image"
	"time"

	"github.com/gogpu/gg"
)

// Option configures an [App] during creation.
// Use functional options to customize shell behavior.
//
// Example:
//
//	app, err := ggwin.NewApp(
//	    ggwin.WithTitle("my app"),
//	    ggwin.WithSize(800, 600),
//	)
type Option func(*appOptions)

// appOptions holds optional configuration for App creation.
type appOptions struct {
	title         string
	width, height int
	icon          []image.Image
	background    gg.RGBA
	frameInterval time.Duration
	platform      Platform
}

// defaultAppOptions returns the default shell options: a 500x500 logical
// window, white background, 60 Hz frame pacing.
func defaultAppOptions() appOptions {
	return appOptions{
		title:         "ggwin",
		width:         500,
		height:        500,
		background:    gg.RGB(1, 1, 1),
		frameInterval: time.Second / 60,
	}
}

// WithTitle sets the title of the first window.
func WithTitle(title string) Option {
	return func(o *appOptions) {
		o.title = title
	}
}

// WithSize sets the logical size used for every window the shell opens.
func WithSize(width, height int) Option {
	return func(o *appOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithIcon sets the window icon, in multiple sizes, best first.
// Drivers that cannot set icons ignore it.
func WithIcon(icon []image.Image) Option {
	return func(o *appOptions) {
		o.icon = icon
	}
}

// WithBackground sets the color each frame's canvas is cleared to before
// the paint callback runs.
func WithBackground(c gg.RGBA) Option {
	return func(o *appOptions) {
		o.background = c
	}
}

// WithFrameInterval sets the minimum interval between two repaints of the
// same window. The default is 1/60 s.
func WithFrameInterval(d time.Duration) Option {
	return func(o *appOptions) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithPlatform injects a windowing-layer implementation directly, bypassing
// the driver registry. Used by tests and by embedders with their own
// windowing integration.
func WithPlatform(p Platform) Option {
	return func(o *appOptions) {
		o.platform = p
	}
}
