// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwdriver provides the GLFW windowing driver for ggwin.
//
// The driver owns native window creation, OS event translation and pixel
// presentation. Each window gets its own OpenGL context; presentation
// uploads the canvas pixels into a texture-backed read framebuffer and
// blits it to the window's default framebuffer.
//
// Importing the package registers the driver:
//
//	import _ "github.com/gogpu/ggwin/driver/glfwdriver"
//
// GLFW requires the main OS thread; the package locks the importing
// goroutine to it, so the import must happen from package main.
package glfwdriver
