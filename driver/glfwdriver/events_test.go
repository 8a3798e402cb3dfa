// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggwin"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in     glfw.Key
		want   gpucontext.Key
		mapped bool
	}{
		{glfw.KeyQ, gpucontext.KeyQ, true},
		{glfw.KeyA, gpucontext.KeyA, true},
		{glfw.KeySpace, gpucontext.KeySpace, true},
		{glfw.KeyEscape, gpucontext.KeyEscape, true},
		{glfw.KeyF12, 0, false},
		{glfw.KeyLeftShift, 0, false},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.in)
		if ok != tt.mapped || (ok && got != tt.want) {
			t.Errorf("translateKey(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.mapped)
		}
	}
}

func TestTranslateModifiers(t *testing.T) {
	tests := []struct {
		in   glfw.ModifierKey
		want ggwin.Modifiers
	}{
		{0, 0},
		{glfw.ModShift, ggwin.ModShift},
		{glfw.ModControl | glfw.ModAlt, ggwin.ModControl | ggwin.ModAlt},
		{glfw.ModShift | glfw.ModSuper, ggwin.ModShift | ggwin.ModSuper},
	}
	for _, tt := range tests {
		if got := translateModifiers(tt.in); got != tt.want {
			t.Errorf("translateModifiers(%v) = %b, want %b", tt.in, got, tt.want)
		}
	}
}

func TestSyncModifiersQueuesOnChange(t *testing.T) {
	p := &platform{}
	p.syncModifiers(1, ggwin.ModShift)
	p.syncModifiers(1, ggwin.ModShift)
	p.syncModifiers(1, ggwin.ModShift|ggwin.ModControl)
	p.syncModifiers(1, 0)

	if len(p.queue) != 3 {
		t.Fatalf("queued %d modifier events, want 3", len(p.queue))
	}
	want := []ggwin.Modifiers{ggwin.ModShift, ggwin.ModShift | ggwin.ModControl, 0}
	for i, ev := range p.queue {
		me, ok := ev.(ggwin.ModifiersEvent)
		if !ok {
			t.Fatalf("queue[%d] = %T, want ModifiersEvent", i, ev)
		}
		if me.Mods != want[i] {
			t.Errorf("queue[%d].Mods = %b, want %b", i, me.Mods, want[i])
		}
	}
}
