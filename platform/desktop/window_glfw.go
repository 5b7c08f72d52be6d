// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package desktop

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/tutorial/framework"
)

// Window is a GLFW window. InnerSize, ScaleFactor and RequestRedraw may be
// called from any goroutine; the other methods only on the loop goroutine.
type Window struct {
	win    *glfw.Window
	title  string
	state  windowState
	cursor cursorTracker
}

var _ framework.Window = (*Window)(nil)

// install routes GLFW callbacks to the platform's handler.
func (w *Window) install(p *Platform) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		size, _ := w.state.setSize(width, height)
		p.dispatch(framework.ResizedEvent{Size: size})
	})
	w.win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		scale, _ := w.state.setScale(float64(x))
		p.dispatch(framework.ScaleFactorChangedEvent{ScaleFactor: scale})
	})
	w.win.SetRefreshCallback(func(_ *glfw.Window) {
		w.state.redraw.Store(true)
	})
	w.win.SetCloseCallback(func(win *glfw.Window) {
		// The handler decides whether to exit.
		win.SetShouldClose(false)
		p.dispatch(framework.CloseRequestedEvent{})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		p.dispatch(keyEvent(key, action, mods))
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		p.dispatch(framework.MouseInputEvent{
			Button: mouseButton(button),
			State:  elementState(action),
		})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		p.dispatch(framework.MouseWheelEvent{DeltaX: xoff, DeltaY: yoff})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := w.cursor.delta(x, y)
		p.dispatch(framework.CursorMovedEvent{X: x, Y: y})
		if dx != 0 || dy != 0 {
			p.dispatch(framework.DeviceEvent{DeltaX: dx, DeltaY: dy})
		}
	})
}

// SetTitle implements framework.Window.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.win.SetTitle(title)
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// InnerSize implements framework.Window. It is the framebuffer size in
// physical pixels as last reported by GLFW.
func (w *Window) InnerSize() framework.Size { return w.state.innerSize() }

// ScaleFactor implements framework.Window.
func (w *Window) ScaleFactor() float64 { return w.state.scaleFactor() }

// RequestInnerSize implements framework.Window. GLFW sizes windows in
// screen coordinates, which differ from pixels on some systems.
func (w *Window) RequestInnerSize(size framework.Size) {
	fbw, fbh := w.win.GetFramebufferSize()
	ww, wh := w.win.GetSize()
	w.win.SetSize(toScreen(size.Width, fbw, ww), toScreen(size.Height, fbh, wh))
}

// RequestRedraw implements framework.Window. It wakes a loop blocked in
// WaitEvents.
func (w *Window) RequestRedraw() {
	w.state.redraw.Store(true)
	glfw.PostEmptyEvent()
}

// PrePresentNotify implements framework.Window.
func (w *Window) PrePresentNotify() {}

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window { return w.win }

// SurfaceDescriptor returns the wgpu-native surface descriptor for the
// window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}

// toScreen converts px pixels to screen coordinates given the current
// framebuffer and window extents.
func toScreen(px uint32, framebuffer, window int) int {
	if framebuffer <= 0 || window <= 0 {
		return int(px)
	}
	return int(math.Round(float64(px) * float64(window) / float64(framebuffer)))
}
