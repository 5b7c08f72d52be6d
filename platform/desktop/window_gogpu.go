// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package desktop

import (
	"errors"
	"sync/atomic"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

// ErrSingleWindow is returned by CreateWindow when the app window was
// already handed out.
var ErrSingleWindow = errors.New("desktop: platform supports a single window")

type deviceBox struct {
	provider gpucontext.DeviceProvider
}

// Window is the gogpu app window. InnerSize, ScaleFactor, RequestRedraw
// and DeviceProvider may be called from any goroutine; the other methods
// only on the loop goroutine.
type Window struct {
	app    host
	title  string
	state  windowState
	device atomic.Pointer[deviceBox]
	view   gpucontext.TextureView
}

var (
	_ framework.Window = (*Window)(nil)
	_ gpu.HostedWindow = (*Window)(nil)
)

// SetTitle implements framework.Window. The app keeps the title it was
// created with unless it can retitle its window.
func (w *Window) SetTitle(title string) {
	w.title = title
	if t, ok := w.app.(interface{ SetTitle(string) }); ok {
		t.SetTitle(title)
		return
	}
	logger().Debug("window title kept by host", "title", title)
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// InnerSize implements framework.Window. It is the surface size of the
// last draw in physical pixels.
func (w *Window) InnerSize() framework.Size { return w.state.innerSize() }

// ScaleFactor implements framework.Window.
func (w *Window) ScaleFactor() float64 { return w.state.scaleFactor() }

// RequestInnerSize implements framework.Window. The app sizes its window
// itself, so the request is only logged.
func (w *Window) RequestInnerSize(size framework.Size) {
	logger().Debug("window resize request ignored by host", "size", size)
}

// RequestRedraw implements framework.Window.
func (w *Window) RequestRedraw() {
	w.state.redraw.Store(true)
	if w.app != nil {
		w.app.RequestRedraw()
	}
}

// PrePresentNotify implements framework.Window.
func (w *Window) PrePresentNotify() {}

// DeviceProvider implements gpu.HostedWindow. It is nil until the app
// opened its device.
func (w *Window) DeviceProvider() gpucontext.DeviceProvider {
	if b := w.device.Load(); b != nil {
		return b.provider
	}
	return nil
}

func (w *Window) setDeviceProvider(p gpucontext.DeviceProvider) {
	if w.device.Load() == nil {
		w.device.Store(&deviceBox{provider: p})
	}
}

// SurfaceView implements gpu.HostedWindow.
func (w *Window) SurfaceView() gpucontext.TextureView { return w.view }
