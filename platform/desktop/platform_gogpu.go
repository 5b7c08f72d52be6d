// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package desktop

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tutorial/framework"
)

// Name is the registry name of the platform.
const Name = "gogpu"

func init() {
	framework.RegisterPlatform(Name, 100, func() (framework.Platform, error) {
		return New(), nil
	})
}

// host is the part of gogpu.App the loop drives between draws.
type host interface {
	gpucontext.WindowProvider
	Quit()
}

// defaultAttributes are used for handlers that are not an
// AttributeSource.
var defaultAttributes = framework.WindowAttributes{
	Title:     "gogpu",
	Size:      framework.Size{Width: 800, Height: 600},
	Resizable: true,
}

// Platform runs the event loop on a gogpu.App, which owns the only window
// together with the device and the swapchain. Input arrives on the app's
// callbacks and is queued; everything reaches the handler from the draw
// callback, where the surface view of the frame is valid.
type Platform struct {
	app     host
	window  *Window
	handler framework.EventHandler
	posted  postQueue
	cursor  cursorTracker
	exit    atomic.Bool
	running bool
	resumed bool
	created bool
}

// New returns a platform ready to Run.
func New() *Platform {
	return &Platform{}
}

var _ framework.EventLoop = (*Platform)(nil)

// Run creates the app window from h's attributes and dispatches events to
// h until the window closes or Exit is called. It must be called from the
// main goroutine.
func (p *Platform) Run(h framework.EventHandler) error {
	if p.running {
		return ErrLoopRunning
	}
	p.running = true
	defer func() { p.running = false }()

	attrs := defaultAttributes
	if src, ok := h.(framework.AttributeSource); ok {
		attrs = src.WindowAttributes()
	}
	size := attrs.Size.Max(1)
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(attrs.Title).
		WithSize(int(size.Width), int(size.Height)).
		WithContinuousRender(false))

	p.attach(app, h, attrs)
	p.listen(app.EventSource())
	app.OnDraw(func(dc *gogpu.Context) {
		p.draw(dc.Width(), dc.Height(), dc.RenderTarget().SurfaceView(), app.GPUContextProvider())
	})
	app.OnClose(p.close)

	logger().Debug("gogpu app starting", "title", attrs.Title, "size", size)
	if err := app.Run(); err != nil {
		return fmt.Errorf("desktop: gogpu app: %w", err)
	}
	return nil
}

// attach binds the platform to an app before its loop starts.
func (p *Platform) attach(app host, h framework.EventHandler, attrs framework.WindowAttributes) {
	p.app = app
	p.handler = h
	p.window = &Window{app: app, title: attrs.Title}
	p.window.state.setSize(int(attrs.Size.Width), int(attrs.Size.Height))
	p.window.state.setScale(app.ScaleFactor())
}

// listen queues app input as framework events.
func (p *Platform) listen(src gpucontext.EventSource) {
	src.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		p.queue(framework.KeyEvent{Key: key, Modifiers: mods, State: framework.Pressed})
	})
	src.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		p.queue(framework.KeyEvent{Key: key, Modifiers: mods, State: framework.Released})
	})
	src.OnMousePress(func(button gpucontext.MouseButton, _, _ float64) {
		p.queue(framework.MouseInputEvent{Button: mouseButton(button), State: framework.Pressed})
	})
	src.OnMouseRelease(func(button gpucontext.MouseButton, _, _ float64) {
		p.queue(framework.MouseInputEvent{Button: mouseButton(button), State: framework.Released})
	})
	src.OnScroll(func(dx, dy float64) {
		p.queue(framework.MouseWheelEvent{DeltaX: dx, DeltaY: dy})
	})
	src.OnMouseMove(func(x, y float64) {
		p.Post(func() { p.cursorMoved(x, y) })
	})
	// The size is taken from the next draw.
	src.OnResize(func(int, int) {
		p.window.RequestRedraw()
	})
}

func (p *Platform) queue(ev framework.Event) {
	p.Post(func() { p.dispatch(ev) })
}

func (p *Platform) cursorMoved(x, y float64) {
	dx, dy := p.cursor.delta(x, y)
	p.dispatch(framework.CursorMovedEvent{X: x, Y: y})
	if dx != 0 || dy != 0 {
		p.dispatch(framework.DeviceEvent{DeltaX: dx, DeltaY: dy})
	}
}

// draw runs one host frame. The first frame with a device resumes the
// handler. Queued work runs next, then size changes, then the redraw.
// The host presents the surface after every draw, so every draw is a
// redraw.
func (p *Platform) draw(width, height int, view gpucontext.TextureView, provider gpucontext.DeviceProvider) {
	if p.exit.Load() {
		return
	}
	w := p.window
	if provider != nil {
		w.setDeviceProvider(provider)
	}
	size, resized := w.state.setSize(width, height)
	scale, rescaled := w.state.setScale(p.app.ScaleFactor())

	if !p.resumed {
		if w.DeviceProvider() == nil {
			return
		}
		p.resumed = true
		p.handler.Resumed(p)
		resized, rescaled = false, false
	}

	p.posted.drain()
	if rescaled {
		p.dispatch(framework.ScaleFactorChangedEvent{ScaleFactor: scale})
	}
	if resized {
		p.dispatch(framework.ResizedEvent{Size: size})
	}

	w.state.takeRedraw()
	w.view = view
	p.dispatch(framework.RedrawRequestedEvent{})
	w.view = gpucontext.TextureView{}
}

// close runs when the app window closes. The device is still alive.
func (p *Platform) close() {
	p.posted.drain()
	p.dispatch(framework.CloseRequestedEvent{})
	p.exit.Store(true)
}

func (p *Platform) dispatch(ev framework.Event) {
	if p.exit.Load() || p.handler == nil {
		return
	}
	p.handler.WindowEvent(p, ev)
}

// CreateWindow implements framework.EventLoop. It returns the app window;
// attrs other than the title were applied when the app was created.
func (p *Platform) CreateWindow(attrs framework.WindowAttributes) (framework.Window, error) {
	if p.window == nil {
		return nil, errors.New("desktop: create window outside Run")
	}
	if p.created {
		return nil, ErrSingleWindow
	}
	p.created = true
	if attrs.Title != p.window.title {
		p.window.SetTitle(attrs.Title)
	}
	logger().Debug("window created", "title", attrs.Title, "size", p.window.InnerSize(), "scale", p.window.ScaleFactor())
	return p.window, nil
}

// Exit implements framework.EventLoop.
func (p *Platform) Exit() {
	if p.exit.Swap(true) {
		return
	}
	if p.app != nil {
		p.app.Quit()
	}
}

// Post implements framework.EventLoop. It asks the app for a draw so the
// queue is drained.
func (p *Platform) Post(fn func()) {
	p.posted.push(fn)
	if p.app != nil {
		p.app.RequestRedraw()
	}
}

func mouseButton(b gpucontext.MouseButton) framework.MouseButton {
	switch b {
	case gpucontext.MouseButtonLeft:
		return framework.MouseButtonLeft
	case gpucontext.MouseButtonRight:
		return framework.MouseButtonRight
	case gpucontext.MouseButtonMiddle:
		return framework.MouseButtonMiddle
	}
	return framework.MouseButtonOther
}
