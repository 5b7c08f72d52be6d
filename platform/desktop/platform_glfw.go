// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/tutorial/framework"
)

// Name is the registry name of the platform.
const Name = "glfw"

func init() {
	runtime.LockOSThread()
	framework.RegisterPlatform(Name, 100, func() (framework.Platform, error) {
		return New(), nil
	})
}

// Platform is a GLFW event loop. Only one may run at a time.
// Framebuffer size and scale are cached from GLFW callbacks, so windows
// can be queried off the main thread.
type Platform struct {
	posted  postQueue
	windows []*Window
	exit    bool
	running bool
	handler framework.EventHandler
}

// New returns a platform ready to Run.
func New() *Platform {
	return &Platform{}
}

var _ framework.EventLoop = (*Platform)(nil)

// Run initializes GLFW and dispatches events to h until Exit is called or
// every window is gone. It must be called from the main goroutine.
func (p *Platform) Run(h framework.EventHandler) error {
	if p.running {
		return ErrLoopRunning
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	p.running = true
	p.handler = h
	defer func() {
		for _, w := range p.windows {
			w.destroy()
		}
		p.windows = nil
		p.running = false
	}()

	h.Resumed(p)
	for !p.exit {
		if p.redrawPending() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		p.posted.drain()
		p.redraw()
		if len(p.windows) == 0 {
			logger().Debug("no windows left, leaving event loop")
			break
		}
	}
	return nil
}

func (p *Platform) redrawPending() bool {
	for _, w := range p.windows {
		if w.state.redraw.Load() {
			return true
		}
	}
	return false
}

func (p *Platform) redraw() {
	for _, w := range p.windows {
		if p.exit {
			return
		}
		if w.state.takeRedraw() {
			p.dispatch(framework.RedrawRequestedEvent{})
		}
	}
}

func (p *Platform) dispatch(ev framework.Event) {
	if p.exit || p.handler == nil {
		return
	}
	p.handler.WindowEvent(p, ev)
}

// CreateWindow implements framework.EventLoop.
func (p *Platform) CreateWindow(attrs framework.WindowAttributes) (framework.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolToInt(attrs.Resizable))

	size := attrs.Size.Max(1)
	win, err := glfw.CreateWindow(int(size.Width), int(size.Height), attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: failed to create window: %w", err)
	}
	w := &Window{win: win, title: attrs.Title}
	w.state.setSize(win.GetFramebufferSize())
	x, _ := win.GetContentScale()
	w.state.setScale(float64(x))
	w.install(p)
	p.windows = append(p.windows, w)
	logger().Debug("window created", "title", attrs.Title, "size", w.InnerSize(), "scale", w.ScaleFactor())
	return w, nil
}

// Exit implements framework.EventLoop.
func (p *Platform) Exit() {
	p.exit = true
	glfw.PostEmptyEvent()
}

// Post implements framework.EventLoop. It wakes a loop blocked in
// WaitEvents.
func (p *Platform) Post(fn func()) {
	p.posted.push(fn)
	glfw.PostEmptyEvent()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
