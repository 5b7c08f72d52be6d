// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"errors"
	"fmt"
	"time"
)

// Handler drives one application through its lifecycle. It implements
// EventHandler and must only be called from the event loop goroutine.
type Handler[A App] struct {
	title  string
	ctor   Constructor[A]
	opts   options
	window Window
	state  lifecycle
	err    error
	tasks  uint64
	stats  Stats
}

// Stats counts redraws handled in the ready phase.
type Stats struct {
	Frames uint64 // Render calls
	Lost   uint64 // Render returned ErrSurfaceLost
	Failed uint64 // Render returned any other error
}

// NewHandler creates a handler for an application built by ctor in a
// window titled title.
func NewHandler[A App](title string, ctor Constructor[A], opts ...Option) *Handler[A] {
	return &Handler[A]{
		title: title,
		ctor:  ctor,
		opts:  buildOptions(opts),
		state: uninitialized{},
	}
}

// Phase returns the current lifecycle phase.
func (h *Handler[A]) Phase() Phase { return h.state.phase() }

// App returns the application once it is ready.
func (h *Handler[A]) App() (A, bool) {
	if r, ok := h.state.(*ready[A]); ok {
		return r.app, true
	}
	var zero A
	return zero, false
}

// PendingResize returns the size buffered while constructing.
func (h *Handler[A]) PendingResize() (Size, bool) {
	if c, ok := h.state.(*constructing); ok && c.pending != nil {
		return *c.pending, true
	}
	return Size{}, false
}

// Window returns the window, nil before the first resume.
func (h *Handler[A]) Window() Window { return h.window }

// Err returns the fatal error that stopped the loop, if any.
func (h *Handler[A]) Err() error { return h.err }

// Stats returns redraw counters.
func (h *Handler[A]) Stats() Stats { return h.stats }

// WindowAttributes returns the attributes of the window created on resume.
func (h *Handler[A]) WindowAttributes() WindowAttributes {
	size := h.opts.size
	if size.IsZero() {
		size = Size{Width: DefaultWindowSide, Height: DefaultWindowSide}
	}
	return WindowAttributes{Title: h.title, Size: size, Resizable: true}
}

// Resumed creates the window and starts construction. Only the first call
// has an effect.
func (h *Handler[A]) Resumed(loop EventLoop) {
	if _, ok := h.state.(uninitialized); !ok {
		Logger().Debug("resume ignored", "phase", h.state.phase())
		return
	}

	w, err := loop.CreateWindow(h.WindowAttributes())
	if err != nil {
		h.fail(loop, fmt.Errorf("framework: create window: %w", err))
		return
	}
	h.window = w
	h.configureWindow(w)
	Logger().Info("window created", "title", h.title, "size", w.InnerSize(), "scale", w.ScaleFactor())

	h.tasks++
	t := &task{id: h.tasks, started: time.Now()}
	h.state = &constructing{task: t}

	if !h.opts.async {
		app, err := h.ctor(h.opts.ctx, w)
		h.complete(loop, t, app, err)
		return
	}
	ctx := h.opts.ctx
	go func() {
		app, err := h.ctor(ctx, w)
		loop.Post(func() { h.complete(loop, t, app, err) })
	}()
}

func (h *Handler[A]) configureWindow(w Window) {
	w.SetTitle(h.title)
	if !h.opts.size.IsZero() {
		return
	}
	side := uint32(DefaultWindowSide * w.ScaleFactor())
	w.RequestInnerSize(Size{Width: side, Height: side})
}

// complete is the single completion callback of a construction task. It
// runs on the loop goroutine.
func (h *Handler[A]) complete(loop EventLoop, t *task, app A, err error) {
	c, ok := h.state.(*constructing)
	if !ok || c.task != t {
		if err == nil {
			release(app)
		}
		Logger().Debug("construction result discarded", "task", t.id, "phase", h.state.phase())
		return
	}
	if err != nil {
		h.fail(loop, fmt.Errorf("framework: construct %q: %w", h.title, err))
		return
	}

	h.state = &ready[A]{app: app}
	Logger().Info("application ready", "elapsed", time.Since(t.started))

	if c.pending != nil {
		Logger().Info("window resized", "size", *c.pending)
		app.SetWindowSize(*c.pending)
	}
	h.window.RequestRedraw()
}

// WindowEvent dispatches ev according to the current phase.
func (h *Handler[A]) WindowEvent(loop EventLoop, ev Event) {
	switch s := h.state.(type) {
	case uninitialized:
		Logger().Debug("event before resume dropped", "event", eventName(ev))
	case *constructing:
		h.constructingEvent(loop, s, ev)
	case *ready[A]:
		h.readyEvent(loop, s.app, ev)
	case closed:
	}
}

func (h *Handler[A]) constructingEvent(loop EventLoop, s *constructing, ev Event) {
	switch e := ev.(type) {
	case ResizedEvent:
		if e.Size.IsZero() {
			Logger().Debug("zero resize dropped while constructing", "size", e.Size)
			return
		}
		size := e.Size
		s.pending = &size
		Logger().Debug("resize deferred", "size", size)
	case CloseRequestedEvent:
		Logger().Info("close requested while constructing")
		h.state = closed{}
		loop.Exit()
	default:
		Logger().Debug("event dropped while constructing", "event", eventName(ev))
	}
}

func (h *Handler[A]) readyEvent(loop EventLoop, app A, ev Event) {
	switch e := ev.(type) {
	case ResizedEvent:
		if e.Size.IsZero() {
			Logger().Info("window minimized")
			return
		}
		Logger().Info("window resized", "size", e.Size)
		app.SetWindowSize(e.Size)
	case RedrawRequestedEvent:
		h.redraw(app)
	case CloseRequestedEvent:
		Logger().Info("close requested")
		h.state = closed{}
		loop.Exit()
		release(app)
	case ScaleFactorChangedEvent:
		Logger().Info("scale factor changed", "scale", e.ScaleFactor)
	case KeyEvent:
		app.KeyboardInput(e)
	case MouseInputEvent:
		app.MouseClick(e)
	case MouseWheelEvent:
		app.MouseWheel(e)
	case CursorMovedEvent:
		app.CursorMove(e)
	case DeviceEvent:
		app.DeviceInput(e)
	}
}

func (h *Handler[A]) redraw(app A) {
	h.window.PrePresentNotify()
	h.stats.Frames++
	switch err := app.Render(); {
	case err == nil:
	case errors.Is(err, ErrSurfaceLost):
		h.stats.Lost++
		Logger().Warn("surface lost")
	default:
		h.stats.Failed++
		Logger().Error("render failed", "err", err)
	}
	h.window.RequestRedraw()
}

func (h *Handler[A]) fail(loop EventLoop, err error) {
	Logger().Error("fatal", "err", err)
	h.err = err
	h.state = closed{}
	loop.Exit()
}

func release[A App](app A) {
	if r, ok := any(app).(Releaser); ok {
		r.Release()
	}
}

func eventName(ev Event) string {
	return fmt.Sprintf("%T", ev)
}
