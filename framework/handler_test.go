// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

type fakeWindow struct {
	title      string
	size       Size
	scale      float64
	requested  []Size
	redraws    int
	prePresent int
}

func (w *fakeWindow) SetTitle(title string)      { w.title = title }
func (w *fakeWindow) InnerSize() Size            { return w.size }
func (w *fakeWindow) ScaleFactor() float64       { return w.scale }
func (w *fakeWindow) RequestInnerSize(size Size) { w.requested = append(w.requested, size) }
func (w *fakeWindow) RequestRedraw()             { w.redraws++ }
func (w *fakeWindow) PrePresentNotify()          { w.prePresent++ }

type fakeLoop struct {
	window    *fakeWindow
	createErr error
	creates   int
	exited    bool

	mu     sync.Mutex
	posted []func()
	postCh chan struct{}
}

func newFakeLoop() *fakeLoop {
	return &fakeLoop{
		window: &fakeWindow{size: Size{Width: 800, Height: 600}, scale: 1.5},
		postCh: make(chan struct{}, 8),
	}
}

func (l *fakeLoop) CreateWindow(attrs WindowAttributes) (Window, error) {
	l.creates++
	if l.createErr != nil {
		return nil, l.createErr
	}
	l.window.title = attrs.Title
	return l.window, nil
}

func (l *fakeLoop) Exit() { l.exited = true }

func (l *fakeLoop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
	l.postCh <- struct{}{}
}

// waitPosted blocks until one callback was posted and runs it.
func (l *fakeLoop) waitPosted(t *testing.T) {
	t.Helper()
	select {
	case <-l.postCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for posted completion")
	}
	l.mu.Lock()
	fns := l.posted
	l.posted = nil
	l.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type fakeApp struct {
	NopInput
	size      Size
	sizes     []Size
	renders   int
	renderErr error
	released  bool
	keys      []KeyEvent
	wheels    int
}

func (a *fakeApp) SetWindowSize(s Size) {
	if s == a.size {
		return
	}
	a.size = s
	a.sizes = append(a.sizes, s)
}

func (a *fakeApp) Size() Size { return a.size }

func (a *fakeApp) Render() error {
	a.renders++
	return a.renderErr
}

func (a *fakeApp) Release() { a.released = true }

func (a *fakeApp) KeyboardInput(ev KeyEvent) bool {
	a.keys = append(a.keys, ev)
	return true
}

func (a *fakeApp) MouseWheel(MouseWheelEvent) bool {
	a.wheels++
	return true
}

func syncCtor(app *fakeApp) Constructor[*fakeApp] {
	return func(_ context.Context, w Window) (*fakeApp, error) {
		app.size = w.InnerSize()
		return app, nil
	}
}

// gatedCtor returns a constructor that blocks until release is closed.
func gatedCtor(app *fakeApp, err error) (Constructor[*fakeApp], chan struct{}) {
	gate := make(chan struct{})
	return func(_ context.Context, w Window) (*fakeApp, error) {
		<-gate
		if err != nil {
			return nil, err
		}
		app.size = w.InnerSize()
		return app, nil
	}, gate
}

func TestHandlerSyncConstruction(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	h := NewHandler("Beginner", syncCtor(app))

	if got := h.Phase(); got != PhaseUninitialized {
		t.Fatalf("Phase() = %v, want uninitialized", got)
	}
	h.Resumed(loop)

	if got := h.Phase(); got != PhaseReady {
		t.Fatalf("Phase() = %v, want ready", got)
	}
	if loop.window.title != "Beginner" {
		t.Errorf("title = %q, want Beginner", loop.window.title)
	}
	want := Size{Width: 900, Height: 900}
	if len(loop.window.requested) != 1 || loop.window.requested[0] != want {
		t.Errorf("requested sizes = %v, want [%v]", loop.window.requested, want)
	}
	if loop.window.redraws != 1 {
		t.Errorf("redraws = %d, want 1", loop.window.redraws)
	}
	got, ok := h.App()
	if !ok || got != app {
		t.Error("App() did not return the constructed application")
	}
}

func TestHandlerExplicitWindowSize(t *testing.T) {
	loop := newFakeLoop()
	h := NewHandler("t", syncCtor(&fakeApp{}), WithWindowSize(Size{Width: 320, Height: 200}))
	h.Resumed(loop)
	if len(loop.window.requested) != 0 {
		t.Errorf("requested sizes = %v, want none", loop.window.requested)
	}
}

func TestHandlerWindowAttributes(t *testing.T) {
	var src AttributeSource = NewHandler("Camera", syncCtor(&fakeApp{}))
	want := WindowAttributes{Title: "Camera", Size: Size{Width: DefaultWindowSide, Height: DefaultWindowSide}, Resizable: true}
	if got := src.WindowAttributes(); got != want {
		t.Errorf("WindowAttributes() = %+v, want %+v", got, want)
	}

	sized := NewHandler("t", syncCtor(&fakeApp{}), WithWindowSize(Size{Width: 320, Height: 200}))
	if got := sized.WindowAttributes().Size; got != (Size{Width: 320, Height: 200}) {
		t.Errorf("WindowAttributes().Size = %v, want 320x200", got)
	}
}

func TestHandlerSecondResumeIgnored(t *testing.T) {
	loop := newFakeLoop()
	h := NewHandler("t", syncCtor(&fakeApp{}))
	h.Resumed(loop)
	h.Resumed(loop)
	if loop.creates != 1 {
		t.Errorf("CreateWindow called %d times, want 1", loop.creates)
	}
}

func TestHandlerAsyncAppliesLatestResize(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	ctor, gate := gatedCtor(app, nil)
	h := NewHandler("t", ctor, WithAsyncInit(true))

	h.Resumed(loop)
	if got := h.Phase(); got != PhaseConstructing {
		t.Fatalf("Phase() = %v, want constructing", got)
	}

	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 100, Height: 100}})
	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 300, Height: 200}})
	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 0, Height: 50}})
	h.WindowEvent(loop, RedrawRequestedEvent{})
	h.WindowEvent(loop, KeyEvent{Key: gpucontext.KeySpace, State: Pressed})

	pending, ok := h.PendingResize()
	if !ok || pending != (Size{Width: 300, Height: 200}) {
		t.Fatalf("PendingResize() = %v, %v; want 300x200", pending, ok)
	}

	close(gate)
	loop.waitPosted(t)

	if got := h.Phase(); got != PhaseReady {
		t.Fatalf("Phase() = %v, want ready", got)
	}
	want := []Size{{Width: 300, Height: 200}}
	if fmt.Sprint(app.sizes) != fmt.Sprint(want) {
		t.Errorf("applied sizes = %v, want %v", app.sizes, want)
	}
	if app.renders != 0 {
		t.Errorf("renders = %d, want 0 (redraw during construction is dropped)", app.renders)
	}
	if len(app.keys) != 0 {
		t.Errorf("keys = %v, want none", app.keys)
	}
	if loop.window.redraws != 1 {
		t.Errorf("redraws = %d, want 1", loop.window.redraws)
	}
	if _, ok := h.PendingResize(); ok {
		t.Error("pending resize not cleared after completion")
	}
}

func TestHandlerAsyncNoResize(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	ctor, gate := gatedCtor(app, nil)
	h := NewHandler("t", ctor, WithAsyncInit(true))

	h.Resumed(loop)
	close(gate)
	loop.waitPosted(t)

	if len(app.sizes) != 0 {
		t.Errorf("applied sizes = %v, want none", app.sizes)
	}
	if loop.window.redraws != 1 {
		t.Errorf("redraws = %d, want 1", loop.window.redraws)
	}
}

func TestHandlerCloseWhileConstructing(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	ctor, gate := gatedCtor(app, nil)
	h := NewHandler("t", ctor, WithAsyncInit(true))

	h.Resumed(loop)
	h.WindowEvent(loop, CloseRequestedEvent{})

	if !loop.exited {
		t.Error("loop not exited on close request")
	}
	if got := h.Phase(); got != PhaseClosed {
		t.Errorf("Phase() = %v, want closed", got)
	}

	close(gate)
	loop.waitPosted(t)

	if got := h.Phase(); got != PhaseClosed {
		t.Errorf("Phase() after late completion = %v, want closed", got)
	}
	if !app.released {
		t.Error("late application was not released")
	}
	if h.Err() != nil {
		t.Errorf("Err() = %v, want nil", h.Err())
	}
}

func TestHandlerConstructError(t *testing.T) {
	errNoAdapter := errors.New("no adapter")
	for _, async := range []bool{false, true} {
		t.Run(fmt.Sprintf("async=%v", async), func(t *testing.T) {
			loop := newFakeLoop()
			ctor, gate := gatedCtor(&fakeApp{}, errNoAdapter)
			h := NewHandler("t", ctor, WithAsyncInit(async))

			if async {
				h.Resumed(loop)
				close(gate)
				loop.waitPosted(t)
			} else {
				close(gate)
				h.Resumed(loop)
			}

			if !errors.Is(h.Err(), errNoAdapter) {
				t.Errorf("Err() = %v, want wrapping %v", h.Err(), errNoAdapter)
			}
			if !loop.exited {
				t.Error("loop not exited after construction failure")
			}
			if h.Phase() != PhaseClosed {
				t.Errorf("Phase() = %v, want closed", h.Phase())
			}
		})
	}
}

func TestHandlerCreateWindowError(t *testing.T) {
	loop := newFakeLoop()
	loop.createErr = errors.New("no display")
	called := false
	h := NewHandler("t", func(context.Context, Window) (*fakeApp, error) {
		called = true
		return &fakeApp{}, nil
	})
	h.Resumed(loop)

	if called {
		t.Error("constructor called without a window")
	}
	if !errors.Is(h.Err(), loop.createErr) {
		t.Errorf("Err() = %v, want wrapping %v", h.Err(), loop.createErr)
	}
	if !loop.exited {
		t.Error("loop not exited")
	}
}

func TestHandlerReadyEvents(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	h := NewHandler("t", syncCtor(app))
	h.Resumed(loop)

	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 0, Height: 400}})
	if len(app.sizes) != 0 {
		t.Errorf("zero resize forwarded: %v", app.sizes)
	}

	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 800, Height: 400}})
	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 800, Height: 400}})
	if len(app.sizes) != 1 {
		t.Errorf("sizes = %v, want one change", app.sizes)
	}

	h.WindowEvent(loop, KeyEvent{Key: gpucontext.KeySpace, State: Pressed})
	h.WindowEvent(loop, MouseWheelEvent{DeltaY: 1})
	if len(app.keys) != 1 || app.wheels != 1 {
		t.Errorf("keys = %d, wheels = %d; want 1, 1", len(app.keys), app.wheels)
	}

	before := loop.window.redraws
	h.WindowEvent(loop, RedrawRequestedEvent{})
	if app.renders != 1 {
		t.Errorf("renders = %d, want 1", app.renders)
	}
	if loop.window.prePresent != 1 {
		t.Errorf("PrePresentNotify calls = %d, want 1", loop.window.prePresent)
	}
	if loop.window.redraws != before+1 {
		t.Errorf("next redraw not requested")
	}

	h.WindowEvent(loop, CloseRequestedEvent{})
	if !loop.exited || !app.released {
		t.Errorf("exited = %v, released = %v; want both", loop.exited, app.released)
	}
	h.WindowEvent(loop, RedrawRequestedEvent{})
	if app.renders != 1 {
		t.Error("render after close")
	}
}

func TestHandlerRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantLost   uint64
		wantFailed uint64
	}{
		{"lost", ErrSurfaceLost, 1, 0},
		{"wrapped lost", fmt.Errorf("acquire: %w", ErrSurfaceLost), 1, 0},
		{"timeout", ErrSurfaceTimeout, 0, 1},
		{"other", errors.New("boom"), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := newFakeLoop()
			app := &fakeApp{renderErr: tt.err}
			h := NewHandler("t", syncCtor(app))
			h.Resumed(loop)

			before := loop.window.redraws
			h.WindowEvent(loop, RedrawRequestedEvent{})
			h.WindowEvent(loop, RedrawRequestedEvent{})

			st := h.Stats()
			if st.Frames != 2 || st.Lost != 2*tt.wantLost || st.Failed != 2*tt.wantFailed {
				t.Errorf("Stats() = %+v", st)
			}
			if loop.exited {
				t.Error("render error terminated the loop")
			}
			if loop.window.redraws != before+2 {
				t.Errorf("redraws = %d, want %d", loop.window.redraws, before+2)
			}
		})
	}
}

func TestHandlerEventsBeforeResume(t *testing.T) {
	loop := newFakeLoop()
	app := &fakeApp{}
	h := NewHandler("t", syncCtor(app))
	h.WindowEvent(loop, ResizedEvent{Size: Size{Width: 10, Height: 10}})
	h.WindowEvent(loop, CloseRequestedEvent{})
	if loop.exited || h.Phase() != PhaseUninitialized {
		t.Errorf("events before resume changed state: exited=%v phase=%v", loop.exited, h.Phase())
	}
}
