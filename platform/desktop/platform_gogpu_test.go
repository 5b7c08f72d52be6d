// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package desktop

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tutorial/framework"
)

type fakeHost struct {
	gpucontext.NullWindowProvider
	redraws atomic.Int32
	quits   int
}

func (h *fakeHost) RequestRedraw() { h.redraws.Add(1) }
func (h *fakeHost) Quit()          { h.quits++ }

type fakeSource struct {
	gpucontext.NullEventSource
	keyPress   func(gpucontext.Key, gpucontext.Modifiers)
	mousePress func(gpucontext.MouseButton, float64, float64)
	mouseMove  func(float64, float64)
	scroll     func(float64, float64)
	resize     func(int, int)
}

func (s *fakeSource) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { s.keyPress = fn }
func (s *fakeSource) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	s.mousePress = fn
}
func (s *fakeSource) OnMouseMove(fn func(float64, float64)) { s.mouseMove = fn }
func (s *fakeSource) OnScroll(fn func(float64, float64))    { s.scroll = fn }
func (s *fakeSource) OnResize(fn func(int, int))            { s.resize = fn }

type fakeDevice struct {
	gpucontext.DeviceProvider
}

// recorder creates the window on resume and exits on close.
type recorder struct {
	window  framework.Window
	resumed int
	events  []framework.Event
	views   []bool
	err     error
}

func (r *recorder) Resumed(loop framework.EventLoop) {
	r.resumed++
	r.window, r.err = loop.CreateWindow(framework.WindowAttributes{Title: "test"})
}

func (r *recorder) WindowEvent(loop framework.EventLoop, ev framework.Event) {
	r.events = append(r.events, ev)
	switch ev.(type) {
	case framework.RedrawRequestedEvent:
		r.views = append(r.views, !r.window.(*Window).SurfaceView().IsNil())
	case framework.CloseRequestedEvent:
		loop.Exit()
	}
}

func newTestPlatform(t *testing.T) (*Platform, *fakeHost, *fakeSource, *recorder) {
	t.Helper()
	host := &fakeHost{NullWindowProvider: gpucontext.NullWindowProvider{W: 800, H: 600, SF: 1}}
	src := &fakeSource{}
	rec := &recorder{}
	p := New()
	p.attach(host, rec, framework.WindowAttributes{Title: "test", Size: framework.Size{Width: 800, Height: 600}})
	p.listen(src)
	return p, host, src, rec
}

func testView() gpucontext.TextureView {
	var backing int
	return gpucontext.NewTextureView(unsafe.Pointer(&backing))
}

func TestDrawResumesOnceDeviceExists(t *testing.T) {
	p, _, _, rec := newTestPlatform(t)

	p.draw(800, 600, testView(), nil)
	if rec.resumed != 0 || len(rec.events) != 0 {
		t.Fatalf("draw without a device: resumed=%d events=%v", rec.resumed, rec.events)
	}

	p.draw(800, 600, testView(), fakeDevice{})
	p.draw(800, 600, testView(), fakeDevice{})
	if rec.resumed != 1 {
		t.Errorf("resumed = %d, want 1", rec.resumed)
	}
	if rec.err != nil {
		t.Fatalf("CreateWindow: %v", rec.err)
	}
	if len(rec.events) != 2 {
		t.Fatalf("events = %v, want two redraws", rec.events)
	}
	for i, ev := range rec.events {
		if _, ok := ev.(framework.RedrawRequestedEvent); !ok {
			t.Errorf("event %d = %T", i, ev)
		}
	}
	for i, ok := range rec.views {
		if !ok {
			t.Errorf("redraw %d had no surface view", i)
		}
	}
	if !p.window.SurfaceView().IsNil() {
		t.Error("surface view kept after the draw")
	}
	if p.window.DeviceProvider() == nil {
		t.Error("device provider not recorded")
	}
}

func TestInputQueuedUntilDraw(t *testing.T) {
	p, host, src, rec := newTestPlatform(t)
	p.draw(800, 600, testView(), fakeDevice{})
	rec.events = nil

	src.keyPress(gpucontext.KeyW, gpucontext.ModShift)
	src.mousePress(gpucontext.MouseButtonRight, 5, 5)
	src.scroll(0, -1)
	src.mouseMove(10, 10)
	src.mouseMove(12, 7)
	if len(rec.events) != 0 {
		t.Fatalf("input dispatched outside a draw: %v", rec.events)
	}
	if host.redraws.Load() != 5 {
		t.Errorf("redraw requests = %d, want 5", host.redraws.Load())
	}

	p.draw(800, 600, testView(), nil)
	want := []framework.Event{
		framework.KeyEvent{Key: gpucontext.KeyW, Modifiers: gpucontext.ModShift, State: framework.Pressed},
		framework.MouseInputEvent{Button: framework.MouseButtonRight, State: framework.Pressed},
		framework.MouseWheelEvent{DeltaY: -1},
		framework.CursorMovedEvent{X: 10, Y: 10},
		framework.CursorMovedEvent{X: 12, Y: 7},
		framework.DeviceEvent{DeltaX: 2, DeltaY: -3},
		framework.RedrawRequestedEvent{},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, rec.events[i], want[i])
		}
	}
}

func TestDrawReportsResize(t *testing.T) {
	p, host, src, rec := newTestPlatform(t)
	p.draw(800, 600, testView(), fakeDevice{})
	rec.events = nil

	src.resize(640, 480)
	if !p.window.state.redraw.Load() || host.redraws.Load() != 1 {
		t.Error("resize did not request a redraw")
	}

	host.SF = 2
	p.draw(1280, 960, testView(), nil)
	want := []framework.Event{
		framework.ScaleFactorChangedEvent{ScaleFactor: 2},
		framework.ResizedEvent{Size: framework.Size{Width: 1280, Height: 960}},
		framework.RedrawRequestedEvent{},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, rec.events[i], want[i])
		}
	}
	if got := p.window.InnerSize(); got != (framework.Size{Width: 1280, Height: 960}) {
		t.Errorf("InnerSize() = %v", got)
	}
	if p.window.state.redraw.Load() {
		t.Error("redraw request not taken by the draw")
	}

	rec.events = nil
	p.draw(1280, 960, testView(), nil)
	if len(rec.events) != 1 {
		t.Errorf("unchanged draw sent %v", rec.events)
	}
}

func TestCloseExits(t *testing.T) {
	p, host, _, rec := newTestPlatform(t)
	p.draw(800, 600, testView(), fakeDevice{})
	rec.events = nil

	p.close()
	if len(rec.events) != 1 {
		t.Fatalf("events = %v, want a close request", rec.events)
	}
	if _, ok := rec.events[0].(framework.CloseRequestedEvent); !ok {
		t.Errorf("event = %T", rec.events[0])
	}
	if host.quits != 1 {
		t.Errorf("quits = %d, want 1", host.quits)
	}

	p.Exit()
	p.draw(800, 600, testView(), nil)
	p.queue(framework.MouseWheelEvent{DeltaY: 1})
	p.posted.drain()
	if host.quits != 1 || len(rec.events) != 1 {
		t.Errorf("after exit: quits=%d events=%v", host.quits, rec.events)
	}
}

func TestCreateWindowOnce(t *testing.T) {
	if _, err := New().CreateWindow(framework.WindowAttributes{}); err == nil {
		t.Error("CreateWindow outside Run succeeded")
	}

	p, _, _, rec := newTestPlatform(t)
	p.draw(800, 600, testView(), fakeDevice{})
	if rec.window == nil {
		t.Fatal("window not created on resume")
	}
	if _, err := p.CreateWindow(framework.WindowAttributes{}); !errors.Is(err, ErrSingleWindow) {
		t.Errorf("second CreateWindow: %v, want ErrSingleWindow", err)
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		in   gpucontext.MouseButton
		want framework.MouseButton
	}{
		{gpucontext.MouseButtonLeft, framework.MouseButtonLeft},
		{gpucontext.MouseButtonRight, framework.MouseButtonRight},
		{gpucontext.MouseButtonMiddle, framework.MouseButtonMiddle},
		{gpucontext.MouseButton(7), framework.MouseButtonOther},
	}
	for _, tt := range tests {
		if got := mouseButton(tt.in); got != tt.want {
			t.Errorf("mouseButton(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// Constructors running on their own goroutine query the window while the
// loop draws.
func TestWindowQueriesDuringDraw(t *testing.T) {
	p, _, _, _ := newTestPlatform(t)
	p.draw(800, 600, testView(), fakeDevice{})
	w := p.window

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if size := w.InnerSize(); size.Width != 800 && size.Width != 1024 {
				t.Errorf("InnerSize() = %v", size)
				return
			}
			_ = w.ScaleFactor()
			_ = w.DeviceProvider()
			w.RequestRedraw()
		}
	}()
	for i := range 200 {
		if i%2 == 0 {
			p.draw(1024, 768, testView(), nil)
		} else {
			p.draw(800, 600, testView(), nil)
		}
	}
	close(stop)
	wg.Wait()
}
