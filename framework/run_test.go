// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"context"
	"errors"
	"testing"
)

// scriptPlatform resumes, replays events and stops when the loop exits.
type scriptPlatform struct {
	loop   *fakeLoop
	events []Event
	err    error
}

func (p *scriptPlatform) Run(h EventHandler) error {
	if p.err != nil {
		return p.err
	}
	h.Resumed(p.loop)
	for _, ev := range p.events {
		if p.loop.exited {
			break
		}
		h.WindowEvent(p.loop, ev)
	}
	return nil
}

func TestRun(t *testing.T) {
	app := &fakeApp{}
	p := &scriptPlatform{
		loop: newFakeLoop(),
		events: []Event{
			RedrawRequestedEvent{},
			ResizedEvent{Size: Size{Width: 640, Height: 480}},
			RedrawRequestedEvent{},
			CloseRequestedEvent{},
			RedrawRequestedEvent{},
		},
	}
	if err := Run("t", syncCtor(app), WithPlatform(p)); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if app.renders != 2 {
		t.Errorf("renders = %d, want 2", app.renders)
	}
	if app.size != (Size{Width: 640, Height: 480}) {
		t.Errorf("size = %v, want 640x480", app.size)
	}
}

func TestRunConstructError(t *testing.T) {
	errDevice := errors.New("device refused")
	p := &scriptPlatform{loop: newFakeLoop()}
	err := Run("t", func(context.Context, Window) (*fakeApp, error) {
		return nil, errDevice
	}, WithPlatform(p))
	if !errors.Is(err, errDevice) {
		t.Errorf("Run() = %v, want wrapping %v", err, errDevice)
	}
}

func TestRunPlatformError(t *testing.T) {
	errInit := errors.New("glfw init")
	err := Run("t", syncCtor(&fakeApp{}), WithPlatform(&scriptPlatform{err: errInit}))
	if !errors.Is(err, errInit) {
		t.Errorf("Run() = %v, want wrapping %v", err, errInit)
	}
}

func TestRunNilConstructor(t *testing.T) {
	if err := Run[*fakeApp]("t", nil); !errors.Is(err, ErrNilConstructor) {
		t.Errorf("Run(nil) = %v, want ErrNilConstructor", err)
	}
}

func TestPlatformRegistry(t *testing.T) {
	platformsMu.Lock()
	saved := platforms
	platforms = map[string]platformEntry{}
	platformsMu.Unlock()
	t.Cleanup(func() {
		platformsMu.Lock()
		platforms = saved
		platformsMu.Unlock()
	})

	if _, err := newPlatform(""); !errors.Is(err, ErrNoPlatform) {
		t.Errorf("newPlatform() on empty registry = %v, want ErrNoPlatform", err)
	}

	low := &scriptPlatform{}
	high := &scriptPlatform{}
	RegisterPlatform("low", 10, func() (Platform, error) { return low, nil })
	RegisterPlatform("high", 100, func() (Platform, error) { return high, nil })

	names := Platforms()
	if len(names) != 2 || names[0] != "high" || names[1] != "low" {
		t.Errorf("Platforms() = %v, want [high low]", names)
	}
	if p, _ := newPlatform(""); p != high {
		t.Error("default platform is not the highest priority one")
	}
	if p, _ := newPlatform("low"); p != low {
		t.Error("named lookup returned the wrong platform")
	}

	var notFound *PlatformNotFoundError
	if _, err := newPlatform("web"); !errors.As(err, &notFound) || notFound.Name != "web" {
		t.Errorf("newPlatform(web) = %v, want PlatformNotFoundError", err)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		size Size
		zero bool
	}{
		{Size{}, true},
		{Size{Width: 0, Height: 400}, true},
		{Size{Width: 800, Height: 0}, true},
		{Size{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.size.IsZero(); got != tt.zero {
			t.Errorf("%v.IsZero() = %v, want %v", tt.size, got, tt.zero)
		}
	}
	if got := (Size{Width: 0, Height: 5}).Max(1); got != (Size{Width: 1, Height: 5}) {
		t.Errorf("Max(1) = %v, want 1x5", got)
	}
}
