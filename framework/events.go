// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Size is a physical size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }

// Max returns s with both dimensions raised to at least n.
func (s Size) Max(n uint32) Size {
	return Size{Width: max(s.Width, n), Height: max(s.Height, n)}
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// ElementState is the state of a key or button.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

// Event is delivered by the platform to the handler.
type Event interface {
	event()
}

// ResizedEvent reports a new framebuffer size. Width or Height is zero when
// the window is minimized.
type ResizedEvent struct {
	Size Size
}

// RedrawRequestedEvent asks the application to draw a frame.
type RedrawRequestedEvent struct{}

// CloseRequestedEvent is sent when the user closes the window.
type CloseRequestedEvent struct{}

// ScaleFactorChangedEvent reports a new DPI scale factor.
type ScaleFactorChangedEvent struct {
	ScaleFactor float64
}

// KeyEvent is a keyboard key press, repeat or release.
type KeyEvent struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
	State     ElementState
	Repeat    bool
}

// MouseInputEvent is a mouse button press or release.
type MouseInputEvent struct {
	Button MouseButton
	State  ElementState
}

// MouseWheelEvent carries scroll deltas in lines.
type MouseWheelEvent struct {
	DeltaX, DeltaY float64
}

// CursorMovedEvent carries the cursor position in physical pixels.
type CursorMovedEvent struct {
	X, Y float64
}

// DeviceEvent carries raw device motion not tied to the window, such as
// relative mouse movement.
type DeviceEvent struct {
	DeltaX, DeltaY float64
}

func (ResizedEvent) event()            {}
func (RedrawRequestedEvent) event()    {}
func (CloseRequestedEvent) event()     {}
func (ScaleFactorChangedEvent) event() {}
func (KeyEvent) event()                {}
func (MouseInputEvent) event()         {}
func (MouseWheelEvent) event()         {}
func (CursorMovedEvent) event()        {}
func (DeviceEvent) event()             {}
