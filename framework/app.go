// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import "context"

// App is the application driven by a Handler. It owns the GPU surface of
// the window it was constructed for.
type App interface {
	InputHandler

	// SetWindowSize records a new size. It must not touch the GPU; the
	// surface is reconfigured at the start of the next Render. Setting the
	// size already in effect is a no-op.
	SetWindowSize(size Size)

	// Size returns the size last passed to SetWindowSize or the initial
	// window size.
	Size() Size

	// Render draws and presents one frame. It returns nil without drawing
	// when either dimension of the size is zero.
	Render() error
}

// InputHandler receives input events once the application exists. Each
// method reports whether the event was consumed.
type InputHandler interface {
	KeyboardInput(ev KeyEvent) bool
	MouseClick(ev MouseInputEvent) bool
	MouseWheel(ev MouseWheelEvent) bool
	CursorMove(ev CursorMovedEvent) bool
	DeviceInput(ev DeviceEvent) bool
}

// NopInput ignores all input. Embed it to implement only the hooks an
// application needs.
type NopInput struct{}

func (NopInput) KeyboardInput(KeyEvent) bool      { return false }
func (NopInput) MouseClick(MouseInputEvent) bool  { return false }
func (NopInput) MouseWheel(MouseWheelEvent) bool  { return false }
func (NopInput) CursorMove(CursorMovedEvent) bool { return false }
func (NopInput) DeviceInput(DeviceEvent) bool     { return false }

// Constructor builds the application for a window. In async mode it runs on
// its own goroutine and must not call Window methods other than InnerSize
// and ScaleFactor.
type Constructor[A App] func(ctx context.Context, w Window) (A, error)

// Releaser is implemented by applications holding GPU resources. The
// handler calls Release when it discards an application.
type Releaser interface {
	Release()
}
