// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camera

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tutorial/framework"
)

// DefaultSpeed is the distance moved per update.
const DefaultSpeed = 0.05

// PlayerController moves a camera with WASD. W and S move along the view
// direction, A and D orbit around the target.
type PlayerController struct {
	Speed float32

	forward, backward bool
	left, right       bool
}

// NewPlayerController returns a controller moving at DefaultSpeed.
func NewPlayerController() *PlayerController {
	return &PlayerController{Speed: DefaultSpeed}
}

// ProcessKey records the state of the movement keys and reports whether ev
// was one of them.
func (c *PlayerController) ProcessKey(ev framework.KeyEvent) bool {
	pressed := ev.State == framework.Pressed
	switch ev.Key {
	case gpucontext.KeyW, gpucontext.KeyUp:
		c.forward = pressed
	case gpucontext.KeyS, gpucontext.KeyDown:
		c.backward = pressed
	case gpucontext.KeyA, gpucontext.KeyLeft:
		c.left = pressed
	case gpucontext.KeyD, gpucontext.KeyRight:
		c.right = pressed
	default:
		return false
	}
	return true
}

// Moving reports whether any movement key is held.
func (c *PlayerController) Moving() bool {
	return c.forward || c.backward || c.left || c.right
}

// UpdateCamera applies one step of movement. Moving forward stops short of
// the target.
func (c *PlayerController) UpdateCamera(cam *Camera) {
	forward := cam.Target.Sub(cam.Eye)
	dist := forward.Len()
	if dist == 0 {
		return
	}
	dir := forward.Normalize()

	if c.forward && dist > c.Speed {
		cam.Eye = cam.Eye.Add(dir.Mul(c.Speed))
	}
	if c.backward {
		cam.Eye = cam.Eye.Sub(dir.Mul(c.Speed))
	}

	right := dir.Cross(cam.Up)
	// Orbit at the distance left by the step above.
	forward = cam.Target.Sub(cam.Eye)
	dist = forward.Len()
	if c.right {
		cam.Eye = cam.Target.Sub(forward.Add(right.Mul(c.Speed)).Normalize().Mul(dist))
	}
	if c.left {
		cam.Eye = cam.Target.Sub(forward.Sub(right.Mul(c.Speed)).Normalize().Mul(dist))
	}
}
