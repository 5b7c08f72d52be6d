// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camera provides a perspective camera for the tutorials and a
// keyboard controller that moves it.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

// UniformSize is the byte size of Uniform on the GPU.
const UniformSize = 64

// openGLToWGPU remaps OpenGL clip depth [-1, 1] to WebGPU's [0, 1].
var openGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a right-handed perspective camera looking from Eye at Target.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Aspect float32
	// FovY is the vertical field of view in degrees.
	FovY  float32
	ZNear float32
	ZFar  float32
}

// New returns a camera one unit up and two units back from the origin.
func New(size framework.Size) *Camera {
	c := &Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 1,
		FovY:   45,
		ZNear:  0.1,
		ZFar:   100,
	}
	c.Resize(size)
	return c
}

// Resize updates the aspect ratio. Zero-area sizes are ignored.
func (c *Camera) Resize(size framework.Size) {
	if size.IsZero() {
		return
	}
	c.Aspect = float32(size.Width) / float32(size.Height)
}

// View returns the world-to-view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the view-to-clip matrix in WebGPU depth convention.
func (c *Camera) Projection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.ZNear, c.ZFar)
	return openGLToWGPU.Mul4(proj)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Uniform is the camera data bound to shaders, matching
//
//	struct Camera { view_proj: mat4x4<f32> }
type Uniform struct {
	ViewProj mgl32.Mat4
}

// NewUniform returns a uniform holding the identity matrix.
func NewUniform() Uniform {
	return Uniform{ViewProj: mgl32.Ident4()}
}

// Update copies the camera's view-projection matrix.
func (u *Uniform) Update(c *Camera) {
	u.ViewProj = c.ViewProjection()
}

// Bytes returns the column-major matrix bytes.
func (u *Uniform) Bytes() []byte {
	return gpu.Bytes(u.ViewProj[:])
}
