// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/framework"
)

// Backend is one WebGPU implementation bound to one window surface.
// Methods other than Name are only valid after Init succeeded.
type Backend interface {
	Name() string

	// Init creates the instance and the surface for window, picks an
	// adapter able to present to it and opens a device.
	Init(ctx context.Context, window framework.Window, opts InitOptions) error

	// Capabilities reports what the surface supports on the adapter.
	Capabilities() Capabilities

	// Configure applies cfg to the surface.
	Configure(cfg SurfaceConfig) error

	CreateShaderModule(label, wgsl string) (ShaderModule, error)
	CreateRenderPipeline(desc *PipelineDescriptor) (Pipeline, error)
	CreateBuffer(desc *BufferDescriptor) (Buffer, error)
	WriteBuffer(buf Buffer, offset uint64, data []byte) error

	// AcquireFrame returns the next surface texture. Errors wrap the frame
	// errors of package framework.
	AcquireFrame() (Frame, error)

	// Release frees the device and the surface.
	Release()
}

// InitOptions tune adapter selection.
type InitOptions struct {
	PowerPreference      gputypes.PowerPreference
	ForceFallbackAdapter bool
}

// Frame is one acquired surface texture. Exactly one of Present or Discard
// must be called.
type Frame interface {
	// BeginPass starts the single render pass of the frame, clearing the
	// target to clear.
	BeginPass(clear gputypes.Color) (RenderPass, error)
	// Submit finishes encoding and submits the recorded commands.
	Submit() error
	Present() error
	Discard()
}

// RenderPass records draw commands.
type RenderPass interface {
	SetPipeline(p Pipeline)
	SetVertexBuffer(slot uint32, buf Buffer)
	SetIndexBuffer(buf Buffer, format gputypes.IndexFormat)
	Draw(vertexCount, instanceCount uint32)
	DrawIndexed(indexCount, instanceCount uint32)
	End() error
}

// HostedWindow is implemented by windows whose platform owns the device
// and the swapchain. The platform acquires and presents the surface texture
// around each redraw; backends render into SurfaceView and submit on the
// provider's queue.
type HostedWindow interface {
	DeviceProvider() gpucontext.DeviceProvider
	// SurfaceView is the current frame's texture view. It is nil outside a
	// redraw.
	SurfaceView() gpucontext.TextureView
}
