// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

func init() {
	gpu.Register(Name, Priority, func() (gpu.Backend, error) { return New(), nil }, nil)
}

// halProvider is the HAL accessor pair of gogpu's device provider.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halDevice is implemented by *wgpu.Device.
type halDevice interface {
	HalDevice() hal.Device
	HalQueue() hal.Queue
}

// submission is a command buffer the GPU may still be reading.
type submission struct {
	cmd   hal.CommandBuffer
	index uint64
}

// Backend implements gpu.Backend on the gogpu/wgpu HAL device of a hosted
// window. The host owns the device and the swapchain; the backend owns
// what it creates on them.
type Backend struct {
	window  gpu.HostedWindow
	device  hal.Device
	queue   hal.Queue
	info    string
	format  gputypes.TextureFormat
	config  gpu.SurfaceConfig
	pending []submission

	configured bool
}

var _ gpu.Backend = (*Backend)(nil)

// New returns an uninitialized backend.
func New() *Backend {
	return &Backend{}
}

// newWithDevice wraps an already opened device without a window.
func newWithDevice(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{device: device, queue: queue}
}

// Name implements gpu.Backend.
func (b *Backend) Name() string { return Name }

// AdapterName returns the host adapter's name.
func (b *Backend) AdapterName() string { return b.info }

// Init takes the HAL device and queue of a hosted window. Adapter selection
// is the host's; opts are ignored.
func (b *Backend) Init(ctx context.Context, window framework.Window, _ gpu.InitOptions) error {
	hw, ok := window.(gpu.HostedWindow)
	if !ok {
		return fmt.Errorf("native: %T is not a hosted window: %w", window, gpu.ErrUnsupportedWindow)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	provider := hw.DeviceProvider()
	if provider == nil {
		return fmt.Errorf("native: window has no device yet: %w", gpu.ErrNoAdapter)
	}
	device, queue, err := openHosted(provider)
	if err != nil {
		return err
	}

	b.window = hw
	b.device = device
	b.queue = queue
	b.info = provider.AdapterInfo().Name
	b.format = provider.SurfaceFormat()
	halLogger().Info("device attached", "adapter", b.info, "format", b.format)
	return nil
}

// openHosted extracts the HAL device and queue behind a provider.
func openHosted(p gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	var device hal.Device
	var queue hal.Queue
	if d, ok := p.Device().(halDevice); ok {
		device, queue = d.HalDevice(), d.HalQueue()
	} else if hp, ok := p.(halProvider); ok {
		device, _ = hp.HalDevice().(hal.Device)
		queue, _ = hp.HalQueue().(hal.Queue)
	} else {
		return nil, nil, fmt.Errorf("native: provider %T exposes no HAL device: %w", p, gpu.ErrUnsupportedWindow)
	}
	if device == nil || queue == nil {
		return nil, nil, fmt.Errorf("native: provider %T has a released device: %w", p, gpu.ErrNoAdapter)
	}
	return device, queue, nil
}

// reclaim frees command buffers of completed submissions. With wait it
// first drains the queue.
func (b *Backend) reclaim(wait bool) {
	if len(b.pending) == 0 {
		return
	}
	if wait {
		if err := b.device.WaitIdle(); err != nil {
			halLogger().Warn("wait for idle device", "err", err)
		}
	}
	done := b.queue.PollCompleted()
	kept := b.pending[:0]
	for _, s := range b.pending {
		if wait || s.index <= done {
			b.device.FreeCommandBuffer(s.cmd)
			continue
		}
		kept = append(kept, s)
	}
	clear(b.pending[len(kept):])
	b.pending = kept
}

// Release implements gpu.Backend. Objects created from the backend must be
// released first. The host device is left open.
func (b *Backend) Release() {
	if b.device != nil {
		b.reclaim(true)
	}
	b.pending = nil
	b.window = nil
	b.device = nil
	b.queue = nil
	b.configured = false
}
