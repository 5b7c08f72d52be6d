// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

// Capabilities implements gpu.Backend. The host configures the swapchain
// itself, so the only choice offered is what it already uses.
func (b *Backend) Capabilities() gpu.Capabilities {
	if b.device == nil || b.format == gputypes.TextureFormatUndefined {
		return gpu.Capabilities{}
	}
	return gpu.Capabilities{
		Formats:      []gputypes.TextureFormat{b.format},
		PresentModes: []gpu.PresentMode{gpu.PresentModeFifo},
		AlphaModes:   []gpu.AlphaMode{gpu.AlphaModeOpaque},
	}
}

// Configure implements gpu.Backend. The host resizes its swapchain on its
// own; the configuration sets the format pipelines are built for.
func (b *Backend) Configure(cfg gpu.SurfaceConfig) error {
	if b.device == nil {
		return gpu.ErrNotInitialized
	}
	if b.format != gputypes.TextureFormatUndefined && cfg.Format != b.format {
		return fmt.Errorf("native: surface format %v, host uses %v: %w", cfg.Format, b.format, gpu.ErrNoSurfaceFormat)
	}
	b.config = cfg
	b.configured = true
	halLogger().Debug("surface configured",
		"width", cfg.Width, "height", cfg.Height, "format", cfg.Format, "present", cfg.PresentMode)
	return nil
}

// mapDeviceError translates HAL errors to the framework frame errors.
// Other errors are returned unchanged.
func mapDeviceError(err error) error {
	switch {
	case errors.Is(err, hal.ErrSurfaceLost), errors.Is(err, hal.ErrDeviceLost):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceLost, err)
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceOutdated, err)
	case errors.Is(err, hal.ErrTimeout):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceTimeout, err)
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return fmt.Errorf("%w: %w", framework.ErrOutOfMemory, err)
	}
	return err
}
