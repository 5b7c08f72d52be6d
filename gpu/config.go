// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/framework"
)

// ChooseConfig picks a surface configuration for size from caps: the
// preferred format if supported, else the first reported one; the
// requested present mode if supported, else FIFO; the first alpha mode.
// Dimensions are clamped to at least 1.
func ChooseConfig(caps Capabilities, size framework.Size, presentMode PresentMode, format gputypes.TextureFormat, latency uint32) (SurfaceConfig, error) {
	if len(caps.Formats) == 0 {
		return SurfaceConfig{}, ErrNoSurfaceFormat
	}
	chosen := caps.Formats[0]
	if format != gputypes.TextureFormatUndefined && slices.Contains(caps.Formats, format) {
		chosen = format
	}

	mode := PresentModeFifo
	if slices.Contains(caps.PresentModes, presentMode) {
		mode = presentMode
	}

	alpha := AlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}

	if latency == 0 {
		latency = DefaultMaxFrameLatency
	}

	size = size.Max(1)
	return SurfaceConfig{
		Width:           size.Width,
		Height:          size.Height,
		Format:          chosen,
		PresentMode:     mode,
		AlphaMode:       alpha,
		MaxFrameLatency: latency,
	}, nil
}
