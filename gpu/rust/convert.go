// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package rust

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/gpu"
)

// Surface formats the tutorials can render to.
var textureFormats = []struct {
	gg gputypes.TextureFormat
	wg wgpu.TextureFormat
}{
	{gputypes.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8Unorm},
	{gputypes.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
	{gputypes.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8Unorm},
	{gputypes.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb},
}

func toTextureFormat(f gputypes.TextureFormat) (wgpu.TextureFormat, bool) {
	for _, e := range textureFormats {
		if e.gg == f {
			return e.wg, true
		}
	}
	return 0, false
}

func fromTextureFormat(f wgpu.TextureFormat) (gputypes.TextureFormat, bool) {
	for _, e := range textureFormats {
		if e.wg == f {
			return e.gg, true
		}
	}
	return 0, false
}

var vertexFormats = map[gputypes.VertexFormat]wgpu.VertexFormat{
	gputypes.VertexFormatFloat32:   wgpu.VertexFormatFloat32,
	gputypes.VertexFormatFloat32x2: wgpu.VertexFormatFloat32x2,
	gputypes.VertexFormatFloat32x3: wgpu.VertexFormatFloat32x3,
	gputypes.VertexFormatFloat32x4: wgpu.VertexFormatFloat32x4,
}

func toVertexLayouts(layouts []gputypes.VertexBufferLayout) ([]wgpu.VertexBufferLayout, error) {
	out := make([]wgpu.VertexBufferLayout, 0, len(layouts))
	for _, l := range layouts {
		attrs := make([]wgpu.VertexAttribute, 0, len(l.Attributes))
		for _, a := range l.Attributes {
			f, ok := vertexFormats[a.Format]
			if !ok {
				return nil, &unsupportedError{what: "vertex format", value: a.Format}
			}
			attrs = append(attrs, wgpu.VertexAttribute{
				Format:         f,
				Offset:         a.Offset,
				ShaderLocation: a.ShaderLocation,
			})
		}
		step := wgpu.VertexStepModeVertex
		if l.StepMode == gputypes.VertexStepModeInstance {
			step = wgpu.VertexStepModeInstance
		}
		out = append(out, wgpu.VertexBufferLayout{
			ArrayStride: l.ArrayStride,
			StepMode:    step,
			Attributes:  attrs,
		})
	}
	return out, nil
}

func toIndexFormat(f gputypes.IndexFormat) wgpu.IndexFormat {
	if f == gputypes.IndexFormatUint32 {
		return wgpu.IndexFormatUint32
	}
	return wgpu.IndexFormatUint16
}

func toCullMode(m gpu.CullMode) wgpu.CullMode {
	switch m {
	case gpu.CullNone:
		return wgpu.CullModeNone
	case gpu.CullFront:
		return wgpu.CullModeFront
	}
	return wgpu.CullModeBack
}

func toBufferUsage(u gpu.BufferUsage) wgpu.BufferUsage {
	result := wgpu.BufferUsageCopyDst
	if u&gpu.BufferUsageVertex != 0 {
		result |= wgpu.BufferUsageVertex
	}
	if u&gpu.BufferUsageIndex != 0 {
		result |= wgpu.BufferUsageIndex
	}
	if u&gpu.BufferUsageUniform != 0 {
		result |= wgpu.BufferUsageUniform
	}
	return result
}

func toPowerPreference(p gputypes.PowerPreference) wgpu.PowerPreference {
	switch p {
	case gputypes.PowerPreferenceHighPerformance:
		return wgpu.PowerPreferenceHighPerformance
	case gputypes.PowerPreferenceLowPower:
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceUndefined
}

func toPresentMode(m gpu.PresentMode) wgpu.PresentMode {
	switch m {
	case gpu.PresentModeFifoRelaxed:
		return wgpu.PresentModeFifoRelaxed
	case gpu.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	case gpu.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	}
	return wgpu.PresentModeFifo
}

func fromPresentMode(m wgpu.PresentMode) (gpu.PresentMode, bool) {
	switch m {
	case wgpu.PresentModeFifo:
		return gpu.PresentModeFifo, true
	case wgpu.PresentModeFifoRelaxed:
		return gpu.PresentModeFifoRelaxed, true
	case wgpu.PresentModeImmediate:
		return gpu.PresentModeImmediate, true
	case wgpu.PresentModeMailbox:
		return gpu.PresentModeMailbox, true
	}
	return 0, false
}

func toAlphaMode(m gpu.AlphaMode) wgpu.CompositeAlphaMode {
	switch m {
	case gpu.AlphaModeOpaque:
		return wgpu.CompositeAlphaModeOpaque
	case gpu.AlphaModePremultiplied:
		return wgpu.CompositeAlphaModePremultiplied
	case gpu.AlphaModeUnpremultiplied:
		return wgpu.CompositeAlphaModeUnpremultiplied
	case gpu.AlphaModeInherit:
		return wgpu.CompositeAlphaModeInherit
	}
	return wgpu.CompositeAlphaModeAuto
}

func fromAlphaMode(m wgpu.CompositeAlphaMode) (gpu.AlphaMode, bool) {
	switch m {
	case wgpu.CompositeAlphaModeAuto:
		return gpu.AlphaModeAuto, true
	case wgpu.CompositeAlphaModeOpaque:
		return gpu.AlphaModeOpaque, true
	case wgpu.CompositeAlphaModePremultiplied:
		return gpu.AlphaModePremultiplied, true
	case wgpu.CompositeAlphaModeUnpremultiplied:
		return gpu.AlphaModeUnpremultiplied, true
	case wgpu.CompositeAlphaModeInherit:
		return gpu.AlphaModeInherit, true
	}
	return 0, false
}
