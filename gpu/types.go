// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/gputypes"
)

// PresentMode controls how frames are queued for display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota
	PresentModeFifoRelaxed
	PresentModeImmediate
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	}
	return "unknown"
}

// AlphaMode controls how the compositor blends the surface.
type AlphaMode uint8

const (
	AlphaModeAuto AlphaMode = iota
	AlphaModeOpaque
	AlphaModePremultiplied
	AlphaModeUnpremultiplied
	AlphaModeInherit
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaModeAuto:
		return "auto"
	case AlphaModeOpaque:
		return "opaque"
	case AlphaModePremultiplied:
		return "premultiplied"
	case AlphaModeUnpremultiplied:
		return "unpremultiplied"
	case AlphaModeInherit:
		return "inherit"
	}
	return "unknown"
}

// Capabilities is what a surface supports on the selected adapter. Slices
// are in the order the implementation prefers.
type Capabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []PresentMode
	AlphaModes   []AlphaMode
}

// SurfaceConfig is the active surface configuration.
type SurfaceConfig struct {
	Width           uint32
	Height          uint32
	Format          gputypes.TextureFormat
	PresentMode     PresentMode
	AlphaMode       AlphaMode
	MaxFrameLatency uint32
}

// CullMode selects which triangles are discarded.
type CullMode uint8

const (
	CullBack CullMode = iota
	CullNone
	CullFront
)

// PipelineDescriptor describes a render pipeline drawing triangle lists
// with counter-clockwise front faces, one sample and no depth buffer.
type PipelineDescriptor struct {
	Label  string
	Shader ShaderModule

	// Entry points, vs_main and fs_main when empty.
	VertexEntry   string
	FragmentEntry string

	Buffers []gputypes.VertexBufferLayout

	// Format of the color target. The surface format when zero.
	Format gputypes.TextureFormat

	CullMode CullMode

	// Uniform, when set, is bound at group 0 binding 0 and visible to the
	// vertex stage. SetPipeline binds it.
	Uniform Buffer
}

const (
	defaultVertexEntry   = "vs_main"
	defaultFragmentEntry = "fs_main"
)

// WithDefaults returns a copy with empty entry points filled in.
func (d PipelineDescriptor) WithDefaults() PipelineDescriptor {
	if d.VertexEntry == "" {
		d.VertexEntry = defaultVertexEntry
	}
	if d.FragmentEntry == "" {
		d.FragmentEntry = defaultFragmentEntry
	}
	return d
}

// BufferUsage is a set of buffer usage flags.
type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
)

// BufferDescriptor describes a buffer. When Contents is set Size may be
// zero and the contents are uploaded at creation.
type BufferDescriptor struct {
	Label    string
	Usage    BufferUsage
	Size     uint64
	Contents []byte
}

// ByteSize returns the size to allocate.
func (d *BufferDescriptor) ByteSize() uint64 {
	if d.Size != 0 {
		return d.Size
	}
	return uint64(len(d.Contents))
}

// ShaderModule is a compiled shader owned by a backend.
type ShaderModule interface {
	Release()
}

// Pipeline is a render pipeline owned by a backend.
type Pipeline interface {
	Release()
}

// Buffer is a GPU buffer owned by a backend.
type Buffer interface {
	Size() uint64
	Release()
}
