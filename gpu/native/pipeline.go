// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tutorial/gpu"
)

type pipeline struct {
	device     hal.Device
	pipeline   hal.RenderPipeline
	layout     hal.PipelineLayout
	bindLayout hal.BindGroupLayout
	bindGroup  hal.BindGroup
}

func (p *pipeline) Release() {
	if p.bindGroup != nil {
		p.device.DestroyBindGroup(p.bindGroup)
		p.bindGroup = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
}

type buffer struct {
	device hal.Device
	buf    hal.Buffer
	size   uint64
}

func (b *buffer) Size() uint64 { return b.size }

func (b *buffer) Release() {
	if b.buf != nil {
		b.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
}

// CreateRenderPipeline implements gpu.Backend.
func (b *Backend) CreateRenderPipeline(desc *gpu.PipelineDescriptor) (gpu.Pipeline, error) {
	if b.device == nil {
		return nil, gpu.ErrNotInitialized
	}
	shader, ok := desc.Shader.(*shaderModule)
	if !ok || shader.module == nil {
		return nil, gpu.ErrNilShader
	}
	d := desc.WithDefaults()
	p := &pipeline{device: b.device}

	var groups []hal.BindGroupLayout
	if d.Uniform != nil {
		ub, ok := d.Uniform.(*buffer)
		if !ok {
			return nil, fmt.Errorf("native: pipeline %q: uniform %T is not a native buffer", d.Label, d.Uniform)
		}
		if err := p.createUniformBinding(d.Label, ub); err != nil {
			p.Release()
			return nil, err
		}
		groups = []hal.BindGroupLayout{p.bindLayout}
	}

	layout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            d.Label + "_layout",
		BindGroupLayouts: groups,
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("native: pipeline layout %q: %w", d.Label, err)
	}
	p.layout = layout

	rp, err := b.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  d.Label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader.module,
			EntryPoint: d.VertexEntry,
			Buffers:    d.Buffers,
		},
		Fragment: &hal.FragmentState{
			Module:     shader.module,
			EntryPoint: d.FragmentEntry,
			Targets: []gputypes.ColorTargetState{{
				Format:    d.Format,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  toCullMode(d.CullMode),
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("native: render pipeline %q: %w", d.Label, err)
	}
	p.pipeline = rp
	halLogger().Debug("pipeline created", "label", d.Label, "format", d.Format, "buffers", len(d.Buffers))
	return p, nil
}

func (p *pipeline) createUniformBinding(label string, ub *buffer) error {
	bgl, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: label + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		}},
	})
	if err != nil {
		return fmt.Errorf("native: bind group layout %q: %w", label, err)
	}
	p.bindLayout = bgl

	bg, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_uniform",
		Layout: bgl,
		Entries: []gputypes.BindGroupEntry{{
			Binding:  0,
			Resource: gputypes.BufferBinding{Buffer: ub.buf.NativeHandle(), Offset: 0, Size: ub.size},
		}},
	})
	if err != nil {
		return fmt.Errorf("native: bind group %q: %w", label, err)
	}
	p.bindGroup = bg
	return nil
}

func toCullMode(m gpu.CullMode) gputypes.CullMode {
	switch m {
	case gpu.CullNone:
		return gputypes.CullModeNone
	case gpu.CullFront:
		return gputypes.CullModeFront
	}
	return gputypes.CullModeBack
}

func toBufferUsage(u gpu.BufferUsage) gputypes.BufferUsage {
	result := gputypes.BufferUsageCopyDst
	if u&gpu.BufferUsageVertex != 0 {
		result |= gputypes.BufferUsageVertex
	}
	if u&gpu.BufferUsageIndex != 0 {
		result |= gputypes.BufferUsageIndex
	}
	if u&gpu.BufferUsageUniform != 0 {
		result |= gputypes.BufferUsageUniform
	}
	return result
}

// alignSize rounds n up to the 4-byte copy alignment.
func alignSize(n uint64) uint64 {
	return (n + 3) &^ 3
}

// CreateBuffer implements gpu.Backend. Contents are uploaded through the
// queue after creation.
func (b *Backend) CreateBuffer(desc *gpu.BufferDescriptor) (gpu.Buffer, error) {
	if b.device == nil {
		return nil, gpu.ErrNotInitialized
	}
	size := desc.ByteSize()
	if size == 0 {
		return nil, gpu.ErrEmptyBuffer
	}
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label,
		Size:  alignSize(size),
		Usage: toBufferUsage(desc.Usage),
	})
	if err != nil {
		return nil, fmt.Errorf("native: create buffer %q: %w", desc.Label, err)
	}
	out := &buffer{device: b.device, buf: buf, size: size}
	if len(desc.Contents) > 0 {
		if err := b.WriteBuffer(out, 0, desc.Contents); err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}

// WriteBuffer implements gpu.Backend. Writes are padded to 4 bytes.
func (b *Backend) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) error {
	if b.queue == nil {
		return gpu.ErrNotInitialized
	}
	nb, ok := buf.(*buffer)
	if !ok || nb.buf == nil {
		return fmt.Errorf("native: write to %T: not a live native buffer", buf)
	}
	if offset%4 != 0 {
		return fmt.Errorf("native: write offset %d is not 4-byte aligned", offset)
	}
	if offset+uint64(len(data)) > nb.size {
		return fmt.Errorf("native: write of %d bytes at %d overflows buffer of %d", len(data), offset, nb.size)
	}
	if pad := alignSize(uint64(len(data))) - uint64(len(data)); pad != 0 {
		padded := make([]byte, len(data)+int(pad))
		copy(padded, data)
		data = padded
	}
	if err := b.queue.WriteBuffer(nb.buf, offset, data); err != nil {
		return fmt.Errorf("native: write buffer: %w", mapDeviceError(err))
	}
	return nil
}
