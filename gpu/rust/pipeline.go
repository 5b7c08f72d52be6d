// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package rust

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tutorial/gpu"
)

type unsupportedError struct {
	what  string
	value any
}

func (e *unsupportedError) Error() string {
	return fmt.Sprintf("rust: unsupported %s %v", e.what, e.value)
}

type pipeline struct {
	pipeline   *wgpu.RenderPipeline
	layout     *wgpu.PipelineLayout
	bindLayout *wgpu.BindGroupLayout
	bindGroup  *wgpu.BindGroup
}

func (p *pipeline) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
	if p.bindLayout != nil {
		p.bindLayout.Release()
		p.bindLayout = nil
	}
}

type buffer struct {
	buf  *wgpu.Buffer
	size uint64
}

func (b *buffer) Size() uint64 { return b.size }

func (b *buffer) Release() {
	if b.buf != nil {
		b.buf.Release()
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
	format, ok := toTextureFormat(d.Format)
	if !ok {
		return nil, &unsupportedError{what: "color format", value: d.Format}
	}
	buffers, err := toVertexLayouts(d.Buffers)
	if err != nil {
		return nil, err
	}

	p := &pipeline{}
	var groups []*wgpu.BindGroupLayout
	if d.Uniform != nil {
		ub, ok := d.Uniform.(*buffer)
		if !ok {
			return nil, fmt.Errorf("rust: pipeline %q: uniform %T is not a wgpu-native buffer", d.Label, d.Uniform)
		}
		if err := b.createUniformBinding(p, d.Label, ub); err != nil {
			p.Release()
			return nil, err
		}
		groups = []*wgpu.BindGroupLayout{p.bindLayout}
	}

	p.layout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            d.Label + " layout",
		BindGroupLayouts: groups,
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("rust: pipeline layout %q: %w", d.Label, err)
	}

	p.pipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  d.Label,
		Layout: p.layout,
		Vertex: wgpu.VertexState{
			Module:     shader.module,
			EntryPoint: d.VertexEntry,
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader.module,
			EntryPoint: d.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  toCullMode(d.CullMode),
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("rust: render pipeline %q: %w", d.Label, err)
	}
	logger().Debug("pipeline created", "label", d.Label, "format", d.Format)
	return p, nil
}

func (b *Backend) createUniformBinding(p *pipeline, label string, ub *buffer) error {
	var err error
	p.bindLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label + " uniform layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
		}},
	})
	if err != nil {
		return fmt.Errorf("rust: bind group layout %q: %w", label, err)
	}
	p.bindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " uniform",
		Layout: p.bindLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  ub.buf,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return fmt.Errorf("rust: bind group %q: %w", label, err)
	}
	return nil
}

// CreateBuffer implements gpu.Backend.
func (b *Backend) CreateBuffer(desc *gpu.BufferDescriptor) (gpu.Buffer, error) {
	if b.device == nil {
		return nil, gpu.ErrNotInitialized
	}
	size := desc.ByteSize()
	if size == 0 {
		return nil, gpu.ErrEmptyBuffer
	}
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: desc.Label,
		Size:  (size + 3) &^ 3,
		Usage: toBufferUsage(desc.Usage),
	})
	if err != nil {
		return nil, fmt.Errorf("rust: create buffer %q: %w", desc.Label, err)
	}
	out := &buffer{buf: buf, size: size}
	if len(desc.Contents) > 0 {
		if err := b.WriteBuffer(out, 0, desc.Contents); err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}

// WriteBuffer implements gpu.Backend.
func (b *Backend) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) error {
	if b.queue == nil {
		return gpu.ErrNotInitialized
	}
	wb, ok := buf.(*buffer)
	if !ok || wb.buf == nil {
		return fmt.Errorf("rust: write to %T: not a live wgpu-native buffer", buf)
	}
	if offset+uint64(len(data)) > wb.size {
		return fmt.Errorf("rust: write of %d bytes at %d overflows buffer of %d", len(data), offset, wb.size)
	}
	if rem := len(data) % 4; rem != 0 {
		padded := make([]byte, len(data)+4-rem)
		copy(padded, data)
		data = padded
	}
	if err := b.queue.WriteBuffer(wb.buf, offset, data); err != nil {
		return fmt.Errorf("rust: write buffer: %w", err)
	}
	return nil
}
