// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package rust

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/gpu"
)

// AcquireFrame implements gpu.Backend.
func (b *Backend) AcquireFrame() (gpu.Frame, error) {
	if b.surface == nil || !b.configured {
		return nil, gpu.ErrNotInitialized
	}
	tex, err := b.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("rust: acquire: %w", classifyFrameError(err))
	}
	return &frame{backend: b, texture: tex}, nil
}

type frame struct {
	backend *Backend
	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	done    bool
}

func (f *frame) BeginPass(clear gputypes.Color) (gpu.RenderPass, error) {
	view, err := f.texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("rust: frame view: %w", err)
	}
	f.view = view

	encoder, err := f.backend.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("rust: create command encoder: %w", err)
	}
	f.encoder = encoder

	rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: clear.R, G: clear.G, B: clear.B, A: clear.A},
		}},
	})
	return &pass{rp: rp}, nil
}

func (f *frame) Submit() error {
	if f.encoder == nil {
		return fmt.Errorf("rust: submit without a render pass")
	}
	cmd, err := f.encoder.Finish(nil)
	f.encoder.Release()
	f.encoder = nil
	if err != nil {
		return fmt.Errorf("rust: finish encoding: %w", err)
	}
	f.backend.queue.Submit(cmd)
	cmd.Release()
	return nil
}

func (f *frame) Present() error {
	if f.done {
		return nil
	}
	f.done = true
	f.backend.surface.Present()
	f.release()
	return nil
}

func (f *frame) Discard() {
	if f.done {
		return
	}
	f.done = true
	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}
	f.release()
}

func (f *frame) release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

type pass struct {
	rp  *wgpu.RenderPassEncoder
	err error
}

func (p *pass) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("rust: "+format, args...)
	}
}

func (p *pass) SetPipeline(pl gpu.Pipeline) {
	wp, ok := pl.(*pipeline)
	if !ok || wp.pipeline == nil {
		p.fail("set pipeline %T: not a live wgpu-native pipeline", pl)
		return
	}
	p.rp.SetPipeline(wp.pipeline)
	if wp.bindGroup != nil {
		p.rp.SetBindGroup(0, wp.bindGroup, nil)
	}
}

func (p *pass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	wb, ok := buf.(*buffer)
	if !ok || wb.buf == nil {
		p.fail("set vertex buffer %T: not a live wgpu-native buffer", buf)
		return
	}
	p.rp.SetVertexBuffer(slot, wb.buf, 0, wgpu.WholeSize)
}

func (p *pass) SetIndexBuffer(buf gpu.Buffer, format gputypes.IndexFormat) {
	wb, ok := buf.(*buffer)
	if !ok || wb.buf == nil {
		p.fail("set index buffer %T: not a live wgpu-native buffer", buf)
		return
	}
	p.rp.SetIndexBuffer(wb.buf, toIndexFormat(format), 0, wgpu.WholeSize)
}

func (p *pass) Draw(vertexCount, instanceCount uint32) {
	p.rp.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *pass) DrawIndexed(indexCount, instanceCount uint32) {
	p.rp.DrawIndexed(indexCount, instanceCount, 0, 0, 0)
}

func (p *pass) End() error {
	if err := p.rp.End(); err != nil {
		p.fail("end render pass: %w", err)
	}
	p.rp.Release()
	return p.err
}
