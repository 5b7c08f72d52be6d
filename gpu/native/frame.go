// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

// AcquireFrame implements gpu.Backend. The frame renders into the view
// the host acquired for the current redraw. Outside a redraw there is no
// view and the error wraps framework.ErrSurfaceTimeout.
func (b *Backend) AcquireFrame() (gpu.Frame, error) {
	if b.window == nil || !b.configured {
		return nil, gpu.ErrNotInitialized
	}
	b.reclaim(false)

	view := halView(b.window.SurfaceView())
	if view == nil {
		return nil, fmt.Errorf("native: acquire: no surface view outside a redraw: %w", framework.ErrSurfaceTimeout)
	}
	return &frame{backend: b, view: view}, nil
}

// halView unwraps a gogpu surface view handle.
func halView(tv gpucontext.TextureView) hal.TextureView {
	if tv.IsNil() {
		return nil
	}
	return (*wgpu.TextureView)(tv.Pointer()).HalTextureView()
}

// frame borrows the host's surface view. The host presents it after the
// redraw returns.
type frame struct {
	backend *Backend
	view    hal.TextureView
	encoder hal.CommandEncoder
	done    bool
}

func (f *frame) BeginPass(clear gputypes.Color) (gpu.RenderPass, error) {
	encoder, err := f.backend.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frame_encoder"})
	if err != nil {
		return nil, fmt.Errorf("native: create command encoder: %w", mapDeviceError(err))
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		return nil, fmt.Errorf("native: begin encoding: %w", mapDeviceError(err))
	}
	f.encoder = encoder

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       f.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	return &pass{rp: rp}, nil
}

// Submit ends encoding and submits on the host queue. The command buffer
// is freed once the queue reports its submission complete.
func (f *frame) Submit() error {
	if f.encoder == nil {
		return fmt.Errorf("native: submit without a render pass")
	}
	b := f.backend
	cmd, err := f.encoder.EndEncoding()
	f.encoder = nil
	if err != nil {
		return fmt.Errorf("native: end encoding: %w", mapDeviceError(err))
	}
	index, err := b.queue.Submit([]hal.CommandBuffer{cmd})
	if err != nil {
		b.device.FreeCommandBuffer(cmd)
		return fmt.Errorf("native: submit: %w", mapDeviceError(err))
	}
	b.pending = append(b.pending, submission{cmd: cmd, index: index})
	return nil
}

// Present releases the frame. Presentation is the host's.
func (f *frame) Present() error {
	f.done = true
	f.view = nil
	return nil
}

func (f *frame) Discard() {
	if f.done {
		return
	}
	f.done = true
	if f.encoder != nil {
		f.encoder.DiscardEncoding()
		f.encoder = nil
	}
	f.view = nil
}

// pass records into a HAL render pass. Handles from another backend are
// reported by End.
type pass struct {
	rp  hal.RenderPassEncoder
	err error
}

func (p *pass) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("native: "+format, args...)
	}
}

func (p *pass) SetPipeline(pl gpu.Pipeline) {
	np, ok := pl.(*pipeline)
	if !ok || np.pipeline == nil {
		p.fail("set pipeline %T: not a live native pipeline", pl)
		return
	}
	p.rp.SetPipeline(np.pipeline)
	if np.bindGroup != nil {
		p.rp.SetBindGroup(0, np.bindGroup, nil)
	}
}

func (p *pass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	nb, ok := buf.(*buffer)
	if !ok || nb.buf == nil {
		p.fail("set vertex buffer %T: not a live native buffer", buf)
		return
	}
	p.rp.SetVertexBuffer(slot, nb.buf, 0)
}

func (p *pass) SetIndexBuffer(buf gpu.Buffer, format gputypes.IndexFormat) {
	nb, ok := buf.(*buffer)
	if !ok || nb.buf == nil {
		p.fail("set index buffer %T: not a live native buffer", buf)
		return
	}
	p.rp.SetIndexBuffer(nb.buf, format, 0)
}

func (p *pass) Draw(vertexCount, instanceCount uint32) {
	p.rp.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *pass) DrawIndexed(indexCount, instanceCount uint32) {
	p.rp.DrawIndexed(indexCount, instanceCount, 0, 0, 0)
}

func (p *pass) End() error {
	p.rp.End()
	return p.err
}
