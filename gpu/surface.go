// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/framework"
)

// Surface owns a backend bound to one window together with the size state
// of that window. It is not safe for concurrent use; the framework calls it
// from the event loop goroutine only.
type Surface struct {
	backend Backend
	config  SurfaceConfig
	size    framework.Size
	dirty   bool
	clear   gputypes.Color
	stats   SurfaceStats

	shaders   []ShaderModule
	pipelines []Pipeline
	buffers   []Buffer
	released  bool
}

// SurfaceStats counts surface work.
type SurfaceStats struct {
	Configures uint64 // Configure calls, including the initial one
	Frames     uint64 // frames acquired
	Presents   uint64 // frames presented
	Skipped    uint64 // Render calls skipped for a zero-area size
}

// NewSurface creates the backend, binds it to window and configures the
// surface for the window's current size. A zero-area window is configured
// at 1x1 and renders nothing until it is resized.
func NewSurface(ctx context.Context, window framework.Window, opts ...Option) (*Surface, error) {
	o := buildOptions(opts)

	b := o.backend
	if b == nil {
		var err error
		if o.backendName != "" {
			b, err = o.registry.NewBackendByName(o.backendName)
		} else {
			b, err = o.registry.NewBackend()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := b.Init(ctx, window, o.init); err != nil {
		return nil, fmt.Errorf("gpu: init %s backend: %w", b.Name(), err)
	}

	size := window.InnerSize()
	cfg, err := ChooseConfig(b.Capabilities(), size, o.presentMode, o.format, o.maxFrameLatency)
	if err != nil {
		b.Release()
		return nil, err
	}
	if err := b.Configure(cfg); err != nil {
		b.Release()
		return nil, fmt.Errorf("gpu: configure surface: %w", err)
	}
	Logger().Info("surface configured",
		"backend", b.Name(),
		"size", size,
		"format", cfg.Format,
		"present", cfg.PresentMode,
		"alpha", cfg.AlphaMode)

	return &Surface{
		backend: b,
		config:  cfg,
		size:    size,
		clear:   o.clearColor,
		stats:   SurfaceStats{Configures: 1},
	}, nil
}

// Backend returns the backend.
func (s *Surface) Backend() Backend { return s.backend }

// Config returns the configuration last applied to the surface.
func (s *Surface) Config() SurfaceConfig { return s.config }

// Format returns the surface texture format.
func (s *Surface) Format() gputypes.TextureFormat { return s.config.Format }

// Size returns the size last set.
func (s *Surface) Size() framework.Size { return s.size }

// Dirty reports whether the next Render reconfigures the surface.
func (s *Surface) Dirty() bool { return s.dirty }

// Stats returns the surface counters.
func (s *Surface) Stats() SurfaceStats { return s.stats }

// ClearColor returns the color frames are cleared to.
func (s *Surface) ClearColor() gputypes.Color { return s.clear }

// SetClearColor sets the color frames are cleared to.
func (s *Surface) SetClearColor(c gputypes.Color) { s.clear = c }

// SetSize records a new window size. Nothing happens on the GPU until the
// next Render. Setting the current size again is a no-op.
func (s *Surface) SetSize(size framework.Size) {
	if size == s.size {
		return
	}
	s.size = size
	s.dirty = true
}

// CreateShaderModule compiles wgsl. The module lives until Release.
func (s *Surface) CreateShaderModule(label, wgsl string) (ShaderModule, error) {
	if s.released {
		return nil, ErrReleased
	}
	m, err := s.backend.CreateShaderModule(label, wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: shader %q: %w", label, err)
	}
	s.shaders = append(s.shaders, m)
	return m, nil
}

// CreatePipeline creates a render pipeline targeting the surface format
// unless desc names another. The pipeline lives until Release.
func (s *Surface) CreatePipeline(desc PipelineDescriptor) (Pipeline, error) {
	if s.released {
		return nil, ErrReleased
	}
	if desc.Shader == nil {
		return nil, ErrNilShader
	}
	desc = desc.WithDefaults()
	if desc.Format == gputypes.TextureFormatUndefined {
		desc.Format = s.config.Format
	}
	p, err := s.backend.CreateRenderPipeline(&desc)
	if err != nil {
		return nil, fmt.Errorf("gpu: pipeline %q: %w", desc.Label, err)
	}
	s.pipelines = append(s.pipelines, p)
	return p, nil
}

// CreateBuffer allocates a buffer and uploads desc.Contents. The buffer
// lives until Release.
func (s *Surface) CreateBuffer(desc BufferDescriptor) (Buffer, error) {
	if s.released {
		return nil, ErrReleased
	}
	if desc.ByteSize() == 0 {
		return nil, ErrEmptyBuffer
	}
	b, err := s.backend.CreateBuffer(&desc)
	if err != nil {
		return nil, fmt.Errorf("gpu: buffer %q: %w", desc.Label, err)
	}
	s.buffers = append(s.buffers, b)
	return b, nil
}

// WriteBuffer uploads data at offset.
func (s *Surface) WriteBuffer(buf Buffer, offset uint64, data []byte) error {
	if s.released {
		return ErrReleased
	}
	return s.backend.WriteBuffer(buf, offset, data)
}

// Render draws one frame. It returns nil without doing anything while
// either dimension is zero. A pending size change is applied with a single
// reconfigure before the frame is acquired. draw may be nil to only clear.
//
// Acquire errors wrap framework.ErrSurfaceLost or ErrSurfaceOutdated when
// the surface must be reconfigured; the next Render does so.
func (s *Surface) Render(draw func(RenderPass)) error {
	if s.released {
		return ErrReleased
	}
	if s.size.IsZero() {
		s.stats.Skipped++
		return nil
	}
	if err := s.reconfigure(); err != nil {
		return err
	}

	frame, err := s.backend.AcquireFrame()
	if err != nil {
		if errors.Is(err, framework.ErrSurfaceLost) || errors.Is(err, framework.ErrSurfaceOutdated) {
			s.dirty = true
		}
		return fmt.Errorf("gpu: acquire frame: %w", err)
	}
	s.stats.Frames++

	pass, err := frame.BeginPass(s.clear)
	if err != nil {
		frame.Discard()
		return fmt.Errorf("gpu: begin render pass: %w", err)
	}
	if draw != nil {
		draw(pass)
	}
	if err := pass.End(); err != nil {
		frame.Discard()
		return fmt.Errorf("gpu: end render pass: %w", err)
	}
	if err := frame.Submit(); err != nil {
		frame.Discard()
		return fmt.Errorf("gpu: submit: %w", err)
	}
	if err := frame.Present(); err != nil {
		if errors.Is(err, framework.ErrSurfaceLost) || errors.Is(err, framework.ErrSurfaceOutdated) {
			s.dirty = true
		}
		return fmt.Errorf("gpu: present: %w", err)
	}
	s.stats.Presents++
	return nil
}

// reconfigure applies the pending size, if any.
func (s *Surface) reconfigure() error {
	if !s.dirty {
		return nil
	}
	cfg := s.config
	cfg.Width = s.size.Width
	cfg.Height = s.size.Height
	if err := s.backend.Configure(cfg); err != nil {
		return fmt.Errorf("gpu: reconfigure surface to %v: %w", s.size, err)
	}
	s.config = cfg
	s.dirty = false
	s.stats.Configures++
	Logger().Debug("surface reconfigured", "size", s.size)
	return nil
}

// Release frees every object created through s in reverse creation order,
// then the backend. Calling it again is a no-op.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.buffers) - 1; i >= 0; i-- {
		s.buffers[i].Release()
	}
	for i := len(s.pipelines) - 1; i >= 0; i-- {
		s.pipelines[i].Release()
	}
	for i := len(s.shaders) - 1; i >= 0; i-- {
		s.shaders[i].Release()
	}
	s.buffers, s.pipelines, s.shaders = nil, nil, nil
	s.backend.Release()
}
