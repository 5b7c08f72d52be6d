// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package rust

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

// SurfaceSource is implemented by windows wgpu-native can create a surface
// for.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

var coreLog atomic.Pointer[slog.Logger]

func init() {
	framework.OnLogger(func(l *slog.Logger) {
		l = l.With(framework.TargetKey, framework.TargetCore)
		coreLog.Store(l)
		wgpu.SetLogLevel(nativeLogLevel(func(level slog.Level) bool {
			return l.Enabled(context.Background(), level)
		}))
	})
	gpu.Register(Name, Priority, func() (gpu.Backend, error) { return New(), nil }, nil)
}

func logger() *slog.Logger { return coreLog.Load() }

// nativeLogLevel returns the most verbose wgpu-native level the logger
// accepts.
func nativeLogLevel(enabled func(slog.Level) bool) wgpu.LogLevel {
	switch {
	case enabled(framework.LevelTrace):
		return wgpu.LogLevelTrace
	case enabled(slog.LevelDebug):
		return wgpu.LogLevelDebug
	case enabled(slog.LevelInfo):
		return wgpu.LogLevelInfo
	case enabled(slog.LevelWarn):
		return wgpu.LogLevelWarn
	case enabled(slog.LevelError):
		return wgpu.LogLevelError
	}
	return wgpu.LogLevelOff
}

// Backend implements gpu.Backend on wgpu-native.
type Backend struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	config     gpu.SurfaceConfig
	configured bool
}

var _ gpu.Backend = (*Backend)(nil)

// New returns an uninitialized backend.
func New() *Backend {
	return &Backend{}
}

// Name implements gpu.Backend.
func (b *Backend) Name() string { return Name }

// Init implements gpu.Backend.
func (b *Backend) Init(ctx context.Context, window framework.Window, opts gpu.InitOptions) (err error) {
	src, ok := window.(SurfaceSource)
	if !ok {
		return fmt.Errorf("rust: %T has no surface descriptor: %w", window, gpu.ErrUnsupportedWindow)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			b.Release()
		}
	}()

	b.instance = wgpu.CreateInstance(nil)
	b.surface = b.instance.CreateSurface(src.SurfaceDescriptor())

	b.adapter, err = b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    b.surface,
		PowerPreference:      toPowerPreference(opts.PowerPreference),
	})
	if err != nil {
		return fmt.Errorf("rust: request adapter: %w: %w", gpu.ErrNoAdapter, err)
	}

	b.device, err = b.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "tutorial device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("rust: request device: %w", err)
	}
	b.queue = b.device.GetQueue()

	info := b.adapter.GetInfo()
	logger().Info("device opened", "adapter", info.Name, "backend", info.BackendType)
	return nil
}

// Capabilities implements gpu.Backend.
func (b *Backend) Capabilities() gpu.Capabilities {
	if b.surface == nil || b.adapter == nil {
		return gpu.Capabilities{}
	}
	caps := b.surface.GetCapabilities(b.adapter)
	var out gpu.Capabilities
	for _, f := range caps.Formats {
		if tf, ok := fromTextureFormat(f); ok {
			out.Formats = append(out.Formats, tf)
		}
	}
	for _, m := range caps.PresentModes {
		if pm, ok := fromPresentMode(m); ok {
			out.PresentModes = append(out.PresentModes, pm)
		}
	}
	for _, m := range caps.AlphaModes {
		if am, ok := fromAlphaMode(m); ok {
			out.AlphaModes = append(out.AlphaModes, am)
		}
	}
	return out
}

// Configure implements gpu.Backend.
func (b *Backend) Configure(cfg gpu.SurfaceConfig) error {
	if b.device == nil || b.surface == nil {
		return gpu.ErrNotInitialized
	}
	format, ok := toTextureFormat(cfg.Format)
	if !ok {
		return fmt.Errorf("rust: surface format %v: %w", cfg.Format, gpu.ErrNoSurfaceFormat)
	}
	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: toPresentMode(cfg.PresentMode),
		AlphaMode:   toAlphaMode(cfg.AlphaMode),
	})
	b.config = cfg
	b.configured = true
	logger().Debug("surface configured", "width", cfg.Width, "height", cfg.Height, "format", cfg.Format)
	return nil
}

type shaderModule struct {
	module *wgpu.ShaderModule
}

func (s *shaderModule) Release() {
	if s.module != nil {
		s.module.Release()
		s.module = nil
	}
}

// CreateShaderModule implements gpu.Backend. wgpu-native compiles the WGSL
// itself.
func (b *Backend) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	if b.device == nil {
		return nil, gpu.ErrNotInitialized
	}
	m, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: wgsl},
	})
	if err != nil {
		return nil, fmt.Errorf("rust: create shader module %q: %w", label, err)
	}
	return &shaderModule{module: m}, nil
}

// Release implements gpu.Backend.
func (b *Backend) Release() {
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
	b.configured = false
}

// classifyFrameError maps wgpu-native surface status errors to the
// framework frame errors. The binding reports the status only in the
// message.
func classifyFrameError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceLost, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceOutdated, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %w", framework.ErrSurfaceTimeout, err)
	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return fmt.Errorf("%w: %w", framework.ErrOutOfMemory, err)
	}
	return err
}
