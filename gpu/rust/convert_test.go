// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package rust

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tutorial/framework"
	"github.com/gogpu/tutorial/gpu"
)

func TestTextureFormatRoundTrip(t *testing.T) {
	for _, e := range textureFormats {
		wf, ok := toTextureFormat(e.gg)
		if !ok || wf != e.wg {
			t.Errorf("toTextureFormat(%v) = %v, %v", e.gg, wf, ok)
		}
		gf, ok := fromTextureFormat(e.wg)
		if !ok || gf != e.gg {
			t.Errorf("fromTextureFormat(%v) = %v, %v", e.wg, gf, ok)
		}
	}
	if _, ok := toTextureFormat(gputypes.TextureFormatDepth24PlusStencil8); ok {
		t.Error("depth format accepted as a color target")
	}
}

func TestToVertexLayouts(t *testing.T) {
	layouts, err := toVertexLayouts([]gputypes.VertexBufferLayout{{
		ArrayStride: 28,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(layouts) != 1 || layouts[0].ArrayStride != 28 || len(layouts[0].Attributes) != 2 {
		t.Fatalf("layouts = %+v", layouts)
	}
	if a := layouts[0].Attributes[1]; a.Format != wgpu.VertexFormatFloat32x4 || a.Offset != 12 || a.ShaderLocation != 1 {
		t.Errorf("attribute 1 = %+v", a)
	}

	_, err = toVertexLayouts([]gputypes.VertexBufferLayout{{
		Attributes: []gputypes.VertexAttribute{{Format: gputypes.VertexFormatUint8x2}},
	}})
	var unsupported *unsupportedError
	if !errors.As(err, &unsupported) {
		t.Errorf("unsupported vertex format error = %v", err)
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []gpu.PresentMode{gpu.PresentModeFifo, gpu.PresentModeFifoRelaxed, gpu.PresentModeImmediate, gpu.PresentModeMailbox} {
		if got, ok := fromPresentMode(toPresentMode(m)); !ok || got != m {
			t.Errorf("present mode %v round trip = %v", m, got)
		}
	}
	for _, m := range []gpu.AlphaMode{gpu.AlphaModeAuto, gpu.AlphaModeOpaque, gpu.AlphaModePremultiplied, gpu.AlphaModeUnpremultiplied, gpu.AlphaModeInherit} {
		if got, ok := fromAlphaMode(toAlphaMode(m)); !ok || got != m {
			t.Errorf("alpha mode %v round trip = %v", m, got)
		}
	}
}

func TestNativeLogLevel(t *testing.T) {
	tests := []struct {
		min  slog.Level
		want wgpu.LogLevel
	}{
		{framework.LevelTrace, wgpu.LogLevelTrace},
		{slog.LevelDebug, wgpu.LogLevelDebug},
		{slog.LevelInfo, wgpu.LogLevelInfo},
		{slog.LevelWarn, wgpu.LogLevelWarn},
		{slog.LevelError, wgpu.LogLevelError},
		{framework.LevelOff, wgpu.LogLevelOff},
	}
	for _, tt := range tests {
		got := nativeLogLevel(func(l slog.Level) bool { return l >= tt.min })
		if got != tt.want {
			t.Errorf("min %v: got %v, want %v", tt.min, got, tt.want)
		}
	}
}

func TestClassifyFrameError(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"surface status: Lost", framework.ErrSurfaceLost},
		{"surface status: Outdated", framework.ErrSurfaceOutdated},
		{"surface status: Timeout", framework.ErrSurfaceTimeout},
		{"surface status: OutOfMemory", framework.ErrOutOfMemory},
	}
	for _, tt := range tests {
		if got := classifyFrameError(errors.New(tt.msg)); !errors.Is(got, tt.want) {
			t.Errorf("classifyFrameError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
	other := errors.New("validation")
	if got := classifyFrameError(other); got != other {
		t.Errorf("classifyFrameError(other) = %v", got)
	}
}
