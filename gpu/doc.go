// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu owns the GPU side of a tutorial window: device, surface
// configuration, pipelines, buffers and the per-frame loop.
//
// The work is split between [Surface], which holds size state and runs the
// frame sequence, and a [Backend], which talks to an actual WebGPU
// implementation. Two backends exist and register themselves on import:
//
//	import _ "github.com/gogpu/tutorial/gpu/native" // Pure Go (gogpu/wgpu)
//	import _ "github.com/gogpu/tutorial/gpu/rust"   // wgpu-native via cgo
//
// The highest priority available backend is used unless [WithBackend]
// names one.
//
// # Frame sequence
//
// [Surface.Render] does nothing while either dimension is zero. Otherwise it
// reconfigures the surface at most once if the size changed since the last
// frame, acquires the next frame, clears it, lets the caller record draws,
// submits and presents.
package gpu
