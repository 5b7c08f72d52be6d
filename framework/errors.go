// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import "errors"

// Frame errors returned by App.Render. The handler classifies them with
// errors.Is, so implementations may wrap them.
var (
	// ErrSurfaceLost is returned when the presentation surface has been lost
	// and must be reconfigured. The handler logs it and keeps running.
	ErrSurfaceLost = errors.New("framework: surface lost")

	// ErrSurfaceOutdated is returned when the surface no longer matches the
	// window and needs a reconfigure before the next frame.
	ErrSurfaceOutdated = errors.New("framework: surface outdated")

	// ErrSurfaceTimeout is returned when no frame could be acquired in time.
	ErrSurfaceTimeout = errors.New("framework: surface timeout")

	// ErrOutOfMemory is returned when the GPU ran out of memory.
	ErrOutOfMemory = errors.New("framework: out of memory")
)

// Setup errors.
var (
	// ErrNoPlatform is returned by Run when no platform has been registered.
	ErrNoPlatform = errors.New("framework: no platform registered")

	// ErrNilConstructor is returned by Run when the constructor is nil.
	ErrNilConstructor = errors.New("framework: nil constructor")
)
