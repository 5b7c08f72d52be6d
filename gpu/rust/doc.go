// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rust is the wgpu-native backend, built on cogentcore/webgpu.
// It needs cgo and the wgpu-native library and is compiled only with the
// rust build tag:
//
//	go build -tags rust ./...
//
// Without the tag the package still registers itself, as unavailable, so
// gpu.WithBackend("wgpu-native") reports a BackendUnavailableError rather
// than BackendNotFoundError.
//
// Windows must implement SurfaceSource.
package rust

// Name is the registry name of the backend.
const Name = "wgpu-native"

// Priority is the registry priority of the backend, below the Pure Go one.
const Priority = 90
