// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native is the Pure Go backend: gogpu/wgpu HAL, with shaders
// checked by gogpu/naga.
//
// Importing the package registers the backend as "native":
//
//	import _ "github.com/gogpu/tutorial/gpu/native"
//
// The backend does not open a device of its own. Windows must implement
// gpu.HostedWindow: the gogpu platform owns the device and swapchain and
// hands the backend its HAL device, queue and the surface view of each
// redraw. Command buffers are freed once the queue's completed submission
// index passes theirs.
//
// With the rust build tag the package registers itself as unavailable,
// since the GLFW platform used there cannot host it.
package native

// Name is the registry name of the backend.
const Name = "native"

// Priority is the registry priority of the backend.
const Priority = 100
