// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop runs the event loop in a desktop window.
//
// Importing it registers one platform with package framework, chosen at
// build time:
//
//   - By default the "gogpu" platform, on gogpu/gogpu. The host owns the
//     device and the swapchain and its windows implement gpu.HostedWindow
//     for the Pure Go backend. No cgo is needed.
//   - With the rust build tag the "glfw" platform, on GLFW. Its windows are
//     created without a client API and hand wgpu-native a surface
//     descriptor. GLFW must be driven from the main thread, so the package
//     locks the main goroutine to its OS thread in init.
//
// In both cases Run must be called from main. Window size, scale factor
// and redraw requests are kept in atomics so asynchronous constructors
// can query the window while the loop runs.
package desktop
