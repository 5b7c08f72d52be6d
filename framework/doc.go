// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framework drives the window lifecycle of a GPU application.
//
// A [Handler] owns the platform window and one application value. The
// application is constructed lazily, once the platform reports that a
// window may be created, and until then the handler only remembers the
// most recent resize. After construction every resize, redraw and input
// event is forwarded to the application.
//
// Applications implement [App] and are started with [Run]:
//
//	func main() {
//	    framework.InitLogger()
//	    if err := framework.Run("Beginner", newState); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Run uses the platform registered by a blank import, typically the desktop
// platform:
//
//	import _ "github.com/gogpu/tutorial/platform/desktop"
//
// # Construction modes
//
// By default the constructor runs on the event loop goroutine and blocks it.
// [WithAsyncInit] runs the constructor on its own goroutine instead; the
// result is posted back to the loop with [EventLoop.Post] and applied by a
// single completion callback. Events that arrive in the meantime are
// handled as follows:
//
//   - a non-zero resize replaces the pending size,
//   - a close request exits the loop,
//   - everything else is logged at debug level and dropped.
package framework
