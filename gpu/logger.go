// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/tutorial/framework"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	framework.OnLogger(func(l *slog.Logger) {
		loggerPtr.Store(l.With(framework.TargetKey, framework.TargetCore))
	})
}

// Logger returns the logger shared with the framework, bound to the
// wgpu_core target.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
