// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/tutorial/framework"
)

var (
	halLog  atomic.Pointer[slog.Logger]
	nagaLog atomic.Pointer[slog.Logger]
)

func init() {
	framework.OnLogger(func(l *slog.Logger) {
		halLog.Store(l.With(framework.TargetKey, framework.TargetHal))
		nagaLog.Store(l.With(framework.TargetKey, framework.TargetNaga))
	})
}

func halLogger() *slog.Logger  { return halLog.Load() }
func nagaLogger() *slog.Logger { return nagaLog.Load() }
