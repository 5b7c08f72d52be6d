// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"errors"
	"log/slog"

	"github.com/gogpu/tutorial/framework"
)

// ErrLoopRunning is returned when Run is called while a loop is active.
var ErrLoopRunning = errors.New("desktop: event loop already running")

func logger() *slog.Logger {
	return framework.Logger()
}
