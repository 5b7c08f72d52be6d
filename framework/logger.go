// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the framework and every package
// that registered with OnLogger. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used by the framework:
//   - [slog.LevelDebug]: events dropped while the application is constructing
//   - [slog.LevelInfo]: lifecycle (window created, resized, minimized)
//   - [slog.LevelWarn]: recoverable frame errors (surface lost)
//   - [slog.LevelError]: render failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	listenersMu.Lock()
	fns := slices.Clone(listeners)
	listenersMu.Unlock()
	for _, fn := range fns {
		fn(l)
	}
}

// Logger returns the current framework logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

var (
	listenersMu sync.Mutex
	listeners   []func(*slog.Logger)
)

// OnLogger registers fn to receive the logger on every SetLogger call.
// fn is called immediately with the current logger.
// Packages below the framework (gpu, backends, platforms) use it to share
// one logger configuration without importing each other.
func OnLogger(fn func(*slog.Logger)) {
	listenersMu.Lock()
	listeners = append(listeners, fn)
	listenersMu.Unlock()
	fn(Logger())
}
