// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"context"
	"log/slog"
)

// DefaultWindowSide is the logical side length of the square window
// requested on desktop platforms. It is multiplied by the scale factor.
const DefaultWindowSide = 600

// Option configures Run and NewHandler.
//
// Example:
//
//	err := framework.Run("Beginner", newState,
//	    framework.WithAsyncInit(true),
//	    framework.WithWindowSize(framework.Size{Width: 800, Height: 600}),
//	)
type Option func(*options)

type options struct {
	ctx          context.Context
	platform     Platform
	platformName string
	async        bool
	size         Size
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPlatform runs on p instead of a registered platform.
func WithPlatform(p Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithPlatformName selects a registered platform by name.
func WithPlatformName(name string) Option {
	return func(o *options) {
		o.platformName = name
	}
}

// WithAsyncInit runs the constructor on its own goroutine. The loop keeps
// delivering events while the application is built.
func WithAsyncInit(async bool) Option {
	return func(o *options) {
		o.async = async
	}
}

// WithWindowSize requests an explicit inner size instead of the default
// scaled square.
func WithWindowSize(size Size) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithLogger installs l with SetLogger before the loop starts.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext sets the context passed to the constructor.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
