// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import "github.com/gogpu/gputypes"

// DefaultClearColor is the dark blue every tutorial starts from.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// DefaultMaxFrameLatency is the number of frames queued ahead.
const DefaultMaxFrameLatency = 2

// Option configures NewSurface.
type Option func(*options)

type options struct {
	registry        *Registry
	backend         Backend
	backendName     string
	presentMode     PresentMode
	format          gputypes.TextureFormat
	maxFrameLatency uint32
	clearColor      gputypes.Color
	init            InitOptions
}

func defaultOptions() options {
	return options{
		registry:        globalRegistry,
		presentMode:     PresentModeFifo,
		maxFrameLatency: DefaultMaxFrameLatency,
		clearColor:      DefaultClearColor,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithBackendInstance uses b instead of a registered backend.
func WithBackendInstance(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithRegistry looks backends up in r instead of the global registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithPresentMode requests a present mode. FIFO is used when the surface
// does not support it.
func WithPresentMode(m PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}

// WithFormat prefers format when the surface supports it.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithMaxFrameLatency sets how many frames may be queued.
func WithMaxFrameLatency(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFrameLatency = n
		}
	}
}

// WithClearColor sets the initial clear color.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithPowerPreference is passed to adapter selection.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.init.PowerPreference = p
	}
}

// WithFallbackAdapter forces a software adapter where the backend has one.
func WithFallbackAdapter(force bool) Option {
	return func(o *options) {
		o.init.ForceFallbackAdapter = force
	}
}
