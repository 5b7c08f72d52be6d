// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrNoBackend is returned when no registered backend is available.
	ErrNoBackend = errors.New("gpu: no backend available")

	// ErrNotInitialized is returned by backend calls made before Init.
	ErrNotInitialized = errors.New("gpu: backend not initialized")

	// ErrReleased is returned by Surface methods after Release.
	ErrReleased = errors.New("gpu: surface released")

	// ErrNoAdapter is returned when no adapter can present to the surface.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrNoSurfaceFormat is returned when the surface reports no formats.
	ErrNoSurfaceFormat = errors.New("gpu: surface reports no formats")

	// ErrUnsupportedWindow is returned when a window does not expose what a
	// backend needs to create a surface.
	ErrUnsupportedWindow = errors.New("gpu: window cannot back a surface")

	// ErrNilShader is returned when a pipeline descriptor has no shader.
	ErrNilShader = errors.New("gpu: pipeline has no shader module")

	// ErrEmptyBuffer is returned for buffers with neither size nor contents.
	ErrEmptyBuffer = errors.New("gpu: buffer has zero size")
)

// BackendNotFoundError is returned when a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return fmt.Sprintf("gpu: backend %q not registered", e.Name)
}

// BackendUnavailableError is returned when a backend is registered but
// cannot run on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("gpu: backend %q not available", e.Name)
}
