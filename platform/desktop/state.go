// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/tutorial/framework"
)

// windowState holds what other goroutines may read from a window. The
// loop goroutine writes it from platform callbacks.
type windowState struct {
	size   atomic.Uint64 // width<<32 | height
	scale  atomic.Uint64 // math.Float64bits
	redraw atomic.Bool
}

// setSize stores the size in physical pixels and reports whether it
// changed.
func (s *windowState) setSize(width, height int) (framework.Size, bool) {
	size := framework.Size{Width: clampDim(width), Height: clampDim(height)}
	packed := uint64(size.Width)<<32 | uint64(size.Height)
	return size, s.size.Swap(packed) != packed
}

func (s *windowState) innerSize() framework.Size {
	packed := s.size.Load()
	return framework.Size{Width: uint32(packed >> 32), Height: uint32(packed)}
}

// setScale stores a scale factor and reports whether it changed.
// Non-positive factors are stored as 1.
func (s *windowState) setScale(f float64) (float64, bool) {
	if f <= 0 {
		f = 1
	}
	bits := math.Float64bits(f)
	return f, s.scale.Swap(bits) != bits
}

func (s *windowState) scaleFactor() float64 {
	bits := s.scale.Load()
	if bits == 0 {
		return 1
	}
	return math.Float64frombits(bits)
}

// takeRedraw clears a pending redraw request and reports whether there
// was one.
func (s *windowState) takeRedraw() bool {
	return s.redraw.CompareAndSwap(true, false)
}

// cursorTracker turns absolute cursor positions into motion deltas.
type cursorTracker struct {
	x, y  float64
	known bool
}

// delta returns the motion since the previous position. The first
// position has no delta.
func (c *cursorTracker) delta(x, y float64) (dx, dy float64) {
	if c.known {
		dx, dy = x-c.x, y-c.y
	}
	c.x, c.y, c.known = x, y, true
	return dx, dy
}

func clampDim(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(n)
}
