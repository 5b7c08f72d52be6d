// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import "time"

// Phase is the lifecycle phase of a Handler.
type Phase uint8

const (
	// PhaseUninitialized: no window exists yet.
	PhaseUninitialized Phase = iota
	// PhaseConstructing: the window exists and the application is being built.
	PhaseConstructing
	// PhaseReady: the application exists and receives events.
	PhaseReady
	// PhaseClosed: the loop was asked to exit. Terminal.
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseConstructing:
		return "constructing"
	case PhaseReady:
		return "ready"
	case PhaseClosed:
		return "closed"
	}
	return "unknown"
}

// lifecycle is the tagged state of a Handler. Exactly one variant is held
// at a time and only the loop goroutine reads or replaces it.
type lifecycle interface {
	phase() Phase
}

type uninitialized struct{}

// constructing holds the in-flight task and the most recent non-zero resize
// seen while it runs.
type constructing struct {
	task    *task
	pending *Size
}

type ready[A App] struct {
	app A
}

type closed struct{}

func (uninitialized) phase() Phase { return PhaseUninitialized }
func (*constructing) phase() Phase { return PhaseConstructing }
func (*ready[A]) phase() Phase     { return PhaseReady }
func (closed) phase() Phase        { return PhaseClosed }

// task identifies one construction run. Completions carrying a task other
// than the one held by the constructing state are stale.
type task struct {
	id      uint64
	started time.Time
}
