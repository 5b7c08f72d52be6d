// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"sort"
	"sync"
)

// WindowAttributes describe the window created on the first resume.
type WindowAttributes struct {
	Title     string
	Size      Size
	Resizable bool
}

// Window is a platform window. SetTitle, RequestInnerSize and
// PrePresentNotify are called on the event loop goroutine. InnerSize,
// ScaleFactor and RequestRedraw must be safe to call from any goroutine,
// since asynchronous constructors query the window while the loop runs.
type Window interface {
	SetTitle(title string)
	InnerSize() Size
	ScaleFactor() float64
	RequestInnerSize(size Size)
	RequestRedraw()
	// PrePresentNotify is called right before the application renders.
	PrePresentNotify()
}

// EventLoop is the loop-side API handed to the handler.
type EventLoop interface {
	CreateWindow(attrs WindowAttributes) (Window, error)
	// Exit stops the loop after the current callback returns.
	Exit()
	// Post schedules fn on the loop goroutine and wakes the loop.
	// It is safe to call from any goroutine.
	Post(fn func())
}

// EventHandler receives loop callbacks. Platforms call Resumed once the
// loop is able to create windows and WindowEvent for every window event.
type EventHandler interface {
	Resumed(loop EventLoop)
	WindowEvent(loop EventLoop, ev Event)
}

// AttributeSource is implemented by handlers that know their window
// attributes before Resumed. Platforms that must create the window before
// their loop starts ask for them.
type AttributeSource interface {
	WindowAttributes() WindowAttributes
}

// Platform runs an event loop until Exit is called.
type Platform interface {
	Run(h EventHandler) error
}

// PlatformFactory creates a platform instance.
type PlatformFactory func() (Platform, error)

type platformEntry struct {
	name     string
	priority int
	factory  PlatformFactory
}

var (
	platformsMu sync.RWMutex
	platforms   = map[string]platformEntry{}
)

// RegisterPlatform makes a platform available to Run. Platforms register
// themselves from init; the highest priority wins unless WithPlatform names
// another one. Registering an existing name replaces it.
func RegisterPlatform(name string, priority int, factory PlatformFactory) {
	platformsMu.Lock()
	defer platformsMu.Unlock()
	platforms[name] = platformEntry{name: name, priority: priority, factory: factory}
}

// Platforms returns registered platform names, highest priority first.
func Platforms() []string {
	platformsMu.RLock()
	defer platformsMu.RUnlock()

	entries := make([]platformEntry, 0, len(platforms))
	for _, e := range platforms {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func newPlatform(name string) (Platform, error) {
	if name == "" {
		names := Platforms()
		if len(names) == 0 {
			return nil, ErrNoPlatform
		}
		name = names[0]
	}
	platformsMu.RLock()
	e, ok := platforms[name]
	platformsMu.RUnlock()
	if !ok {
		return nil, &PlatformNotFoundError{Name: name}
	}
	return e.factory()
}

// PlatformNotFoundError is returned when a named platform is not registered.
type PlatformNotFoundError struct {
	Name string
}

func (e *PlatformNotFoundError) Error() string {
	return "framework: platform not found: " + e.Name
}
