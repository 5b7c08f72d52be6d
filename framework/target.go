// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// TargetKey is the attribute that names the subsystem a record comes from.
// Loggers for a subsystem are derived with logger.With(TargetKey, name).
const TargetKey = "target"

// Well-known targets.
const (
	TargetCore = "wgpu_core"
	TargetHal  = "wgpu_hal"
	TargetNaga = "naga"
)

// LevelTrace is below debug and enables everything.
const LevelTrace = slog.LevelDebug - 4

// LevelOff disables a target.
const LevelOff = slog.Level(1 << 10)

// LogEnv is the environment variable read by InitLogger.
const LogEnv = "WGPU_LOG"

// Filter holds the minimum level per target.
// Targets match by prefix on a path boundary, the longest match wins.
type Filter struct {
	Default slog.Level
	Targets map[string]slog.Level
}

// DefaultFilter returns info for everything and wgpu_core, errors only for
// wgpu_hal and naga.
func DefaultFilter() Filter {
	return Filter{
		Default: slog.LevelInfo,
		Targets: map[string]slog.Level{
			TargetCore: slog.LevelInfo,
			TargetHal:  slog.LevelError,
			TargetNaga: slog.LevelError,
		},
	}
}

// Level returns the minimum level for target.
func (f Filter) Level(target string) slog.Level {
	best := -1
	level := f.Default
	for t, l := range f.Targets {
		if len(t) > best && matchTarget(target, t) {
			best = len(t)
			level = l
		}
	}
	return level
}

// min returns the lowest level any target can log at.
func (f Filter) min() slog.Level {
	m := f.Default
	for _, l := range f.Targets {
		if l < m {
			m = l
		}
	}
	return m
}

func (f Filter) clone() Filter {
	c := Filter{Default: f.Default, Targets: make(map[string]slog.Level, len(f.Targets))}
	for t, l := range f.Targets {
		c.Targets[t] = l
	}
	return c
}

// String renders f in directive syntax, targets sorted.
func (f Filter) String() string {
	parts := []string{levelName(f.Default)}
	names := make([]string, 0, len(f.Targets))
	for t := range f.Targets {
		names = append(names, t)
	}
	sort.Strings(names)
	for _, t := range names {
		parts = append(parts, t+"="+levelName(f.Targets[t]))
	}
	return strings.Join(parts, ",")
}

func matchTarget(target, prefix string) bool {
	if !strings.HasPrefix(target, prefix) {
		return false
	}
	if len(target) == len(prefix) {
		return true
	}
	switch target[len(prefix)] {
	case ':', '/', '.':
		return true
	}
	return false
}

// ParseFilter applies comma separated directives to base and returns the
// result. A directive is either a bare level, which sets the default, or
// target=level. A bare target enables it at trace level.
//
//	info,wgpu_core=warn,naga=off
func ParseFilter(s string, base Filter) (Filter, error) {
	f := base.clone()
	for _, d := range strings.Split(s, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		target, value, ok := strings.Cut(d, "=")
		if !ok {
			if l, err := ParseLevel(d); err == nil {
				f.Default = l
				continue
			}
			f.Targets[d] = LevelTrace
			continue
		}
		target = strings.TrimSpace(target)
		if target == "" {
			return base, fmt.Errorf("framework: empty target in directive %q", d)
		}
		l, err := ParseLevel(value)
		if err != nil {
			return base, err
		}
		f.Targets[target] = l
	}
	return f, nil
}

// ParseLevel parses trace, debug, info, warn, error or off.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off":
		return LevelOff, nil
	}
	return 0, fmt.Errorf("framework: unknown log level %q", s)
}

func levelName(l slog.Level) string {
	switch {
	case l >= LevelOff:
		return "off"
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warn"
	case l >= slog.LevelInfo:
		return "info"
	case l >= slog.LevelDebug:
		return "debug"
	}
	return "trace"
}

// TargetHandler filters records by the level configured for their target.
type TargetHandler struct {
	inner  slog.Handler
	filter Filter
	target string
}

// NewTargetHandler wraps inner. inner should accept every level; filtering
// happens here.
func NewTargetHandler(inner slog.Handler, filter Filter) *TargetHandler {
	return &TargetHandler{inner: inner, filter: filter.clone()}
}

// Enabled reports whether level can pass for the handler's target. Without a
// bound target the answer is optimistic and Handle does the final check.
func (h *TargetHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.target != "" {
		return level >= h.filter.Level(h.target)
	}
	return level >= h.filter.min()
}

// Handle drops r when it is below its target's level.
func (h *TargetHandler) Handle(ctx context.Context, r slog.Record) error {
	target := h.target
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == TargetKey {
			target = a.Value.String()
			return false
		}
		return true
	})
	if r.Level < h.filter.Level(target) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs binds the target when attrs carry one.
func (h *TargetHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	for _, a := range attrs {
		if a.Key == TargetKey {
			c.target = a.Value.String()
		}
	}
	c.inner = h.inner.WithAttrs(attrs)
	return &c
}

// WithGroup implements slog.Handler.
func (h *TargetHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.inner = h.inner.WithGroup(name)
	return &c
}

// InitLogger installs a text logger on stderr filtered per target, starting
// from DefaultFilter and applying the directives in WGPU_LOG. It returns the
// installed logger.
func InitLogger() *slog.Logger {
	filter := DefaultFilter()
	var parseErr error
	if env := os.Getenv(LogEnv); env != "" {
		filter, parseErr = ParseFilter(env, filter)
	}
	text := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelTrace})
	l := slog.New(NewTargetHandler(text, filter))
	SetLogger(l)
	if parseErr != nil {
		l.Warn("framework: ignoring "+LogEnv, "err", parseErr)
	}
	return l
}
