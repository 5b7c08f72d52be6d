// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framework

import "fmt"

// Run opens a window titled title, builds the application with ctor and
// drives it until the window is closed. It returns nil on a normal close
// and the wrapped error when the window or the application could not be
// created.
func Run[A App](title string, ctor Constructor[A], opts ...Option) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	o := buildOptions(opts)
	if o.logger != nil {
		SetLogger(o.logger)
	}

	p := o.platform
	if p == nil {
		var err error
		if p, err = newPlatform(o.platformName); err != nil {
			return err
		}
	}

	h := NewHandler(title, ctor, opts...)
	if err := p.Run(h); err != nil {
		return fmt.Errorf("framework: event loop: %w", err)
	}
	return h.Err()
}
