// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package rust

import "github.com/gogpu/tutorial/gpu"

func init() {
	gpu.Register(Name, Priority, func() (gpu.Backend, error) {
		return nil, &gpu.BackendUnavailableError{Name: Name}
	}, func() bool { return false })
}
