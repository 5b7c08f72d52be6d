// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package desktop

import "testing"

func TestToScreen(t *testing.T) {
	tests := []struct {
		px                  uint32
		framebuffer, window int
		want                int
	}{
		{600, 800, 800, 600},
		{1200, 1600, 800, 600},
		{900, 0, 0, 900},
		{599, 1000, 500, 300},
	}
	for _, tt := range tests {
		if got := toScreen(tt.px, tt.framebuffer, tt.window); got != tt.want {
			t.Errorf("toScreen(%d, %d, %d) = %d, want %d", tt.px, tt.framebuffer, tt.window, got, tt.want)
		}
	}
}
