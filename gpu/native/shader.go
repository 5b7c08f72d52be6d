// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !rust

package native

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tutorial/gpu"
)

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("native: compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("native: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

type shaderModule struct {
	device hal.Device
	module hal.ShaderModule
	label  string
}

func (s *shaderModule) Release() {
	if s.module != nil {
		s.device.DestroyShaderModule(s.module)
		s.module = nil
	}
}

// CreateShaderModule compiles wgsl and creates a SPIR-V shader module.
func (b *Backend) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	if b.device == nil {
		return nil, gpu.ErrNotInitialized
	}
	words, err := CompileWGSL(wgsl)
	if err != nil {
		nagaLogger().Error("shader compilation failed", "label", label, "err", err)
		return nil, err
	}
	module, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		// Non-Vulkan hosts translate the WGSL themselves.
		Source: hal.ShaderSource{WGSL: wgsl, SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("native: create shader module %q: %w", label, err)
	}
	nagaLogger().Debug("shader compiled", "label", label, "words", len(words))
	return &shaderModule{device: b.device, module: module, label: label}, nil
}
