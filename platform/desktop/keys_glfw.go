// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build rust

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tutorial/framework"
)

var keyMap = map[glfw.Key]gpucontext.Key{
	glfw.KeyA: gpucontext.KeyA,
	glfw.KeyB: gpucontext.KeyB,
	glfw.KeyC: gpucontext.KeyC,
	glfw.KeyD: gpucontext.KeyD,
	glfw.KeyE: gpucontext.KeyE,
	glfw.KeyF: gpucontext.KeyF,
	glfw.KeyG: gpucontext.KeyG,
	glfw.KeyH: gpucontext.KeyH,
	glfw.KeyI: gpucontext.KeyI,
	glfw.KeyJ: gpucontext.KeyJ,
	glfw.KeyK: gpucontext.KeyK,
	glfw.KeyL: gpucontext.KeyL,
	glfw.KeyM: gpucontext.KeyM,
	glfw.KeyN: gpucontext.KeyN,
	glfw.KeyO: gpucontext.KeyO,
	glfw.KeyP: gpucontext.KeyP,
	glfw.KeyQ: gpucontext.KeyQ,
	glfw.KeyR: gpucontext.KeyR,
	glfw.KeyS: gpucontext.KeyS,
	glfw.KeyT: gpucontext.KeyT,
	glfw.KeyU: gpucontext.KeyU,
	glfw.KeyV: gpucontext.KeyV,
	glfw.KeyW: gpucontext.KeyW,
	glfw.KeyX: gpucontext.KeyX,
	glfw.KeyY: gpucontext.KeyY,
	glfw.KeyZ: gpucontext.KeyZ,

	glfw.KeySpace:     gpucontext.KeySpace,
	glfw.KeyEnter:     gpucontext.KeyEnter,
	glfw.KeyKPEnter:   gpucontext.KeyEnter,
	glfw.KeyEscape:    gpucontext.KeyEscape,
	glfw.KeyTab:       gpucontext.KeyTab,
	glfw.KeyBackspace: gpucontext.KeyBackspace,

	glfw.KeyUp:    gpucontext.KeyUp,
	glfw.KeyDown:  gpucontext.KeyDown,
	glfw.KeyLeft:  gpucontext.KeyLeft,
	glfw.KeyRight: gpucontext.KeyRight,
}

func mapKey(k glfw.Key) gpucontext.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return gpucontext.KeyUnknown
}

func mapModifiers(m glfw.ModifierKey) gpucontext.Modifiers {
	var mods gpucontext.Modifiers
	if m&glfw.ModShift != 0 {
		mods |= gpucontext.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= gpucontext.ModControl
	}
	if m&glfw.ModAlt != 0 {
		mods |= gpucontext.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= gpucontext.ModSuper
	}
	return mods
}

func keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) framework.KeyEvent {
	return framework.KeyEvent{
		Key:       mapKey(key),
		Modifiers: mapModifiers(mods),
		State:     elementState(action),
		Repeat:    action == glfw.Repeat,
	}
}

// elementState treats repeats as presses.
func elementState(a glfw.Action) framework.ElementState {
	if a == glfw.Release {
		return framework.Released
	}
	return framework.Pressed
}

func mouseButton(b glfw.MouseButton) framework.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return framework.MouseButtonLeft
	case glfw.MouseButtonRight:
		return framework.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return framework.MouseButtonMiddle
	}
	return framework.MouseButtonOther
}
