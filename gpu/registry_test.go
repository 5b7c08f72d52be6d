// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/tutorial/framework"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, nil, nil)
	r.Register("high", 100, nil, nil)
	r.Register("off", 200, nil, func() bool { return false })

	list := r.List()
	if len(list) != 3 || list[0] != "off" || list[1] != "high" || list[2] != "low" {
		t.Errorf("List() = %v", list)
	}
	avail := r.Available()
	if len(avail) != 2 || avail[0] != "high" || avail[1] != "low" {
		t.Errorf("Available() = %v", avail)
	}

	r.Unregister("high")
	if _, ok := r.Get("high"); ok {
		t.Error("Get(high) after Unregister succeeded")
	}
}

func TestRegistryNewBackend(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewBackend(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("NewBackend() on empty registry = %v, want ErrNoBackend", err)
	}

	fake := newFakeBackend()
	r.Register("fake", 50, func() (Backend, error) { return fake, nil }, nil)
	r.Register("broken", 10, nil, func() bool { return false })

	b, err := r.NewBackend()
	if err != nil || b != fake {
		t.Errorf("NewBackend() = %v, %v", b, err)
	}

	var notFound *BackendNotFoundError
	if _, err := r.NewBackendByName("metal"); !errors.As(err, &notFound) {
		t.Errorf("NewBackendByName(metal) = %v, want BackendNotFoundError", err)
	}
	var unavailable *BackendUnavailableError
	if _, err := r.NewBackendByName("broken"); !errors.As(err, &unavailable) {
		t.Errorf("NewBackendByName(broken) = %v, want BackendUnavailableError", err)
	}
}

func TestNewSurfaceFromRegistry(t *testing.T) {
	r := NewRegistry()
	fake := newFakeBackend()
	r.Register("fake", 50, func() (Backend, error) { return fake, nil }, nil)

	w := &fakeWindow{size: framework.Size{Width: 10, Height: 10}}
	s, err := NewSurface(context.Background(), w, WithRegistry(r), WithBackend("fake"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Backend() != fake {
		t.Error("surface does not use the registered backend")
	}
	if _, err := NewSurface(context.Background(), w, WithRegistry(r), WithBackend("vulkan")); err == nil {
		t.Error("NewSurface with unknown backend succeeded")
	}
}
