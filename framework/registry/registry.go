//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of scoring frameworks.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-eval-go/framework"
)

// Registry defines the interface for the framework registry.
// The registry is populated once at startup and read-only afterwards,
// so it is safe to share across concurrent evaluation dispatches.
type Registry interface {
	// Register registers a framework to the registry.
	Register(name string, f framework.Framework) error
	// Get retrieves a framework by name.
	Get(name string) (framework.Framework, error)
	// List returns the names of all registered frameworks.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu         sync.RWMutex
	frameworks map[string]framework.Framework
}

// New creates an empty framework registry.
func New() Registry {
	return &registry{
		frameworks: make(map[string]framework.Framework),
	}
}

// Register registers a framework to the registry.
// Same name framework will be overwritten.
func (r *registry) Register(name string, f framework.Framework) error {
	if f == nil {
		return errors.New("framework is nil")
	}
	if name == "" {
		name = f.Name()
	}
	if name == "" {
		return errors.New("framework name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frameworks[name] = f
	return nil
}

// Get gets a framework by name.
// Returns os.ErrNotExist if the framework is not found.
func (r *registry) Get(name string) (framework.Framework, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.frameworks[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("get framework %s: %w", name, os.ErrNotExist)
}

// List returns the names of all registered frameworks sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.frameworks))
	for name := range r.frameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
