//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

// Manager implements the evalresult.Manager interface using in-memory storage.
type Manager struct {
	mu      sync.RWMutex
	results map[string]*evalresult.EvaluationResult
}

// NewManager creates a new in-memory evaluation result manager.
func NewManager() *Manager {
	return &Manager{
		results: make(map[string]*evalresult.EvaluationResult),
	}
}

// Save stores an evaluation result in memory, overwriting any result with the same ID.
func (m *Manager) Save(_ context.Context, result *evalresult.EvaluationResult) error {
	if result == nil {
		return errors.New("evaluation result is nil")
	}
	if result.ID == "" {
		return errors.New("evaluation result ID is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *result
	m.results[result.ID] = &stored
	return nil
}

// Get retrieves an evaluation result by ID from memory.
func (m *Manager) Get(_ context.Context, id string) (*evalresult.EvaluationResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.results[id]
	if !ok {
		return nil, fmt.Errorf("evaluation result %s: %w", id, os.ErrNotExist)
	}
	found := *result
	return &found, nil
}

// List returns all stored evaluation results ordered by creation time, then ID.
func (m *Manager) List(_ context.Context) ([]*evalresult.EvaluationResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]*evalresult.EvaluationResult, 0, len(m.results))
	for _, result := range m.results {
		found := *result
		results = append(results, &found)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.Before(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// Ensure interface compliance.
var _ evalresult.Manager = (*Manager)(nil)
