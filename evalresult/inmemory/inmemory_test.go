//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

// TestSaveGet verifies the basic save and lookup round trip.
func TestSaveGet(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	result := &evalresult.EvaluationResult{
		ID:               "eval-1",
		Question:         "q",
		Response:         "a",
		AutomaticMetrics: map[string]float64{"rouge1": 0.5},
		Status:           evalresult.StatusCompleted,
		CreatedAt:        time.Now(),
	}
	require.NoError(t, m.Save(ctx, result))

	got, err := m.Get(ctx, "eval-1")
	require.NoError(t, err)
	assert.Equal(t, "q", got.Question)
	assert.InDelta(t, 0.5, got.AutomaticMetrics["rouge1"], 1e-12)

	// The stored record is a copy, not the caller's pointer.
	result.Question = "mutated"
	got, err = m.Get(ctx, "eval-1")
	require.NoError(t, err)
	assert.Equal(t, "q", got.Question)
}

// TestSave_Validation verifies nil and unidentified results are rejected.
func TestSave_Validation(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	require.Error(t, m.Save(ctx, nil))
	require.Error(t, m.Save(ctx, &evalresult.EvaluationResult{}))
}

// TestGet_NotFound verifies the not-found sentinel.
func TestGet_NotFound(t *testing.T) {
	m := NewManager()
	_, err := m.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestList_Ordering verifies results come back ordered by creation time.
func TestList_Ordering(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, m.Save(ctx, &evalresult.EvaluationResult{ID: "b", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, m.Save(ctx, &evalresult.EvaluationResult{ID: "a", CreatedAt: base}))
	require.NoError(t, m.Save(ctx, &evalresult.EvaluationResult{ID: "c", CreatedAt: base.Add(2 * time.Second)}))

	results, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}
