//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-eval-go/framework"
)

// TestEvaluate_FullCatalog verifies that all metrics compute when a reference is present.
func TestEvaluate_FullCatalog(t *testing.T) {
	engine := NewEngine()
	ec := &framework.Context{
		Question:       "What is the capital of France?",
		Answer:         "The capital of France is Paris.",
		ExpectedAnswer: "Paris is the capital of France.",
	}
	results, err := engine.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	assert.Len(t, results, len(Names()))
	for name, score := range results {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 1.0, name)
	}
}

// TestEvaluate_NoReference verifies that reference-gated metrics are omitted.
func TestEvaluate_NoReference(t *testing.T) {
	engine := NewEngine()
	ec := &framework.Context{
		Question: "What is Go?",
		Answer:   "Go is a programming language.",
	}
	results, err := engine.Evaluate(context.Background(), ec, nil)
	require.NoError(t, err)
	for name := range results {
		assert.False(t, RequiresReference(name), "gated metric %s computed without reference", name)
	}
	assert.Contains(t, results, Coherence)
	assert.Contains(t, results, Relevance)
	assert.Contains(t, results, Fluency)
	assert.Contains(t, results, Informativeness)
	assert.NotContains(t, results, Rouge1)
	assert.NotContains(t, results, Bleu)
}

// TestEvaluate_Selection verifies that a selection restricts computed metrics
// and unknown names are ignored.
func TestEvaluate_Selection(t *testing.T) {
	engine := NewEngine()
	ec := &framework.Context{
		Question:       "q",
		Answer:         "the cat sat",
		ExpectedAnswer: "the cat sat",
	}
	results, err := engine.Evaluate(context.Background(), ec, []string{Rouge1, WordOverlap, "made_up_metric"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.InDelta(t, 1.0, results[Rouge1], 1e-12)
	assert.InDelta(t, 1.0, results[WordOverlap], 1e-12)
}

// TestEvaluate_RougeSelfSimilarity verifies that a text scores 1.0 against itself.
func TestEvaluate_RougeSelfSimilarity(t *testing.T) {
	engine := NewEngine()
	ec := &framework.Context{
		Answer:         "every word matches exactly here",
		ExpectedAnswer: "every word matches exactly here",
	}
	results, err := engine.Evaluate(context.Background(), ec, []string{Rouge1, Rouge2, RougeL})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, results[Rouge1], 1e-12)
	assert.InDelta(t, 1.0, results[Rouge2], 1e-12)
	assert.InDelta(t, 1.0, results[RougeL], 1e-12)
}

// TestEvaluate_NilInputs verifies the validation errors.
func TestEvaluate_NilInputs(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Evaluate(nil, &framework.Context{}, nil)
	require.Error(t, err)
	_, err = engine.Evaluate(context.Background(), nil, nil)
	require.Error(t, err)
}

// TestEvaluate_ContextCanceled verifies that canceled contexts return the context error.
func TestEvaluate_ContextCanceled(t *testing.T) {
	engine := NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Evaluate(ctx, &framework.Context{Answer: "a"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestKnown verifies catalog membership checks.
func TestKnown(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("nope"))
}
