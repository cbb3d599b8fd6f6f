//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// TestGenerate_Validation verifies that malformed requests fail before any network call.
func TestGenerate_Validation(t *testing.T) {
	g := New(WithAPIKey("test-key"))

	_, err := g.Generate(context.Background(), nil)
	require.Error(t, err)

	_, err = g.Generate(context.Background(), &model.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model name is empty")

	_, err = g.Generate(context.Background(), &model.Request{Model: "openai/gpt-4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt is empty")
}

// TestCost verifies the per-1K-token cost table.
func TestCost(t *testing.T) {
	g := New(
		WithAPIKey("test-key"),
		WithPricing("openai/gpt-4", Pricing{PromptPer1K: 0.03, CompletionPer1K: 0.06}),
	)

	cost := g.cost("openai/gpt-4", 1000, 500)
	require.NotNil(t, cost)
	assert.InDelta(t, 0.06, *cost, 1e-9)

	assert.Nil(t, g.cost("unknown/model", 1000, 500))
}

// TestCost_Rounding verifies rounding to six decimal places.
func TestCost_Rounding(t *testing.T) {
	g := New(
		WithAPIKey("test-key"),
		WithPricing("m", Pricing{PromptPer1K: 0.0001, CompletionPer1K: 0.0001}),
	)
	cost := g.cost("m", 7, 3)
	require.NotNil(t, cost)
	assert.InDelta(t, 0.000001, *cost, 1e-12)
}
