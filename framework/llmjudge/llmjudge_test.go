//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package llmjudge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// stubGenerator returns a canned response and records the last request.
type stubGenerator struct {
	text    string
	err     error
	lastReq *model.Request
}

func (s *stubGenerator) Generate(_ context.Context, req *model.Request) (*model.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &model.Response{Text: s.text}, nil
}

// TestNew_Validation verifies constructor argument checks.
func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "judge-model")
	require.Error(t, err)

	_, err = New(&stubGenerator{}, "")
	require.Error(t, err)

	f, err := New(&stubGenerator{}, "judge-model")
	require.NoError(t, err)
	assert.Equal(t, FrameworkName, f.Name())
	assert.False(t, f.Offline())
}

// TestRun_ParsesGrades verifies that grades are extracted and normalized.
func TestRun_ParsesGrades(t *testing.T) {
	gen := &stubGenerator{text: `{
  "relevance": 8,
  "accuracy": 9,
  "completeness": 7,
  "overall": 8,
  "reasoning": "solid answer with one gap"
}`}
	f, err := New(gen, "judge-model")
	require.NoError(t, err)

	result, err := f.Run(context.Background(), &framework.Context{
		Question: "What is Go?",
		Answer:   "Go is a programming language.",
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Metrics, 4)

	require.NotNil(t, result.Metrics[MetricRelevance].Score)
	assert.InDelta(t, 0.8, *result.Metrics[MetricRelevance].Score, 1e-12)
	assert.InDelta(t, 0.9, *result.Metrics[MetricAccuracy].Score, 1e-12)
	assert.InDelta(t, 0.7, *result.Metrics[MetricCompleteness].Score, 1e-12)
	assert.InDelta(t, 0.8, *result.Metrics[MetricOverall].Score, 1e-12)
	assert.Equal(t, "solid answer with one gap", result.Metrics[MetricOverall].Reason)
}

// TestRun_PromptIncludesReference verifies that the reference answer reaches the judge.
func TestRun_PromptIncludesReference(t *testing.T) {
	gen := &stubGenerator{text: `{"relevance": 5, "accuracy": 5, "completeness": 5, "overall": 5}`}
	f, err := New(gen, "judge-model")
	require.NoError(t, err)

	_, err = f.Run(context.Background(), &framework.Context{
		Question:       "capital of France?",
		Answer:         "Paris",
		ExpectedAnswer: "Paris is the capital of France.",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, gen.lastReq)
	assert.Equal(t, "judge-model", gen.lastReq.Model)
	assert.Contains(t, gen.lastReq.Prompt, "capital of France?")
	assert.Contains(t, gen.lastReq.Prompt, "Reference answer: Paris is the capital of France.")
}

// TestRun_Selection verifies selection filtering and the no-call fast path.
func TestRun_Selection(t *testing.T) {
	gen := &stubGenerator{text: `{"relevance": 6, "accuracy": 6, "completeness": 6, "overall": 6}`}
	f, err := New(gen, "judge-model")
	require.NoError(t, err)

	result, err := f.Run(context.Background(), &framework.Context{Question: "q", Answer: "a"},
		[]string{MetricOverall, "rouge1"})
	require.NoError(t, err)
	require.Len(t, result.Metrics, 1)
	assert.Contains(t, result.Metrics, MetricOverall)

	// No judge metric selected: no model call at all.
	gen.lastReq = nil
	result, err = f.Run(context.Background(), &framework.Context{Question: "q", Answer: "a"},
		[]string{"rouge1", "bleu"})
	require.NoError(t, err)
	assert.Empty(t, result.Metrics)
	assert.Nil(t, gen.lastReq)
}

// TestRun_MalformedOutput verifies that missing grades become unsuccessful metrics.
func TestRun_MalformedOutput(t *testing.T) {
	gen := &stubGenerator{text: `the answer looks fine to me`}
	f, err := New(gen, "judge-model")
	require.NoError(t, err)

	result, err := f.Run(context.Background(), &framework.Context{Question: "q", Answer: "a"}, nil)
	require.NoError(t, err)
	for _, name := range f.AvailableMetrics() {
		assert.False(t, result.Metrics[name].Success, name)
		assert.Nil(t, result.Metrics[name].Score, name)
	}
}

// TestRun_GeneratorError verifies that model failures surface as errors.
func TestRun_GeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	f, err := New(gen, "judge-model")
	require.NoError(t, err)

	_, err = f.Run(context.Background(), &framework.Context{Question: "q", Answer: "a"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "judge-model")
}
