//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package framework defines the scoring framework contract and its data model.
package framework

import "context"

// Context carries the inputs for one evaluation request.
// A Context is constructed once per request and must not be mutated by frameworks.
type Context struct {
	// Question is the prompt or question the answer responds to.
	Question string `json:"question"`
	// Answer is the machine-generated text being scored.
	Answer string `json:"answer"`
	// Context is optional grounding material supplied with the question.
	Context string `json:"context,omitempty"`
	// ExpectedAnswer is the optional reference answer for overlap metrics.
	ExpectedAnswer string `json:"expected_answer,omitempty"`
	// Category is an optional free-form label for the request.
	Category string `json:"category,omitempty"`
}

// MetricResult is the uniform per-metric result shape regardless of the producing framework.
type MetricResult struct {
	// Score is the metric value in [0, 1], or nil when the metric produced no numeric score.
	Score *float64 `json:"score"`
	// Success reports whether the metric computed without error.
	Success bool `json:"success"`
	// Reason optionally explains the score or the failure.
	Reason string `json:"reason,omitempty"`
}

// Result holds the outcome of one framework run.
// Either Metrics is populated, or Error describes a whole-framework failure.
type Result struct {
	// FrameworkName identifies the framework that produced this result.
	FrameworkName string `json:"framework_name"`
	// Metrics maps metric names to their results. Keys are unique.
	Metrics map[string]MetricResult `json:"metrics,omitempty"`
	// Error is set when the framework failed as a whole.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the framework failed as a whole.
func (r *Result) Failed() bool {
	return r != nil && r.Error != ""
}

// NewScore returns a MetricResult carrying a successful numeric score.
func NewScore(score float64) MetricResult {
	return MetricResult{Score: &score, Success: true}
}

// Framework is a named, pluggable scorer backend.
//
// Run must be safe for concurrent use, must not mutate the evaluation
// context, and must report failures as an error rather than panicking.
// Bounding the run time is the implementation's responsibility.
type Framework interface {
	// Name returns the unique registry name of the framework.
	Name() string
	// Description explains what the framework scores.
	Description() string
	// AvailableMetrics returns the metric names the framework can produce.
	AvailableMetrics() []string
	// Offline reports whether the framework runs without external services.
	// Results from offline frameworks are folded into the flattened automatic metrics.
	Offline() bool
	// Run scores the evaluation context. An empty selection means all applicable metrics.
	Run(ctx context.Context, ec *Context, selection []string) (*Result, error)
}
