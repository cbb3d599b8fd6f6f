//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package service provides the evaluation orchestration service.
package service

import (
	"context"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
)

// DefaultBatchSize caps how many bulk items run concurrently per batch.
const DefaultBatchSize = 10

// ProgressFunc reports bulk progress after each finished batch.
// It is invoked synchronously, so implementations should return quickly.
type ProgressFunc func(processed, total int, percentage float64)

// BulkRequest describes a batched evaluation over many contexts.
type BulkRequest struct {
	// Contexts are the evaluation contexts to process, in order.
	Contexts []*framework.Context `json:"contexts"`
	// Selection restricts the computed metrics; empty means all.
	Selection []string `json:"selection,omitempty"`
	// BatchSize overrides the per-batch concurrency cap when positive.
	BatchSize int `json:"batch_size,omitempty"`
	// Progress is called after each batch completes, when set.
	Progress ProgressFunc `json:"-"`
}

// CompareRequest describes a head-to-head model comparison.
type CompareRequest struct {
	// Prompt is sent to every compared model.
	Prompt string `json:"prompt"`
	// Models are the provider-qualified model names to compare.
	Models []string `json:"models"`
	// Context is optional grounding material for generation and scoring.
	Context string `json:"context,omitempty"`
	// ExpectedAnswer is the optional reference answer for scoring.
	ExpectedAnswer string `json:"expected_answer,omitempty"`
	// Selection restricts the computed metrics; empty means all.
	Selection []string `json:"selection,omitempty"`
	// Temperature overrides the provider default when set.
	Temperature *float64 `json:"temperature,omitempty"`
	// MaxTokens caps the completion length when set.
	MaxTokens *int64 `json:"max_tokens,omitempty"`
}

// ComparisonEntry is the outcome of one model in a comparison.
type ComparisonEntry struct {
	// ModelName is the compared model.
	ModelName string `json:"model_name"`
	// Response is the text the model generated.
	Response string `json:"response,omitempty"`
	// Metrics flattens all numeric scores produced for the response.
	Metrics map[string]float64 `json:"metrics,omitempty"`
	// CompositeScore is the mean of all numeric scores, the ranking key.
	CompositeScore float64 `json:"composite_score"`
	// ResponseTime is the generation latency in seconds.
	ResponseTime float64 `json:"response_time"`
	// TokensUsed is the generation token count.
	TokensUsed int `json:"tokens_used"`
	// Cost is the approximate generation cost in USD, nil when unknown.
	Cost *float64 `json:"cost,omitempty"`
	// Status is evalresult.StatusCompleted or evalresult.StatusFailed.
	Status string `json:"status"`
	// Error describes a generation or evaluation failure.
	Error string `json:"error,omitempty"`
}

// Winner names the top-ranked model of a comparison.
type Winner struct {
	// ModelName is the winning model.
	ModelName string `json:"model_name"`
	// Reason is a human-readable score justification.
	Reason string `json:"reason"`
}

// CompareResult is the full outcome of a model comparison.
type CompareResult struct {
	// Comparisons holds one entry per requested model, ranked best first
	// with failed entries trailing in request order.
	Comparisons []*ComparisonEntry `json:"comparisons"`
	// Winner is nil when no model completed.
	Winner *Winner `json:"winner,omitempty"`
}

// Service defines the main interface for evaluation operations.
type Service interface {
	// EvaluateSingle scores one context with every registered framework.
	// Framework failures are isolated into the result, never returned as
	// the error.
	EvaluateSingle(ctx context.Context, ec *framework.Context, selection []string) (*evalresult.EvaluationResult, error)

	// EvaluateBulk scores many contexts in fixed-size concurrent batches.
	// The output preserves input order; a failed item becomes a failed
	// result record in place.
	EvaluateBulk(ctx context.Context, req *BulkRequest) ([]*evalresult.EvaluationResult, error)

	// CompareModels generates a response per model, scores each, and
	// ranks them into a winner.
	CompareModels(ctx context.Context, req *CompareRequest) (*CompareResult, error)

	// AvailableMetrics lists each registered framework's metric names.
	AvailableMetrics(ctx context.Context) (map[string][]string, error)
}
