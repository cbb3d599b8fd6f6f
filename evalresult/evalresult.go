//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalresult defines evaluation result records and their storage contract.
package evalresult

import (
	"context"
	"time"

	"trpc.group/trpc-go/trpc-eval-go/framework"
)

// Evaluation statuses.
const (
	// StatusCompleted marks an evaluation that produced a result.
	StatusCompleted = "completed"
	// StatusFailed marks an evaluation that failed before producing scores.
	StatusFailed = "failed"
)

// EvaluationResult is the aggregated outcome of evaluating one response.
type EvaluationResult struct {
	// ID uniquely identifies this evaluation.
	ID string `json:"id"`
	// Question is the prompt or question the response answers.
	Question string `json:"question"`
	// Response is the evaluated model response.
	Response string `json:"response"`
	// ExpectedAnswer is the reference answer, empty when none was given.
	ExpectedAnswer string `json:"expected_answer,omitempty"`
	// Category is an optional domain label for the evaluation.
	Category string `json:"category,omitempty"`
	// AutomaticMetrics holds the merged scores of the offline frameworks.
	AutomaticMetrics map[string]float64 `json:"automatic_metrics,omitempty"`
	// FrameworkScores holds each framework's full result keyed by framework name.
	FrameworkScores map[string]*framework.Result `json:"framework_scores,omitempty"`
	// ProcessingTime is the evaluation wall-clock time in seconds.
	ProcessingTime float64 `json:"processing_time"`
	// Status is StatusCompleted or StatusFailed.
	Status string `json:"status"`
	// Error describes why the evaluation failed, empty on success.
	Error string `json:"error,omitempty"`
	// Model is the model that produced the response, when known.
	Model string `json:"model,omitempty"`
	// TokensUsed is the generation token count, when the response was generated here.
	TokensUsed int `json:"tokens_used,omitempty"`
	// ResponseTime is the generation latency in seconds, when known.
	ResponseTime float64 `json:"response_time,omitempty"`
	// Cost is the approximate generation cost in USD, nil when unknown.
	Cost *float64 `json:"cost,omitempty"`
	// CreatedAt is when the evaluation finished.
	CreatedAt time.Time `json:"created_at"`
}

// Manager persists evaluation results.
type Manager interface {
	// Save stores an evaluation result.
	Save(ctx context.Context, result *EvaluationResult) error
	// Get retrieves an evaluation result by ID.
	Get(ctx context.Context, id string) (*EvaluationResult, error)
	// List returns all stored evaluation results ordered by creation time.
	List(ctx context.Context) ([]*EvaluationResult, error)
}
