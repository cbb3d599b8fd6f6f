//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package basic provides the built-in offline scoring framework.
package basic

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/metric"
)

// FrameworkName is the registry name of the basic framework.
const FrameworkName = "basic"

// Framework scores evaluation contexts with the offline metrics engine.
// It needs no API keys and works fully offline.
type Framework struct {
	engine *metric.Engine
}

// New creates the basic framework.
func New() *Framework {
	return &Framework{engine: metric.NewEngine()}
}

// Name returns the registry name of the framework.
func (f *Framework) Name() string { return FrameworkName }

// Description explains what the framework scores.
func (f *Framework) Description() string {
	return "Lexical overlap and heuristic quality metrics computed offline"
}

// AvailableMetrics returns the built-in metric catalog.
func (f *Framework) AvailableMetrics() []string { return metric.Names() }

// Offline reports that the framework runs without external services.
func (f *Framework) Offline() bool { return true }

// Run computes the selected metrics and wraps them in the framework result shape.
func (f *Framework) Run(ctx context.Context, ec *framework.Context, selection []string) (*framework.Result, error) {
	if ec == nil {
		return nil, errors.New("evaluation context is nil")
	}
	scores, err := f.engine.Evaluate(ctx, ec, selection)
	if err != nil {
		return nil, fmt.Errorf("basic evaluation: %w", err)
	}
	metrics := make(map[string]framework.MetricResult, len(scores))
	for name, score := range scores {
		metrics[name] = framework.NewScore(score)
	}
	return &framework.Result{FrameworkName: FrameworkName, Metrics: metrics}, nil
}

// Ensure interface compliance.
var _ framework.Framework = (*Framework)(nil)
