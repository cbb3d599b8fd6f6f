//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/model"
	"trpc.group/trpc-go/trpc-eval-go/service"
	"trpc.group/trpc-go/trpc-eval-go/service/internal/ranking"
)

// CompareModels generates one response per model concurrently, scores each
// with every registered framework, and ranks the completed models. A failed
// model becomes a failed comparison entry, never a fatal comparison error.
func (s *local) CompareModels(ctx context.Context, req *service.CompareRequest) (*service.CompareResult, error) {
	if req == nil {
		return nil, errors.New("compare request is nil")
	}
	if s.generator == nil {
		return nil, errors.New("generator is nil")
	}
	if req.Prompt == "" {
		return nil, errors.New("prompt is empty")
	}
	if len(req.Models) == 0 {
		return nil, errors.New("models are empty")
	}

	entries := make([]*service.ComparisonEntry, len(req.Models))
	var wg sync.WaitGroup
	for i, modelName := range req.Models {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			entries[idx] = s.compareOne(ctx, name, req)
		}(i, modelName)
	}
	wg.Wait()

	return buildCompareResult(entries), nil
}

// compareOne generates and scores a single model's response.
func (s *local) compareOne(ctx context.Context, modelName string,
	req *service.CompareRequest) (entry *service.ComparisonEntry) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("comparison of model %s panicked: %v", modelName, r)
			entry = failedEntry(modelName, fmt.Sprintf("panic: %v", r))
		}
	}()

	response, err := s.generator.Generate(ctx, &model.Request{
		Model:       modelName,
		Prompt:      req.Prompt,
		Context:     req.Context,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		log.Errorf("generation for model %s failed: %v", modelName, err)
		return failedEntry(modelName, err.Error())
	}

	result, err := s.EvaluateSingle(ctx, &framework.Context{
		Question:       req.Prompt,
		Answer:         response.Text,
		Context:        req.Context,
		ExpectedAnswer: req.ExpectedAnswer,
	}, req.Selection)
	if err != nil {
		return failedEntry(modelName, err.Error())
	}
	result.Model = modelName
	result.TokensUsed = response.TokensUsed
	result.ResponseTime = response.ResponseTime
	result.Cost = response.Cost

	return &service.ComparisonEntry{
		ModelName:      modelName,
		Response:       response.Text,
		Metrics:        flattenMetrics(result),
		CompositeScore: ranking.Composite(result),
		ResponseTime:   response.ResponseTime,
		TokensUsed:     response.TokensUsed,
		Cost:           response.Cost,
		Status:         evalresult.StatusCompleted,
	}
}

// buildCompareResult ranks the completed entries, appends the failed ones in
// request order, and derives the winner.
func buildCompareResult(entries []*service.ComparisonEntry) *service.CompareResult {
	completed := make([]*service.ComparisonEntry, 0, len(entries))
	failed := make([]*service.ComparisonEntry, 0)
	for _, entry := range entries {
		if entry.Status == evalresult.StatusCompleted {
			completed = append(completed, entry)
		} else {
			failed = append(failed, entry)
		}
	}

	ranked := make([]*ranking.Entry, len(completed))
	byName := make(map[string]*service.ComparisonEntry, len(completed))
	for i, entry := range completed {
		ranked[i] = &ranking.Entry{
			ModelName:    entry.ModelName,
			Score:        entry.CompositeScore,
			ResponseTime: entry.ResponseTime,
			Cost:         entry.Cost,
		}
		byName[entry.ModelName] = entry
	}
	ranking.Rank(ranked)

	comparisons := make([]*service.ComparisonEntry, 0, len(entries))
	for _, r := range ranked {
		comparisons = append(comparisons, byName[r.ModelName])
	}
	comparisons = append(comparisons, failed...)

	result := &service.CompareResult{Comparisons: comparisons}
	if len(ranked) > 0 {
		result.Winner = &service.Winner{
			ModelName: ranked[0].ModelName,
			Reason:    ranking.Reason(ranked),
		}
	}
	return result
}

// flattenMetrics merges the automatic metrics with every framework's
// successful numeric scores into one display map.
func flattenMetrics(result *evalresult.EvaluationResult) map[string]float64 {
	flat := make(map[string]float64, len(result.AutomaticMetrics))
	for name, value := range result.AutomaticMetrics {
		flat[name] = value
	}
	for _, fr := range result.FrameworkScores {
		if fr.Failed() {
			continue
		}
		for name, mr := range fr.Metrics {
			if mr.Score != nil {
				flat[name] = *mr.Score
			}
		}
	}
	return flat
}

// failedEntry builds a failed comparison entry for one model.
func failedEntry(modelName, message string) *service.ComparisonEntry {
	return &service.ComparisonEntry{
		ModelName: modelName,
		Status:    evalresult.StatusFailed,
		Error:     message,
	}
}
