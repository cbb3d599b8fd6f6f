//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local implementation of service.Service.
package local

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/framework/registry"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/model"
	"trpc.group/trpc-go/trpc-eval-go/service"
)

// local is a local implementation of service.Service.
type local struct {
	registry      registry.Registry
	resultManager evalresult.Manager
	generator     model.Generator
	batchSize     int
	bulkPool      *ants.PoolWithFunc
}

// New returns a new local evaluation service.
// If no service.Option is provided, the service will use the default options.
func New(opt ...service.Option) (service.Service, error) {
	opts := service.NewOptions(opt...)
	if opts.Registry == nil {
		return nil, errors.New("registry is nil")
	}
	if opts.ResultManager == nil {
		return nil, errors.New("result manager is nil")
	}
	if opts.BatchSize <= 0 {
		return nil, errors.New("batch size must be greater than 0")
	}
	if opts.Parallelism <= 0 {
		return nil, errors.New("parallelism must be greater than 0")
	}
	svc := &local{
		registry:      opts.Registry,
		resultManager: opts.ResultManager,
		generator:     opts.Generator,
		batchSize:     opts.BatchSize,
	}
	pool, err := createBulkPool(opts.Parallelism)
	if err != nil {
		return nil, fmt.Errorf("create bulk evaluation pool: %w", err)
	}
	svc.bulkPool = pool
	return svc, nil
}

// Close closes the eval service and releases owned resources.
func (s *local) Close() error {
	if s.bulkPool != nil {
		s.bulkPool.Release()
	}
	return nil
}

// EvaluateSingle dispatches the context to every registered framework
// concurrently, isolates per-framework failures, and merges the results.
func (s *local) EvaluateSingle(ctx context.Context, ec *framework.Context,
	selection []string) (*evalresult.EvaluationResult, error) {
	if ec == nil {
		return nil, errors.New("evaluation context is nil")
	}
	start := time.Now()

	names := s.registry.List()
	results := make([]*framework.Result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, frameworkName string) {
			defer wg.Done()
			results[idx] = s.dispatch(ctx, frameworkName, ec, selection)
		}(i, name)
	}
	wg.Wait()

	result := s.merge(ec, names, results)
	result.ProcessingTime = time.Since(start).Seconds()
	if err := s.resultManager.Save(ctx, result); err != nil {
		log.Warnf("save evaluation result %s: %v", result.ID, err)
	}
	return result, nil
}

// dispatch runs one framework and converts any failure, panic included,
// into an error-carrying result so that siblings are unaffected.
func (s *local) dispatch(ctx context.Context, name string, ec *framework.Context,
	selection []string) (result *framework.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("framework %s panicked: %v", name, r)
			result = &framework.Result{FrameworkName: name, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()
	f, err := s.registry.Get(name)
	if err != nil {
		return &framework.Result{FrameworkName: name, Error: err.Error()}
	}
	r, err := f.Run(ctx, ec, selection)
	if err != nil {
		log.Errorf("framework %s failed: %v", name, err)
		return &framework.Result{FrameworkName: name, Error: err.Error()}
	}
	if r == nil {
		return &framework.Result{FrameworkName: name, Error: "framework returned no result"}
	}
	if r.FrameworkName == "" {
		r.FrameworkName = name
	}
	return r
}

// merge folds offline framework scores into the flattened automatic
// metrics and retains every framework's full result.
func (s *local) merge(ec *framework.Context, names []string,
	results []*framework.Result) *evalresult.EvaluationResult {
	merged := &evalresult.EvaluationResult{
		ID:               uuid.New().String(),
		Question:         ec.Question,
		Response:         ec.Answer,
		ExpectedAnswer:   ec.ExpectedAnswer,
		Category:         ec.Category,
		AutomaticMetrics: make(map[string]float64),
		FrameworkScores:  make(map[string]*framework.Result, len(results)),
		Status:           evalresult.StatusCompleted,
		CreatedAt:        time.Now(),
	}
	for i, result := range results {
		merged.FrameworkScores[result.FrameworkName] = result
		if result.Failed() {
			continue
		}
		f, err := s.registry.Get(names[i])
		if err != nil || !f.Offline() {
			continue
		}
		for metricName, mr := range result.Metrics {
			if mr.Score != nil {
				merged.AutomaticMetrics[metricName] = *mr.Score
			}
		}
	}
	return merged
}

// EvaluateBulk processes contexts in fixed-size batches. Items within a
// batch run concurrently on the worker pool; output preserves input order
// and a failed item yields a failed record in place.
func (s *local) EvaluateBulk(ctx context.Context, req *service.BulkRequest) ([]*evalresult.EvaluationResult, error) {
	if req == nil {
		return nil, errors.New("bulk request is nil")
	}
	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = s.batchSize
	}
	total := len(req.Contexts)
	results := make([]*evalresult.EvaluationResult, total)
	for offset := 0; offset < total; offset += batchSize {
		end := offset + batchSize
		if end > total {
			end = total
		}
		var wg sync.WaitGroup
		for i := offset; i < end; i++ {
			wg.Add(1)
			param := bulkItemParamPool.Get().(*bulkItemParam)
			param.idx = i
			param.ctx = ctx
			param.ec = req.Contexts[i]
			param.selection = req.Selection
			param.svc = s
			param.results = results
			param.wg = &wg
			if err := s.bulkPool.Invoke(param); err != nil {
				wg.Done()
				param.reset()
				bulkItemParamPool.Put(param)
				results[i] = failedResult(req.Contexts[i], fmt.Sprintf("submit evaluation: %v", err))
			}
		}
		wg.Wait()
		if req.Progress != nil {
			processed := end
			req.Progress(processed, total, float64(processed)/float64(total)*100)
		}
	}
	return results, nil
}

// evaluateBulkItem scores one bulk item, degrading errors into a failed record.
func (s *local) evaluateBulkItem(ctx context.Context, ec *framework.Context,
	selection []string) *evalresult.EvaluationResult {
	result, err := s.EvaluateSingle(ctx, ec, selection)
	if err != nil {
		return failedResult(ec, err.Error())
	}
	return result
}

// failedResult builds a failed record that keeps its position in bulk output.
func failedResult(ec *framework.Context, message string) *evalresult.EvaluationResult {
	result := &evalresult.EvaluationResult{
		ID:        uuid.New().String(),
		Status:    evalresult.StatusFailed,
		Error:     message,
		CreatedAt: time.Now(),
	}
	if ec != nil {
		result.Question = ec.Question
		result.Response = ec.Answer
		result.ExpectedAnswer = ec.ExpectedAnswer
		result.Category = ec.Category
	}
	return result
}

// AvailableMetrics lists each registered framework's metric names.
func (s *local) AvailableMetrics(_ context.Context) (map[string][]string, error) {
	names := s.registry.List()
	metrics := make(map[string][]string, len(names))
	for _, name := range names {
		f, err := s.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("get framework %s: %w", name, err)
		}
		metrics[name] = f.AvailableMetrics()
	}
	return metrics, nil
}
