//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package service

import (
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	evalresultinmemory "trpc.group/trpc-go/trpc-eval-go/evalresult/inmemory"
	"trpc.group/trpc-go/trpc-eval-go/framework/registry"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// Options holds the options for the evaluation service.
type Options struct {
	Registry      registry.Registry  // Registry holds the scorer frameworks.
	ResultManager evalresult.Manager // ResultManager stores evaluation results.
	Generator     model.Generator    // Generator produces model responses for comparisons.
	BatchSize     int                // BatchSize caps per-batch bulk concurrency.
	Parallelism   int                // Parallelism sizes the bulk worker pool.
}

// Option defines a function type for configuring the evaluation service.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		Registry:      registry.New(),
		ResultManager: evalresultinmemory.NewManager(),
		BatchSize:     DefaultBatchSize,
		Parallelism:   DefaultBatchSize,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithRegistry sets the framework registry.
// An empty registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithResultManager sets the evaluation result manager.
// InMemory result manager is used by default.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *Options) {
		o.ResultManager = m
	}
}

// WithGenerator sets the model generator used by comparisons.
// Comparisons fail without one; single and bulk evaluation do not need it.
func WithGenerator(g model.Generator) Option {
	return func(o *Options) {
		o.Generator = g
	}
}

// WithBatchSize sets the default bulk batch size.
func WithBatchSize(size int) Option {
	return func(o *Options) {
		o.BatchSize = size
	}
}

// WithParallelism sets the bulk worker pool size.
func WithParallelism(parallelism int) Option {
	return func(o *Options) {
		o.Parallelism = parallelism
	}
}
