//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package trpceval

import (
	"trpc.group/trpc-go/trpc-eval-go/config"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// options holds the assembly configuration.
type options struct {
	cfg           *config.Config
	generator     model.Generator
	resultManager evalresult.Manager
	frameworks    []framework.Framework
}

// Option defines a function type for configuring the assembly.
type Option func(*options)

// newOptions creates options with the default configuration applied.
func newOptions(opt ...Option) *options {
	opts := &options{
		cfg: config.Default(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithConfig sets the service configuration.
// The default configuration is used when not provided.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg != nil {
			o.cfg = cfg
		}
	}
}

// WithGenerator overrides the model gateway built from configuration.
func WithGenerator(g model.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithResultManager overrides the evaluation result storage.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.resultManager = m
	}
}

// WithFramework registers an additional scorer framework beyond the
// configuration-enabled ones.
func WithFramework(f framework.Framework) Option {
	return func(o *options) {
		o.frameworks = append(o.frameworks, f)
	}
}
