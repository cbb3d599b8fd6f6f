//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package trpceval assembles a ready-to-use evaluation service from configuration.
package trpceval

import (
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/framework/basic"
	"trpc.group/trpc-go/trpc-eval-go/framework/llmjudge"
	"trpc.group/trpc-go/trpc-eval-go/framework/registry"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/model/openai"
	"trpc.group/trpc-go/trpc-eval-go/service"
	"trpc.group/trpc-go/trpc-eval-go/service/local"
)

// New builds an evaluation service from the resolved options: it registers
// the enabled frameworks, wires the model gateway, and returns a local
// orchestration service.
func New(opt ...Option) (service.Service, error) {
	opts := newOptions(opt...)
	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	log.SetLevel(cfg.LogLevel)

	generator := opts.generator
	if generator == nil {
		generatorOpts := []openai.Option{}
		if cfg.Gateway.APIKey != "" {
			generatorOpts = append(generatorOpts, openai.WithAPIKey(cfg.Gateway.APIKey))
		}
		if cfg.Gateway.BaseURL != "" {
			generatorOpts = append(generatorOpts, openai.WithBaseURL(cfg.Gateway.BaseURL))
		}
		for name, pricing := range cfg.Gateway.Pricing {
			generatorOpts = append(generatorOpts, openai.WithPricing(name, pricing))
		}
		generator = openai.New(generatorOpts...)
	}

	r := registry.New()
	if cfg.Frameworks.Basic {
		if err := r.Register("", basic.New()); err != nil {
			return nil, fmt.Errorf("register basic framework: %w", err)
		}
	}
	if cfg.Frameworks.LLMJudge {
		judge, err := llmjudge.New(generator, cfg.Judge.Model)
		if err != nil {
			return nil, fmt.Errorf("create llm judge framework: %w", err)
		}
		if err := r.Register("", judge); err != nil {
			return nil, fmt.Errorf("register llm judge framework: %w", err)
		}
	}
	for _, f := range opts.frameworks {
		if err := r.Register("", f); err != nil {
			return nil, fmt.Errorf("register framework: %w", err)
		}
	}

	serviceOpts := []service.Option{
		service.WithRegistry(r),
		service.WithGenerator(generator),
		service.WithBatchSize(cfg.Evaluation.BatchSize),
		service.WithParallelism(cfg.Evaluation.Parallelism),
	}
	if opts.resultManager != nil {
		serviceOpts = append(serviceOpts, service.WithResultManager(opts.resultManager))
	}
	return local.New(serviceOpts...)
}
