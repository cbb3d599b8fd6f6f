//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible model.Generator.
//
// The generator works against any endpoint speaking the OpenAI chat
// completion protocol, including aggregators such as OpenRouter.
package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// Generator is an OpenAI-compatible implementation of model.Generator.
type Generator struct {
	client  openai.Client
	pricing map[string]Pricing
}

// New creates a generator configured with the supplied options.
// The openai client reads OPENAI_API_KEY and OPENAI_BASE_URL from the
// environment when no explicit key or base URL is provided.
func New(opt ...Option) *Generator {
	opts := newOptions(opt...)
	clientOpts := []openaiopt.RequestOption{}
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.baseURL))
	}
	for key, value := range opts.extraHeaders {
		clientOpts = append(clientOpts, openaiopt.WithHeader(key, value))
	}
	return &Generator{
		client:  openai.NewClient(clientOpts...),
		pricing: opts.pricing,
	}
}

// Generate produces a completion via the chat completions endpoint.
// The request context becomes the system message when present.
func (g *Generator) Generate(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req == nil {
		return nil, errors.New("generate request is nil")
	}
	if req.Model == "" {
		return nil, errors.New("model name is empty")
	}
	if req.Prompt == "" {
		return nil, errors.New("prompt is empty")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Context != "" {
		messages = append(messages, openai.SystemMessage(req.Context))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(*req.MaxTokens)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}

	start := time.Now()
	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion for model %s: %w", req.Model, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion for model %s: no choices returned", req.Model)
	}
	elapsed := time.Since(start).Seconds()
	log.Debugf("generated response for %s in %.2fs", req.Model, elapsed)

	return &model.Response{
		Text:             completion.Choices[0].Message.Content,
		TokensUsed:       int(completion.Usage.TotalTokens),
		PromptTokens:     int(completion.Usage.PromptTokens),
		CompletionTokens: int(completion.Usage.CompletionTokens),
		ResponseTime:     elapsed,
		Cost:             g.cost(req.Model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens),
	}, nil
}

// cost returns the approximate request cost from the per-1K-token price
// table, or nil when the model has no configured pricing.
func (g *Generator) cost(modelName string, promptTokens, completionTokens int64) *float64 {
	pricing, ok := g.pricing[modelName]
	if !ok {
		return nil
	}
	cost := float64(promptTokens)/1000*pricing.PromptPer1K +
		float64(completionTokens)/1000*pricing.CompletionPer1K
	cost = math.Round(cost*1e6) / 1e6
	return &cost
}

// Ensure interface compliance.
var _ model.Generator = (*Generator)(nil)
