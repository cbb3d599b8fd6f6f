//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package model defines the LLM generation collaborator contract.
package model

import "context"

// Request describes one generation call to a model provider.
type Request struct {
	// Model is the provider-qualified model identifier.
	Model string `json:"model"`
	// Prompt is the user prompt sent to the model.
	Prompt string `json:"prompt"`
	// Context is optional grounding material sent as the system message.
	Context string `json:"context,omitempty"`
	// Temperature overrides the provider default when set.
	Temperature *float64 `json:"temperature,omitempty"`
	// MaxTokens caps the completion length when set.
	MaxTokens *int64 `json:"max_tokens,omitempty"`
	// TopP overrides nucleus sampling when set.
	TopP *float64 `json:"top_p,omitempty"`
}

// Response carries the generated text and its usage accounting.
type Response struct {
	// Text is the generated completion text.
	Text string `json:"text"`
	// TokensUsed is the total token count reported by the provider.
	TokensUsed int `json:"tokens_used"`
	// PromptTokens is the prompt token count reported by the provider.
	PromptTokens int `json:"prompt_tokens"`
	// CompletionTokens is the completion token count reported by the provider.
	CompletionTokens int `json:"completion_tokens"`
	// ResponseTime is the wall-clock generation latency in seconds.
	ResponseTime float64 `json:"response_time"`
	// Cost is the approximate request cost in USD, nil when pricing is unknown.
	Cost *float64 `json:"cost,omitempty"`
}

// Generator generates model completions.
//
// Implementations must be safe for concurrent use; a network or provider
// error is reported through the returned error.
type Generator interface {
	// Generate produces a completion for the request.
	Generate(ctx context.Context, req *Request) (*Response, error)
}
