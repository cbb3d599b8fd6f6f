//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package openai

// Pricing holds per-1K-token prices in USD for one model.
type Pricing struct {
	// PromptPer1K is the price per 1000 prompt tokens.
	PromptPer1K float64 `json:"prompt_per_1k" yaml:"prompt_per_1k"`
	// CompletionPer1K is the price per 1000 completion tokens.
	CompletionPer1K float64 `json:"completion_per_1k" yaml:"completion_per_1k"`
}

// options holds the configuration for the generator.
type options struct {
	apiKey       string
	baseURL      string
	extraHeaders map[string]string
	pricing      map[string]Pricing
}

// Option defines a function type for configuring the generator.
type Option func(*options)

// newOptions creates options with defaults applied.
func newOptions(opt ...Option) *options {
	opts := &options{
		pricing: map[string]Pricing{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithAPIKey sets the API key, overriding the environment.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL sets the endpoint base URL, overriding the environment.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithExtraHeader adds a header to every request, e.g. the attribution
// headers some aggregators expect.
func WithExtraHeader(key, value string) Option {
	return func(o *options) {
		if o.extraHeaders == nil {
			o.extraHeaders = map[string]string{}
		}
		o.extraHeaders[key] = value
	}
}

// WithPricing sets the per-1K-token price for a model, enabling cost
// accounting in generation responses.
func WithPricing(model string, pricing Pricing) Option {
	return func(o *options) {
		o.pricing[model] = pricing
	}
}
