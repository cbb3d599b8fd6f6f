//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package config loads the evaluation service configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"trpc.group/trpc-go/trpc-eval-go/model/openai"
)

// Environment variables recognized by Load.
const (
	envAPIKey   = "OPENAI_API_KEY"
	envBaseURL  = "OPENAI_BASE_URL"
	envLogLevel = "EVAL_LOG_LEVEL"
)

// Config is the top-level evaluation service configuration.
type Config struct {
	// Frameworks toggles the scorer frameworks registered at startup.
	Frameworks FrameworksConfig `yaml:"frameworks" json:"frameworks"`
	// Gateway configures the OpenAI-compatible model gateway.
	Gateway GatewayConfig `yaml:"gateway" json:"gateway"`
	// Judge configures the LLM judge framework.
	Judge JudgeConfig `yaml:"judge" json:"judge"`
	// Evaluation configures orchestration behavior.
	Evaluation EvaluationConfig `yaml:"evaluation" json:"evaluation"`
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// FrameworksConfig holds the per-framework enable flags.
type FrameworksConfig struct {
	// Basic enables the built-in metrics engine framework.
	Basic bool `yaml:"basic" json:"basic"`
	// LLMJudge enables the LLM judge framework. It requires gateway
	// credentials and a judge model.
	LLMJudge bool `yaml:"llm_judge" json:"llm_judge"`
}

// GatewayConfig configures the model gateway used for generation and judging.
type GatewayConfig struct {
	// APIKey authenticates against the gateway. The OPENAI_API_KEY
	// environment variable takes precedence when set.
	APIKey string `yaml:"api_key" json:"api_key"`
	// BaseURL points at an OpenAI-compatible endpoint. The
	// OPENAI_BASE_URL environment variable takes precedence when set.
	BaseURL string `yaml:"base_url" json:"base_url"`
	// Pricing holds the per-1K-token price table keyed by model name.
	Pricing map[string]openai.Pricing `yaml:"pricing,omitempty" json:"pricing,omitempty"`
}

// JudgeConfig configures the LLM judge framework.
type JudgeConfig struct {
	// Model is the judge model name.
	Model string `yaml:"model" json:"model"`
}

// EvaluationConfig configures orchestration behavior.
type EvaluationConfig struct {
	// BatchSize caps per-batch bulk concurrency.
	BatchSize int `yaml:"batch_size" json:"batch_size"`
	// Parallelism sizes the bulk worker pool.
	Parallelism int `yaml:"parallelism" json:"parallelism"`
}

// Default returns the default configuration: the basic framework enabled,
// bulk batches of ten, and info-level logging.
func Default() *Config {
	return &Config{
		Frameworks: FrameworksConfig{Basic: true},
		Evaluation: EvaluationConfig{BatchSize: 10, Parallelism: 10},
		LogLevel:   "info",
	}
}

// Load reads a YAML configuration file, applies environment overrides, and
// validates the result. Absent fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses YAML configuration bytes on top of the defaults.
func LoadBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if key := os.Getenv(envAPIKey); key != "" {
		c.Gateway.APIKey = key
	}
	if url := os.Getenv(envBaseURL); url != "" {
		c.Gateway.BaseURL = url
	}
	if level := os.Getenv(envLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	if c.Evaluation.BatchSize <= 0 {
		return errors.New("evaluation batch size must be greater than 0")
	}
	if c.Evaluation.Parallelism <= 0 {
		return errors.New("evaluation parallelism must be greater than 0")
	}
	if c.Frameworks.LLMJudge && c.Judge.Model == "" {
		return errors.New("llm judge framework enabled without a judge model")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
