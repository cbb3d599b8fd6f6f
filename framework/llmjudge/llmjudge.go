//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package llmjudge implements a scoring framework backed by an LLM judge.
package llmjudge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"text/template"

	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

// FrameworkName is the registry name of the judge framework.
const FrameworkName = "llm_judge"

// Judge metric names.
const (
	// MetricRelevance grades how well the answer addresses the question.
	MetricRelevance = "judge_relevance"
	// MetricAccuracy grades factual agreement with the reference and context.
	MetricAccuracy = "judge_accuracy"
	// MetricCompleteness grades coverage of the question's requirements.
	MetricCompleteness = "judge_completeness"
	// MetricOverall grades overall response quality.
	MetricOverall = "judge_overall"
)

// judgePrompt asks the judge model for integer grades in a fixed format so
// that the scores can be extracted without a structured-output capable model.
const judgePrompt = `You are an expert rater for AI generated answers. Grade the answer below on a scale from 0 to 10 for each criterion. Be strict and consistent.

Criteria:
- relevance: how directly the answer addresses the question.
- accuracy: factual agreement with the reference answer and context when given; general factual correctness otherwise.
- completeness: how fully the answer covers what the question asks for.
- overall: overall quality of the answer.

Inputs:
Question: {{.Question}}
Answer: {{.Answer}}
{{- if .Context}}
Context: {{.Context}}
{{- end}}
{{- if .ExpectedAnswer}}
Reference answer: {{.ExpectedAnswer}}
{{- end}}

Respond with a json alone which follows the structure below:
{
  "relevance": [0-10],
  "accuracy": [0-10],
  "completeness": [0-10],
  "overall": [0-10],
  "reasoning": "[short justification]"
}`

var (
	// judgePromptTemplate renders the judge prompt with evaluation data.
	judgePromptTemplate = template.Must(template.New("judgePrompt").Parse(judgePrompt))
	// gradeREs extract the integer grade for each criterion from judge output.
	gradeREs = map[string]*regexp.Regexp{
		MetricRelevance:    regexp.MustCompile(`"relevance"\s*:\s*\[?\s*(\d+(?:\.\d+)?)`),
		MetricAccuracy:     regexp.MustCompile(`"accuracy"\s*:\s*\[?\s*(\d+(?:\.\d+)?)`),
		MetricCompleteness: regexp.MustCompile(`"completeness"\s*:\s*\[?\s*(\d+(?:\.\d+)?)`),
		MetricOverall:      regexp.MustCompile(`"overall"\s*:\s*\[?\s*(\d+(?:\.\d+)?)`),
	}
	// reasoningRE extracts the judge's free-form justification.
	reasoningRE = regexp.MustCompile(`"reasoning"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// Framework scores evaluation contexts by prompting a judge model.
type Framework struct {
	generator  model.Generator
	judgeModel string
}

// New creates a judge framework that prompts judgeModel through generator.
func New(generator model.Generator, judgeModel string) (*Framework, error) {
	if generator == nil {
		return nil, errors.New("generator is nil")
	}
	if judgeModel == "" {
		return nil, errors.New("judge model is empty")
	}
	return &Framework{generator: generator, judgeModel: judgeModel}, nil
}

// Name returns the registry name of the framework.
func (f *Framework) Name() string { return FrameworkName }

// Description explains what the framework scores.
func (f *Framework) Description() string {
	return "Grades answers with an LLM judge on relevance, accuracy, completeness, and overall quality"
}

// AvailableMetrics returns the judge metric names.
func (f *Framework) AvailableMetrics() []string {
	return []string{MetricRelevance, MetricAccuracy, MetricCompleteness, MetricOverall}
}

// Offline reports that the framework depends on an external model service.
func (f *Framework) Offline() bool { return false }

// Run prompts the judge model once and extracts the selected grades.
// An empty selection means all judge metrics. The judge call is skipped
// entirely when the selection names none of them.
func (f *Framework) Run(ctx context.Context, ec *framework.Context, selection []string) (*framework.Result, error) {
	if ec == nil {
		return nil, errors.New("evaluation context is nil")
	}
	wanted := f.effectiveSelection(selection)
	if len(wanted) == 0 {
		return &framework.Result{FrameworkName: FrameworkName, Metrics: map[string]framework.MetricResult{}}, nil
	}

	var prompt bytes.Buffer
	if err := judgePromptTemplate.Execute(&prompt, ec); err != nil {
		return nil, fmt.Errorf("render judge prompt: %w", err)
	}
	response, err := f.generator.Generate(ctx, &model.Request{
		Model:  f.judgeModel,
		Prompt: prompt.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("judge model %s: %w", f.judgeModel, err)
	}

	reasoning := ""
	if match := reasoningRE.FindStringSubmatch(response.Text); match != nil {
		reasoning = match[1]
	}
	metrics := make(map[string]framework.MetricResult, len(wanted))
	for _, name := range wanted {
		grade, ok := parseGrade(gradeREs[name], response.Text)
		if !ok {
			metrics[name] = framework.MetricResult{Success: false, Reason: "grade missing from judge output"}
			continue
		}
		result := framework.NewScore(grade)
		if name == MetricOverall {
			result.Reason = reasoning
		}
		metrics[name] = result
	}
	return &framework.Result{FrameworkName: FrameworkName, Metrics: metrics}, nil
}

// effectiveSelection intersects the caller's selection with the judge metrics.
func (f *Framework) effectiveSelection(selection []string) []string {
	available := f.AvailableMetrics()
	if len(selection) == 0 {
		return available
	}
	requested := make(map[string]struct{}, len(selection))
	for _, name := range selection {
		requested[name] = struct{}{}
	}
	wanted := make([]string, 0, len(available))
	for _, name := range available {
		if _, ok := requested[name]; ok {
			wanted = append(wanted, name)
		}
	}
	return wanted
}

// parseGrade extracts a 0-10 grade and normalizes it into [0, 1].
func parseGrade(re *regexp.Regexp, output string) (float64, bool) {
	match := re.FindStringSubmatch(output)
	if match == nil {
		return 0, false
	}
	grade, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	score := grade / 10
	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score, true
}

// Ensure interface compliance.
var _ framework.Framework = (*Framework)(nil)
