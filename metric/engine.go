//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-eval-go/framework"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/metric/internal/heuristic"
	"trpc.group/trpc-go/trpc-eval-go/metric/internal/ngram"
	"trpc.group/trpc-go/trpc-eval-go/metric/internal/text"
)

// Engine computes the built-in metric catalog for an evaluation context.
// The zero value is not usable; construct with NewEngine.
type Engine struct{}

// NewEngine creates a metrics engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate computes the selected metrics for the evaluation context.
// An empty selection means the full catalog. Unknown metric names are
// ignored, and reference-gated metrics are omitted when the context has no
// expected answer. A scorer failure defaults that metric to 0.0 and is
// logged; it never fails the whole evaluation.
func (e *Engine) Evaluate(ctx context.Context, ec *framework.Context, selection []string) (map[string]float64, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if ec == nil {
		return nil, fmt.Errorf("evaluation context is nil")
	}
	names := selection
	if len(names) == 0 {
		names = catalog
	}
	results := make(map[string]float64, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !Known(name) {
			continue
		}
		if RequiresReference(name) && ec.ExpectedAnswer == "" {
			continue
		}
		results[name] = e.compute(name, ec)
	}
	return results, nil
}

// compute runs a single scorer and recovers a panicking scorer to 0.0.
func (e *Engine) compute(name string, ec *framework.Context) (score float64) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Errorf("metric %s computation failed: %v", name, recovered)
			score = 0.0
		}
	}()
	switch name {
	case Rouge1:
		return ngram.RougeN(text.Tokenize(ec.Answer), text.Tokenize(ec.ExpectedAnswer), 1).FMeasure
	case Rouge2:
		return ngram.RougeN(text.Tokenize(ec.Answer), text.Tokenize(ec.ExpectedAnswer), 2).FMeasure
	case RougeL:
		return ngram.RougeL(text.Tokenize(ec.Answer), text.Tokenize(ec.ExpectedAnswer)).FMeasure
	case Bleu:
		return ngram.Bleu(text.Tokenize(ec.Answer), text.Tokenize(ec.ExpectedAnswer))
	case MeteorApprox:
		return heuristic.Alignment(ec.Answer, ec.ExpectedAnswer)
	case Coherence:
		return heuristic.Coherence(ec.Answer)
	case Relevance:
		return heuristic.Relevance(ec.Question, ec.Answer, ec.Context)
	case Fluency:
		return heuristic.Fluency(ec.Answer)
	case Informativeness:
		return heuristic.Informativeness(ec.Answer)
	case LengthRatio:
		return heuristic.LengthRatio(ec.Answer, ec.ExpectedAnswer)
	case WordOverlap:
		return heuristic.WordOverlap(ec.Answer, ec.ExpectedAnswer)
	case SentenceSimilarity:
		return heuristic.SentenceSimilarity(ec.Answer, ec.ExpectedAnswer)
	}
	return 0.0
}
