//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/framework"
)

// TestComposite verifies the mean over automatic and framework scores.
func TestComposite(t *testing.T) {
	result := &evalresult.EvaluationResult{
		AutomaticMetrics: map[string]float64{"rouge1": 0.4, "bleu": 0.2},
		FrameworkScores: map[string]*framework.Result{
			"basic": {
				FrameworkName: "basic",
				Metrics: map[string]framework.MetricResult{
					"rouge1": framework.NewScore(0.4),
					"bleu":   framework.NewScore(0.2),
				},
			},
			"llm_judge": {
				FrameworkName: "llm_judge",
				Metrics: map[string]framework.MetricResult{
					"judge_overall": framework.NewScore(0.8),
					"unscored":      {Success: false},
				},
			},
		},
	}
	// (0.4+0.2) merged + (0.4+0.2) from basic + 0.8 from the judge over 5 values.
	assert.InDelta(t, 2.0/5, Composite(result), 1e-12)
}

// TestComposite_Empty verifies the zero default and failed-framework exclusion.
func TestComposite_Empty(t *testing.T) {
	assert.Zero(t, Composite(nil))
	assert.Zero(t, Composite(&evalresult.EvaluationResult{}))
	assert.Zero(t, Composite(&evalresult.EvaluationResult{
		FrameworkScores: map[string]*framework.Result{
			"broken": {FrameworkName: "broken", Error: "boom"},
		},
	}))
}

// TestRank_TieBreaks verifies ordering by score, response time, then cost.
func TestRank_TieBreaks(t *testing.T) {
	cheap, pricey := 0.01, 0.02
	entries := []*Entry{
		{ModelName: "a", Score: 0.9, ResponseTime: 2, Cost: &cheap},
		{ModelName: "b", Score: 0.9, ResponseTime: 1, Cost: &pricey},
		{ModelName: "c", Score: 0.95, ResponseTime: 5, Cost: &pricey},
	}
	Rank(entries)
	assert.Equal(t, "c", entries[0].ModelName)
	assert.Equal(t, "b", entries[1].ModelName) // faster beats cheaper at equal score
	assert.Equal(t, "a", entries[2].ModelName)
}

// TestRank_CostTieBreak verifies the cost tie-break and nil-cost ordering.
func TestRank_CostTieBreak(t *testing.T) {
	cheap, pricey := 0.01, 0.02
	entries := []*Entry{
		{ModelName: "a", Score: 0.9, ResponseTime: 1, Cost: &pricey},
		{ModelName: "b", Score: 0.9, ResponseTime: 1, Cost: &cheap},
		{ModelName: "c", Score: 0.9, ResponseTime: 1},
	}
	Rank(entries)
	assert.Equal(t, "b", entries[0].ModelName)
	assert.Equal(t, "a", entries[1].ModelName)
	assert.Equal(t, "c", entries[2].ModelName) // unknown cost sorts last
}

// TestReason verifies the winner justification strings.
func TestReason(t *testing.T) {
	assert.Empty(t, Reason(nil))

	single := []*Entry{{ModelName: "a", Score: 0.875}}
	assert.Equal(t, "Highest overall score: 0.875", Reason(single))

	ranked := []*Entry{
		{ModelName: "a", Score: 0.9},
		{ModelName: "b", Score: 0.7},
	}
	require.Equal(t, "Highest overall score: 0.900 (0.200 points ahead of b)", Reason(ranked))
}
