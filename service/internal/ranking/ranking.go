//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package ranking computes composite scores and rankings for model comparisons.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

// Entry is one ranked model candidate.
type Entry struct {
	// ModelName identifies the candidate.
	ModelName string
	// Score is the candidate's composite score.
	Score float64
	// ResponseTime is the generation latency in seconds, the first tie-break.
	ResponseTime float64
	// Cost is the generation cost, the second tie-break; nil sorts last.
	Cost *float64
}

// Composite returns the arithmetic mean of every numeric score in the
// result: the merged automatic metrics plus each framework's successful
// metric values. Scores reported both ways count each time they appear.
// A result with no numeric scores has composite 0.
func Composite(result *evalresult.EvaluationResult) float64 {
	if result == nil {
		return 0
	}
	sum, count := 0.0, 0
	for _, value := range result.AutomaticMetrics {
		sum += value
		count++
	}
	for _, fr := range result.FrameworkScores {
		if fr == nil || fr.Failed() {
			continue
		}
		for _, mr := range fr.Metrics {
			if mr.Score == nil {
				continue
			}
			sum += *mr.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Rank sorts entries in place: higher score first, then faster response,
// then lower cost, then model name for determinism.
func Rank(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.ResponseTime != b.ResponseTime {
			return a.ResponseTime < b.ResponseTime
		}
		if ca, cb := costValue(a.Cost), costValue(b.Cost); ca != cb {
			return ca < cb
		}
		return a.ModelName < b.ModelName
	})
}

// Reason builds the winner justification from the ranked entries.
// With a runner-up present it also reports the score gap.
func Reason(ranked []*Entry) string {
	if len(ranked) == 0 {
		return ""
	}
	if len(ranked) == 1 {
		return fmt.Sprintf("Highest overall score: %.3f", ranked[0].Score)
	}
	return fmt.Sprintf("Highest overall score: %.3f (%.3f points ahead of %s)",
		ranked[0].Score, ranked[0].Score-ranked[1].Score, ranked[1].ModelName)
}

// costValue maps a missing cost behind every known cost.
func costValue(cost *float64) float64 {
	if cost == nil {
		return math.MaxFloat64
	}
	return *cost
}
