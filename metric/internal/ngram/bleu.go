//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package ngram

import "math"

// bleuMaxOrder is the highest n-gram order used by Bleu.
const bleuMaxOrder = 4

// Bleu computes an unsmoothed BLEU score with equal weights over n-gram
// orders 1..4 and a brevity penalty for short candidates.
//
// Each order's precision uses clipped counts: every candidate n-gram counts
// at most as often as it appears in the reference. An order with zero
// candidate n-grams has precision 0, which collapses the geometric mean to
// 0. No smoothing is applied.
func Bleu(candidateTokens, referenceTokens []string) float64 {
	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		return 0.0
	}

	precisions := make([]float64, 0, bleuMaxOrder)
	for n := 1; n <= bleuMaxOrder; n++ {
		candidateGrams := NGrams(candidateTokens, n)
		if len(candidateGrams) == 0 {
			precisions = append(precisions, 0.0)
			continue
		}
		referenceCounts := counts(NGrams(referenceTokens, n))
		candidateCounts := counts(candidateGrams)

		overlap := 0
		for gram, cnt := range candidateCounts {
			refCnt := referenceCounts[gram]
			if cnt < refCnt {
				overlap += cnt
			} else {
				overlap += refCnt
			}
		}
		precisions = append(precisions, float64(overlap)/float64(len(candidateGrams)))
	}

	geoMean := 0.0
	allPositive := true
	for _, p := range precisions {
		if p <= 0 {
			allPositive = false
			break
		}
	}
	if allPositive {
		logSum := 0.0
		for _, p := range precisions {
			logSum += math.Log(p) / bleuMaxOrder
		}
		geoMean = math.Exp(logSum)
	}

	brevity := math.Exp(1 - float64(len(referenceTokens))/float64(len(candidateTokens)))
	if brevity > 1.0 {
		brevity = 1.0
	}
	return brevity * geoMean
}

// counts builds a multiset from a slice of n-gram keys.
func counts(grams []string) map[string]int {
	multiset := make(map[string]int, len(grams))
	for _, gram := range grams {
		multiset[gram]++
	}
	return multiset
}
