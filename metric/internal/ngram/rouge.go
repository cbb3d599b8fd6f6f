//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package ngram computes ROUGE and BLEU overlap scores over token sequences.
package ngram

import "strings"

// Score holds precision, recall, and F-measure for one overlap metric.
type Score struct {
	// Precision is the fraction of candidate units matched in the reference.
	Precision float64
	// Recall is the fraction of reference units matched by the candidate.
	Recall float64
	// FMeasure is the harmonic mean of precision and recall.
	FMeasure float64
}

// fMeasure returns the harmonic mean of precision and recall, or 0 when both are 0.
func fMeasure(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// NGrams returns all contiguous token windows of length n joined with a
// delimiter that cannot appear inside a token. The result is empty when
// len(tokens) < n.
func NGrams(tokens []string, n int) []string {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], "\x00"))
	}
	return grams
}

// RougeN computes ROUGE-N over distinct n-grams: precision is the overlap
// divided by the candidate's distinct n-grams, recall divides by the
// reference's. Empty candidate or reference scores zero.
func RougeN(candidateTokens, referenceTokens []string, n int) Score {
	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		return Score{}
	}
	candidateSet := distinct(NGrams(candidateTokens, n))
	referenceSet := distinct(NGrams(referenceTokens, n))
	if len(candidateSet) == 0 || len(referenceSet) == 0 {
		return Score{}
	}
	overlap := 0
	for gram := range candidateSet {
		if _, ok := referenceSet[gram]; ok {
			overlap++
		}
	}
	precision := float64(overlap) / float64(len(candidateSet))
	recall := float64(overlap) / float64(len(referenceSet))
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// RougeL computes ROUGE-L from the longest common subsequence of the token
// sequences. Empty candidate or reference scores zero.
func RougeL(candidateTokens, referenceTokens []string) Score {
	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		return Score{}
	}
	lcsLen := lcsLength(referenceTokens, candidateTokens)
	precision := float64(lcsLen) / float64(len(candidateTokens))
	recall := float64(lcsLen) / float64(len(referenceTokens))
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// lcsLength computes the length of the longest common subsequence with a
// two-row dynamic programming table.
func lcsLength(ref, can []string) int {
	if len(ref) == 0 || len(can) == 0 {
		return 0
	}
	prev := make([]int, len(can)+1)
	curr := make([]int, len(can)+1)
	for i := 1; i <= len(ref); i++ {
		curr[0] = 0
		for j := 1; j <= len(can); j++ {
			if ref[i-1] == can[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(can)]
}

// distinct builds a set from a slice of n-gram keys.
func distinct(grams []string) map[string]struct{} {
	set := make(map[string]struct{}, len(grams))
	for _, gram := range grams {
		set[gram] = struct{}{}
	}
	return set
}
