//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package ngram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokens(s string) []string {
	return strings.Fields(s)
}

// TestNGrams verifies window extraction and the short-input edge case.
func TestNGrams(t *testing.T) {
	assert.Nil(t, NGrams(tokens("a b"), 3))
	assert.Nil(t, NGrams(nil, 1))
	assert.Len(t, NGrams(tokens("a b c"), 2), 2)
	assert.Equal(t, []string{"a\x00b", "b\x00c"}, NGrams(tokens("a b c"), 2))
}

// TestRougeN_Identity verifies that identical texts score 1.0 for unigrams and bigrams.
func TestRougeN_Identity(t *testing.T) {
	seq := tokens("the cat sat on the mat")
	for _, n := range []int{1, 2} {
		score := RougeN(seq, seq, n)
		assert.InDelta(t, 1.0, score.Precision, 1e-12, "n=%d", n)
		assert.InDelta(t, 1.0, score.Recall, 1e-12, "n=%d", n)
		assert.InDelta(t, 1.0, score.FMeasure, 1e-12, "n=%d", n)
	}
}

// TestRougeN_ExactMatch verifies the "the cat sat" scenario.
func TestRougeN_ExactMatch(t *testing.T) {
	score := RougeN(tokens("the cat sat"), tokens("the cat sat"), 1)
	assert.InDelta(t, 1.0, score.Precision, 1e-12)
	assert.InDelta(t, 1.0, score.Recall, 1e-12)
	assert.InDelta(t, 1.0, score.FMeasure, 1e-12)
}

// TestRougeN_PartialOverlap verifies set-based precision and recall.
func TestRougeN_PartialOverlap(t *testing.T) {
	// Candidate set {the, cat}, reference set {the, dog}: overlap {the}.
	score := RougeN(tokens("the cat"), tokens("the dog"), 1)
	assert.InDelta(t, 0.5, score.Precision, 1e-12)
	assert.InDelta(t, 0.5, score.Recall, 1e-12)
	assert.InDelta(t, 0.5, score.FMeasure, 1e-12)
}

// TestRougeN_Empty verifies that empty inputs score zero.
func TestRougeN_Empty(t *testing.T) {
	assert.Equal(t, Score{}, RougeN(nil, tokens("a"), 1))
	assert.Equal(t, Score{}, RougeN(tokens("a"), nil, 1))
	// Single token cannot form bigrams.
	assert.Equal(t, Score{}, RougeN(tokens("a"), tokens("a"), 2))
}

// TestRougeL_Identity verifies that identical sequences score 1.0.
func TestRougeL_Identity(t *testing.T) {
	seq := tokens("a b c d")
	score := RougeL(seq, seq)
	assert.InDelta(t, 1.0, score.FMeasure, 1e-12)
}

// TestRougeL_NonConsecutive verifies LCS matching of non-consecutive tokens.
func TestRougeL_NonConsecutive(t *testing.T) {
	// LCS of "testing two" against "testing one two" is "testing two" (length 2).
	score := RougeL(tokens("testing two"), tokens("testing one two"))
	assert.InDelta(t, 1.0, score.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, score.Recall, 1e-12)
	assert.InDelta(t, 4.0/5.0, score.FMeasure, 1e-12)
}

// TestRougeL_NoOverlap verifies that disjoint sequences score zero.
func TestRougeL_NoOverlap(t *testing.T) {
	score := RougeL(tokens("a b"), tokens("c d"))
	assert.InDelta(t, 0.0, score.FMeasure, 1e-12)
}
