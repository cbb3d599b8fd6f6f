//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric computes offline text similarity and quality metrics.
package metric

// Metric name constants for the built-in catalog.
const (
	// Rouge1 is unigram overlap F1 against the expected answer.
	Rouge1 = "rouge1"
	// Rouge2 is bigram overlap F1 against the expected answer.
	Rouge2 = "rouge2"
	// RougeL is longest-common-subsequence F1 against the expected answer.
	RougeL = "rougeL"
	// Bleu is the unsmoothed 4-gram BLEU score against the expected answer.
	Bleu = "bleu"
	// MeteorApprox is a simplified METEOR-like alignment score.
	MeteorApprox = "meteor_approx"
	// Coherence is an intrinsic consistency score of the answer.
	Coherence = "coherence"
	// Relevance is the token overlap of the answer with the question and context.
	Relevance = "relevance"
	// Fluency is an intrinsic readability score of the answer.
	Fluency = "fluency"
	// Informativeness is an intrinsic content richness score of the answer.
	Informativeness = "informativeness"
	// LengthRatio compares answer length against the expected answer.
	LengthRatio = "length_ratio"
	// WordOverlap is the Jaccard index against the expected answer.
	WordOverlap = "word_overlap"
	// SentenceSimilarity is best-match sentence Jaccard against the expected answer.
	SentenceSimilarity = "sentence_similarity"
)

// catalog lists every built-in metric in canonical order.
var catalog = []string{
	Rouge1, Rouge2, RougeL, Bleu, MeteorApprox,
	Coherence, Relevance, Fluency, Informativeness,
	LengthRatio, WordOverlap, SentenceSimilarity,
}

// referenceGated marks the metrics that require an expected answer.
var referenceGated = map[string]struct{}{
	Rouge1:             {},
	Rouge2:             {},
	RougeL:             {},
	Bleu:               {},
	MeteorApprox:       {},
	LengthRatio:        {},
	WordOverlap:        {},
	SentenceSimilarity: {},
}

// Names returns the full metric catalog in canonical order.
func Names() []string {
	names := make([]string, len(catalog))
	copy(names, catalog)
	return names
}

// Known reports whether name is a built-in metric.
func Known(name string) bool {
	for _, known := range catalog {
		if known == name {
			return true
		}
	}
	return false
}

// RequiresReference reports whether the metric can only be computed when an
// expected answer is available.
func RequiresReference(name string) bool {
	_, ok := referenceGated[name]
	return ok
}
