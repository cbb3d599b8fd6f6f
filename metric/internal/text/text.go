//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package text provides word and sentence tokenization shared by the metric scorers.
package text

import (
	"regexp"
	"strings"
)

var (
	// wordRE matches a contiguous run of lowercase ASCII letters and digits.
	wordRE = regexp.MustCompile(`[a-z0-9]+`)
	// sentenceRE matches one or more sentence terminators for splitting.
	sentenceRE = regexp.MustCompile(`[.!?]+`)
)

// Tokenize lowercases the text and extracts contiguous alphanumeric runs as tokens.
// Punctuation acts purely as a separator. Empty input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return wordRE.FindAllString(strings.ToLower(text), -1)
}

// TokenSet returns the distinct tokens of the text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Sentences splits the text on sentence terminators and drops empty fragments.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := sentenceRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}

// Jaccard returns the Jaccard index of two token sets.
// Two empty sets are identical (1.0); exactly one empty set scores 0.0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Intersection returns the number of tokens present in both sets.
func Intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for token := range a {
		if _, ok := b[token]; ok {
			count++
		}
	}
	return count
}
