//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package heuristic provides lightweight linguistic quality scorers.
//
// Every scorer returns a value in [0, 1] and 0.0 when required inputs are
// missing. The scorers are deterministic and depend only on their arguments.
package heuristic

import (
	"math"
	"regexp"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/metric/internal/text"
)

var (
	// entityRE matches a capitalized word, used as a rough entity mention.
	entityRE = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	// terminatorRE matches a single sentence terminator.
	terminatorRE = regexp.MustCompile(`[.!?]`)
)

// connectors are discourse markers that indicate inter-sentence structure.
var connectors = []string{
	"however", "therefore", "moreover", "furthermore", "additionally",
	"consequently", "meanwhile", "similarly", "in contrast", "as a result",
}

// functionWords are common grammatical markers used by the fluency scorer.
var functionWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "have": {}, "has": {}, "had": {},
}

// stopWords is the fixed stop-word set used by the informativeness scorer.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"my": {}, "your": {}, "his": {}, "its": {}, "our": {}, "their": {},
}

// Alignment computes a simplified METEOR-like alignment score from unigram
// set precision and recall with a recall-weighted F-mean and a fragmentation
// penalty of 0.5 * matches / |candidate tokens|.
func Alignment(candidate, reference string) float64 {
	candidateTokens := text.Tokenize(candidate)
	referenceTokens := text.Tokenize(reference)
	if len(candidateTokens) == 0 || len(referenceTokens) == 0 {
		return 0.0
	}

	candidateSet := text.TokenSet(candidate)
	referenceSet := text.TokenSet(reference)
	matches := text.Intersection(candidateSet, referenceSet)

	precision := float64(matches) / float64(len(candidateSet))
	recall := float64(matches) / float64(len(referenceSet))
	if precision+recall == 0 {
		return 0.0
	}
	fMean := 10 * precision * recall / (9*precision + recall)
	penalty := 0.5 * float64(matches) / float64(len(candidateTokens))
	return fMean * (1 - penalty)
}

// Coherence scores internal consistency of the text. Single-sentence text
// scores a fixed 0.8. Multi-sentence text averages entity consistency,
// discourse connector usage, and sentence length variation, over whichever
// factors are computable.
func Coherence(input string) float64 {
	if input == "" {
		return 0.0
	}
	sentences := text.Sentences(input)
	if len(sentences) < 2 {
		return 0.8
	}

	score := 0.0
	factors := 0

	// Factor 1: ratio of distinct capitalized entity mentions to total mentions.
	entities := entityRE.FindAllString(input, -1)
	if len(entities) > 0 {
		seen := make(map[string]struct{}, len(entities))
		for _, entity := range entities {
			seen[entity] = struct{}{}
		}
		score += float64(len(seen)) / float64(len(entities))
		factors++
	}

	// Factor 2: fraction of sentences carried by a discourse connector, capped at 1.
	lowered := strings.ToLower(input)
	connectorCount := 0
	for _, connector := range connectors {
		if strings.Contains(lowered, connector) {
			connectorCount++
		}
	}
	connectorScore := float64(connectorCount) / float64(len(sentences))
	if connectorScore > 1.0 {
		connectorScore = 1.0
	}
	score += connectorScore
	factors++

	// Factor 3: sentence length variation smoothness.
	minLen, maxLen := math.MaxInt, 0
	for _, sentence := range sentences {
		n := len(text.Tokenize(sentence))
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	score += 1.0 - float64(maxLen-minLen)/float64(maxLen+1)
	factors++

	if factors == 0 {
		return 0.5
	}
	return score / float64(factors)
}

// Relevance scores answer relevance as the fraction of question tokens that
// appear in the answer. When context is supplied, the result blends
// 0.7 * question relevance + 0.3 * context relevance.
func Relevance(question, answer, context string) float64 {
	if question == "" || answer == "" {
		return 0.0
	}
	questionSet := text.TokenSet(question)
	answerSet := text.TokenSet(answer)
	if len(questionSet) == 0 {
		return 0.0
	}
	questionRelevance := float64(text.Intersection(questionSet, answerSet)) / float64(len(questionSet))
	if context == "" {
		return questionRelevance
	}
	contextSet := text.TokenSet(context)
	contextRelevance := 0.0
	if len(contextSet) > 0 {
		contextRelevance = float64(text.Intersection(contextSet, answerSet)) / float64(len(contextSet))
	}
	return 0.7*questionRelevance + 0.3*contextRelevance
}

// Fluency scores the text from sentence length closeness to an ideal of 15
// tokens, function word ratio closeness to an ideal of 0.3, and punctuation
// per sentence. Factors that cannot be computed are skipped; 0.5 is the
// default when none apply.
func Fluency(input string) float64 {
	if input == "" {
		return 0.0
	}

	score := 0.0
	factors := 0
	sentences := text.Sentences(input)

	if len(sentences) > 0 {
		totalLen := 0
		for _, sentence := range sentences {
			totalLen += len(text.Tokenize(sentence))
		}
		avgLen := float64(totalLen) / float64(len(sentences))
		lengthScore := 1.0 - math.Abs(avgLen-15)/20
		if lengthScore < 0 {
			lengthScore = 0
		}
		score += lengthScore
		factors++
	}

	tokens := text.Tokenize(input)
	if len(tokens) > 0 {
		functionCount := 0
		for _, token := range tokens {
			if _, ok := functionWords[token]; ok {
				functionCount++
			}
		}
		ratio := float64(functionCount) / float64(len(tokens))
		grammarScore := 1.0 - math.Abs(ratio-0.3)/0.3
		if grammarScore < 0 {
			grammarScore = 0
		}
		score += grammarScore
		factors++
	}

	if len(sentences) > 0 {
		punctCount := len(terminatorRE.FindAllString(input, -1))
		punctScore := float64(punctCount) / float64(len(sentences))
		if punctScore > 1.0 {
			punctScore = 1.0
		}
		score += punctScore
		factors++
	}

	if factors == 0 {
		return 0.5
	}
	return score / float64(factors)
}

// Informativeness scores content richness as 0.6 * vocabulary richness +
// 0.4 * content word ratio, capped at 1.0.
func Informativeness(input string) float64 {
	tokens := text.Tokenize(input)
	if len(tokens) == 0 {
		return 0.0
	}
	distinct := make(map[string]struct{}, len(tokens))
	contentCount := 0
	for _, token := range tokens {
		distinct[token] = struct{}{}
		if _, ok := stopWords[token]; !ok {
			contentCount++
		}
	}
	richness := float64(len(distinct)) / float64(len(tokens))
	contentRatio := float64(contentCount) / float64(len(tokens))
	informativeness := 0.6*richness + 0.4*contentRatio
	if informativeness > 1.0 {
		return 1.0
	}
	return informativeness
}

// LengthRatio scores how close the candidate's token count is to the
// reference's. Equal lengths score exactly 1.0; the score decays as the
// ratio drifts from 1 in either direction.
func LengthRatio(candidate, reference string) float64 {
	if reference == "" {
		return 0.0
	}
	candidateLen := len(text.Tokenize(candidate))
	referenceLen := len(text.Tokenize(reference))
	if referenceLen == 0 {
		if candidateLen == 0 {
			return 1.0
		}
		return 0.0
	}
	ratio := float64(candidateLen) / float64(referenceLen)
	return 1.0 - math.Abs(1.0-ratio)/math.Max(1.0, ratio)
}

// WordOverlap computes the Jaccard index over the token sets of the two texts.
func WordOverlap(candidate, reference string) float64 {
	return text.Jaccard(text.TokenSet(candidate), text.TokenSet(reference))
}

// SentenceSimilarity scores each candidate sentence by its best Jaccard
// match against any reference sentence and averages over candidate
// sentences. Either side lacking sentences scores 0.0.
func SentenceSimilarity(candidate, reference string) float64 {
	candidateSentences := text.Sentences(candidate)
	referenceSentences := text.Sentences(reference)
	if len(candidateSentences) == 0 || len(referenceSentences) == 0 {
		return 0.0
	}

	referenceSets := make([]map[string]struct{}, 0, len(referenceSentences))
	for _, sentence := range referenceSentences {
		referenceSets = append(referenceSets, text.TokenSet(sentence))
	}

	total := 0.0
	for _, sentence := range candidateSentences {
		candidateSet := text.TokenSet(sentence)
		best := 0.0
		for _, referenceSet := range referenceSets {
			if len(candidateSet) == 0 || len(referenceSet) == 0 {
				continue
			}
			if sim := text.Jaccard(candidateSet, referenceSet); sim > best {
				best = sim
			}
		}
		total += best
	}
	return total / float64(len(candidateSentences))
}
