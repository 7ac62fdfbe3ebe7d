// Package textstat computes word and sentence statistics used by the
// fallback feedback generator and the rhythm detector.
package textstat

import (
	"math"
	"strings"
)

// Stats holds the derived metrics for one piece of text.
type Stats struct {
	Words               int
	Sentences           int
	AvgWordsPerSentence int
}

// Analyze computes Stats for text. Sentences are split on terminators
// and empty fragments are dropped; the average is rounded.
func Analyze(text string) Stats {
	words := len(strings.Fields(text))
	sentences := len(Sentences(text))

	avg := 0
	if sentences > 0 {
		avg = int(math.Round(float64(words) / float64(sentences)))
	}
	return Stats{
		Words:               words,
		Sentences:           sentences,
		AvgWordsPerSentence: avg,
	}
}

// Sentences splits text on '.', '!' and '?' and filters empty fragments.
func Sentences(text string) []string {
	parts := strings.FieldsFunc(
		text, func(r rune) bool {
			return r == '.' || r == '!' || r == '?'
		},
	)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, strings.TrimSpace(part))
		}
	}
	return sentences
}

// SentenceLengths returns the word count of each sentence in order.
func SentenceLengths(text string) []int {
	sentences := Sentences(text)
	lengths := make([]int, 0, len(sentences))
	for _, sentence := range sentences {
		lengths = append(lengths, len(strings.Fields(sentence)))
	}
	return lengths
}

// LengthVariance is the population variance of sentence word counts.
// Zero when the text has fewer than two sentences.
func LengthVariance(text string) float64 {
	lengths := SentenceLengths(text)
	if len(lengths) < 2 {
		return 0
	}
	var sum float64
	for _, l := range lengths {
		sum += float64(l)
	}
	mean := sum / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	return variance / float64(len(lengths))
}
