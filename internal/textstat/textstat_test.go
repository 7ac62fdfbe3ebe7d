package textstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Stats
	}{
		{
			name: "three short sentences",
			text: "Hi there. How are you? I'm fine.",
			expected: Stats{
				Words:               7,
				Sentences:           3,
				AvgWordsPerSentence: 2,
			},
		},
		{
			name: "single sentence without terminator",
			text: "just some words here",
			expected: Stats{
				Words:               4,
				Sentences:           1,
				AvgWordsPerSentence: 4,
			},
		},
		{
			name:     "empty input",
			text:     "",
			expected: Stats{},
		},
		{
			name: "trailing terminators do not create empty sentences",
			text: "Done!!! Really?!",
			expected: Stats{
				Words:               2,
				Sentences:           2,
				AvgWordsPerSentence: 1,
			},
		},
		{
			name: "average is rounded not truncated",
			text: "One two three. Four five.",
			expected: Stats{
				Words:               5,
				Sentences:           2,
				AvgWordsPerSentence: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Analyze(tt.text))
		})
	}
}

func TestSentenceLengths(t *testing.T) {
	assert.Equal(t, []int{2, 3, 2}, SentenceLengths("Hi there. How are you? I'm fine."))
	assert.Empty(t, SentenceLengths(""))
}

func TestLengthVariance(t *testing.T) {
	assert.Zero(t, LengthVariance("Only one sentence here."))

	// Lengths 2 and 6, mean 4, variance 4.
	assert.InDelta(t, 4.0, LengthVariance("Hi there. One two three four five six."), 0.0001)

	// Uniform lengths have no variance.
	assert.Zero(t, LengthVariance("One two. Three four. Five six."))
}
