// Package tokencount wraps tiktoken so prompt assembly can stay inside
// a model token budget.
package tokencount

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

type Counter struct {
	encoding *tiktoken.Tiktoken
}

// NewCounter builds a counter for the given model name, falling back to
// cl100k_base for models tiktoken does not know.
func NewCounter(model string) (*Counter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("failed to load encoding: %w", err)
		}
	}
	return &Counter{encoding: encoding}, nil
}

func (c *Counter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// CountAll sums the token counts of every text plus a small per-message
// overhead, mirroring how chat APIs bill message framing.
func (c *Counter) CountAll(texts ...string) int {
	total := 3
	for _, text := range texts {
		total += c.Count(text) + 4
	}
	return total
}
