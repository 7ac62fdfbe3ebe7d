package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/anikeeva/writedesk/config"
)

// New builds the configured generator. An empty provider yields a nil
// generator: the orchestrator then serves every request from fallback.
func New(ctx context.Context, cfg config.Generator) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAI(cfg), nil
	case "gemini":
		return NewGemini(ctx, cfg)
	case "relay":
		return NewRelay(cfg), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
