// Package generator adapts remote generation backends behind one
// interface. Adapters classify failures as unavailable (transport) or
// malformed (payload shape); the orchestrator treats both the same way
// and falls back locally.
package generator

import (
	"context"
	"errors"

	"github.com/anikeeva/writedesk/internal/model"
)

var (
	ErrUnavailable = errors.New("remote generator unavailable")
	ErrMalformed   = errors.New("remote generator returned malformed payload")
)

// Generator produces text for a composed request. The error return is
// the orchestrator's single fallback trigger.
type Generator interface {
	Generate(ctx context.Context, req model.GenerationRequest) (string, error)
}
