package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
)

const defaultRelayTimeout = 30 * time.Second

// Relay speaks the plain JSON generation contract: per-intent endpoints
// taking {text, persona} (plus chatHistory for conversation) and
// answering {success, <field>, error?}. Absence of success plus the
// named field is malformed regardless of HTTP status.
type Relay struct {
	endpoint   string
	httpClient *http.Client
}

func NewRelay(cfg config.Generator) *Relay {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRelayTimeout
	}
	return &Relay{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type relayPersona struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Personality  string `json:"personality"`
	WritingStyle string `json:"writingStyle"`
}

type relayTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type relayRequest struct {
	Text        string       `json:"text,omitempty"`
	Message     string       `json:"message,omitempty"`
	Persona     relayPersona `json:"persona"`
	ChatHistory []relayTurn  `json:"chatHistory,omitempty"`
}

type relayResponse struct {
	Success       bool   `json:"success"`
	RewrittenText string `json:"rewrittenText"`
	Feedback      string `json:"feedback"`
	Response      string `json:"response"`
	Error         string `json:"error"`
}

func (g *Relay) Generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	path, payload := relayCall(req)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, g.endpoint+path, bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded relayResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	text := relayField(req.Intent, decoded)
	if !decoded.Success || text == "" {
		return "", ErrMalformed
	}
	return text, nil
}

func relayCall(req model.GenerationRequest) (string, relayRequest) {
	persona := relayPersona{
		ID:           req.Persona.ID,
		Name:         req.Persona.Name,
		Personality:  req.Persona.Personality,
		WritingStyle: req.Persona.WritingStyle,
	}
	switch req.Intent {
	case model.IntentRewrite:
		return "/rewrite", relayRequest{Text: req.UserPrompt, Persona: persona}
	case model.IntentFeedback:
		return "/feedback", relayRequest{Text: req.UserPrompt, Persona: persona}
	default:
		history := make([]relayTurn, 0, len(req.History))
		for _, turn := range req.History {
			history = append(
				history, relayTurn{
					Role: string(turn.Source),
					Text: turn.Body,
				},
			)
		}
		return "/conversation", relayRequest{
			Message:     req.UserPrompt,
			Persona:     persona,
			ChatHistory: history,
		}
	}
}

func relayField(intent model.Intent, resp relayResponse) string {
	switch intent {
	case model.IntentRewrite:
		return resp.RewrittenText
	case model.IntentFeedback:
		return resp.Feedback
	default:
		return resp.Response
	}
}
