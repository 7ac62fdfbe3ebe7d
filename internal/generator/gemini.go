package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
)

const defaultGeminiModel = "gemini-1.5-flash-latest"

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg config.Generator) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	chatModel := cfg.Model
	if chatModel == "" {
		chatModel = defaultGeminiModel
	}
	return &Gemini{
		client: client,
		model:  chatModel,
	}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	generativeModel := g.client.GenerativeModel(g.model)
	generativeModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemPrompt)},
	}

	maxTokens := int32(req.Params.MaxTokens)
	temperature := req.Params.Temperature
	generativeModel.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temperature,
	}

	session := generativeModel.StartChat()
	for _, turn := range req.History {
		role := "user"
		if turn.Source == model.TurnSourceAssistant {
			role = "model"
		}
		session.History = append(
			session.History, &genai.Content{
				Role:  role,
				Parts: []genai.Part{genai.Text(turn.Body)},
			},
		)
	}

	resp, err := session.SendMessage(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrMalformed
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", ErrMalformed
	}
	return text.String(), nil
}
