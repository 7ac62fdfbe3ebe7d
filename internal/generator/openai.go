package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
)

const defaultOpenAIModel = "gpt-4o-mini"

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg config.Generator) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	chatModel := cfg.Model
	if chatModel == "" {
		chatModel = defaultOpenAIModel
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		model:  chatModel,
	}
}

func (g *OpenAI) Generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(
		messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		},
	)
	for _, turn := range req.History {
		messages = append(
			messages, openai.ChatCompletionMessage{
				Role:    parseTurnSourceToRole(turn.Source),
				Content: turn.Body,
			},
		)
	}
	messages = append(
		messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.UserPrompt,
		},
	)

	resp, err := g.client.CreateChatCompletion(
		ctx, openai.ChatCompletionRequest{
			Model:            g.model,
			Messages:         messages,
			MaxTokens:        req.Params.MaxTokens,
			Temperature:      req.Params.Temperature,
			FrequencyPenalty: req.Params.FrequencyPenalty,
			PresencePenalty:  req.Params.PresencePenalty,
			TopP:             1,
			N:                1,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrMalformed
	}
	return resp.Choices[0].Message.Content, nil
}

func parseTurnSourceToRole(source model.TurnSource) string {
	switch source {
	case model.TurnSourceAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
