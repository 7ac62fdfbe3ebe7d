package usecase

import (
	"context"
	"log"
	"time"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/fallback"
	"github.com/anikeeva/writedesk/internal/generator"
	"github.com/anikeeva/writedesk/internal/intent"
	"github.com/anikeeva/writedesk/internal/model"
	"github.com/anikeeva/writedesk/internal/prompt"
)

const personaNotFoundReply = "I couldn't find that persona. Use /personas to see who is available."

type HistoryStorage interface {
	AppendTurn(ctx context.Context, personaID string, turn model.Turn) error
	RecentTurns(ctx context.Context, personaID string, limit int) ([]model.Turn, error)
}

type ResponseUsecaseDeps struct {
	PersonaStorage PersonaStorage
	HistoryStorage HistoryStorage
	Composer       *prompt.Composer
	// Generator may be nil: no remote backend is configured and every
	// response comes from the local fallback engines.
	Generator generator.Generator
	Feedback  *fallback.FeedbackGenerator
}

// ResponseUsecase runs one message through classification, prompt
// composition, remote generation and local fallback, producing one
// result per target persona in target order.
type ResponseUsecase struct {
	ResponseUsecaseDeps
	pacingDelay time.Duration
	sleep       func(time.Duration)
}

func NewResponseUsecase(deps ResponseUsecaseDeps, cfg config.Response) *ResponseUsecase {
	if deps.Feedback == nil {
		deps.Feedback = fallback.NewFeedbackGenerator(nil)
	}
	return &ResponseUsecase{
		ResponseUsecaseDeps: deps,
		pacingDelay:         cfg.PacingDelay,
		sleep:               time.Sleep,
	}
}

// Respond collects every persona's result. Personas are processed
// strictly sequentially in target order; one persona failing to resolve
// never aborts the rest of the batch.
func (r *ResponseUsecase) Respond(ctx context.Context, msg model.Message) []model.GenerationResult {
	results := make([]model.GenerationResult, 0, len(msg.TargetPersonaIDs))
	r.respond(
		ctx, msg, func(result model.GenerationResult) {
			results = append(results, result)
		},
	)
	return results
}

// RespondStream emits results as they are produced and closes the
// channel when the batch is done.
func (r *ResponseUsecase) RespondStream(
	ctx context.Context, msg model.Message, results chan<- model.GenerationResult,
) {
	defer close(results)
	r.respond(
		ctx, msg, func(result model.GenerationResult) {
			results <- result
		},
	)
}

func (r *ResponseUsecase) respond(
	ctx context.Context, msg model.Message, emit func(model.GenerationResult),
) {
	resolved := intent.Resolve(msg.Text, msg.ExplicitIntent)
	for i, personaID := range msg.TargetPersonaIDs {
		if i > 0 && r.pacingDelay > 0 {
			r.sleep(r.pacingDelay)
		}
		emit(r.respondFor(ctx, personaID, msg.Text, resolved))
	}
}

func (r *ResponseUsecase) respondFor(
	ctx context.Context, personaID, text string, msgIntent model.Intent,
) model.GenerationResult {
	persona, err := r.PersonaStorage.GetPersona(ctx, personaID)
	if err != nil {
		log.Printf("failed to resolve persona %s: %v", personaID, err)
		return model.GenerationResult{
			PersonaID:    personaID,
			Text:         personaNotFoundReply,
			Origin:       model.OriginFallback,
			ResponseType: model.ResponseTypeError,
		}
	}

	var history []model.Turn
	if msgIntent == model.IntentChat {
		history, err = r.HistoryStorage.RecentTurns(ctx, personaID, prompt.HistoryWindow)
		if err != nil {
			log.Printf("failed to load history for persona %s: %v", personaID, err)
			history = nil
		}
	}

	req := r.Composer.Compose(text, persona, msgIntent, history)
	body, origin := r.generate(ctx, text, req)

	if msgIntent == model.IntentChat {
		r.recordTurns(ctx, personaID, text, body)
	}

	return model.GenerationResult{
		PersonaID:    persona.ID,
		PersonaName:  persona.Name,
		Text:         body,
		Origin:       origin,
		ResponseType: responseTypeFor(msgIntent),
	}
}

// generate tries the remote backend and falls back locally on any
// error. A nil generator skips the remote attempt entirely.
func (r *ResponseUsecase) generate(
	ctx context.Context, text string, req model.GenerationRequest,
) (string, model.Origin) {
	if r.Generator != nil {
		body, err := r.Generator.Generate(ctx, req)
		if err == nil {
			return body, model.OriginRemote
		}
		log.Printf("remote generation failed for persona %s: %v", req.Persona.ID, err)
	}
	return r.fallbackFor(text, req.Persona, req.Intent), model.OriginFallback
}

func (r *ResponseUsecase) fallbackFor(
	text string, persona model.Persona, msgIntent model.Intent,
) string {
	switch msgIntent {
	case model.IntentRewrite:
		return fallback.Rewrite(text, persona)
	case model.IntentFeedback:
		return r.Feedback.Feedback(text, persona)
	default:
		return fallback.Chat(text, persona)
	}
}

func (r *ResponseUsecase) recordTurns(ctx context.Context, personaID, userText, reply string) {
	now := time.Now()
	turns := []model.Turn{
		{Source: model.TurnSourceUser, Body: userText, At: now},
		{Source: model.TurnSourceAssistant, Body: reply, At: now.Add(time.Millisecond)},
	}
	for _, turn := range turns {
		if err := r.HistoryStorage.AppendTurn(ctx, personaID, turn); err != nil {
			log.Printf("failed to append turn for persona %s: %v", personaID, err)
		}
	}
}

func responseTypeFor(msgIntent model.Intent) model.ResponseType {
	switch msgIntent {
	case model.IntentRewrite:
		return model.ResponseTypeRewrite
	case model.IntentFeedback:
		return model.ResponseTypeFeedback
	default:
		return model.ResponseTypeConversation
	}
}
