package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
	"github.com/anikeeva/writedesk/internal/prompt"
	in_memory "github.com/anikeeva/writedesk/internal/storage/in-memory"
)

type stubGenerator struct {
	reply    string
	err      error
	requests []model.GenerationRequest
}

func (s *stubGenerator) Generate(_ context.Context, req model.GenerationRequest) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestUsecase(t *testing.T, gen *stubGenerator) (*ResponseUsecase, *in_memory.HistoryStorage) {
	t.Helper()
	personas := in_memory.NewPersonaStorage()
	history := in_memory.NewHistoryStorage()
	ctx := context.Background()

	require.NoError(
		t, personas.UpsertPersona(
			ctx, model.Persona{
				ID:           "sophia",
				Name:         "Sophia",
				Personality:  model.PersonalityProfessional,
				WritingStyle: "crisp business prose",
			},
		),
	)
	require.NoError(
		t, personas.UpsertPersona(
			ctx, model.Persona{
				ID:           "max",
				Name:         "Max",
				Personality:  model.PersonalityCasual,
				WritingStyle: "friendly and loose",
			},
		),
	)

	deps := ResponseUsecaseDeps{
		PersonaStorage: personas,
		HistoryStorage: history,
		Composer:       prompt.NewComposer(nil),
	}
	if gen != nil {
		deps.Generator = gen
	}
	uc := NewResponseUsecase(deps, config.Response{})
	return uc, history
}

func TestRespondFallbackRewrite(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "rewrite this: I can't make it, don't wait for me",
			TargetPersonaIDs: []string{"sophia"},
		},
	)

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, "sophia", result.PersonaID)
	assert.Equal(t, "Sophia", result.PersonaName)
	assert.Equal(t, model.OriginFallback, result.Origin)
	assert.Equal(t, model.ResponseTypeRewrite, result.ResponseType)
	assert.NotContains(t, result.Text, "can't")
	assert.NotContains(t, result.Text, "don't")
	assert.Contains(t, result.Text, "cannot")
}

func TestRespondRemoteSuccess(t *testing.T) {
	gen := &stubGenerator{reply: "Here is the polished version."}
	uc, _ := newTestUsecase(t, gen)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "please polish this paragraph",
			TargetPersonaIDs: []string{"sophia"},
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, model.OriginRemote, results[0].Origin)
	assert.Equal(t, "Here is the polished version.", results[0].Text)
	require.Len(t, gen.requests, 1)
	assert.Equal(t, model.IntentRewrite, gen.requests[0].Intent)
	assert.Contains(t, gen.requests[0].SystemPrompt, "Sophia")
}

func TestRespondRemoteFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	uc, _ := newTestUsecase(t, gen)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "rewrite this: hey, thanks a lot",
			TargetPersonaIDs: []string{"sophia"},
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, model.OriginFallback, results[0].Origin)
	assert.Equal(t, model.ResponseTypeRewrite, results[0].ResponseType)
	assert.NotEmpty(t, results[0].Text)
	assert.Len(t, gen.requests, 1, "remote should be attempted exactly once per persona")
}

func TestRespondUnknownPersonaContinuesBatch(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "rewrite this please",
			TargetPersonaIDs: []string{"ghost", "max"},
		},
	)

	require.Len(t, results, 2)
	assert.Equal(t, "ghost", results[0].PersonaID)
	assert.Equal(t, model.ResponseTypeError, results[0].ResponseType)
	assert.Equal(t, "max", results[1].PersonaID)
	assert.Equal(t, model.ResponseTypeRewrite, results[1].ResponseType)
}

func TestRespondTargetOrderAndPacing(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)
	uc.pacingDelay = 50 * time.Millisecond
	var slept []time.Duration
	uc.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "improve this sentence for me",
			TargetPersonaIDs: []string{"max", "sophia"},
		},
	)

	require.Len(t, results, 2)
	assert.Equal(t, "max", results[0].PersonaID)
	assert.Equal(t, "sophia", results[1].PersonaID)
	// One delay between two personas, none after the last.
	require.Len(t, slept, 1)
	assert.Equal(t, 50*time.Millisecond, slept[0])
}

func TestRespondChatRecordsHistory(t *testing.T) {
	uc, history := newTestUsecase(t, nil)
	ctx := context.Background()

	results := uc.Respond(
		ctx, model.Message{
			Text:             "good morning, how are you",
			TargetPersonaIDs: []string{"max"},
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, model.ResponseTypeConversation, results[0].ResponseType)

	turns, err := history.RecentTurns(ctx, "max", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, model.TurnSourceUser, turns[0].Source)
	assert.Equal(t, "good morning, how are you", turns[0].Body)
	assert.Equal(t, model.TurnSourceAssistant, turns[1].Source)
	assert.Equal(t, results[0].Text, turns[1].Body)
}

func TestRespondChatHistoryReachesGenerator(t *testing.T) {
	gen := &stubGenerator{reply: "Morning! Doing great."}
	uc, history := newTestUsecase(t, gen)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	require.NoError(
		t, history.AppendTurn(
			ctx, "max",
			model.Turn{Source: model.TurnSourceUser, Body: "hello there", At: base},
		),
	)
	require.NoError(
		t, history.AppendTurn(
			ctx, "max",
			model.Turn{Source: model.TurnSourceAssistant, Body: "hey, what's up?", At: base.Add(time.Second)},
		),
	)

	uc.Respond(
		ctx, model.Message{
			Text:             "good morning again",
			TargetPersonaIDs: []string{"max"},
		},
	)

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.Equal(t, model.IntentChat, req.Intent)
	require.Len(t, req.History, 2)
	assert.Equal(t, "hello there", req.History[0].Body)
}

func TestRespondExplicitIntentOverride(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "what do you think about the weather",
			TargetPersonaIDs: []string{"sophia"},
			ExplicitIntent:   model.IntentRewrite,
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, model.ResponseTypeRewrite, results[0].ResponseType)
}

func TestRespondStreamEmitsInOrder(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)
	results := make(chan model.GenerationResult)

	go uc.RespondStream(
		context.Background(), model.Message{
			Text:             "rewrite this note",
			TargetPersonaIDs: []string{"sophia", "max"},
		}, results,
	)

	var got []model.GenerationResult
	for result := range results {
		got = append(got, result)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "sophia", got[0].PersonaID)
	assert.Equal(t, "max", got[1].PersonaID)
}

func TestRespondFeedbackNeverEmpty(t *testing.T) {
	uc, _ := newTestUsecase(t, nil)

	results := uc.Respond(
		context.Background(), model.Message{
			Text:             "any thoughts on this? The launch went well. The team did a great job.",
			TargetPersonaIDs: []string{"sophia", "max"},
		},
	)

	require.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, model.ResponseTypeFeedback, result.ResponseType)
		assert.Equal(t, model.OriginFallback, result.Origin)
		assert.NotEmpty(t, strings.TrimSpace(result.Text))
	}
}
