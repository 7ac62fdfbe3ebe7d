// Package prompt builds generation requests from a persona, optional
// training data and the target text.
package prompt

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/anikeeva/writedesk/internal/model"
	"github.com/anikeeva/writedesk/pkg/tokencount"
)

// HistoryWindow is the number of prior turns carried into a chat prompt.
const HistoryWindow = 6

// tokenBudget caps the assembled request; oldest history turns are
// trimmed first when the count runs over.
const tokenBudget = 3500

// Training sample caps per intent: deliberate prompt-budget control.
const (
	rewriteSampleCap  = 3
	chatSampleCap     = 2
	feedbackSampleCap = 1
)

// Per-intent generation parameter derivation. MaxTokens is
// max(floor, ceil(len(text)*factor)); feedback runs a lower cap and a
// higher frequency penalty to enforce conciseness.
type paramRule struct {
	floor            int
	factor           float64
	temperature      float32
	frequencyPenalty float32
	presencePenalty  float32
}

var paramRules = map[model.Intent]paramRule{
	model.IntentRewrite:  {floor: 200, factor: 0.5, temperature: 0.7, frequencyPenalty: 0.2, presencePenalty: 0.1},
	model.IntentFeedback: {floor: 120, factor: 0.25, temperature: 0.6, frequencyPenalty: 0.6, presencePenalty: 0.2},
	model.IntentChat:     {floor: 180, factor: 0.4, temperature: 0.8, frequencyPenalty: 0.3, presencePenalty: 0.3},
}

type Composer struct {
	counter *tokencount.Counter
}

// NewComposer builds a composer. counter may be nil, in which case no
// token-budget trimming happens.
func NewComposer(counter *tokencount.Counter) *Composer {
	return &Composer{counter: counter}
}

// Compose assembles the system prompt, user prompt, history window and
// derived parameters for one persona and intent. history is only
// consulted for chat intent.
func (c *Composer) Compose(
	text string, persona model.Persona, intent model.Intent,
	history []model.Turn,
) model.GenerationRequest {
	req := model.GenerationRequest{
		SystemPrompt: c.systemPrompt(persona, intent),
		UserPrompt:   userPrompt(text, intent),
		Persona:      persona,
		Intent:       intent,
		Params:       deriveParams(text, intent),
	}
	if intent == model.IntentChat {
		req.History = recentTurns(history, HistoryWindow)
	}
	return c.trimToBudget(req)
}

// systemPrompt concatenates the persona sections in fixed order:
// identity, custom instructions, style preferences, training samples,
// voice directive, intent closing instruction.
func (c *Composer) systemPrompt(persona model.Persona, intent model.Intent) string {
	var b strings.Builder

	fmt.Fprintf(
		&b, "You are %s, a writing persona described as \"%s\". Your writing style: %s.\n",
		persona.Name, persona.Personality, persona.WritingStyle,
	)

	if persona.CustomInstructions != "" {
		fmt.Fprintf(&b, "\nAdditional instructions: %s\n", persona.CustomInstructions)
	}

	if !persona.Style.IsZero() {
		b.WriteString("\nStyle preferences:\n")
		if persona.Style.Tone != "" {
			fmt.Fprintf(&b, "- Tone: %s\n", persona.Style.Tone)
		}
		if persona.Style.Formality != "" {
			fmt.Fprintf(&b, "- Formality: %s\n", persona.Style.Formality)
		}
		if persona.Style.Length != "" {
			fmt.Fprintf(&b, "- Length: %s\n", persona.Style.Length)
		}
		if persona.Style.Voice != "" {
			fmt.Fprintf(&b, "- Voice: %s\n", persona.Style.Voice)
		}
	}

	samples := persona.Training.RecentSamples(sampleCap(intent))
	if len(samples) > 0 {
		b.WriteString("\nExamples of this persona's writing, most recent first:\n")
		for i, sample := range samples {
			fmt.Fprintf(&b, "%d. %s\n", i+1, sample.Text)
			if sample.Notes != "" {
				fmt.Fprintf(&b, "   Note: %s\n", sample.Notes)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", voiceDirectiveFor(persona.Personality))
	fmt.Fprintf(&b, "\n%s", closingInstructions[intent])
	return b.String()
}

func userPrompt(text string, intent model.Intent) string {
	switch intent {
	case model.IntentRewrite:
		return fmt.Sprintf("Rewrite the following text:\n\n%s", text)
	case model.IntentFeedback:
		return fmt.Sprintf("Give feedback on the following text:\n\n%s", text)
	default:
		return fmt.Sprintf("Continuing our conversation, the user writes:\n\n\"%s\"", text)
	}
}

func sampleCap(intent model.Intent) int {
	switch intent {
	case model.IntentRewrite:
		return rewriteSampleCap
	case model.IntentFeedback:
		return feedbackSampleCap
	default:
		return chatSampleCap
	}
}

func deriveParams(text string, intent model.Intent) model.GenerationParams {
	rule, ok := paramRules[intent]
	if !ok {
		rule = paramRules[model.IntentChat]
	}
	maxTokens := int(math.Ceil(float64(len(text)) * rule.factor))
	if maxTokens < rule.floor {
		maxTokens = rule.floor
	}
	return model.GenerationParams{
		MaxTokens:        maxTokens,
		Temperature:      rule.temperature,
		FrequencyPenalty: rule.frequencyPenalty,
		PresencePenalty:  rule.presencePenalty,
	}
}

// recentTurns returns the last n turns in chronological order.
func recentTurns(history []model.Turn, n int) []model.Turn {
	turns := make([]model.Turn, len(history))
	copy(turns, history)
	sort.SliceStable(
		turns, func(i, j int) bool {
			return turns[i].At.Before(turns[j].At)
		},
	)
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return turns
}

// trimToBudget drops oldest history turns while the assembled request
// exceeds the token budget.
func (c *Composer) trimToBudget(req model.GenerationRequest) model.GenerationRequest {
	if c.counter == nil {
		return req
	}
	for len(req.History) > 0 {
		texts := make([]string, 0, len(req.History)+2)
		texts = append(texts, req.SystemPrompt, req.UserPrompt)
		for _, turn := range req.History {
			texts = append(texts, turn.Body)
		}
		if c.counter.CountAll(texts...) <= tokenBudget {
			break
		}
		req.History = req.History[1:]
	}
	return req
}
