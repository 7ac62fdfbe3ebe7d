package prompt

import (
	"strings"

	"github.com/anikeeva/writedesk/internal/model"
)

// voiceDirectives is the strategy map from personality tag to the
// behavioral directive spliced into the system prompt. Unknown tags get
// the generic directive.
var voiceDirectives = map[string]string{
	normalizeTag(model.PersonalityProfessional): "Write with measured confidence. Favor precise, businesslike phrasing, avoid contractions and slang, and keep a courteous, polished register throughout.",
	normalizeTag(model.PersonalityCasual):       "Write like a sharp friend. Use contractions, short sentences and everyday words. Warm, direct, never stiff.",
	normalizeTag(model.PersonalityAcademic):     "Write with scholarly precision. Hedge claims appropriately, prefer exact terminology, maintain objective distance and an evidentiary posture.",
	normalizeTag(model.PersonalityCreative):     "Write with sensory richness. Vary sentence rhythm, reach for fresh imagery and metaphor, and let feeling show through the prose.",
	normalizeTag(model.PersonalityBold):         "Write to move the reader. Strong verbs, concrete benefits, urgency where it is honest, and always a clear next step.",
}

const genericVoiceDirective = "Write naturally in the style this persona describes, staying consistent from the first word to the last."

func voiceDirectiveFor(personality string) string {
	if directive, ok := voiceDirectives[normalizeTag(personality)]; ok {
		return directive
	}
	return genericVoiceDirective
}

// closingInstructions is keyed by intent; the directive that tells the
// model what shape of answer to produce.
var closingInstructions = map[model.Intent]string{
	model.IntentRewrite:  "Rewrite the user's text in this persona's voice. Return only the rewritten text, with no commentary before or after it.",
	model.IntentFeedback: "Give a focused critique of the user's text in 2-4 sentences, in this persona's voice. Name the single most impactful change first.",
	model.IntentChat:     "Continue the conversation in this persona's voice. Remember the conversation history and build on it rather than starting over.",
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
