// Package intent maps a raw message to rewrite, feedback or chat.
package intent

import (
	"strings"

	"github.com/anikeeva/writedesk/internal/model"
)

// Rewrite keywords take precedence over feedback keywords, so
// "review this and make it more casual" classifies as rewrite.
var rewriteKeywords = []string{
	"rewrite",
	"rephrase",
	"reword",
	"revise",
	"redo",
	"edit this",
	"polish",
	"make it",
	"make this",
	"improve",
	"fix this",
	"clean up",
	"tighten",
}

var feedbackKeywords = []string{
	"feedback",
	"review",
	"critique",
	"thoughts",
	"opinion",
	"what do you think",
	"how is this",
	"how does this sound",
	"rate this",
	"assess",
	"evaluate",
	"any suggestions",
}

// Classify is pure and total: case-insensitive substring matching
// against the two keyword sets, rewrite winning over feedback, chat
// otherwise.
func Classify(text string) model.Intent {
	lower := strings.ToLower(text)
	for _, keyword := range rewriteKeywords {
		if strings.Contains(lower, keyword) {
			return model.IntentRewrite
		}
	}
	for _, keyword := range feedbackKeywords {
		if strings.Contains(lower, keyword) {
			return model.IntentFeedback
		}
	}
	return model.IntentChat
}

// Resolve applies an explicit intent when present, otherwise classifies.
func Resolve(text string, explicit model.Intent) model.Intent {
	if explicit != model.IntentUnknown {
		return explicit
	}
	return Classify(text)
}
