// Package fallback produces deterministic, persona-consistent responses
// locally when the remote generator is unavailable.
package fallback

import "github.com/anikeeva/writedesk/internal/model"

// Rewrite applies the persona's ordered substitution rules to the
// cumulative result, then its closing-phrase framing. Deterministic:
// identical inputs always yield identical output. Personalities without
// a rule table pass through unchanged.
func Rewrite(text string, persona model.Persona) string {
	tag := normalizeTag(persona.Personality)

	result := text
	for _, r := range ruleTables[tag] {
		result = r.re.ReplaceAllString(result, r.replacement)
	}

	if closer, ok := closers[tag]; ok {
		result = closer(result)
	}
	return result
}
