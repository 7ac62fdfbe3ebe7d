package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anikeeva/writedesk/internal/model"
)

func personaWith(tag string) model.Persona {
	return model.Persona{
		ID:           "p1",
		Name:         "Sophia",
		Personality:  tag,
		WritingStyle: "clear and direct",
	}
}

func TestRewriteIsDeterministic(t *testing.T) {
	persona := personaWith(model.PersonalityProfessional)
	text := "I think it's kind of good"

	first := Rewrite(text, persona)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Rewrite(text, persona))
	}
}

func TestRewriteAppliesRulesCumulatively(t *testing.T) {
	persona := personaWith(model.PersonalityProfessional)

	got := Rewrite("I think it's kind of good", persona)

	// Both substitutions must land in the same pass, and the
	// contraction must be expanded by a later rule in the same table.
	assert.Contains(t, got, "I believe")
	assert.Contains(t, got, "somewhat")
	assert.Contains(t, got, "it is")
	assert.NotContains(t, got, "I think")
	assert.NotContains(t, got, "kind of")
	assert.NotContains(t, got, "it's")
}

func TestRewriteProfessionalRemovesContractions(t *testing.T) {
	persona := personaWith(model.PersonalityProfessional)

	got := Rewrite("hey whats up, I can't talk and we're late", persona)

	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "what is up")
	assert.Contains(t, got, "cannot")
	assert.Contains(t, got, "we are")
	assert.NotContains(t, got, "can't")
	assert.NotContains(t, got, "we're")
	assert.True(t, strings.HasSuffix(got, "Please let me know if any further refinement is required."))
}

func TestRewriteAcademicFraming(t *testing.T) {
	persona := personaWith(model.PersonalityAcademic)

	got := Rewrite("The data shows a big improvement", persona)

	assert.True(t, strings.HasPrefix(got, "Based on current research, "))
	assert.True(t, strings.HasSuffix(got, "Further investigation is warranted."))
	assert.Contains(t, got, "demonstrates")
	assert.Contains(t, got, "substantial")
}

func TestRewriteCasual(t *testing.T) {
	persona := personaWith(model.PersonalityCasual)

	got := Rewrite("I cannot attend; however, I will call", persona)

	assert.Contains(t, got, "can't")
	assert.Contains(t, got, "but")
	assert.True(t, strings.HasSuffix(got, "Hope that helps!"))
}

func TestRewriteUnknownPersonalityIsUnchanged(t *testing.T) {
	persona := personaWith("Mysterious and new")

	text := "I think it's kind of good"
	assert.Equal(t, text, Rewrite(text, persona))
}

func TestRewriteNormalizesSpacingBeforeClosing(t *testing.T) {
	persona := personaWith(model.PersonalityCasual)

	got := Rewrite("Hello   there.   Nice   day", persona)

	assert.NotContains(t, got, "  ")
	assert.True(t, strings.HasSuffix(got, "Hope that helps!"))
}
