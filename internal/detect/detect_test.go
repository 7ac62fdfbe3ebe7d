package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectors(t *testing.T) {
	tests := []struct {
		name     string
		detector func(string) bool
		text     string
		expected bool
	}{
		{"contractions present", HasContractions, "I can't do this", true},
		{"contractions absent", HasContractions, "I cannot do this", false},

		{"passive voice present", HasPassiveVoice, "The report was written by the intern", true},
		{"passive voice absent", HasPassiveVoice, "The intern wrote the report", false},

		{"personal pronouns present", HasPersonalPronouns, "I think you should call me", true},
		{"personal pronouns absent", HasPersonalPronouns, "The data speaks for itself", false},

		{"too formal via marker", IsTooFormal, "We hereby confirm receipt of the aforementioned documents", true},
		{"too formal via stiff passive", IsTooFormal, "The decision was delayed pending further review", true},
		{"not too formal", IsTooFormal, "It's a quick fix, honestly", false},

		{"needs warmth", NeedsWarmth, "Submit the form before Friday", true},
		{"warmth present", NeedsWarmth, "Thanks so much for your help", false},

		{"simple words present", HasSimpleWords, "It was a very good thing", true},
		{"simple words absent", HasSimpleWords, "Exceptional circumstances demand rigorous responses", false},

		{"jargon present", HasJargon, "We must leverage cross-team synergy", true},
		{"jargon absent", HasJargon, "We should work together across teams", false},

		{"wordy run-on", IsTooWordy, "This sentence keeps going and going and going because nobody ever stopped to add a full stop anywhere along the entire meandering stretch of words that just will not end", true},
		{"concise text", IsTooWordy, "Short. Clear. Done.", false},

		{"needs better flow", NeedsBetterFlow, "We met. We talked. We left.", true},
		{"flow fine with transitions", NeedsBetterFlow, "We met. However, we disagreed. Finally, we left.", false},
		{"short text never flagged for flow", NeedsBetterFlow, "We met. We talked.", false},

		{"strong verbs present", HasStrongVerbs, "We will transform the market and ignite demand", true},
		{"strong verbs absent", HasStrongVerbs, "The market stayed the same", false},

		{"urgency present", HasUrgency, "Hurry, the deadline is today", true},
		{"urgency absent", HasUrgency, "There is no particular rush on this", false},

		{"benefits present", HighlightsBenefits, "You will save money and gain time", true},
		{"benefits absent", HighlightsBenefits, "The meeting covered quarterly logistics", false},

		{"call to action present", HasCallToAction, "Sign up for the newsletter before Monday", true},
		{"call to action absent", HasCallToAction, "The newsletter comes out on Mondays", false},

		{"citation year", HasCitations, "Smith (2019) argues otherwise", true},
		{"citation bracket", HasCitations, "This was disproven earlier [12]", true},
		{"citations absent", HasCitations, "Everyone knows this already", false},

		{"objective tone", HasObjectiveTone, "The results were recorded in triplicate.", true},
		{"subjective tone", HasObjectiveTone, "I loved these results!", false},

		{"logical flow present", HasLogicalFlow, "First, mix the batter. Then bake it.", true},
		{"logical flow absent", HasLogicalFlow, "Mix the batter. Bake it.", false},

		{"specific details numeric", HasSpecificDetails, "Sales rose 40% in March", true},
		{"specific details absent", HasSpecificDetails, "Sales rose sharply last month", false},

		{"terminology mixed", HasConsistentTerminology, "The customer called the client desk", false},
		{"terminology consistent", HasConsistentTerminology, "The customer called the support desk", true},

		{"emotional depth present", HasEmotionalDepth, "Her heart ached with longing", true},
		{"emotional depth absent", HasEmotionalDepth, "The invoice is attached", false},

		{"visual elements present", HasVisualElements, "The golden light shimmered on the water", true},
		{"visual elements absent", HasVisualElements, "The invoice is attached", false},

		{"tactile elements present", HasTactileElements, "The rough bark felt cold under her hand", true},
		{"tactile elements absent", HasTactileElements, "The invoice is attached", false},

		{"metaphor present", HasMetaphors, "The rumor spread like a wildfire", true},
		{"metaphor absent", HasMetaphors, "The rumor spread quickly", false},

		{"ambiguous terms present", HasAmbiguousTerms, "Maybe we need several things changed", true},
		{"ambiguous terms absent", HasAmbiguousTerms, "We need three reports by Tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.detector(tt.text))
		})
	}
}

func TestNeedsBetterFlowRequiresThreeSentences(t *testing.T) {
	flagged := "The budget was cut. The team shrank. The roadmap slipped. Morale dropped."
	assert.True(t, NeedsBetterFlow(flagged))
	assert.False(t, NeedsBetterFlow("The budget was cut. The team shrank."))
}

func TestHasRhythm(t *testing.T) {
	varied := "Yes. It was the strangest thing any of us had ever seen in all those years."
	assert.True(t, HasRhythm(varied))
	assert.False(t, HasRhythm("One two three. Four five six. Seven eight nine."))
}

func TestDetectorsArePure(t *testing.T) {
	text := "I can't do this"
	first := HasContractions(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, HasContractions(text))
	}
}
