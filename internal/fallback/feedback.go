package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/anikeeva/writedesk/internal/detect"
	"github.com/anikeeva/writedesk/internal/model"
	"github.com/anikeeva/writedesk/internal/textstat"
)

// Rand is the injectable random source behind closing-line variant
// selection, the single non-deterministic point in the whole pipeline.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type FeedbackGenerator struct {
	rand Rand
}

// NewFeedbackGenerator builds a generator around r. A nil r gets a
// time-seeded source.
func NewFeedbackGenerator(r Rand) *FeedbackGenerator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FeedbackGenerator{rand: r}
}

type reportFn func(text string, stats textstat.Stats, persona model.Persona, r Rand) string

var reportTemplates = map[string]reportFn{
	normalizeTag(model.PersonalityProfessional): professionalReport,
	normalizeTag(model.PersonalityCasual):       casualReport,
	normalizeTag(model.PersonalityAcademic):     academicReport,
	normalizeTag(model.PersonalityCreative):     creativeReport,
	normalizeTag(model.PersonalityBold):         boldReport,
}

// Feedback builds a persona-keyed critique from local statistics and the
// detector bank. Total: unknown personalities get the generic report,
// and the result is never empty.
func (g *FeedbackGenerator) Feedback(text string, persona model.Persona) string {
	stats := textstat.Analyze(text)
	if report, ok := reportTemplates[normalizeTag(persona.Personality)]; ok {
		return report(text, stats, persona, g.rand)
	}
	return genericReport(text, stats, persona)
}

func statsLine(stats textstat.Stats) string {
	return fmt.Sprintf(
		"%d words across %d sentences, about %d words per sentence.",
		stats.Words, stats.Sentences, stats.AvgWordsPerSentence,
	)
}

func pick(r Rand, variants []string) string {
	return variants[r.Intn(len(variants))]
}

var professionalClosings = []string{
	"Overall: a workable draft that will land well once the register is consistent.",
	"Overall: close to client-ready; address the notes above and ship it.",
	"Overall: the structure holds up, so the remaining work is polish.",
}

func professionalReport(text string, stats textstat.Stats, persona model.Persona, r Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's review\n\n", persona.Name)

	b.WriteString("Structure & Clarity\n")
	fmt.Fprintf(&b, "- %s\n", statsLine(stats))
	if detect.IsTooWordy(text) {
		b.WriteString("- Sentences run long. Split anything past two clauses.\n")
	} else {
		b.WriteString("- Sentence length is under control.\n")
	}
	if detect.NeedsBetterFlow(text) {
		b.WriteString("- Transitions are missing between ideas; the paragraph reads as a list.\n")
	} else {
		b.WriteString("- The ideas connect cleanly.\n")
	}

	b.WriteString("\nTone Assessment\n")
	if detect.HasContractions(text) {
		b.WriteString("- Contractions keep this conversational; expand them for formal correspondence.\n")
	} else {
		b.WriteString("- The register is appropriately formal.\n")
	}
	if detect.HasPassiveVoice(text) {
		b.WriteString("- Passive constructions blur ownership. Prefer active voice.\n")
	}
	if detect.HasJargon(text) {
		b.WriteString("- Buzzwords dilute the message. Swap them for concrete terms.\n")
	}

	b.WriteString("\nRecommendations\n")
	recommendations := 0
	if !detect.HasSpecificDetails(text) {
		b.WriteString("- Add a number, date or example; specifics build credibility.\n")
		recommendations++
	}
	if detect.HasSimpleWords(text) {
		b.WriteString("- Replace filler words (very, thing, stuff) with precise ones.\n")
		recommendations++
	}
	if !detect.HasConsistentTerminology(text) {
		b.WriteString("- Pick one term per concept and hold to it.\n")
		recommendations++
	}
	if recommendations == 0 {
		b.WriteString("- Keep the current direction; only minor polish remains.\n")
	}

	b.WriteString("\n" + pick(r, professionalClosings))
	return b.String()
}

var casualClosings = []string{
	"Honestly? This is nearly there. Loosen it up a touch and send it.",
	"Nice work so far. A little warmth and it's golden.",
	"You're close! Read it out loud once and you'll hear what to tweak.",
}

func casualReport(text string, stats textstat.Stats, persona model.Persona, r Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hey, %s here. Quick thoughts:\n\n", persona.Name)

	b.WriteString("How it reads\n")
	fmt.Fprintf(&b, "- %s\n", statsLine(stats))
	if detect.IsTooFormal(text) {
		b.WriteString("- It sounds a bit stiff. Write it like you'd say it to a friend.\n")
	} else {
		b.WriteString("- The tone feels natural, which is the hard part.\n")
	}
	if detect.NeedsWarmth(text) {
		b.WriteString("- Could use some warmth. A simple thanks or a friendly opener goes a long way.\n")
	}
	if !detect.HasContractions(text) {
		b.WriteString("- No contractions anywhere. \"Do not\" reads colder than \"don't\".\n")
	}
	if detect.HasPersonalPronouns(text) {
		b.WriteString("- Good use of \"you\" and \"I\". It keeps things personal.\n")
	} else {
		b.WriteString("- Bring yourself into it. \"I\" and \"you\" make it feel human.\n")
	}

	b.WriteString("\n" + pick(r, casualClosings))
	return b.String()
}

var academicClosings = []string{
	"In sum, the draft is serviceable, though the evidentiary basis merits strengthening.",
	"In sum, the argument is coherent; precision of terminology is the chief remaining concern.",
	"In sum, the structure is sound and the prose requires only targeted revision.",
}

func academicReport(text string, stats textstat.Stats, persona model.Persona, r Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assessment prepared by %s\n\n", persona.Name)

	b.WriteString("Structure & Clarity\n")
	fmt.Fprintf(&b, "- %s\n", statsLine(stats))
	if detect.HasLogicalFlow(text) {
		b.WriteString("- The argument proceeds in a discernible order.\n")
	} else {
		b.WriteString("- The argument lacks explicit sequencing; signpost each step.\n")
	}

	b.WriteString("\nEvidence & Rigor\n")
	if detect.HasCitations(text) {
		b.WriteString("- Sources are referenced; verify each citation is complete.\n")
	} else {
		b.WriteString("- No citations present. Claims of this kind require support.\n")
	}
	if detect.HasObjectiveTone(text) {
		b.WriteString("- The tone maintains scholarly distance.\n")
	} else {
		b.WriteString("- First-person intrusions weaken the objective register.\n")
	}
	if detect.HasAmbiguousTerms(text) {
		b.WriteString("- Quantifiers such as \"some\" and \"many\" are imprecise; state magnitudes.\n")
	}
	if !detect.HasSpecificDetails(text) {
		b.WriteString("- The discussion would benefit from concrete figures.\n")
	}
	if !detect.HasConsistentTerminology(text) {
		b.WriteString("- Terminology shifts mid-text; fix a single term per construct.\n")
	}

	b.WriteString("\n" + pick(r, academicClosings))
	return b.String()
}

var creativeClosings = []string{
	"Keep going. The bones of something vivid are already here.",
	"There's a pulse in this draft. Feed it imagery and let it run.",
	"Trust your ear. The next pass should be about texture, not grammar.",
}

func creativeReport(text string, stats textstat.Stats, persona model.Persona, r Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Notes from %s\n\n", persona.Name)

	b.WriteString("The senses\n")
	if detect.HasVisualElements(text) {
		b.WriteString("- I can see this scene. The visual details are doing their job.\n")
	} else {
		b.WriteString("- I can't see anything yet. Give me color, light, shadow.\n")
	}
	if detect.HasTactileElements(text) {
		b.WriteString("- The textures land. The reader can touch this.\n")
	} else {
		b.WriteString("- Nothing to touch. What does this moment feel like on the skin?\n")
	}
	if detect.HasEmotionalDepth(text) {
		b.WriteString("- There's real feeling underneath the words.\n")
	} else {
		b.WriteString("- The emotion is hiding. Let one honest feeling surface.\n")
	}

	b.WriteString("\nThe music\n")
	fmt.Fprintf(&b, "- %s\n", statsLine(stats))
	if detect.HasRhythm(text) {
		b.WriteString("- Sentence lengths vary; the prose has rhythm.\n")
	} else {
		b.WriteString("- Every sentence is the same size. Break one short. Let one breathe.\n")
	}
	if detect.HasMetaphors(text) {
		b.WriteString("- The comparisons spark. Keep them strange but true.\n")
	} else {
		b.WriteString("- No metaphors yet. What is this thing like?\n")
	}

	b.WriteString("\n" + pick(r, creativeClosings))
	return b.String()
}

var boldClosings = []string{
	"Bottom line: sharpen the ask and this will convert.",
	"Bottom line: lead with the win, close with the action.",
	"Bottom line: say it louder. The message deserves it.",
}

func boldReport(text string, stats textstat.Stats, persona model.Persona, r Rand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's take\n\n", persona.Name)

	b.WriteString("Punch\n")
	fmt.Fprintf(&b, "- %s\n", statsLine(stats))
	if detect.HasStrongVerbs(text) {
		b.WriteString("- Strong verbs. The copy moves.\n")
	} else {
		b.WriteString("- Weak verbs. Swap in ones that push: drive, launch, seize.\n")
	}
	if detect.HasUrgency(text) {
		b.WriteString("- There's urgency here. The reader knows the clock is running.\n")
	} else {
		b.WriteString("- No urgency. Why should anyone act now instead of never?\n")
	}

	b.WriteString("\nPersuasion\n")
	if detect.HighlightsBenefits(text) {
		b.WriteString("- Benefits are front and center. Good.\n")
	} else {
		b.WriteString("- Features without benefits. Tell them what they gain.\n")
	}
	if detect.HasCallToAction(text) {
		b.WriteString("- Clear call to action. That's the whole game.\n")
	} else {
		b.WriteString("- Missing a call to action. Every piece needs a next step.\n")
	}

	b.WriteString("\n" + pick(r, boldClosings))
	return b.String()
}

// genericReport is the unknown-personality fallback: three labeled
// bullets, each computed independently from the detector bank.
func genericReport(text string, stats textstat.Stats, persona model.Persona) string {
	strengths := []string{}
	if detect.HasLogicalFlow(text) {
		strengths = append(strengths, "the ideas follow a clear order")
	}
	if detect.HasSpecificDetails(text) {
		strengths = append(strengths, "concrete details anchor the writing")
	}
	if detect.HasRhythm(text) {
		strengths = append(strengths, "sentence lengths vary nicely")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "the draft exists, which beats a blank page")
	}

	weaknesses := []string{}
	if detect.IsTooWordy(text) {
		weaknesses = append(weaknesses, "sentences run long")
	}
	if detect.HasAmbiguousTerms(text) {
		weaknesses = append(weaknesses, "vague quantifiers leave room for doubt")
	}
	if detect.NeedsBetterFlow(text) {
		weaknesses = append(weaknesses, "transitions between ideas are missing")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "nothing structural stands out")
	}

	suggestions := []string{}
	if !detect.HasSpecificDetails(text) {
		suggestions = append(suggestions, "add a number, date or example")
	}
	if detect.HasSimpleWords(text) {
		suggestions = append(suggestions, "replace filler words with precise ones")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "read it aloud once before sending")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Feedback from %s\n\n", persona.Name)
	fmt.Fprintf(&b, "- Strengths: %s.\n", strings.Join(strengths, "; "))
	fmt.Fprintf(&b, "- Weaknesses: %s.\n", strings.Join(weaknesses, "; "))
	fmt.Fprintf(&b, "- Suggestions: %s.\n", strings.Join(suggestions, "; "))
	fmt.Fprintf(&b, "\n%s\n", statsLine(stats))
	return b.String()
}
