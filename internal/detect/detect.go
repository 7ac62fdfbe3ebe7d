// Package detect is a bank of independent boolean predicates over raw
// text. Every detector is pure: same text, same answer, no shared state.
// The fallback feedback generator interpolates these outcomes into its
// persona report templates.
package detect

import (
	"regexp"
	"strings"

	"github.com/anikeeva/writedesk/internal/textstat"
)

// Sentence-length variance above this reads as deliberate rhythm.
const rhythmVarianceThreshold = 9.0

// Average words per sentence above this reads as wordy.
const wordySentenceThreshold = 25

var (
	contractionRe   = regexp.MustCompile(`(?i)\b\w+'(t|s|re|ve|ll|d|m)\b`)
	passiveVoiceRe  = regexp.MustCompile(`(?i)\b(is|are|was|were|been|being|be)\s+\w+(ed|en)\b`)
	pronounRe       = regexp.MustCompile(`(?i)\b(i|me|my|mine|we|us|our|you|your)\b`)
	formalRe        = regexp.MustCompile(`(?i)\b(utilize|utilise|aforementioned|hereby|pursuant|henceforth|notwithstanding|therein|heretofore)\b`)
	warmthRe        = regexp.MustCompile(`(?i)\b(thanks|thank you|please|glad|happy|welcome|appreciate|love|wonderful|great to)\b`)
	simpleWordRe    = regexp.MustCompile(`(?i)\b(good|bad|big|small|nice|thing|things|stuff|very|really|get|got)\b`)
	jargonRe        = regexp.MustCompile(`(?i)\b(synerg\w*|leverage|leveraging|paradigm|scalab\w*|bandwidth|stakeholder\w*|deliverable\w*|ecosystem|streamline\w*|holistic)\b`)
	transitionRe    = regexp.MustCompile(`(?i)\b(however|therefore|meanwhile|additionally|furthermore|moreover|consequently|first|second|then|next|finally|as a result|because|thus)\b`)
	strongVerbRe    = regexp.MustCompile(`(?i)\b(accelerate\w*|transform\w*|launch\w*|drive\w*|build\w*|create\w*|deliver\w*|achieve\w*|boost\w*|conquer\w*|ignite\w*|seize\w*)\b`)
	urgencyRe       = regexp.MustCompile(`(?i)\b(now|today|hurry|limited|deadline|immediately|urgent\w*|act fast|last chance|don't miss)\b`)
	benefitRe       = regexp.MustCompile(`(?i)\b(benefit\w*|save\w*|gain\w*|improve\w*|advantage\w*|free|results|value|win\w*)\b`)
	callToActionRe  = regexp.MustCompile(`(?i)\b(sign up|subscribe|buy|join|register|download|contact us|order|get started|learn more|click)\b`)
	citationRe      = regexp.MustCompile(`(?i)(\(\d{4}\)|\[\d+\]|\bet al\.|\baccording to\b|\bresearch shows\b|\bstudies (show|suggest)\b)`)
	emotionRe       = regexp.MustCompile(`(?i)\b(love\w*|fear\w*|joy\w*|grief|longing|heart\w*|ache\w*|hope\w*|despair|delight\w*|sorrow|yearn\w*|tremble\w*)\b`)
	visualRe        = regexp.MustCompile(`(?i)\b(bright|dark|gleam\w*|glow\w*|shimmer\w*|sparkl\w*|crimson|golden|silver|shadow\w*|pale|vivid|scarlet)\b`)
	tactileRe       = regexp.MustCompile(`(?i)\b(rough|smooth|soft|warm|cold|icy|touch\w*|texture\w*|silky|gritty|velvet\w*|coarse)\b`)
	metaphorRe      = regexp.MustCompile(`(?i)\b(like a|like an|as if|as though)\b`)
	ambiguousRe     = regexp.MustCompile(`(?i)\b(some|several|many|few|various|somehow|things|stuff|maybe|possibly|sort of|kind of)\b`)
	specificRe      = regexp.MustCompile(`(?i)([0-9]+|%|\$|\b(january|february|march|april|may|june|july|august|september|october|november|december|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b)`)
	enumerationRe   = regexp.MustCompile(`(?i)\b(first\w*|second\w*|third\w*|finally|in (conclusion|summary)|to (begin|conclude))\b`)
)

// Synonym pairs whose mixed use reads as inconsistent terminology.
var terminologyPairs = [][2]*regexp.Regexp{
	{regexp.MustCompile(`(?i)\bcustomers?\b`), regexp.MustCompile(`(?i)\bclients?\b`)},
	{regexp.MustCompile(`(?i)\bapp\b`), regexp.MustCompile(`(?i)\bapplication\b`)},
	{regexp.MustCompile(`(?i)\be-mail\b`), regexp.MustCompile(`(?i)\bemail\b`)},
}

func HasContractions(text string) bool {
	return contractionRe.MatchString(text)
}

func HasPassiveVoice(text string) bool {
	return passiveVoiceRe.MatchString(text)
}

func HasPersonalPronouns(text string) bool {
	return pronounRe.MatchString(text)
}

// IsTooFormal flags stiff register: formal markers, or passive voice
// with no contractions anywhere.
func IsTooFormal(text string) bool {
	if formalRe.MatchString(text) {
		return true
	}
	return HasPassiveVoice(text) && !HasContractions(text)
}

func NeedsWarmth(text string) bool {
	return !warmthRe.MatchString(text)
}

func HasSimpleWords(text string) bool {
	return simpleWordRe.MatchString(text)
}

func HasJargon(text string) bool {
	return jargonRe.MatchString(text)
}

func IsTooWordy(text string) bool {
	return textstat.Analyze(text).AvgWordsPerSentence > wordySentenceThreshold
}

// NeedsBetterFlow flags multi-sentence text with no transition words.
func NeedsBetterFlow(text string) bool {
	if textstat.Analyze(text).Sentences < 3 {
		return false
	}
	return !transitionRe.MatchString(text)
}

func HasStrongVerbs(text string) bool {
	return strongVerbRe.MatchString(text)
}

func HasUrgency(text string) bool {
	return urgencyRe.MatchString(text)
}

func HighlightsBenefits(text string) bool {
	return benefitRe.MatchString(text)
}

func HasCallToAction(text string) bool {
	return callToActionRe.MatchString(text)
}

func HasCitations(text string) bool {
	return citationRe.MatchString(text)
}

func HasObjectiveTone(text string) bool {
	return !HasPersonalPronouns(text) && !strings.Contains(text, "!")
}

func HasLogicalFlow(text string) bool {
	return transitionRe.MatchString(text) || enumerationRe.MatchString(text)
}

func HasSpecificDetails(text string) bool {
	return specificRe.MatchString(text)
}

// HasConsistentTerminology reports whether the text avoids mixing
// synonym pairs for the same concept.
func HasConsistentTerminology(text string) bool {
	for _, pair := range terminologyPairs {
		if pair[0].MatchString(text) && pair[1].MatchString(text) {
			return false
		}
	}
	return true
}

func HasEmotionalDepth(text string) bool {
	return emotionRe.MatchString(text)
}

func HasVisualElements(text string) bool {
	return visualRe.MatchString(text)
}

// HasRhythm reports whether sentence lengths vary enough to avoid a
// monotone read.
func HasRhythm(text string) bool {
	return textstat.LengthVariance(text) > rhythmVarianceThreshold
}

func HasTactileElements(text string) bool {
	return tactileRe.MatchString(text)
}

func HasMetaphors(text string) bool {
	return metaphorRe.MatchString(text)
}

func HasAmbiguousTerms(text string) bool {
	return ambiguousRe.MatchString(text)
}
