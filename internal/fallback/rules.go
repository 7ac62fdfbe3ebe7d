package fallback

import (
	"regexp"
	"strings"

	"github.com/anikeeva/writedesk/internal/model"
)

// rule is one lexical substitution. Rules run in table order against the
// cumulative result, so later rules see earlier rules' output. Order is
// semantically significant; keep it stable.
type rule struct {
	re          *regexp.Regexp
	replacement string
}

// word builds a case-insensitive whole-word rule.
func word(pattern, replacement string) rule {
	return rule{
		re:          regexp.MustCompile(`(?i)\b` + pattern + `\b`),
		replacement: replacement,
	}
}

// contractions expand identically for every register that forbids them.
var contractionRules = []rule{
	word(`can't`, "cannot"),
	word(`won't`, "will not"),
	word(`don't`, "do not"),
	word(`doesn't`, "does not"),
	word(`didn't`, "did not"),
	word(`isn't`, "is not"),
	word(`aren't`, "are not"),
	word(`wasn't`, "was not"),
	word(`weren't`, "were not"),
	word(`couldn't`, "could not"),
	word(`shouldn't`, "should not"),
	word(`wouldn't`, "would not"),
	word(`i'm`, "I am"),
	word(`i've`, "I have"),
	word(`i'll`, "I will"),
	word(`it's`, "it is"),
	word(`that's`, "that is"),
	word(`there's`, "there is"),
	word(`what's`, "what is"),
	word(`you're`, "you are"),
	word(`we're`, "we are"),
	word(`we've`, "we have"),
	word(`we'll`, "we will"),
	word(`they're`, "they are"),
}

var professionalRules = append(
	[]rule{
		word(`i think`, "I believe"),
		word(`kind of`, "somewhat"),
		word(`sort of`, "somewhat"),
		word(`a lot of`, "a great deal of"),
		word(`a lot`, "considerably"),
		word(`hey`, "hello"),
		word(`hi`, "hello"),
		word(`yeah`, "yes"),
		word(`yep`, "yes"),
		word(`gonna`, "going to"),
		word(`wanna`, "want to"),
		word(`gotta`, "must"),
		word(`whats`, "what is"),
		word(`stuff`, "material"),
		word(`things`, "matters"),
	},
	contractionRules...,
)

var casualRules = []rule{
	word(`however`, "but"),
	word(`therefore`, "so"),
	word(`additionally`, "also"),
	word(`furthermore`, "plus"),
	word(`utilize`, "use"),
	word(`utilise`, "use"),
	word(`assist`, "help"),
	word(`obtain`, "get"),
	word(`purchase`, "buy"),
	word(`commence`, "start"),
	word(`regarding`, "about"),
	word(`cannot`, "can't"),
	word(`do not`, "don't"),
	word(`it is`, "it's"),
	word(`greetings`, "hey"),
	word(`hello`, "hey"),
}

var academicRules = append(
	[]rule{
		word(`i think`, "it can be argued that"),
		word(`shows`, "demonstrates"),
		word(`show`, "demonstrate"),
		word(`use`, "employ"),
		word(`used`, "employed"),
		word(`get`, "obtain"),
		word(`got`, "obtained"),
		word(`big`, "substantial"),
		word(`huge`, "considerable"),
		word(`a lot of`, "a substantial number of"),
		word(`so`, "consequently"),
		word(`also`, "moreover"),
	},
	contractionRules...,
)

var creativeRules = []rule{
	word(`very good`, "marvelous"),
	word(`good`, "delightful"),
	word(`bad`, "dreadful"),
	word(`very`, "wonderfully"),
	word(`nice`, "charming"),
	word(`said`, "mused"),
	word(`walked`, "wandered"),
	word(`looked`, "gazed"),
	word(`big`, "towering"),
	word(`small`, "delicate"),
	word(`old`, "weathered"),
	word(`happy`, "radiant"),
	word(`sad`, "wistful"),
}

var boldRules = []rule{
	word(`i think`, "I know"),
	word(`maybe`, "without question"),
	word(`perhaps`, "certainly"),
	word(`might`, "will"),
	word(`could`, "will"),
	word(`try to`, "commit to"),
	word(`good`, "exceptional"),
	word(`helpful`, "game-changing"),
	word(`soon`, "today"),
	word(`consider`, "seize"),
	word(`interesting`, "remarkable"),
}

// ruleTables is the strategy map from personality tag to its ordered
// substitution list. Unknown tags get no rules.
var ruleTables = map[string][]rule{
	normalizeTag(model.PersonalityProfessional): professionalRules,
	normalizeTag(model.PersonalityCasual):       casualRules,
	normalizeTag(model.PersonalityAcademic):     academicRules,
	normalizeTag(model.PersonalityCreative):     creativeRules,
	normalizeTag(model.PersonalityBold):         boldRules,
}

// closers trim and normalize sentence spacing, then add a fixed
// persona-flavored framing. Unknown tags leave the text unchanged.
var closers = map[string]func(string) string{
	normalizeTag(model.PersonalityProfessional): func(text string) string {
		return terminate(normalizeSpacing(text)) + " Please let me know if any further refinement is required."
	},
	normalizeTag(model.PersonalityCasual): func(text string) string {
		return terminate(normalizeSpacing(text)) + " Hope that helps!"
	},
	normalizeTag(model.PersonalityAcademic): func(text string) string {
		return "Based on current research, " + lowerFirst(terminate(normalizeSpacing(text))) +
			" Further investigation is warranted."
	},
	normalizeTag(model.PersonalityCreative): func(text string) string {
		return terminate(normalizeSpacing(text)) + " And that, dear reader, is only the beginning."
	},
	normalizeTag(model.PersonalityBold): func(text string) string {
		return terminate(normalizeSpacing(text)) + " Don't wait. Act today."
	},
}

var spacingRe = regexp.MustCompile(`\s+`)

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func normalizeSpacing(text string) string {
	return strings.TrimSpace(spacingRe.ReplaceAllString(text, " "))
}

// terminate makes sure the text ends in a sentence terminator so an
// appended closing phrase starts a fresh sentence.
func terminate(text string) string {
	if text == "" {
		return text
	}
	switch text[len(text)-1] {
	case '.', '!', '?':
		return text
	}
	return text + "."
}

// lowerFirst folds the first letter for mid-sentence splicing, leaving
// the pronoun "I" alone.
func lowerFirst(text string) string {
	if text == "" {
		return text
	}
	if text == "I" || strings.HasPrefix(text, "I ") || strings.HasPrefix(text, "I'") {
		return text
	}
	return strings.ToLower(text[:1]) + text[1:]
}
