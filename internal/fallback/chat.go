package fallback

import (
	"fmt"

	"github.com/anikeeva/writedesk/internal/model"
)

// chatReplies are deterministic conversational stand-ins keyed by
// personality. Each receives the persona name and the user's message.
var chatReplies = map[string]string{
	normalizeTag(model.PersonalityProfessional): "Thank you for the message. I am %s, and while my drafting service is briefly offline, I remain at your disposal. Regarding \"%s\": send the text you would like refined and I will attend to it.",
	normalizeTag(model.PersonalityCasual):       "Hey, %s here! My fancy brain is taking a little break, but I'm still around. You said \"%s\" - tell me more, or paste something you want me to look at.",
	normalizeTag(model.PersonalityAcademic):     "I am %s. The primary analytical apparatus is presently unavailable; nevertheless, your remark \"%s\" is noted, and I would welcome a draft to examine in due course.",
	normalizeTag(model.PersonalityCreative):     "%s, at your service - though my muse has wandered off for the moment. \"%s\", you say? Intriguing. Bring me words and we'll make something of them.",
	normalizeTag(model.PersonalityBold):         "%s here. The engine room is down but the mission isn't. You said \"%s\" - good. Now send me the copy and let's make it hit harder.",
}

const defaultChatReply = "Hi, this is %s. I can't reach my full writing brain right now, but I'm listening. You said \"%s\" - paste a draft and I'll do what I can locally."

// Chat returns a persona-flavored conversational reply computed locally.
// Deterministic and total.
func Chat(text string, persona model.Persona) string {
	format, ok := chatReplies[normalizeTag(persona.Personality)]
	if !ok {
		format = defaultChatReply
	}
	return fmt.Sprintf(format, persona.Name, truncate(text, 80))
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
