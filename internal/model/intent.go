package model

type Intent string

const (
	IntentUnknown  = Intent("")
	IntentRewrite  = Intent("rewrite")
	IntentFeedback = Intent("feedback")
	IntentChat     = Intent("chat")
)

func ParseIntent(s string) Intent {
	switch s {
	case "rewrite":
		return IntentRewrite
	case "feedback":
		return IntentFeedback
	case "chat":
		return IntentChat
	default:
		return IntentUnknown
	}
}
