package model

import "time"

type TurnSource string

const (
	TurnSourceUser      = TurnSource("user")
	TurnSourceAssistant = TurnSource("assistant")
)

// Turn is one entry of a persona's conversation history.
type Turn struct {
	Source TurnSource
	Body   string
	At     time.Time
}

// Message is a single user submission. Responses are produced per target
// persona, in target-list order.
type Message struct {
	Text             string
	TargetPersonaIDs []string
	ExplicitIntent   Intent
}
