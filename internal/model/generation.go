package model

type Origin string

const (
	OriginRemote   = Origin("remote")
	OriginFallback = Origin("fallback")
)

type ResponseType string

const (
	ResponseTypeRewrite      = ResponseType("rewrite")
	ResponseTypeFeedback     = ResponseType("feedback")
	ResponseTypeConversation = ResponseType("conversation")
	ResponseTypeError        = ResponseType("error")
)

// GenerationParams are derived from input length and intent by the
// prompt composer, never hardcoded at call sites.
type GenerationParams struct {
	MaxTokens        int
	Temperature      float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// GenerationRequest is the composed artifact passed to a remote generator.
// History is only populated for chat intent and carries at most the
// composer's turn window.
type GenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	Persona      Persona
	Intent       Intent
	Params       GenerationParams
	History      []Turn
}

// GenerationResult is one persona's response to a message.
type GenerationResult struct {
	PersonaID    string
	PersonaName  string
	Text         string
	Origin       Origin
	ResponseType ResponseType
}
