package model

import (
	"sort"
	"time"
)

// Built-in personality tags. The tag set is open: unknown tags fall back
// to generic templates everywhere a tag selects behavior.
const (
	PersonalityProfessional = "Professional and polished"
	PersonalityCasual       = "Casual and friendly"
	PersonalityAcademic     = "Academic and scholarly"
	PersonalityCreative     = "Creative and playful"
	PersonalityBold         = "Bold and persuasive"
)

// Formality levels for style preferences.
const (
	FormalityFormal = "formal"
	FormalityCasual = "casual"
	FormalityMixed  = "mixed"
)

// Length preferences.
const (
	LengthConcise  = "concise"
	LengthDetailed = "detailed"
	LengthBalanced = "balanced"
)

// Voice preferences.
const (
	VoiceActive  = "active"
	VoicePassive = "passive"
	VoiceMixed   = "mixed"
)

// StylePreferences tune how a persona phrases its output.
type StylePreferences struct {
	Tone      string
	Formality string
	Length    string
	Voice     string
}

func (s StylePreferences) IsZero() bool {
	return s.Tone == "" && s.Formality == "" && s.Length == "" && s.Voice == ""
}

// TrainingSample is a user-supplied example text used to bias prompt
// construction toward a desired style. Belongs to exactly one persona.
type TrainingSample struct {
	Text    string
	Title   string
	Notes   string
	AddedAt time.Time
}

type TrainingData struct {
	Samples []TrainingSample
}

// RecentSamples returns up to limit samples, most recently added first.
func (t TrainingData) RecentSamples(limit int) []TrainingSample {
	if limit <= 0 || len(t.Samples) == 0 {
		return nil
	}
	samples := make([]TrainingSample, len(t.Samples))
	copy(samples, t.Samples)
	sort.SliceStable(
		samples, func(i, j int) bool {
			return samples[i].AddedAt.After(samples[j].AddedAt)
		},
	)
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return samples
}

// Persona is a configured writing identity. Personality and WritingStyle
// are always non-empty; Personality drives all template selection.
type Persona struct {
	ID                 string
	Name               string
	Personality        string
	WritingStyle       string
	CustomInstructions string
	Style              StylePreferences
	Training           TrainingData
}
