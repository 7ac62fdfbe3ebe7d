package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
)

// Defaults applied when a seeded persona omits the always-required
// fields.
const (
	defaultPersonality  = "Balanced and helpful"
	defaultWritingStyle = "clear, natural prose"
)

type PersonaStorage interface {
	UpsertPersona(ctx context.Context, persona model.Persona) error
	GetPersona(ctx context.Context, id string) (model.Persona, error)
	ListPersonas(ctx context.Context) ([]model.Persona, error)
	AddTrainingSample(ctx context.Context, personaID string, sample model.TrainingSample) error
}

type PersonaUsecaseDeps struct {
	PersonaStorage PersonaStorage
}

type PersonaUsecase struct {
	PersonaUsecaseDeps
}

func NewPersonaUsecase(deps PersonaUsecaseDeps) *PersonaUsecase {
	return &PersonaUsecase{
		PersonaUsecaseDeps: deps,
	}
}

// SeedFromConfig loads config-defined personas into the registry,
// filling the always-required fields when a block omits them.
func (u *PersonaUsecase) SeedFromConfig(ctx context.Context, personas []config.Persona) error {
	for _, cfgPersona := range personas {
		persona := model.Persona{
			ID:                 cfgPersona.ID,
			Name:               cfgPersona.Name,
			Personality:        cfgPersona.Personality,
			WritingStyle:       cfgPersona.WritingStyle,
			CustomInstructions: cfgPersona.CustomInstructions,
			Style: model.StylePreferences{
				Tone:      cfgPersona.Style.Tone,
				Formality: cfgPersona.Style.Formality,
				Length:    cfgPersona.Style.Length,
				Voice:     cfgPersona.Style.Voice,
			},
		}
		if persona.ID == "" {
			return fmt.Errorf("persona %q has no id", cfgPersona.Name)
		}
		if persona.Name == "" {
			persona.Name = persona.ID
		}
		if persona.Personality == "" {
			persona.Personality = defaultPersonality
		}
		if persona.WritingStyle == "" {
			persona.WritingStyle = defaultWritingStyle
		}
		for _, sample := range cfgPersona.TrainingSamples {
			addedAt := sample.AddedAt
			if addedAt.IsZero() {
				addedAt = time.Now()
			}
			persona.Training.Samples = append(
				persona.Training.Samples, model.TrainingSample{
					Text:    sample.Text,
					Title:   sample.Title,
					Notes:   sample.Notes,
					AddedAt: addedAt,
				},
			)
		}
		if err := u.PersonaStorage.UpsertPersona(ctx, persona); err != nil {
			return fmt.Errorf("failed to seed persona %s: %w", persona.ID, err)
		}
	}
	return nil
}

// CreatePersona registers a new persona with a generated id. Empty
// personality or style fall back to the seeding defaults.
func (u *PersonaUsecase) CreatePersona(
	ctx context.Context, name, personality, writingStyle string,
) (model.Persona, error) {
	if personality == "" {
		personality = defaultPersonality
	}
	if writingStyle == "" {
		writingStyle = defaultWritingStyle
	}
	persona := model.Persona{
		ID:           uuid.NewString(),
		Name:         name,
		Personality:  personality,
		WritingStyle: writingStyle,
	}
	if err := u.PersonaStorage.UpsertPersona(ctx, persona); err != nil {
		return model.Persona{}, fmt.Errorf("failed to create persona %s: %w", name, err)
	}
	return persona, nil
}

func (u *PersonaUsecase) GetPersona(ctx context.Context, id string) (model.Persona, error) {
	return u.PersonaStorage.GetPersona(ctx, id)
}

func (u *PersonaUsecase) ListPersonas(ctx context.Context) ([]model.Persona, error) {
	return u.PersonaStorage.ListPersonas(ctx)
}

func (u *PersonaUsecase) AddTrainingSample(
	ctx context.Context, personaID, text, title, notes string,
) error {
	return u.PersonaStorage.AddTrainingSample(
		ctx, personaID, model.TrainingSample{
			Text:    text,
			Title:   title,
			Notes:   notes,
			AddedAt: time.Now(),
		},
	)
}
