package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anikeeva/writedesk/internal/model"
)

var (
	ErrPersonaDoesNotExist  = errors.New("persona does not exist")
	ErrPersonaIDsDoNotExist = errors.New("persona ids do not exist")
)

type trainingSampleInternal struct {
	Text    string    `json:"text"`
	Title   string    `json:"title,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

type stylePreferencesInternal struct {
	Tone      string `json:"tone,omitempty"`
	Formality string `json:"formality,omitempty"`
	Length    string `json:"length,omitempty"`
	Voice     string `json:"voice,omitempty"`
}

type personaInternal struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	Personality        string                   `json:"personality"`
	WritingStyle       string                   `json:"writing_style"`
	CustomInstructions string                   `json:"custom_instructions,omitempty"`
	Style              stylePreferencesInternal `json:"style"`
	Samples            []trainingSampleInternal `json:"samples"`
}

type personaIDs struct {
	IDs []string `json:"ids"`
}

type PersonaStorage struct {
	rdb *redis.Client
}

func NewPersonaStorage(rdb *redis.Client) *PersonaStorage {
	return &PersonaStorage{
		rdb: rdb,
	}
}

func (p *PersonaStorage) UpsertPersona(ctx context.Context, persona model.Persona) error {
	known, err := p.getPersonaIDs(ctx)
	if err != nil {
		if !errors.Is(err, ErrPersonaIDsDoNotExist) {
			return fmt.Errorf("failed to get persona ids: %w", err)
		}
		known = personaIDs{IDs: make([]string, 0)}
	}

	found := false
	for _, id := range known.IDs {
		if id == persona.ID {
			found = true
			break
		}
	}
	if !found {
		known.IDs = append(known.IDs, persona.ID)
		if err = p.setPersonaIDs(ctx, known); err != nil {
			return fmt.Errorf("failed to set persona ids: %w", err)
		}
	}

	if err = p.setPersonaInt(ctx, toPersonaInternal(persona)); err != nil {
		return fmt.Errorf("failed to set persona %s: %w", persona.ID, err)
	}
	return nil
}

func (p *PersonaStorage) GetPersona(ctx context.Context, id string) (model.Persona, error) {
	personaInt, err := p.getPersonaInt(ctx, id)
	if err != nil {
		return model.Persona{}, err
	}
	return fromPersonaInternal(personaInt), nil
}

func (p *PersonaStorage) ListPersonas(ctx context.Context) ([]model.Persona, error) {
	known, err := p.getPersonaIDs(ctx)
	if err != nil {
		if errors.Is(err, ErrPersonaIDsDoNotExist) {
			return []model.Persona{}, nil
		}
		return nil, fmt.Errorf("failed to get persona ids: %w", err)
	}
	personas := make([]model.Persona, 0, len(known.IDs))
	for _, id := range known.IDs {
		persona, err := p.GetPersona(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get persona %s: %w", id, err)
		}
		personas = append(personas, persona)
	}
	return personas, nil
}

func (p *PersonaStorage) AddTrainingSample(
	ctx context.Context, personaID string, sample model.TrainingSample,
) error {
	personaInt, err := p.getPersonaInt(ctx, personaID)
	if err != nil {
		return err
	}
	personaInt.Samples = append(
		personaInt.Samples, trainingSampleInternal{
			Text:    sample.Text,
			Title:   sample.Title,
			Notes:   sample.Notes,
			AddedAt: sample.AddedAt,
		},
	)
	if err = p.setPersonaInt(ctx, personaInt); err != nil {
		return fmt.Errorf("failed to set persona %s: %w", personaID, err)
	}
	return nil
}

func (p *PersonaStorage) getPersonaInt(ctx context.Context, id string) (personaInternal, error) {
	raw, err := p.rdb.Get(ctx, getPersonaKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return personaInternal{}, ErrPersonaDoesNotExist
		}
		return personaInternal{}, fmt.Errorf("failed to get persona %s: %w", id, err)
	}
	var personaInt personaInternal
	if err = json.Unmarshal([]byte(raw), &personaInt); err != nil {
		return personaInternal{}, fmt.Errorf("failed to unmarshal persona %s: %w", id, err)
	}
	return personaInt, nil
}

func (p *PersonaStorage) setPersonaInt(ctx context.Context, personaInt personaInternal) error {
	personaJSON, err := json.Marshal(personaInt)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}
	if err = p.rdb.Set(ctx, getPersonaKey(personaInt.ID), personaJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save persona %s: %w", personaInt.ID, err)
	}
	return nil
}

func (p *PersonaStorage) getPersonaIDs(ctx context.Context) (personaIDs, error) {
	raw, err := p.rdb.Get(ctx, personaIDsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return personaIDs{}, ErrPersonaIDsDoNotExist
		}
		return personaIDs{}, fmt.Errorf("failed to get persona ids: %w", err)
	}
	var known personaIDs
	if err = json.Unmarshal([]byte(raw), &known); err != nil {
		return personaIDs{}, fmt.Errorf("failed to unmarshal persona ids: %w", err)
	}
	return known, nil
}

func (p *PersonaStorage) setPersonaIDs(ctx context.Context, known personaIDs) error {
	knownJSON, err := json.Marshal(known)
	if err != nil {
		return fmt.Errorf("failed to marshal persona ids: %w", err)
	}
	if err = p.rdb.Set(ctx, personaIDsKey, knownJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save persona ids: %w", err)
	}
	return nil
}

func toPersonaInternal(persona model.Persona) personaInternal {
	samples := make([]trainingSampleInternal, 0, len(persona.Training.Samples))
	for _, sample := range persona.Training.Samples {
		samples = append(
			samples, trainingSampleInternal{
				Text:    sample.Text,
				Title:   sample.Title,
				Notes:   sample.Notes,
				AddedAt: sample.AddedAt,
			},
		)
	}
	return personaInternal{
		ID:                 persona.ID,
		Name:               persona.Name,
		Personality:        persona.Personality,
		WritingStyle:       persona.WritingStyle,
		CustomInstructions: persona.CustomInstructions,
		Style: stylePreferencesInternal{
			Tone:      persona.Style.Tone,
			Formality: persona.Style.Formality,
			Length:    persona.Style.Length,
			Voice:     persona.Style.Voice,
		},
		Samples: samples,
	}
}

func fromPersonaInternal(personaInt personaInternal) model.Persona {
	samples := make([]model.TrainingSample, 0, len(personaInt.Samples))
	for _, sample := range personaInt.Samples {
		samples = append(
			samples, model.TrainingSample{
				Text:    sample.Text,
				Title:   sample.Title,
				Notes:   sample.Notes,
				AddedAt: sample.AddedAt,
			},
		)
	}
	return model.Persona{
		ID:                 personaInt.ID,
		Name:               personaInt.Name,
		Personality:        personaInt.Personality,
		WritingStyle:       personaInt.WritingStyle,
		CustomInstructions: personaInt.CustomInstructions,
		Style: model.StylePreferences{
			Tone:      personaInt.Style.Tone,
			Formality: personaInt.Style.Formality,
			Length:    personaInt.Style.Length,
			Voice:     personaInt.Style.Voice,
		},
		Training: model.TrainingData{Samples: samples},
	}
}

const personaIDsKey = "persona_ids"

func getPersonaKey(id string) string {
	return fmt.Sprintf("persona_%s", id)
}
