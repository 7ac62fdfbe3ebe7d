package in_memory

import (
	"context"
	"errors"
	"sync"

	"github.com/anikeeva/writedesk/internal/model"
)

var ErrPersonaDoesNotExist = errors.New("persona does not exist")

type PersonaStorage struct {
	mu       sync.RWMutex
	personas map[string]model.Persona
	order    []string
}

func NewPersonaStorage() *PersonaStorage {
	return &PersonaStorage{
		personas: make(map[string]model.Persona),
	}
}

func (p *PersonaStorage) UpsertPersona(_ context.Context, persona model.Persona) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.personas[persona.ID]; !ok {
		p.order = append(p.order, persona.ID)
	}
	p.personas[persona.ID] = persona
	return nil
}

func (p *PersonaStorage) GetPersona(_ context.Context, id string) (model.Persona, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	persona, ok := p.personas[id]
	if !ok {
		return model.Persona{}, ErrPersonaDoesNotExist
	}
	return persona, nil
}

// ListPersonas returns personas in insertion order.
func (p *PersonaStorage) ListPersonas(_ context.Context) ([]model.Persona, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	personas := make([]model.Persona, 0, len(p.order))
	for _, id := range p.order {
		personas = append(personas, p.personas[id])
	}
	return personas, nil
}

func (p *PersonaStorage) AddTrainingSample(
	_ context.Context, personaID string, sample model.TrainingSample,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	persona, ok := p.personas[personaID]
	if !ok {
		return ErrPersonaDoesNotExist
	}
	persona.Training.Samples = append(persona.Training.Samples, sample)
	p.personas[personaID] = persona
	return nil
}
