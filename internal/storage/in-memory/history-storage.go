package in_memory

import (
	"context"
	"sync"

	"github.com/anikeeva/writedesk/internal/model"
)

type HistoryStorage struct {
	mu    sync.RWMutex
	turns map[string][]model.Turn
}

func NewHistoryStorage() *HistoryStorage {
	return &HistoryStorage{
		turns: make(map[string][]model.Turn),
	}
}

func (h *HistoryStorage) AppendTurn(_ context.Context, personaID string, turn model.Turn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns[personaID] = append(h.turns[personaID], turn)
	return nil
}

// RecentTurns returns the last limit turns for the persona in
// chronological order. A non-positive limit returns everything.
func (h *HistoryStorage) RecentTurns(
	_ context.Context, personaID string, limit int,
) ([]model.Turn, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	turns := h.turns[personaID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	result := make([]model.Turn, len(turns))
	copy(result, turns)
	return result, nil
}
