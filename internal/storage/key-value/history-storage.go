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

// Stored history is capped per persona; older turns roll off on append.
const maxStoredTurns = 100

type turnInternal struct {
	Source string    `json:"source"`
	Body   string    `json:"body"`
	At     time.Time `json:"at"`
}

type historyInternal struct {
	Turns []turnInternal `json:"turns"`
}

type HistoryStorage struct {
	rdb *redis.Client
}

func NewHistoryStorage(rdb *redis.Client) *HistoryStorage {
	return &HistoryStorage{
		rdb: rdb,
	}
}

func (h *HistoryStorage) AppendTurn(ctx context.Context, personaID string, turn model.Turn) error {
	history, err := h.getHistoryInt(ctx, personaID)
	if err != nil {
		return err
	}
	history.Turns = append(
		history.Turns, turnInternal{
			Source: string(turn.Source),
			Body:   turn.Body,
			At:     turn.At,
		},
	)
	if len(history.Turns) > maxStoredTurns {
		history.Turns = history.Turns[len(history.Turns)-maxStoredTurns:]
	}
	if err = h.setHistoryInt(ctx, personaID, history); err != nil {
		return fmt.Errorf("failed to set history %s: %w", personaID, err)
	}
	return nil
}

func (h *HistoryStorage) RecentTurns(
	ctx context.Context, personaID string, limit int,
) ([]model.Turn, error) {
	history, err := h.getHistoryInt(ctx, personaID)
	if err != nil {
		return nil, err
	}
	turnsInt := history.Turns
	if limit > 0 && len(turnsInt) > limit {
		turnsInt = turnsInt[len(turnsInt)-limit:]
	}
	turns := make([]model.Turn, 0, len(turnsInt))
	for _, turn := range turnsInt {
		turns = append(
			turns, model.Turn{
				Source: model.TurnSource(turn.Source),
				Body:   turn.Body,
				At:     turn.At,
			},
		)
	}
	return turns, nil
}

func (h *HistoryStorage) getHistoryInt(ctx context.Context, personaID string) (historyInternal, error) {
	raw, err := h.rdb.Get(ctx, getHistoryKey(personaID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return historyInternal{Turns: make([]turnInternal, 0)}, nil
		}
		return historyInternal{}, fmt.Errorf("failed to get history %s: %w", personaID, err)
	}
	var history historyInternal
	if err = json.Unmarshal([]byte(raw), &history); err != nil {
		return historyInternal{}, fmt.Errorf("failed to unmarshal history %s: %w", personaID, err)
	}
	return history, nil
}

func (h *HistoryStorage) setHistoryInt(
	ctx context.Context, personaID string, history historyInternal,
) error {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err = h.rdb.Set(ctx, getHistoryKey(personaID), historyJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history %s: %w", personaID, err)
	}
	return nil
}

func getHistoryKey(personaID string) string {
	return fmt.Sprintf("history_%s", personaID)
}
