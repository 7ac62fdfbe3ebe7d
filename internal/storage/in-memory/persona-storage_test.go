package in_memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikeeva/writedesk/internal/model"
)

func TestPersonaStorageUpsertAndGet(t *testing.T) {
	storage := NewPersonaStorage()
	ctx := context.Background()

	persona := model.Persona{
		ID:           "sophia",
		Name:         "Sophia",
		Personality:  model.PersonalityProfessional,
		WritingStyle: "crisp business prose",
	}
	require.NoError(t, storage.UpsertPersona(ctx, persona))

	got, err := storage.GetPersona(ctx, "sophia")
	require.NoError(t, err)
	assert.Equal(t, persona, got)

	persona.WritingStyle = "even crisper"
	require.NoError(t, storage.UpsertPersona(ctx, persona))

	got, err = storage.GetPersona(ctx, "sophia")
	require.NoError(t, err)
	assert.Equal(t, "even crisper", got.WritingStyle)
}

func TestPersonaStorageGetUnknown(t *testing.T) {
	storage := NewPersonaStorage()

	_, err := storage.GetPersona(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPersonaDoesNotExist)
}

func TestPersonaStorageListKeepsInsertionOrder(t *testing.T) {
	storage := NewPersonaStorage()
	ctx := context.Background()

	for _, id := range []string{"sophia", "max", "elena"} {
		require.NoError(t, storage.UpsertPersona(ctx, model.Persona{ID: id, Name: id}))
	}
	// Re-upserting must not move the persona to the back.
	require.NoError(t, storage.UpsertPersona(ctx, model.Persona{ID: "sophia", Name: "Sophia"}))

	personas, err := storage.ListPersonas(ctx)
	require.NoError(t, err)
	require.Len(t, personas, 3)
	assert.Equal(t, "sophia", personas[0].ID)
	assert.Equal(t, "max", personas[1].ID)
	assert.Equal(t, "elena", personas[2].ID)
}

func TestPersonaStorageAddTrainingSample(t *testing.T) {
	storage := NewPersonaStorage()
	ctx := context.Background()

	require.NoError(t, storage.UpsertPersona(ctx, model.Persona{ID: "max", Name: "Max"}))

	sample := model.TrainingSample{Text: "hey, quick thought on this", AddedAt: time.Now()}
	require.NoError(t, storage.AddTrainingSample(ctx, "max", sample))

	got, err := storage.GetPersona(ctx, "max")
	require.NoError(t, err)
	require.Len(t, got.Training.Samples, 1)
	assert.Equal(t, sample.Text, got.Training.Samples[0].Text)

	err = storage.AddTrainingSample(ctx, "nobody", sample)
	assert.ErrorIs(t, err, ErrPersonaDoesNotExist)
}

func TestHistoryStorageRecentTurns(t *testing.T) {
	storage := NewHistoryStorage()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(
			t, storage.AppendTurn(
				ctx, "max", model.Turn{
					Source: model.TurnSourceUser,
					Body:   string(rune('a' + i)),
					At:     base.Add(time.Duration(i) * time.Second),
				},
			),
		)
	}

	turns, err := storage.RecentTurns(ctx, "max", 3)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "c", turns[0].Body)
	assert.Equal(t, "e", turns[2].Body)

	all, err := storage.RecentTurns(ctx, "max", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	empty, err := storage.RecentTurns(ctx, "nobody", 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
