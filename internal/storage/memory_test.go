package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayra-my/ayra/internal/models"
)

func TestMemoryStorage_TurnRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	turn := &models.Turn{
		ID:        "t-1",
		UserText:  "apa khabar",
		ReplyText: "Khabar baik!",
		MoodScore: 0.25,
		Backend:   "Gemini (Ayra)",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.SaveTurn(ctx, turn))

	got, err := s.GetRecentTurns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "apa khabar", got[0].UserText)
	assert.Equal(t, "Khabar baik!", got[0].ReplyText)
	assert.Equal(t, "Gemini (Ayra)", got[0].Backend)
}

func TestMemoryStorage_RecentTurnsOldestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, s.SaveTurn(ctx, &models.Turn{UserText: text, CreatedAt: time.Now()}))
	}

	got, err := s.GetRecentTurns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].UserText)
	assert.Equal(t, "three", got[1].UserText)
}

func TestMemoryStorage_StoryContinuation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	id, err := s.SaveStory(ctx, "User Story", "original")
	require.NoError(t, err)

	require.NoError(t, s.AppendStory(ctx, id, " + first"))
	require.NoError(t, s.AppendStory(ctx, id, " + second"))

	story, err := s.GetLatestStory(ctx)
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, "original + first + second", story.Content)
}

func TestMemoryStorage_LatestStoryByContinuation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	first, err := s.SaveStory(ctx, "first", "a")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = s.SaveStory(ctx, "second", "b")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	// Continuing the older story makes it the latest one.
	require.NoError(t, s.AppendStory(ctx, first, " more"))

	story, err := s.GetLatestStory(ctx)
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, "first", story.Title)
}

func TestMemoryStorage_AppendMissingStory(t *testing.T) {
	s := NewMemoryStorage()
	assert.Error(t, s.AppendStory(context.Background(), 42, "x"))
}

func TestMemoryStorage_EmptyNarrativeState(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	story, err := s.GetLatestStory(ctx)
	require.NoError(t, err)
	assert.Nil(t, story)

	dream, err := s.GetRandomDream(ctx)
	require.NoError(t, err)
	assert.Nil(t, dream)
}

func TestMemoryStorage_Dreams(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.SaveDream(ctx, "mimpi pelik"))

	dream, err := s.GetRandomDream(ctx)
	require.NoError(t, err)
	require.NotNil(t, dream)
	assert.Equal(t, "mimpi pelik", dream.Text)
}

func TestMemoryStorage_Stats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	value, err := s.GetStat(ctx, "total_messages")
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	require.NoError(t, s.IncrementStat(ctx, "total_messages", 1))
	require.NoError(t, s.IncrementStat(ctx, "total_messages", 1))

	value, err = s.GetStat(ctx, "total_messages")
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)
}

func TestMemoryStorage_Profile(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	value, err := s.GetProfile(ctx, "name")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, s.SetProfile(ctx, "name", "Aina"))
	value, err = s.GetProfile(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, "Aina", value)
}

func TestMemoryStorage_CrisisLogTruncates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	require.NoError(t, s.LogCrisisEvent(ctx, string(long), "nak mati"))

	events := s.CrisisEvents()
	require.Len(t, events, 1)
	assert.Len(t, events[0].UserText, 200)
	assert.Equal(t, "nak mati", events[0].Keyword)
}
