package egg

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayra-my/ayra/internal/storage"
)

func newInterpreter(t *testing.T) (*Interpreter, *storage.MemoryStorage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	return NewInterpreter(store, rand.New(rand.NewSource(1))), store
}

func TestInterpret_NotACommand(t *testing.T) {
	i, _ := newInterpreter(t)

	for _, text := range []string{"hello", "/unknown", "ais-krim", "tell me about /mood"} {
		result := i.Interpret(context.Background(), text)
		assert.False(t, result.Matched, "input %q", text)
	}
}

func TestInterpret_CaseAndWhitespace(t *testing.T) {
	i, _ := newInterpreter(t)

	result := i.Interpret(context.Background(), "  /PENAT  ")
	require.True(t, result.Matched)
	assert.Contains(t, result.Text, "Nurse Mode")
}

func TestInterpret_RandomChoiceStaysInCandidateList(t *testing.T) {
	i, _ := newInterpreter(t)

	// Drawing many times must never leave the fixed candidate list.
	for n := 0; n < 50; n++ {
		result := i.Interpret(context.Background(), "/ais-krim")
		require.True(t, result.Matched)
		assert.Contains(t, iceCreamJokes, result.Text)
	}
	for n := 0; n < 50; n++ {
		result := i.Interpret(context.Background(), "/food")
		require.True(t, result.Matched)
		assert.Contains(t, foods, result.Text)
	}
}

func TestInterpret_MoodUsesTemplate(t *testing.T) {
	i, _ := newInterpreter(t)

	result := i.Interpret(context.Background(), "/mood")
	require.True(t, result.Matched)
	assert.Contains(t, result.Text, "🎭 Mood AYRA hari ni ")
}

func TestInterpret_DynamicCommandsDefer(t *testing.T) {
	i, _ := newInterpreter(t)

	level := i.Interpret(context.Background(), "/level")
	require.True(t, level.Matched)
	assert.Equal(t, DynamicLevel, level.Dynamic)
	assert.Empty(t, level.Text)

	badges := i.Interpret(context.Background(), "/badges")
	require.True(t, badges.Matched)
	assert.Equal(t, DynamicBadges, badges.Dynamic)
}

func TestInterpret_StoryLifecycle(t *testing.T) {
	ctx := context.Background()
	i, store := newInterpreter(t)

	// No story yet: graceful fallback, no error.
	result := i.Interpret(ctx, "/sambung")
	require.True(t, result.Matched)
	assert.Equal(t, noStoryReply, result.Text)

	// /cerita starts and persists a story.
	result = i.Interpret(ctx, "/cerita")
	require.True(t, result.Matched)
	assert.Equal(t, storyOpener, result.Text)

	story, err := store.GetLatestStory(ctx)
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, storyOpener, story.Content)

	// Two continuations append in order.
	first := i.Interpret(ctx, "/sambung")
	second := i.Interpret(ctx, "/sambung")
	require.True(t, first.Matched)
	require.True(t, second.Matched)

	story, err = store.GetLatestStory(ctx)
	require.NoError(t, err)
	assert.Greater(t, len(story.Content), len(storyOpener))
	assert.Contains(t, first.Text, "📖 Sambungan: ")
	assert.Contains(t, second.Text, "📖 Sambungan: ")
}

func TestInterpret_StoryContinuationConcatenates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	i := NewInterpreter(store, rand.New(rand.NewSource(7)))

	_, err := store.SaveStory(ctx, "User Story", "original")
	require.NoError(t, err)

	i.Interpret(ctx, "/sambung")
	i.Interpret(ctx, "/sambung")

	story, err := store.GetLatestStory(ctx)
	require.NoError(t, err)

	// Content is original + both appended continuations, in order.
	require.True(t, len(story.Content) > len("original"))
	assert.Equal(t, "original", story.Content[:len("original")])
	rest := story.Content[len("original"):]
	assert.Contains(t, rest, "\n\n")
}

func TestInterpret_DreamInventsThenRecalls(t *testing.T) {
	ctx := context.Background()
	i, store := newInterpreter(t)

	// First call invents, persists and returns a dream.
	first := i.Interpret(ctx, "/dream")
	require.True(t, first.Matched)
	assert.Contains(t, first.Text, "🌙 ")

	dream, err := store.GetRandomDream(ctx)
	require.NoError(t, err)
	require.NotNil(t, dream)

	// Second call recalls the stored one.
	second := i.Interpret(ctx, "/dream")
	assert.Equal(t, "🌙 "+dream.Text, second.Text)
}
