package storage

import (
	"context"

	"github.com/ayra-my/ayra/internal/models"
)

// Storage is the interaction store: an append-only turn log plus the
// profile, stats and narrative tables. All writes are synchronous; callers
// may assume durability once a method returns nil.
type Storage interface {
	SaveTurn(ctx context.Context, turn *models.Turn) error
	// GetRecentTurns returns up to n turns, oldest first.
	GetRecentTurns(ctx context.Context, n int) ([]*models.Turn, error)

	GetProfile(ctx context.Context, key string) (string, error)
	SetProfile(ctx context.Context, key, value string) error

	SaveStory(ctx context.Context, title, content string) (int64, error)
	// GetLatestStory orders by last_continued, not creation time.
	GetLatestStory(ctx context.Context) (*models.Story, error)
	// AppendStory concatenates content onto an existing story and bumps
	// its last_continued timestamp.
	AppendStory(ctx context.Context, storyID int64, content string) error

	SaveDream(ctx context.Context, text string) error
	GetRandomDream(ctx context.Context) (*models.Dream, error)

	IncrementStat(ctx context.Context, key string, delta int64) error
	GetStat(ctx context.Context, key string) (int64, error)

	LogCrisisEvent(ctx context.Context, userText, keyword string) error

	Close() error
}

// crisisTextLimit caps the user text stored in the crisis audit log.
const crisisTextLimit = 200

func truncateCrisisText(text string) string {
	runes := []rune(text)
	if len(runes) > crisisTextLimit {
		return string(runes[:crisisTextLimit])
	}
	return text
}
