package storage

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ayra-my/ayra/internal/models"
)

// MemoryStorage mirrors PostgresStorage for single-session use and tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	turns   []*models.Turn
	profile map[string]string
	stories map[int64]*models.Story
	dreams  []*models.Dream
	stats   map[string]int64
	crises  []*models.CrisisEvent

	nextStoryID int64
	nextDreamID int64
	rng         *rand.Rand
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		profile:     make(map[string]string),
		stories:     make(map[int64]*models.Story),
		stats:       make(map[string]int64),
		nextStoryID: 1,
		nextDreamID: 1,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *MemoryStorage) SaveTurn(ctx context.Context, turn *models.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *turn
	s.turns = append(s.turns, &saved)
	return nil
}

func (s *MemoryStorage) GetRecentTurns(ctx context.Context, n int) ([]*models.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.turns) - n
	if start < 0 {
		start = 0
	}

	recent := make([]*models.Turn, 0, len(s.turns)-start)
	for _, turn := range s.turns[start:] {
		copied := *turn
		recent = append(recent, &copied)
	}
	return recent, nil
}

func (s *MemoryStorage) GetProfile(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile[key], nil
}

func (s *MemoryStorage) SetProfile(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile[key] = value
	return nil
}

func (s *MemoryStorage) SaveStory(ctx context.Context, title, content string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := s.nextStoryID
	s.nextStoryID++
	s.stories[id] = &models.Story{
		ID:            id,
		Title:         title,
		Content:       content,
		CreatedAt:     now,
		LastContinued: now,
	}
	return id, nil
}

func (s *MemoryStorage) GetLatestStory(ctx context.Context) (*models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.Story
	for _, story := range s.stories {
		if latest == nil || story.LastContinued.After(latest.LastContinued) {
			latest = story
		}
	}
	if latest == nil {
		return nil, nil
	}

	copied := *latest
	return &copied, nil
}

func (s *MemoryStorage) AppendStory(ctx context.Context, storyID int64, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, exists := s.stories[storyID]
	if !exists {
		return fmt.Errorf("story %d not found", storyID)
	}

	story.Content += content
	story.LastContinued = time.Now()
	return nil
}

func (s *MemoryStorage) SaveDream(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dreams = append(s.dreams, &models.Dream{
		ID:   s.nextDreamID,
		Text: text,
		Date: time.Now(),
	})
	s.nextDreamID++
	return nil
}

func (s *MemoryStorage) GetRandomDream(ctx context.Context) (*models.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.dreams) == 0 {
		return nil, nil
	}

	copied := *s.dreams[s.rng.Intn(len(s.dreams))]
	return &copied, nil
}

func (s *MemoryStorage) IncrementStat(ctx context.Context, key string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[key] += delta
	return nil
}

func (s *MemoryStorage) GetStat(ctx context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats[key], nil
}

func (s *MemoryStorage) LogCrisisEvent(ctx context.Context, userText, keyword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.crises = append(s.crises, &models.CrisisEvent{
		Timestamp: time.Now(),
		UserText:  truncateCrisisText(userText),
		Keyword:   keyword,
	})
	return nil
}

// CrisisEvents exposes the audit log for tests; the pipeline never reads it.
func (s *MemoryStorage) CrisisEvents() []*models.CrisisEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*models.CrisisEvent, len(s.crises))
	copy(events, s.crises)
	return events
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
