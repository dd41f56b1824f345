package pipeline

import (
	"github.com/ayra-my/ayra/internal/fatigue"
	"github.com/ayra-my/ayra/internal/models"
	"github.com/ayra-my/ayra/internal/mood"
)

// Session holds all per-conversation mutable state. It is created at
// session start, threaded through every Process call and discarded at
// session end; nothing here hides in package globals.
type Session struct {
	History []models.ChatMessage

	Mood    *mood.Tracker
	Fatigue *fatigue.Gate

	// MoodScore is the smoothed mood as of the last generated turn.
	MoodScore   float64
	ComfortMode bool
}

func NewSession(tracker *mood.Tracker, gate *fatigue.Gate) *Session {
	return &Session{
		Mood:    tracker,
		Fatigue: gate,
	}
}

func (s *Session) append(role, content string) {
	s.History = append(s.History, models.ChatMessage{Role: role, Content: content})
}
