package models

import "time"

// Turn is one user/assistant exchange with the metadata recorded at reply time.
type Turn struct {
	ID        string    `json:"id"`
	UserText  string    `json:"user_text"`
	ReplyText string    `json:"reply_text"`
	MoodScore float64   `json:"mood_score"`
	Backend   string    `json:"backend"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is a role-tagged entry in the live display history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is what the pipeline emits for a processed message: the assistant
// text plus a side-channel label naming which backend (or canned path)
// produced it.
type Reply struct {
	Text    string `json:"text"`
	Backend string `json:"backend"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
