package models

import "time"

// CrisisEvent is a write-only audit record of a detected crisis message.
// The stored user text is truncated to 200 characters.
type CrisisEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserText  string    `json:"user_text"`
	Keyword   string    `json:"keyword"`
}
