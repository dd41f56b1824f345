package models

import "time"

// Story is a collaborative narrative. Continuations concatenate onto Content
// and bump LastContinued; "latest story" ordering follows LastContinued, not
// CreatedAt.
type Story struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	LastContinued time.Time `json:"last_continued"`
}

// Dream is a short invented memory shown by the /dream command.
type Dream struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}
