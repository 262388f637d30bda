package domain

import "time"

// BreakingNewsItem is one entry of the rotating announcement ticker.
// It has no relationship to Article.
type BreakingNewsItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
