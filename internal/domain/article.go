package domain

import "time"

// Status is the moderation state of an article.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusPending, StatusApproved, StatusRejected}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Categories contains the fixed set of topic tags an approved article
// can carry.
var Categories = []string{
	"Politics",
	"Sports",
	"Business",
	"Entertainment",
	"Technology",
	"Health",
	"Education",
	"Crime",
	"Culture",
}

// IsValidCategory checks if a category is one of the fixed topic tags.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Article represents a news item, either imported from the external
// provider (is_api=true, starts pending) or authored by a moderator
// (is_api=false, starts approved).
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    *string   `json:"category,omitempty"`
	Region      *Region   `json:"region,omitempty"`
	Status      Status    `json:"status"`
	IsAPI       bool      `json:"is_api"`
	Hidden      bool      `json:"hidden"`
	IsDontMiss  bool      `json:"is_dont_miss"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleFilter narrows article listing queries. Nil pointer fields are
// not applied. Limit/Offset of zero mean unbounded.
type ArticleFilter struct {
	Status   *Status
	Hidden   *bool
	IsAPI    *bool
	Region   *Region
	Category *string
	DontMiss *bool
	Limit    int
	Offset   int
}

// ArticleUpdate carries the editable fields of a manual update. Nil
// fields are left unchanged. Status, is_api and the toggles have their
// own operations and are never touched here.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	Region      *Region
}

// IsEmpty reports whether the update would change nothing.
func (u ArticleUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Image == nil &&
		u.Category == nil && u.Region == nil
}

// ImportResult is the structured outcome of one provider import.
// Upstream failures are absorbed into a zero-Imported result rather
// than propagated.
type ImportResult struct {
	Region     Region `json:"region"`
	Fetched    int    `json:"fetched"`
	Discarded  int    `json:"discarded"`
	Duplicates int    `json:"duplicates"`
	Imported   int    `json:"imported"`
}

// BulkInsertResult reports how a best-effort unordered bulk insert went.
// Skipped counts rows dropped by the uniqueness constraint.
type BulkInsertResult struct {
	Inserted int
	Skipped  int
}
