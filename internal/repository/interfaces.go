package repository

import (
	"context"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
)

// ArticleRepository defines methods for article data access.
//
// Lookup methods return (nil, nil) when the row does not exist;
// translating that into a NotFoundError is the service layer's job.
type ArticleRepository interface {
	// Insert stores a single article.
	Insert(ctx context.Context, article *domain.Article) error
	// BulkInsert stores a batch best-effort unordered: rows colliding
	// with the uniqueness constraint are skipped, the rest proceed.
	BulkInsert(ctx context.Context, articles []domain.Article) (domain.BulkInsertResult, error)
	// GetByID fetches one article.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// List returns articles matching the filter, newest first.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	// Count returns the number of articles matching the filter,
	// ignoring Limit/Offset.
	Count(ctx context.Context, filter domain.ArticleFilter) (int, error)
	// ExistingTitles reports which of the given titles already exist
	// among imported articles in the given region.
	ExistingTitles(ctx context.Context, titles []string, region domain.Region) (map[string]bool, error)
	// UpdateStatus transitions status only when the current status
	// matches from. A non-nil category is assigned alongside. Returns
	// (nil, nil) when the row is missing or the precondition fails.
	UpdateStatus(ctx context.Context, id string, from, to domain.Status, category *string) (*domain.Article, error)
	// Update applies a partial edit.
	Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error)
	// ToggleHidden flips the hidden flag.
	ToggleHidden(ctx context.Context, id string) (*domain.Article, error)
	// ToggleDontMiss flips the featured flag.
	ToggleDontMiss(ctx context.Context, id string) (*domain.Article, error)
	// Delete removes an article, reporting whether a row was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// BreakingNewsRepository defines methods for ticker data access.
type BreakingNewsRepository interface {
	Insert(ctx context.Context, item *domain.BreakingNewsItem) error
	List(ctx context.Context) ([]domain.BreakingNewsItem, error)
	ToggleActive(ctx context.Context, id string) (*domain.BreakingNewsItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
