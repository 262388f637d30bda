package service

import (
	"context"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/provider"
)

// NewsProvider abstracts the upstream news API client.
// Used for dependency injection and mocking in tests.
type NewsProvider interface {
	// Configured reports whether an API key is present.
	Configured() bool
	// Fetch retrieves the latest articles for a search query.
	Fetch(ctx context.Context, query string) ([]provider.Article, error)
}

// NewsServiceInterface defines the interface for article operations.
// Used for dependency injection and mocking in tests.
type NewsServiceInterface interface {
	// Import pulls articles from the upstream provider for a region.
	Import(ctx context.Context, region string) (*domain.ImportResult, error)

	// List returns the public listing: approved, not hidden, optionally
	// filtered by category.
	List(ctx context.Context, category string) ([]domain.Article, error)
	// ListPaginated returns a page of the public listing with totals.
	ListPaginated(ctx context.Context, category string, page, limit int) ([]domain.Article, int, int, error)
	// ListByRegion returns the public listing for a region.
	ListByRegion(ctx context.Context, region string) ([]domain.Article, error)
	// ListPending returns the moderation queue, optionally by region.
	ListPending(ctx context.Context, region string) ([]domain.Article, error)
	// ListDontMiss returns the curated highlights strip.
	ListDontMiss(ctx context.Context) ([]domain.Article, error)

	// Create stores a moderator-authored article, published immediately.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// Update applies a partial edit to an article.
	Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error)
	// Delete removes an article permanently.
	Delete(ctx context.Context, id string) error

	// Approve publishes a pending article under a category.
	Approve(ctx context.Context, id, category string) (*domain.Article, error)
	// Reject declines a pending article.
	Reject(ctx context.Context, id string) (*domain.Article, error)
	// UndoApprove returns an approved article to the moderation queue.
	UndoApprove(ctx context.Context, id string) (*domain.Article, error)
	// ToggleHidden flips an article's visibility.
	ToggleHidden(ctx context.Context, id string) (*domain.Article, error)
	// ToggleDontMiss flips an article's highlight flag.
	ToggleDontMiss(ctx context.Context, id string) (*domain.Article, error)
}

// BreakingServiceInterface defines the interface for ticker operations.
// Used for dependency injection and mocking in tests.
type BreakingServiceInterface interface {
	// List returns all ticker items, newest first.
	List(ctx context.Context) ([]domain.BreakingNewsItem, error)
	// Create adds a ticker item, active immediately.
	Create(ctx context.Context, text string) (*domain.BreakingNewsItem, error)
	// Toggle flips an item's active flag.
	Toggle(ctx context.Context, id string) (*domain.BreakingNewsItem, error)
	// Delete removes a ticker item.
	Delete(ctx context.Context, id string) error
}
