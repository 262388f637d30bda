package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/VirtuGrowDigital/LucknowZone/internal/cache"
	"github.com/VirtuGrowDigital/LucknowZone/internal/classifier"
	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/logger"
	"github.com/VirtuGrowDigital/LucknowZone/internal/metrics"
	"github.com/VirtuGrowDigital/LucknowZone/internal/provider"
	"github.com/VirtuGrowDigital/LucknowZone/internal/repository"
	"github.com/VirtuGrowDigital/LucknowZone/internal/validator"
)

const (
	// DefaultPageSize is the page size when the client does not ask
	// for one.
	DefaultPageSize = 10

	// DontMissLimit caps the curated highlights strip.
	DontMissLimit = 5
)

// regionQueries maps a sub-region to the upstream search query used
// when importing it. The local query is deliberately broad; the
// keyword classifier narrows the haul afterwards.
var regionQueries = map[domain.Region]string{
	domain.RegionLocal:         `Lucknow OR "Gomti Nagar" OR Hazratganj OR Awadh OR "Uttar Pradesh"`,
	domain.RegionNational:      "India",
	domain.RegionInternational: "world",
}

// NewsService handles article import, listing and moderation.
type NewsService struct {
	articleRepo repository.ArticleRepository
	provider    NewsProvider
	keywords    classifier.Keywords
	cache       cache.ListingCache
	validator   *validator.Validator

	allowAPIEdits bool
}

// NewNewsService creates a new NewsService.
func NewNewsService(
	articleRepo repository.ArticleRepository,
	p NewsProvider,
	keywords classifier.Keywords,
	listingCache cache.ListingCache,
	v *validator.Validator,
	allowAPIEdits bool,
) *NewsService {
	return &NewsService{
		articleRepo:   articleRepo,
		provider:      p,
		keywords:      keywords,
		cache:         listingCache,
		validator:     v,
		allowAPIEdits: allowAPIEdits,
	}
}

// Import pulls the latest articles for a region from the upstream
// provider, filters and deduplicates them, and stores the survivors as
// pending. Upstream failures are absorbed: the result reports zero
// imports and the error is logged, not returned.
func (s *NewsService) Import(ctx context.Context, region string) (*domain.ImportResult, error) {
	if err := s.validator.ValidateRegionParam(region); err != nil {
		return nil, err
	}
	r, _ := domain.NormalizeRegion(region)

	if !s.provider.Configured() {
		metrics.ObserveImport(string(r), metrics.ImportResultNotConfigured, 0, 0)
		return nil, domain.ErrProviderNotConfigured
	}

	timer := metrics.NewTimer()
	log := logger.WithRegion(string(r))

	fetched, err := s.provider.Fetch(ctx, regionQueries[r])
	if err != nil {
		log.ErrorContext(ctx, "provider fetch failed", slog.String("error", err.Error()))
		metrics.ObserveImport(string(r), metrics.ImportResultUpstreamError, timer.Seconds(), 0)
		return &domain.ImportResult{Region: r}, nil
	}

	result := &domain.ImportResult{Region: r, Fetched: len(fetched)}

	candidates := s.filterEligible(r, fetched, result)
	candidates = s.dropBatchDuplicates(candidates, result)

	if len(candidates) == 0 {
		metrics.ObserveImport(string(r), metrics.ImportResultOK, timer.Seconds(), 0)
		log.InfoContext(ctx, "import finished with nothing to store",
			slog.Int("fetched", result.Fetched),
			slog.Int("discarded", result.Discarded),
			slog.Int("duplicates", result.Duplicates))
		return result, nil
	}

	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
	}
	existing, err := s.articleRepo.ExistingTitles(ctx, titles, r)
	if err != nil {
		return nil, fmt.Errorf("check existing titles: %w", err)
	}

	now := time.Now().UTC()
	toInsert := make([]domain.Article, 0, len(candidates))
	for _, c := range candidates {
		if existing[c.Title] {
			result.Duplicates++
			continue
		}

		createdAt := now
		if published, ok := c.PublishedAt(); ok {
			createdAt = published
		}

		regionCopy := r
		toInsert = append(toInsert, domain.Article{
			ID:          uuid.NewString(),
			Title:       c.Title,
			Description: c.Description,
			Image:       c.ImageURL,
			Region:      &regionCopy,
			Status:      domain.StatusPending,
			IsAPI:       true,
			CreatedAt:   createdAt,
			UpdatedAt:   now,
		})
	}

	if len(toInsert) > 0 {
		inserted, err := s.articleRepo.BulkInsert(ctx, toInsert)
		if err != nil {
			return nil, fmt.Errorf("store imported articles: %w", err)
		}
		result.Imported = inserted.Inserted
		result.Duplicates += inserted.Skipped
	}

	if result.Imported > 0 {
		s.cache.Invalidate(ctx)
	}

	metrics.ObserveImport(string(r), metrics.ImportResultOK, timer.Seconds(), result.Imported)
	log.InfoContext(ctx, "import finished",
		slog.Int("fetched", result.Fetched),
		slog.Int("discarded", result.Discarded),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("imported", result.Imported))

	return result, nil
}

// scoredArticle pairs a provider article with its relevance score for
// ordering local imports.
type scoredArticle struct {
	article provider.Article
	score   int
}

// filterEligible drops articles missing a title or image, and for the
// local region additionally drops keyword-irrelevant ones and orders
// the rest by relevance.
func (s *NewsService) filterEligible(r domain.Region, fetched []provider.Article, result *domain.ImportResult) []provider.Article {
	eligible := make([]provider.Article, 0, len(fetched))
	for _, a := range fetched {
		if a.Title == "" || a.ImageURL == "" {
			result.Discarded++
			continue
		}
		eligible = append(eligible, a)
	}

	if r != domain.RegionLocal {
		return eligible
	}

	scored := make([]scoredArticle, 0, len(eligible))
	for _, a := range eligible {
		score := s.keywords.Score(r, a.Title, a.Description)
		if score == 0 {
			result.Discarded++
			continue
		}
		scored = append(scored, scoredArticle{article: a, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]provider.Article, len(scored))
	for i, sc := range scored {
		out[i] = sc.article
	}
	return out
}

// dropBatchDuplicates removes repeated titles within a single fetch,
// keeping the first occurrence.
func (s *NewsService) dropBatchDuplicates(articles []provider.Article, result *domain.ImportResult) []provider.Article {
	seen := make(map[string]bool, len(articles))
	out := articles[:0]
	for _, a := range articles {
		if seen[a.Title] {
			result.Duplicates++
			continue
		}
		seen[a.Title] = true
		out = append(out, a)
	}
	return out
}

// List returns the public listing: approved, not hidden, newest first,
// optionally filtered by category. Results for each category are served
// from the listing cache when available.
func (s *NewsService) List(ctx context.Context, category string) ([]domain.Article, error) {
	if category == "All" {
		category = ""
	}
	if category != "" {
		if err := s.validator.ValidateCategory(category); err != nil {
			return nil, err
		}
	}

	if cached, ok := s.cache.GetArticles(ctx, category); ok {
		return cached, nil
	}

	articles, err := s.articleRepo.List(ctx, s.publicFilter(category, 0, 0))
	if err != nil {
		return nil, err
	}

	s.cache.SetArticles(ctx, category, articles)
	return articles, nil
}

// ListPaginated returns one page of the public listing along with the
// total matching count and the page count.
func (s *NewsService) ListPaginated(ctx context.Context, category string, page, limit int) ([]domain.Article, int, int, error) {
	if category == "All" {
		category = ""
	}
	if category != "" {
		if err := s.validator.ValidateCategory(category); err != nil {
			return nil, 0, 0, err
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	filter := s.publicFilter(category, limit, (page-1)*limit)
	articles, err := s.articleRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	total, err := s.articleRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	pages := (total + limit - 1) / limit
	return articles, total, pages, nil
}

// ListByRegion returns the public listing for one region.
func (s *NewsService) ListByRegion(ctx context.Context, region string) ([]domain.Article, error) {
	if err := s.validator.ValidateRegionParam(region); err != nil {
		return nil, err
	}
	r, _ := domain.NormalizeRegion(region)

	hidden := false
	status := domain.StatusApproved
	return s.articleRepo.List(ctx, domain.ArticleFilter{
		Status: &status,
		Hidden: &hidden,
		Region: &r,
	})
}

// ListPending returns the moderation queue, newest first: pending
// imported articles only. Manual articles never pass through the
// queue, even after an undone approval. An empty region or "all"
// spans every region.
func (s *NewsService) ListPending(ctx context.Context, region string) ([]domain.Article, error) {
	status := domain.StatusPending
	isAPI := true
	filter := domain.ArticleFilter{Status: &status, IsAPI: &isAPI}

	if region != "" && region != "all" {
		if err := s.validator.ValidateRegionParam(region); err != nil {
			return nil, err
		}
		r, _ := domain.NormalizeRegion(region)
		filter.Region = &r
	}

	return s.articleRepo.List(ctx, filter)
}

// ListDontMiss returns the curated highlights strip: the newest
// featured articles, capped at DontMissLimit.
func (s *NewsService) ListDontMiss(ctx context.Context) ([]domain.Article, error) {
	hidden := false
	dontMiss := true
	status := domain.StatusApproved
	return s.articleRepo.List(ctx, domain.ArticleFilter{
		Status:   &status,
		Hidden:   &hidden,
		DontMiss: &dontMiss,
		Limit:    DontMissLimit,
	})
}

// Create stores a moderator-authored article. Manual articles skip the
// moderation queue and publish immediately.
func (s *NewsService) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if err := s.validator.ValidateManualArticle(article); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article.ID = uuid.NewString()
	article.Status = domain.StatusApproved
	article.IsAPI = false
	article.Hidden = false
	article.IsDontMiss = false
	article.CreatedAt = now
	article.UpdatedAt = now

	if err := s.articleRepo.Insert(ctx, article); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	s.cache.Invalidate(ctx)
	logger.WithArticleID(article.ID).InfoContext(ctx, "manual article created")
	return article, nil
}

// Update applies a partial edit. Provider-sourced articles are editable
// only when the edit policy allows it.
func (s *NewsService) Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	if err := s.validator.ValidateArticleUpdate(upd); err != nil {
		return nil, err
	}

	existing, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &domain.NotFoundError{Resource: "article", ID: id}
	}
	if existing.IsAPI && !s.allowAPIEdits {
		return nil, &domain.PolicyError{Op: "editing"}
	}

	updated, err := s.articleRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &domain.NotFoundError{Resource: "article", ID: id}
	}

	s.cache.Invalidate(ctx)
	return updated, nil
}

// Delete removes an article permanently. Provider-sourced articles are
// deletable only when the edit policy allows it.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	existing, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &domain.NotFoundError{Resource: "article", ID: id}
	}
	if existing.IsAPI && !s.allowAPIEdits {
		return &domain.PolicyError{Op: "deletion"}
	}

	deleted, err := s.articleRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "article", ID: id}
	}

	s.cache.Invalidate(ctx)
	logger.WithArticleID(id).InfoContext(ctx, "article deleted")
	return nil
}

// Approve publishes a pending article under the given category.
func (s *NewsService) Approve(ctx context.Context, id, category string) (*domain.Article, error) {
	if err := s.validator.ValidateCategory(category); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusApproved, &category)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, s.transitionFailure(ctx, id, "approve", domain.StatusPending)
	}

	metrics.ObserveModeration("approve")
	s.cache.Invalidate(ctx)
	logger.WithArticleID(id).InfoContext(ctx, "article approved", slog.String("category", category))
	return article, nil
}

// Reject declines a pending article. Rejected articles are kept for
// audit and never shown publicly.
func (s *NewsService) Reject(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articleRepo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusRejected, nil)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, s.transitionFailure(ctx, id, "reject", domain.StatusPending)
	}

	metrics.ObserveModeration("reject")
	logger.WithArticleID(id).InfoContext(ctx, "article rejected")
	return article, nil
}

// UndoApprove returns an approved article to the moderation queue. The
// category assigned at approval is kept so a later re-approval can
// reuse it.
func (s *NewsService) UndoApprove(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articleRepo.UpdateStatus(ctx, id, domain.StatusApproved, domain.StatusPending, nil)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, s.transitionFailure(ctx, id, "undo approve", domain.StatusApproved)
	}

	metrics.ObserveModeration("undo")
	s.cache.Invalidate(ctx)
	logger.WithArticleID(id).InfoContext(ctx, "approval undone")
	return article, nil
}

// ToggleHidden flips an article's visibility without touching its
// moderation status.
func (s *NewsService) ToggleHidden(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articleRepo.ToggleHidden(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &domain.NotFoundError{Resource: "article", ID: id}
	}

	metrics.ObserveModeration("toggle_hidden")
	s.cache.Invalidate(ctx)
	return article, nil
}

// ToggleDontMiss flips an article's highlight flag.
func (s *NewsService) ToggleDontMiss(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articleRepo.ToggleDontMiss(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &domain.NotFoundError{Resource: "article", ID: id}
	}

	metrics.ObserveModeration("toggle_dont_miss")
	s.cache.Invalidate(ctx)
	return article, nil
}

// transitionFailure distinguishes a missing article from a state
// precondition failure after a conditional update matched no row.
func (s *NewsService) transitionFailure(ctx context.Context, id, op string, required domain.Status) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return &domain.NotFoundError{Resource: "article", ID: id}
	}
	return &domain.InvalidStateError{Op: op, Current: article.Status, Required: required}
}

func (s *NewsService) publicFilter(category string, limit, offset int) domain.ArticleFilter {
	hidden := false
	status := domain.StatusApproved
	filter := domain.ArticleFilter{
		Status: &status,
		Hidden: &hidden,
		Limit:  limit,
		Offset: offset,
	}
	if category != "" {
		filter.Category = &category
	}
	return filter
}
