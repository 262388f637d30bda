package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VirtuGrowDigital/LucknowZone/internal/cache"
	"github.com/VirtuGrowDigital/LucknowZone/internal/classifier"
	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/mocks"
	"github.com/VirtuGrowDigital/LucknowZone/internal/provider"
	"github.com/VirtuGrowDigital/LucknowZone/internal/service"
	"github.com/VirtuGrowDigital/LucknowZone/internal/validator"
)

func newNewsService(t *testing.T, repo *mocks.MockArticleRepository, p *mocks.MockNewsProvider, allowAPIEdits bool) *service.NewsService {
	t.Helper()
	return service.NewNewsService(
		repo,
		p,
		classifier.Defaults(),
		cache.NewNoopListingCache(),
		validator.NewValidator(),
		allowAPIEdits,
	)
}

func TestNewsService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("imports eligible local articles ranked by relevance", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return([]provider.Article{
			{Title: "Traffic diverted near Hazratganj", Description: "Lucknow police rework routes", ImageURL: "https://img/1.jpg"},
			{Title: "KGMU opens new wing in Gomti Nagar", Description: "Lucknow University to follow", ImageURL: "https://img/2.jpg"},
			{Title: "Stock markets rally", Description: "No city connection at all", ImageURL: "https://img/3.jpg"},
			{Title: "Kanpur factory expands into Lucknow", Description: "", ImageURL: "https://img/4.jpg"},
			{Title: "No image for this one about Lucknow", Description: "Aminabad stalls", ImageURL: ""},
		}, nil)

		repo.EXPECT().
			ExistingTitles(mock.Anything, mock.AnythingOfType("[]string"), domain.RegionLocal).
			Return(map[string]bool{}, nil)

		var inserted []domain.Article
		repo.EXPECT().
			BulkInsert(mock.Anything, mock.AnythingOfType("[]domain.Article")).
			Run(func(ctx context.Context, articles []domain.Article) {
				inserted = articles
			}).
			Return(domain.BulkInsertResult{Inserted: 2}, nil)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "local")
		require.NoError(t, err)

		assert.Equal(t, domain.RegionLocal, result.Region)
		assert.Equal(t, 5, result.Fetched)
		// one irrelevant, one block-vetoed, one missing image
		assert.Equal(t, 3, result.Discarded)
		assert.Equal(t, 0, result.Duplicates)
		assert.Equal(t, 2, result.Imported)

		require.Len(t, inserted, 2)
		// the article hitting more landmarks ranks first
		assert.Equal(t, "KGMU opens new wing in Gomti Nagar", inserted[0].Title)
		assert.Equal(t, "Traffic diverted near Hazratganj", inserted[1].Title)
		for _, a := range inserted {
			assert.Equal(t, domain.StatusPending, a.Status)
			assert.True(t, a.IsAPI)
			assert.NotEmpty(t, a.ID)
			require.NotNil(t, a.Region)
			assert.Equal(t, domain.RegionLocal, *a.Region)
			assert.Nil(t, a.Category)
		}
	})

	t.Run("national import skips keyword scoring", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return([]provider.Article{
			{Title: "Union budget tabled", Description: "no local terms here", ImageURL: "https://img/1.jpg"},
		}, nil)

		repo.EXPECT().
			ExistingTitles(mock.Anything, mock.AnythingOfType("[]string"), domain.RegionNational).
			Return(map[string]bool{}, nil)
		repo.EXPECT().
			BulkInsert(mock.Anything, mock.AnythingOfType("[]domain.Article")).
			Return(domain.BulkInsertResult{Inserted: 1}, nil)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "national")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 0, result.Discarded)
	})

	t.Run("legacy region alias maps to local", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "lucknow")
		require.NoError(t, err)
		assert.Equal(t, domain.RegionLocal, result.Region)
	})

	t.Run("skips titles already stored and repeats within the batch", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return([]provider.Article{
			{Title: "Metro reaches Charbagh", Description: "Lucknow metro", ImageURL: "https://img/1.jpg"},
			{Title: "Metro reaches Charbagh", Description: "Lucknow metro again", ImageURL: "https://img/1.jpg"},
			{Title: "Nawab era exhibition at Bara Imambara", Description: "heritage week", ImageURL: "https://img/2.jpg"},
		}, nil)

		repo.EXPECT().
			ExistingTitles(mock.Anything, mock.AnythingOfType("[]string"), domain.RegionLocal).
			Return(map[string]bool{"Metro reaches Charbagh": true}, nil)
		repo.EXPECT().
			BulkInsert(mock.Anything, mock.MatchedBy(func(articles []domain.Article) bool {
				return len(articles) == 1 && articles[0].Title == "Nawab era exhibition at Bara Imambara"
			})).
			Return(domain.BulkInsertResult{Inserted: 1}, nil)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "local")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Duplicates)
		assert.Equal(t, 1, result.Imported)
	})

	t.Run("counts rows skipped by the store as duplicates", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return([]provider.Article{
			{Title: "Chowk lights up for festival", Description: "Lucknow old city", ImageURL: "https://img/1.jpg"},
			{Title: "LDA clears housing plan", Description: "Lucknow development", ImageURL: "https://img/2.jpg"},
		}, nil)

		repo.EXPECT().
			ExistingTitles(mock.Anything, mock.AnythingOfType("[]string"), domain.RegionLocal).
			Return(map[string]bool{}, nil)
		repo.EXPECT().
			BulkInsert(mock.Anything, mock.AnythingOfType("[]domain.Article")).
			Return(domain.BulkInsertResult{Inserted: 1, Skipped: 1}, nil)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "local")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Duplicates)
	})

	t.Run("uses the published timestamp when the provider gives one", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).Return([]provider.Article{
			{Title: "Awadh cuisine festival", Description: "Lucknow eats", ImageURL: "https://img/1.jpg", PubDate: "2026-08-20 09:30:00"},
		}, nil)

		repo.EXPECT().
			ExistingTitles(mock.Anything, mock.AnythingOfType("[]string"), domain.RegionLocal).
			Return(map[string]bool{}, nil)
		repo.EXPECT().
			BulkInsert(mock.Anything, mock.MatchedBy(func(articles []domain.Article) bool {
				want := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
				return len(articles) == 1 && articles[0].CreatedAt.Equal(want)
			})).
			Return(domain.BulkInsertResult{Inserted: 1}, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Import(ctx, "local")
		require.NoError(t, err)
	})

	t.Run("absorbs upstream failure into an empty result", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(true)
		p.EXPECT().Fetch(mock.Anything, mock.AnythingOfType("string")).
			Return(nil, &provider.UpstreamError{StatusCode: 429, Reason: "rate limited"})

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "local")
		require.NoError(t, err)
		assert.Equal(t, domain.RegionLocal, result.Region)
		assert.Equal(t, 0, result.Fetched)
		assert.Equal(t, 0, result.Imported)
	})

	t.Run("fails fast when provider is not configured", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		p.EXPECT().Configured().Return(false)

		svc := newNewsService(t, repo, p, false)

		result, err := svc.Import(ctx, "local")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
	})

	t.Run("rejects an unknown region", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Import(ctx, "mars")
		assert.Error(t, err)
	})
}

func TestNewsService_Moderation(t *testing.T) {
	ctx := context.Background()

	t.Run("approve assigns category and publishes", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		category := "Sports"
		approved := &domain.Article{ID: "a1", Status: domain.StatusApproved, Category: &category}
		repo.EXPECT().
			UpdateStatus(mock.Anything, "a1", domain.StatusPending, domain.StatusApproved, &category).
			Return(approved, nil)

		svc := newNewsService(t, repo, p, false)

		article, err := svc.Approve(ctx, "a1", "Sports")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, article.Status)
	})

	t.Run("approve rejects an unknown category before touching the store", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Approve(ctx, "a1", "Gossip")
		assert.Error(t, err)
	})

	t.Run("approve of a missing article returns not found", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			UpdateStatus(mock.Anything, "missing", domain.StatusPending, domain.StatusApproved, mock.Anything).
			Return(nil, nil)
		repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Approve(ctx, "missing", "Sports")
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("approve of an already approved article is an invalid transition", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			UpdateStatus(mock.Anything, "a1", domain.StatusPending, domain.StatusApproved, mock.Anything).
			Return(nil, nil)
		repo.EXPECT().GetByID(mock.Anything, "a1").
			Return(&domain.Article{ID: "a1", Status: domain.StatusApproved}, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Approve(ctx, "a1", "Sports")
		var invalid *domain.InvalidStateError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.StatusApproved, invalid.Current)
		assert.Equal(t, domain.StatusPending, invalid.Required)
	})

	t.Run("reject requires a pending article", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			UpdateStatus(mock.Anything, "a1", domain.StatusPending, domain.StatusRejected, (*string)(nil)).
			Return(nil, nil)
		repo.EXPECT().GetByID(mock.Anything, "a1").
			Return(&domain.Article{ID: "a1", Status: domain.StatusRejected}, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Reject(ctx, "a1")
		var invalid *domain.InvalidStateError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("undo returns an approved article to pending keeping its category", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		category := "Politics"
		repo.EXPECT().
			UpdateStatus(mock.Anything, "a1", domain.StatusApproved, domain.StatusPending, (*string)(nil)).
			Return(&domain.Article{ID: "a1", Status: domain.StatusPending, Category: &category}, nil)

		svc := newNewsService(t, repo, p, false)

		article, err := svc.UndoApprove(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, article.Status)
		require.NotNil(t, article.Category)
		assert.Equal(t, "Politics", *article.Category)
	})

	t.Run("toggle hidden of a missing article returns not found", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().ToggleHidden(mock.Anything, "missing").Return(nil, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.ToggleHidden(ctx, "missing")
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestNewsService_ManualArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("create publishes immediately", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		svc := newNewsService(t, repo, p, false)

		article, err := svc.Create(ctx, &domain.Article{
			Title: "Editorial: monsoon readiness",
			Image: "https://img/ed.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, article.Status)
		assert.False(t, article.IsAPI)
		assert.NotEmpty(t, article.ID)
	})

	t.Run("create validates input", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.Create(ctx, &domain.Article{Title: "no image"})
		assert.Error(t, err)
	})

	t.Run("update of an imported article is blocked by default", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().GetByID(mock.Anything, "a1").
			Return(&domain.Article{ID: "a1", IsAPI: true}, nil)

		svc := newNewsService(t, repo, p, false)

		title := "tweaked"
		_, err := svc.Update(ctx, "a1", domain.ArticleUpdate{Title: &title})
		var policy *domain.PolicyError
		assert.ErrorAs(t, err, &policy)
	})

	t.Run("update of an imported article succeeds when the policy allows it", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		title := "tweaked"
		repo.EXPECT().GetByID(mock.Anything, "a1").
			Return(&domain.Article{ID: "a1", IsAPI: true}, nil)
		repo.EXPECT().
			Update(mock.Anything, "a1", domain.ArticleUpdate{Title: &title}).
			Return(&domain.Article{ID: "a1", Title: title, IsAPI: true}, nil)

		svc := newNewsService(t, repo, p, true)

		article, err := svc.Update(ctx, "a1", domain.ArticleUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "tweaked", article.Title)
	})

	t.Run("delete of a manual article needs no policy", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().GetByID(mock.Anything, "m1").
			Return(&domain.Article{ID: "m1", IsAPI: false}, nil)
		repo.EXPECT().Delete(mock.Anything, "m1").Return(true, nil)

		svc := newNewsService(t, repo, p, false)

		assert.NoError(t, svc.Delete(ctx, "m1"))
	})

	t.Run("delete of an imported article is blocked by default", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().GetByID(mock.Anything, "a1").
			Return(&domain.Article{ID: "a1", IsAPI: true}, nil)

		svc := newNewsService(t, repo, p, false)

		var policy *domain.PolicyError
		assert.ErrorAs(t, svc.Delete(ctx, "a1"), &policy)
	})
}

func TestNewsService_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("list serves from cache on a hit", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)
		listingCache := mocks.NewMockListingCache(t)

		cached := []domain.Article{{ID: "a1", Title: "cached"}}
		listingCache.EXPECT().GetArticles(mock.Anything, "Sports").Return(cached, true)

		svc := service.NewNewsService(repo, p, classifier.Defaults(), listingCache, validator.NewValidator(), false)

		articles, err := svc.List(ctx, "Sports")
		require.NoError(t, err)
		assert.Equal(t, cached, articles)
	})

	t.Run("list falls through to the store and fills the cache", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)
		listingCache := mocks.NewMockListingCache(t)

		stored := []domain.Article{{ID: "a1", Title: "from store"}}
		listingCache.EXPECT().GetArticles(mock.Anything, "").Return(nil, false)
		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
				return f.Status != nil && *f.Status == domain.StatusApproved &&
					f.Hidden != nil && !*f.Hidden && f.Category == nil
			})).
			Return(stored, nil)
		listingCache.EXPECT().SetArticles(mock.Anything, "", stored).Return()

		svc := service.NewNewsService(repo, p, classifier.Defaults(), listingCache, validator.NewValidator(), false)

		articles, err := svc.List(ctx, "All")
		require.NoError(t, err)
		assert.Equal(t, stored, articles)
	})

	t.Run("paginated listing computes page count", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
				return f.Limit == 10 && f.Offset == 10
			})).
			Return([]domain.Article{{ID: "a11"}}, nil)
		repo.EXPECT().
			Count(mock.Anything, mock.AnythingOfType("domain.ArticleFilter")).
			Return(11, nil)

		svc := newNewsService(t, repo, p, false)

		articles, total, pages, err := svc.ListPaginated(ctx, "", 2, 10)
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		assert.Equal(t, 11, total)
		assert.Equal(t, 2, pages)
	})

	t.Run("pending queue accepts the all sentinel", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
				return f.Status != nil && *f.Status == domain.StatusPending &&
					f.Region == nil &&
					f.IsAPI != nil && *f.IsAPI
			})).
			Return([]domain.Article{}, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.ListPending(ctx, "all")
		require.NoError(t, err)
	})

	t.Run("pending queue covers imported articles only", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		// A manual article sent back to pending by an undone approval
		// must not surface in the moderation queue.
		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
				return f.IsAPI != nil && *f.IsAPI &&
					f.Status != nil && *f.Status == domain.StatusPending &&
					f.Region != nil && *f.Region == domain.RegionLocal
			})).
			Return([]domain.Article{{ID: "a1", IsAPI: true}}, nil)

		svc := newNewsService(t, repo, p, false)

		articles, err := svc.ListPending(ctx, "local")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.True(t, articles[0].IsAPI)
	})

	t.Run("dont miss strip is capped", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
				return f.DontMiss != nil && *f.DontMiss && f.Limit == service.DontMissLimit
			})).
			Return([]domain.Article{}, nil)

		svc := newNewsService(t, repo, p, false)

		_, err := svc.ListDontMiss(ctx)
		require.NoError(t, err)
	})

	t.Run("listing errors pass through", func(t *testing.T) {
		repo := mocks.NewMockArticleRepository(t)
		p := mocks.NewMockNewsProvider(t)

		repo.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ArticleFilter")).
			Return(nil, errors.New("connection refused"))

		svc := newNewsService(t, repo, p, false)

		_, err := svc.ListByRegion(ctx, "national")
		assert.Error(t, err)
	})
}
