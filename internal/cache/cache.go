// Package cache provides an optional read-through cache for the public
// article listing. The source of truth stays in Postgres; the cache
// only shortens the hottest read path and is invalidated on every
// article write.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/logger"
	"github.com/VirtuGrowDigital/LucknowZone/internal/metrics"
)

const keyPrefix = "news:public:"

// ListingCache caches public article listings keyed by category.
type ListingCache interface {
	// GetArticles returns the cached listing and whether it was found.
	GetArticles(ctx context.Context, category string) ([]domain.Article, bool)
	// SetArticles stores a listing. Failures are logged, not returned:
	// caching is best-effort.
	SetArticles(ctx context.Context, category string, articles []domain.Article)
	// Invalidate drops every cached listing.
	Invalidate(ctx context.Context)
}

// ListingKey builds the cache key for a category filter. An empty
// category maps to the unfiltered listing.
func ListingKey(category string) string {
	if category == "" {
		category = "All"
	}
	return keyPrefix + category
}

// RedisListingCache implements ListingCache on Redis.
type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListingCache creates a cache backed by the given Redis address.
func NewRedisListingCache(addr string, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// GetArticles returns the cached listing for a category.
func (c *RedisListingCache) GetArticles(ctx context.Context, category string) ([]domain.Article, bool) {
	val, err := c.client.Get(ctx, ListingKey(category)).Result()
	if err == redis.Nil {
		metrics.CacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		logger.WarnContext(ctx, "listing cache read failed", slog.String("error", err.Error()))
		metrics.CacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}

	var articles []domain.Article
	if err := json.Unmarshal([]byte(val), &articles); err != nil {
		logger.WarnContext(ctx, "listing cache payload corrupt", slog.String("error", err.Error()))
		metrics.CacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheEvents.WithLabelValues("hit").Inc()
	return articles, true
}

// SetArticles stores a listing with the configured TTL.
func (c *RedisListingCache) SetArticles(ctx context.Context, category string, articles []domain.Article) {
	payload, err := json.Marshal(articles)
	if err != nil {
		logger.WarnContext(ctx, "listing cache marshal failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, ListingKey(category), payload, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "listing cache write failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached listing for every category. Categories
// are a fixed enumeration, so the key set is known up front.
func (c *RedisListingCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(domain.Categories)+1)
	keys = append(keys, ListingKey(""))
	for _, category := range domain.Categories {
		keys = append(keys, ListingKey(category))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.WarnContext(ctx, "listing cache invalidation failed", slog.String("error", err.Error()))
		return
	}
	metrics.CacheEvents.WithLabelValues("invalidate").Inc()
}

// NoopListingCache is used when no Redis address is configured. Every
// read misses and writes are dropped.
type NoopListingCache struct{}

// NewNoopListingCache creates a disabled cache.
func NewNoopListingCache() *NoopListingCache {
	return &NoopListingCache{}
}

func (*NoopListingCache) GetArticles(context.Context, string) ([]domain.Article, bool) {
	return nil, false
}

func (*NoopListingCache) SetArticles(context.Context, string, []domain.Article) {}

func (*NoopListingCache) Invalidate(context.Context) {}
