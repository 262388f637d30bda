package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingKey(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"", "news:public:All"},
		{"All", "news:public:All"},
		{"Sports", "news:public:Sports"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ListingKey(tt.category))
		})
	}
}

func TestNoopListingCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopListingCache()

	articles, ok := c.GetArticles(ctx, "Sports")
	assert.False(t, ok)
	assert.Nil(t, articles)

	// writes and invalidation are no-ops
	c.SetArticles(ctx, "Sports", nil)
	c.Invalidate(ctx)

	_, ok = c.GetArticles(ctx, "Sports")
	assert.False(t, ok)
}
