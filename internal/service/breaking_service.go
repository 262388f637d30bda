package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/logger"
	"github.com/VirtuGrowDigital/LucknowZone/internal/repository"
	"github.com/VirtuGrowDigital/LucknowZone/internal/validator"
)

// BreakingService manages the breaking-news ticker.
type BreakingService struct {
	repo      repository.BreakingNewsRepository
	validator *validator.Validator
}

// NewBreakingService creates a new BreakingService.
func NewBreakingService(repo repository.BreakingNewsRepository, v *validator.Validator) *BreakingService {
	return &BreakingService{repo: repo, validator: v}
}

// List returns all ticker items, newest first, active and inactive
// alike. Filtering to active items is the caller's concern.
func (s *BreakingService) List(ctx context.Context) ([]domain.BreakingNewsItem, error) {
	return s.repo.List(ctx)
}

// Create adds a ticker item. New items are active immediately.
func (s *BreakingService) Create(ctx context.Context, text string) (*domain.BreakingNewsItem, error) {
	if err := s.validator.ValidateTickerText(text); err != nil {
		return nil, err
	}

	item := &domain.BreakingNewsItem{
		ID:        uuid.NewString(),
		Text:      text,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert ticker item: %w", err)
	}

	logger.InfoContext(ctx, "ticker item created")
	return item, nil
}

// Toggle flips an item's active flag.
func (s *BreakingService) Toggle(ctx context.Context, id string) (*domain.BreakingNewsItem, error) {
	item, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.NotFoundError{Resource: "breaking news item", ID: id}
	}
	return item, nil
}

// Delete removes a ticker item permanently.
func (s *BreakingService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Resource: "breaking news item", ID: id}
	}
	return nil
}
