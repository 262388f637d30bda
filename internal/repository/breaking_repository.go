package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
)

// PostgresBreakingNewsRepository implements BreakingNewsRepository
// using PostgreSQL.
type PostgresBreakingNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBreakingNewsRepository creates a new PostgresBreakingNewsRepository.
func NewPostgresBreakingNewsRepository(pool *pgxpool.Pool) *PostgresBreakingNewsRepository {
	return &PostgresBreakingNewsRepository{pool: pool}
}

// Insert stores a new ticker item.
func (r *PostgresBreakingNewsRepository) Insert(ctx context.Context, item *domain.BreakingNewsItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO breaking_news (id, text, active, created_at)
		VALUES ($1, $2, $3, $4)
	`, item.ID, item.Text, item.Active, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert breaking news: %w", err)
	}
	return nil
}

// List returns all ticker items, newest first.
func (r *PostgresBreakingNewsRepository) List(ctx context.Context) ([]domain.BreakingNewsItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, text, active, created_at FROM breaking_news
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list breaking news: %w", err)
	}
	defer rows.Close()

	items := []domain.BreakingNewsItem{}
	for rows.Next() {
		var item domain.BreakingNewsItem
		if err := rows.Scan(&item.ID, &item.Text, &item.Active, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan breaking news: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read breaking news: %w", err)
	}

	return items, nil
}

// ToggleActive flips the active flag, returning (nil, nil) when the
// item does not exist.
func (r *PostgresBreakingNewsRepository) ToggleActive(ctx context.Context, id string) (*domain.BreakingNewsItem, error) {
	var item domain.BreakingNewsItem
	err := r.pool.QueryRow(ctx, `
		UPDATE breaking_news SET active = NOT active
		WHERE id = $1
		RETURNING id, text, active, created_at
	`, id).Scan(&item.ID, &item.Text, &item.Active, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("toggle breaking news: %w", err)
	}
	return &item, nil
}

// Delete removes a ticker item.
func (r *PostgresBreakingNewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM breaking_news WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete breaking news: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
