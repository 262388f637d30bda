package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
)

const articleColumns = "id, title, description, image, category, region, status, is_api, hidden, is_dont_miss, created_at, updated_at"

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Image, &a.Category, &a.Region,
		&a.Status, &a.IsAPI, &a.Hidden, &a.IsDontMiss, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert stores a single article.
func (r *PostgresArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, description, image, category, region, status, is_api, hidden, is_dont_miss, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, article.ID, article.Title, article.Description, article.Image, article.Category, article.Region,
		article.Status, article.IsAPI, article.Hidden, article.IsDontMiss, article.CreatedAt, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// BulkInsert stores a batch of imported articles. Rows that collide
// with the partial unique index on (title, region) for is_api rows are
// skipped without aborting the rest of the batch.
func (r *PostgresArticleRepository) BulkInsert(ctx context.Context, articles []domain.Article) (domain.BulkInsertResult, error) {
	var result domain.BulkInsertResult
	if len(articles) == 0 {
		return result, nil
	}

	var values []string
	var args []interface{}
	argNum := 1
	for _, a := range articles {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argNum, argNum+1, argNum+2, argNum+3, argNum+4, argNum+5, argNum+6, argNum+7, argNum+8, argNum+9, argNum+10, argNum+11))
		args = append(args, a.ID, a.Title, a.Description, a.Image, a.Category, a.Region,
			a.Status, a.IsAPI, a.Hidden, a.IsDontMiss, a.CreatedAt, a.UpdatedAt)
		argNum += 12
	}

	query := fmt.Sprintf(`
		INSERT INTO articles (id, title, description, image, category, region, status, is_api, hidden, is_dont_miss, created_at, updated_at)
		VALUES %s
		ON CONFLICT (title, region) WHERE is_api DO NOTHING
		RETURNING id
	`, strings.Join(values, ", "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("bulk insert articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return result, fmt.Errorf("scan inserted id: %w", err)
		}
		result.Inserted++
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("read bulk insert results: %w", err)
	}

	result.Skipped = len(articles) - result.Inserted
	return result, nil
}

// GetByID fetches one article, returning (nil, nil) when absent.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns), id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

func buildArticleWhere(filter domain.ArticleFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	add := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argNum))
		args = append(args, value)
		argNum++
	}

	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.Hidden != nil {
		add("hidden = $%d", *filter.Hidden)
	}
	if filter.IsAPI != nil {
		add("is_api = $%d", *filter.IsAPI)
	}
	if filter.Region != nil {
		add("region = $%d", *filter.Region)
	}
	if filter.Category != nil {
		add("category = $%d", *filter.Category)
	}
	if filter.DontMiss != nil {
		add("is_dont_miss = $%d", *filter.DontMiss)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns articles matching the filter, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	where, args := buildArticleWhere(filter)

	query := fmt.Sprintf("SELECT %s FROM articles%s ORDER BY created_at DESC", articleColumns, where)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Image, &a.Category, &a.Region,
			&a.Status, &a.IsAPI, &a.Hidden, &a.IsDontMiss, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}

	return articles, nil
}

// Count returns the number of articles matching the filter.
func (r *PostgresArticleRepository) Count(ctx context.Context, filter domain.ArticleFilter) (int, error) {
	where, args := buildArticleWhere(filter)

	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// ExistingTitles reports which of the given titles already exist among
// imported articles in the given region.
func (r *PostgresArticleRepository) ExistingTitles(ctx context.Context, titles []string, region domain.Region) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(titles) == 0 {
		return existing, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT title FROM articles
		WHERE is_api AND region = $1 AND title = ANY($2)
	`, region, titles)
	if err != nil {
		return nil, fmt.Errorf("query existing titles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		existing[title] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read existing titles: %w", err)
	}

	return existing, nil
}

// UpdateStatus performs a conditional status transition. The WHERE
// clause carries the precondition so concurrent moderation on the same
// row cannot double-apply a transition.
func (r *PostgresArticleRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status, category *string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE articles
		SET status = $2, category = COALESCE($3, category), updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING %s
	`, articleColumns), id, to, category, from)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update article status: %w", err)
	}
	return article, nil
}

// Update applies a partial edit, leaving nil fields unchanged.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	var sets []string
	var args []interface{}
	args = append(args, id)
	argNum := 2

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Image != nil {
		set("image", *upd.Image)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.Region != nil {
		set("region", *upd.Region)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), articleColumns)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// ToggleHidden flips the hidden flag.
func (r *PostgresArticleRepository) ToggleHidden(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE articles SET hidden = NOT hidden, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, articleColumns), id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("toggle hidden: %w", err)
	}
	return article, nil
}

// ToggleDontMiss flips the featured flag.
func (r *PostgresArticleRepository) ToggleDontMiss(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE articles SET is_dont_miss = NOT is_dont_miss, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, articleColumns), id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("toggle dont miss: %w", err)
	}
	return article, nil
}

// Delete removes an article.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
