package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"portfolioAPI/internal/models"
)

const portfolioColumns = `id, image_url, title, title_zh, category_key, views, is_featured, date, created_at, updated_at`

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) list(ctx context.Context, where string, args ...any) ([]models.PortfolioItem, error) {
	items := []models.PortfolioItem{}

	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY date DESC`

	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	return items, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]models.PortfolioItem, error) {
	return r.list(ctx, "")
}

func (r *portfolioRepository) ListFeatured(ctx context.Context) ([]models.PortfolioItem, error) {
	return r.list(ctx, "is_featured = TRUE")
}

func (r *portfolioRepository) ListByCategory(ctx context.Context, categoryKey string) ([]models.PortfolioItem, error) {
	return r.list(ctx, "category_key = $1", categoryKey)
}

func (r *portfolioRepository) GetByID(ctx context.Context, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem

	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`

	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get portfolio item: %w", err)
	}
	return &item, nil
}

func (r *portfolioRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt
	if item.Date.IsZero() {
		item.Date = item.CreatedAt
	}

	query := `
		INSERT INTO portfolio_items (id, image_url, title, title_zh, category_key, views, is_featured, date, created_at, updated_at)
		VALUES (:id, :image_url, :title, :title_zh, :category_key, :views, :is_featured, :date, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create portfolio item: %w", err)
	}
	return nil
}

func (r *portfolioRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	item.UpdatedAt = now()

	query := `
		UPDATE portfolio_items
		SET image_url = :image_url, title = :title, title_zh = :title_zh, category_key = :category_key,
			is_featured = :is_featured, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update portfolio item: %w", err)
	}
	return expectAffected(result, "update portfolio item")
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	return expectAffected(result, "delete portfolio item")
}

func (r *portfolioRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM portfolio_items`); err != nil {
		return 0, fmt.Errorf("count portfolio items: %w", err)
	}
	return n, nil
}

func (r *portfolioRepository) IncrementViews(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE portfolio_items SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment portfolio views: %w", err)
	}
	return expectAffected(result, "increment portfolio views")
}

func expectAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows: %w", op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
