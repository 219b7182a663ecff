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

const blogPostColumns = `id, image_url, is_locked, category_key, likes, comments_count, views, is_featured,
	title, title_zh, excerpt, excerpt_zh, content, content_zh, created_at, date, created_at_ts`

type blogPostRepository struct {
	db *sqlx.DB
}

func NewBlogPostRepository(db *sqlx.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// ListFeatured excludes locked posts.
func (r *blogPostRepository) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts
		WHERE is_featured = TRUE AND is_locked = FALSE
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list featured blog posts: %w", err)
	}
	return posts, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`

	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	ts := now()
	post.CreatedAtTs = ts
	if post.CreatedAt == 0 {
		post.CreatedAt = ts.UnixMilli()
	}
	if post.Date.IsZero() {
		post.Date = ts
	}

	query := `
		INSERT INTO blog_posts (id, image_url, is_locked, category_key, likes, comments_count, views, is_featured,
			title, title_zh, excerpt, excerpt_zh, content, content_zh, created_at, date, created_at_ts)
		VALUES (:id, :image_url, :is_locked, :category_key, :likes, :comments_count, :views, :is_featured,
			:title, :title_zh, :excerpt, :excerpt_zh, :content, :content_zh, :created_at, :date, :created_at_ts)
	`

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return nil
}

func (r *blogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET image_url = :image_url, is_locked = :is_locked, category_key = :category_key, is_featured = :is_featured,
			title = :title, title_zh = :title_zh, excerpt = :excerpt, excerpt_zh = :excerpt_zh,
			content = :content, content_zh = :content_zh
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return expectAffected(result, "update blog post")
}

func (r *blogPostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return expectAffected(result, "delete blog post")
}

func (r *blogPostRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM blog_posts`); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

func (r *blogPostRepository) IncrementViews(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment blog post views: %w", err)
	}
	return expectAffected(result, "increment blog post views")
}

// IncrementCommentsCount never lets the counter drop below zero.
func (r *blogPostRepository) IncrementCommentsCount(ctx context.Context, id string, delta int) error {
	query := `UPDATE blog_posts SET comments_count = GREATEST(comments_count + $1, 0) WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("update comments count: %w", err)
	}
	return expectAffected(result, "update comments count")
}
