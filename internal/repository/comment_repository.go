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

const commentColumns = `id, post_id, user_id, username, avatar_url, text, parent_id, created_at, updated_at`

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPostID returns the post's comments oldest first.
func (r *commentRepository) ListByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	comments := []models.Comment{}

	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment

	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

func (r *commentRepository) Create(ctx context.Context, c *models.Comment) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt

	query := `
		INSERT INTO comments (id, post_id, user_id, username, avatar_url, text, parent_id, created_at, updated_at)
		VALUES (:id, :post_id, :user_id, :username, :avatar_url, :text, :parent_id, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return expectAffected(result, "delete comment")
}
