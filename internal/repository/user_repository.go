package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"portfolioAPI/internal/models"
)

const uniqueViolation = "23505"

// duplicateUser maps a unique index violation on users to its sentinel.
func duplicateUser(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}
	switch pqErr.Constraint {
	case "users_username_key":
		return ErrDuplicateUsername
	case "users_email_key":
		return ErrDuplicateEmail
	}
	return nil
}

const userColumns = `id, username, email, password_hash, avatar_url, role, gender,
	birthday, address, phone, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	query := `
		INSERT INTO users (id, username, email, password_hash, avatar_url, role, gender, birthday, address, phone, created_at, updated_at)
		VALUES (:id, :username, :email, :password_hash, :avatar_url, :role, :gender, :birthday, :address, :phone, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if dup := duplicateUser(err); dup != nil {
			return dup
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	err := r.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = now()

	query := `
		UPDATE users
		SET username = :username, email = :email, password_hash = :password_hash,
			avatar_url = :avatar_url, role = :role, gender = :gender, birthday = :birthday,
			address = :address, phone = :phone, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if dup := duplicateUser(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
