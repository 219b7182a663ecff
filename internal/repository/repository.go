package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"portfolioAPI/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already in use")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Update(ctx context.Context, token *models.RefreshToken) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteByToken(ctx context.Context, token string) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PortfolioRepository interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	ListFeatured(ctx context.Context) ([]models.PortfolioItem, error)
	ListByCategory(ctx context.Context, categoryKey string) ([]models.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (*models.PortfolioItem, error)
	Create(ctx context.Context, item *models.PortfolioItem) error
	Update(ctx context.Context, item *models.PortfolioItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	IncrementViews(ctx context.Context, id string) error
}

type BlogPostRepository interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	ListFeatured(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementCommentsCount(ctx context.Context, id string, delta int) error
}

type CommentRepository interface {
	ListByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Portfolio    PortfolioRepository
	BlogPost     BlogPostRepository
	Comment      CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		Portfolio:    NewPortfolioRepository(db),
		BlogPost:     NewBlogPostRepository(db),
		Comment:      NewCommentRepository(db),
	}
}

// now is truncated to microseconds to match postgres timestamp precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
