package service

import (
	"context"
	"errors"
	"fmt"

	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
)

type UserService interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Invalidate(ctx context.Context, usernames ...string)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.EntityCache[models.User]
}

func NewUserService(userRepo repository.UserRepository, userCache *cache.EntityCache[models.User]) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    userCache,
	}
}

// GetByUsername reads through the user:info cache. The cached copy never
// holds the password hash.
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.cache.GetOrLoad(ctx, username, func(ctx context.Context) (models.User, error) {
		u, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = ""
		return *u, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

func (s *userService) Invalidate(ctx context.Context, usernames ...string) {
	s.cache.Delete(ctx, usernames...)
}
