package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolioAPI/internal/metrics"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/security"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string)
	IssueTokens(ctx context.Context, user *models.User, message string) (*models.AuthResponse, error)
	VerifyAccessToken(token string) (string, error)
	CurrentUser(ctx context.Context, username string) (*models.UserDto, error)
	UpdateCurrentUser(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserDto, error)
	SweepExpiredTokens(ctx context.Context) (int64, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	users     UserService
	tokens    *security.TokenProvider
	logger    *slog.Logger
	now       func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	users UserService,
	tokens *security.TokenProvider,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		users:     users,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthEvents.WithLabelValues("login", "rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !security.CheckPassword(user.PasswordHash, req.Password) {
		metrics.AuthEvents.WithLabelValues("login", "rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	resp, err := s.IssueTokens(ctx, user, "login successful")
	if err != nil {
		return nil, err
	}

	metrics.AuthEvents.WithLabelValues("login", "ok").Inc()
	return resp, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	// confirmation is checked before anything touches the store
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, req.Username)
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	avatar := models.DefaultAvatarURL
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		AvatarURL:    &avatar,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("user registered", slog.String("username", user.Username))
	metrics.AuthEvents.WithLabelValues("register", "ok").Inc()

	return s.IssueTokens(ctx, user, "registration successful")
}

// IssueTokens mints an access/refresh pair and replaces the user's stored
// refresh token.
func (s *authService) IssueTokens(ctx context.Context, user *models.User, message string) (*models.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	refresh, expiresAt, err := s.tokens.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	return &models.AuthResponse{
		Success:      true,
		Message:      message,
		Token:        access,
		RefreshToken: refresh,
		User:         models.NewUserDto(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	if _, err := s.tokens.ParseSubject(refreshToken); err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, s.dropExpired(ctx, refreshToken)
		}
		metrics.AuthEvents.WithLabelValues("refresh", "rejected").Inc()
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthEvents.WithLabelValues("refresh", "rejected").Inc()
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	if stored.Expired(s.now()) {
		s.deleteExpired(ctx, stored)
		return nil, ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	access, err := s.tokens.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, err
	}
	refresh, expiresAt, err := s.tokens.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	stored.Token = refresh
	stored.ExpiresAt = expiresAt
	if err := s.tokenRepo.Update(ctx, stored); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	metrics.AuthEvents.WithLabelValues("refresh", "ok").Inc()
	return &models.AuthResponse{
		Success:      true,
		Message:      "token refreshed",
		Token:        access,
		RefreshToken: refresh,
		User:         models.NewUserDto(user),
	}, nil
}

// Logout never fails: a missing token or a store error only gets logged.
// dropExpired handles a refresh token whose exp has passed: the stored row,
// if any, is removed.
func (s *authService) dropExpired(ctx context.Context, refreshToken string) error {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthEvents.WithLabelValues("refresh", "rejected").Inc()
			return ErrInvalidRefreshToken
		}
		return fmt.Errorf("refresh: %w", err)
	}

	s.deleteExpired(ctx, stored)
	return ErrRefreshTokenExpired
}

func (s *authService) deleteExpired(ctx context.Context, stored *models.RefreshToken) {
	if err := s.tokenRepo.Delete(ctx, stored.ID); err != nil {
		s.logger.Warn("delete expired refresh token", slog.String("id", stored.ID), slog.Any("err", err))
	}
	metrics.AuthEvents.WithLabelValues("refresh", "expired").Inc()
}

func (s *authService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	if err := s.tokenRepo.DeleteByToken(ctx, refreshToken); err != nil {
		s.logger.Warn("logout: delete refresh token", slog.Any("err", err))
	}
}

func (s *authService) VerifyAccessToken(token string) (string, error) {
	return s.tokens.ParseSubject(token)
}

func (s *authService) CurrentUser(ctx context.Context, username string) (*models.UserDto, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return models.NewUserDto(user), nil
}

func (s *authService) UpdateCurrentUser(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserDto, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	oldUsername := user.Username

	if req.Username != nil {
		if name := strings.TrimSpace(*req.Username); name != "" && name != user.Username {
			exists, err := s.userRepo.ExistsByUsername(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("update user: %w", err)
			}
			if exists {
				return nil, ErrDuplicateUsername
			}
			user.Username = name
		}
	}

	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" && email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("update user: %w", err)
			}
			if exists {
				return nil, ErrDuplicateEmail
			}
			user.Email = email
		}
	}

	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if req.Gender != nil {
		// unknown values leave the current gender untouched
		if g, ok := models.ParseGender(*req.Gender); ok {
			user.Gender = &g
		}
	}

	if req.Birthday != nil {
		user.Birthday = parseBirthday(*req.Birthday)
	}

	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.users.Invalidate(ctx, oldUsername, user.Username)

	return models.NewUserDto(user), nil
}

// parseBirthday accepts yyyy-MM-dd or yyyy/MM/dd. Anything else clears it.
func parseBirthday(value string) *time.Time {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "/", "-")
	t, err := time.Parse("2006-01-02", normalized)
	if err != nil {
		return nil
	}
	return &t
}

func (s *authService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokenRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.logger.Info("expired refresh tokens removed", slog.Int64("count", n))
	return n, nil
}
