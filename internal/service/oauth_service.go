package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"portfolioAPI/internal/metrics"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/security"
)

type OAuthService interface {
	AuthorizeURL(provider, state string) (string, error)
	// Callback completes the code exchange and yields the redirect target for
	// the frontend. Failures are encoded into the failure URL.
	Callback(ctx context.Context, provider, code string) string
	FailureRedirect(message string) string
	ProvisionUser(ctx context.Context, id security.Identity) (*models.User, error)
}

type oauthService struct {
	providers  *security.Providers
	userRepo   repository.UserRepository
	auth       AuthService
	successURL string
	failureURL string
	logger     *slog.Logger
}

func NewOAuthService(
	providers *security.Providers,
	userRepo repository.UserRepository,
	auth AuthService,
	successURL, failureURL string,
	logger *slog.Logger,
) OAuthService {
	return &oauthService{
		providers:  providers,
		userRepo:   userRepo,
		auth:       auth,
		successURL: successURL,
		failureURL: failureURL,
		logger:     logger,
	}
}

func (s *oauthService) AuthorizeURL(provider, state string) (string, error) {
	p, err := s.providers.Get(provider)
	if err != nil {
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

func (s *oauthService) Callback(ctx context.Context, provider, code string) string {
	p, err := s.providers.Get(provider)
	if err != nil {
		return s.FailureRedirect(err.Error())
	}

	identity, err := p.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("oauth2 exchange failed", slog.String("provider", provider), slog.Any("err", err))
		metrics.AuthEvents.WithLabelValues("oauth2", "failed").Inc()
		return s.FailureRedirect(err.Error())
	}

	user, err := s.ProvisionUser(ctx, identity)
	if err != nil {
		s.logger.Error("oauth2 provisioning failed", slog.String("email", identity.Email), slog.Any("err", err))
		metrics.AuthEvents.WithLabelValues("oauth2", "failed").Inc()
		return s.FailureRedirect(err.Error())
	}

	resp, err := s.auth.IssueTokens(ctx, user, "login successful")
	if err != nil {
		metrics.AuthEvents.WithLabelValues("oauth2", "failed").Inc()
		return s.FailureRedirect(err.Error())
	}

	s.logger.Info("oauth2 login", slog.String("provider", provider), slog.String("username", user.Username))
	metrics.AuthEvents.WithLabelValues("oauth2", "ok").Inc()

	return s.successURL + "#token=" + url.QueryEscape(resp.Token) +
		"&refreshToken=" + url.QueryEscape(resp.RefreshToken)
}

func (s *oauthService) FailureRedirect(message string) string {
	return s.failureURL + "#error=" + url.QueryEscape(message)
}

// ProvisionUser returns the account linked to the identity's email, creating
// one with a unique username on first sign-in.
func (s *oauthService) ProvisionUser(ctx context.Context, id security.Identity) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, id.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("provision user: %w", err)
	}

	username, err := s.uniqueUsername(ctx, id.BaseUsername())
	if err != nil {
		return nil, err
	}

	hash, err := security.RandomPasswordHash()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        id.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if id.AvatarURL != "" {
		avatar := id.AvatarURL
		user.AvatarURL = &avatar
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent first sign-in with the same email won the insert
		if errors.Is(err, ErrDuplicateEmail) {
			if existing, getErr := s.userRepo.GetByEmail(ctx, id.Email); getErr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("provision user: %w", err)
	}

	s.logger.Info("oauth2 user created", slog.String("username", username), slog.String("provider", id.Provider))
	return user, nil
}

// uniqueUsername tries base, base1, base2 ... until one is free.
func (s *oauthService) uniqueUsername(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "user"
	}
	candidate := base
	for suffix := 1; ; suffix++ {
		exists, err := s.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("provision user: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(suffix)
	}
}
