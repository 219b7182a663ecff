package service

import (
	"log/slog"

	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/config"
	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/security"
	"portfolioAPI/internal/storage"
)

type Service struct {
	User      UserService
	Auth      AuthService
	OAuth     OAuthService
	Portfolio PortfolioService
	BlogPost  BlogPostService
	Comment   CommentService
	Image     ImageService
}

func NewService(
	rep *repository.Repository,
	caches *cache.Caches,
	cfg *config.Config,
	st storage.Storage,
	logger *slog.Logger,
) *Service {
	tokens := security.NewTokenProvider(cfg.JWTSecretKey, cfg.AccessTokenDuration, cfg.RefreshTokenDuration)
	users := NewUserService(rep.User, caches.Users)
	auth := NewAuthService(rep.User, rep.RefreshToken, users, tokens, logger)
	oauth := NewOAuthService(security.NewProviders(cfg.OAuth), rep.User, auth,
		cfg.OAuth.FrontendSuccessURL, cfg.OAuth.FrontendFailureURL, logger)

	return &Service{
		User:      users,
		Auth:      auth,
		OAuth:     oauth,
		Portfolio: NewPortfolioService(rep.Portfolio, caches, logger),
		BlogPost:  NewBlogPostService(rep.BlogPost, caches, logger),
		Comment:   NewCommentService(rep, caches, logger),
		Image:     NewImageService(st, logger),
	}
}
