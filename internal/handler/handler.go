package handlers

import (
	"context"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"portfolioAPI/internal/config"
	"portfolioAPI/internal/service"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handlers struct {
	UserService      service.UserService
	AuthService      service.AuthService
	OAuthService     service.OAuthService
	PortfolioService service.PortfolioService
	BlogPostService  service.BlogPostService
	CommentService   service.CommentService
	ImageService     service.ImageService
	HealthChecks     map[string]HealthCheck
	Cfg              *config.Config
	Validate         *validator.Validate
	Logger           *slog.Logger
}

func NewHandlers(service *service.Service, cfg *config.Config, checks map[string]HealthCheck, logger *slog.Logger) *Handlers {
	return &Handlers{
		UserService:      service.User,
		AuthService:      service.Auth,
		OAuthService:     service.OAuth,
		PortfolioService: service.Portfolio,
		BlogPostService:  service.BlogPost,
		CommentService:   service.Comment,
		ImageService:     service.Image,
		HealthChecks:     checks,
		Cfg:              cfg,
		Validate:         newValidator(),
		Logger:           logger,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}
