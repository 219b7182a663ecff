package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/security"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) {
	m.Called(ctx, refreshToken)
}

func (m *MockAuthService) IssueTokens(ctx context.Context, user *models.User, message string) (*models.AuthResponse, error) {
	args := m.Called(ctx, user, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) VerifyAccessToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, username string) (*models.UserDto, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserDto), args.Error(1)
}

func (m *MockAuthService) UpdateCurrentUser(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserDto, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserDto), args.Error(1)
}

func (m *MockAuthService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Invalidate(ctx context.Context, usernames ...string) {
	m.Called(ctx, usernames)
}

type MockOAuthService struct {
	mock.Mock
}

func (m *MockOAuthService) AuthorizeURL(provider, state string) (string, error) {
	args := m.Called(provider, state)
	return args.String(0), args.Error(1)
}

func (m *MockOAuthService) Callback(ctx context.Context, provider, code string) string {
	args := m.Called(ctx, provider, code)
	return args.String(0)
}

func (m *MockOAuthService) FailureRedirect(message string) string {
	args := m.Called(message)
	return args.String(0)
}

func (m *MockOAuthService) ProvisionUser(ctx context.Context, id security.Identity) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) List(ctx context.Context) ([]models.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) ListFeatured(ctx context.Context) ([]models.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) ListByCategory(ctx context.Context, categoryKey string) ([]models.PortfolioItem, error) {
	args := m.Called(ctx, categoryKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Get(ctx context.Context, id string) (*models.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Create(ctx context.Context, req models.PortfolioItemRequest) (*models.PortfolioItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id string, req models.PortfolioItemRequest) (*models.PortfolioItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBlogPostService struct {
	mock.Mock
}

func (m *MockBlogPostService) List(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Create(ctx context.Context, req models.BlogPostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Update(ctx context.Context, id string, req models.BlogPostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID string) ([]models.CommentResponse, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Add(ctx context.Context, username string, req models.CommentRequest) (*models.CommentResponse, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	args := m.Called(ctx, fileName, file, size, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockImageService) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
