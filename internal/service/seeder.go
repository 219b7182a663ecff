package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"portfolioAPI/internal/config"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/security"
)

const (
	staticPortfolioFile = "staticPortfolio.json"
	staticPostsFile     = "staticPosts.json"
	seedAdminID         = "admin-001"
)

// Seeder creates the default administrator and imports static content into
// empty tables. Every step is idempotent.
type Seeder struct {
	rep    *repository.Repository
	cfg    config.Seed
	logger *slog.Logger
}

func NewSeeder(rep *repository.Repository, cfg config.Seed, logger *slog.Logger) *Seeder {
	return &Seeder{rep: rep, cfg: cfg, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.EnsureAdmin(ctx); err != nil {
		return err
	}
	if err := s.ImportPortfolio(ctx); err != nil {
		s.logger.Warn("import static portfolio", slog.Any("err", err))
	}
	if err := s.ImportPosts(ctx); err != nil {
		s.logger.Warn("import static posts", slog.Any("err", err))
	}
	return nil
}

func (s *Seeder) EnsureAdmin(ctx context.Context) error {
	exists, err := s.rep.User.ExistsByUsername(ctx, s.cfg.AdminUsername)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		s.logger.Info("admin user present, skipping", slog.String("username", s.cfg.AdminUsername))
		return nil
	}

	hash, err := security.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return err
	}

	avatar := models.DefaultAvatarURL
	admin := &models.User{
		ID:           seedAdminID,
		Username:     s.cfg.AdminUsername,
		Email:        s.cfg.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleSuperUser,
		AvatarURL:    &avatar,
	}
	if err := s.rep.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info("admin user created", slog.String("username", admin.Username))
	return nil
}

func (s *Seeder) ImportPortfolio(ctx context.Context) error {
	n, err := s.rep.Portfolio.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var items []models.PortfolioItem
	if err := s.readStatic(staticPortfolioFile, &items); err != nil {
		return err
	}

	for i := range items {
		if err := s.rep.Portfolio.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	s.logger.Info("static portfolio imported", slog.Int("count", len(items)))
	return nil
}

func (s *Seeder) ImportPosts(ctx context.Context) error {
	n, err := s.rep.BlogPost.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var posts []models.BlogPost
	if err := s.readStatic(staticPostsFile, &posts); err != nil {
		return err
	}

	for i := range posts {
		if err := s.rep.BlogPost.Create(ctx, &posts[i]); err != nil {
			return err
		}
	}
	s.logger.Info("static posts imported", slog.Int("count", len(posts)))
	return nil
}

// readStatic treats a missing file as an empty list.
func (s *Seeder) readStatic(name string, dst any) error {
	path := filepath.Join(s.cfg.DataDir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("static data file not found", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
