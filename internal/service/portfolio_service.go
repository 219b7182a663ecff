package service

import (
	"context"
	"log/slog"

	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
)

type PortfolioService interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	ListFeatured(ctx context.Context) ([]models.PortfolioItem, error)
	ListByCategory(ctx context.Context, categoryKey string) ([]models.PortfolioItem, error)
	Get(ctx context.Context, id string) (*models.PortfolioItem, error)
	Create(ctx context.Context, req models.PortfolioItemRequest) (*models.PortfolioItem, error)
	Update(ctx context.Context, id string, req models.PortfolioItemRequest) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
}

type portfolioService struct {
	repo   repository.PortfolioRepository
	items  *cache.EntityCache[models.PortfolioItem]
	lists  *cache.EntityCache[[]models.PortfolioItem]
	logger *slog.Logger
}

func NewPortfolioService(repo repository.PortfolioRepository, caches *cache.Caches, logger *slog.Logger) PortfolioService {
	return &portfolioService{
		repo:   repo,
		items:  caches.Portfolio,
		lists:  caches.PortfolioLists,
		logger: logger,
	}
}

func (s *portfolioService) List(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.lists.GetOrLoad(ctx, cache.PortfolioListKey, s.repo.List)
}

func (s *portfolioService) ListFeatured(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.lists.GetOrLoad(ctx, cache.PortfolioFeaturedKey, s.repo.ListFeatured)
}

func (s *portfolioService) ListByCategory(ctx context.Context, categoryKey string) ([]models.PortfolioItem, error) {
	return s.lists.GetOrLoad(ctx, cache.PortfolioCategoryPrefix+categoryKey, func(ctx context.Context) ([]models.PortfolioItem, error) {
		return s.repo.ListByCategory(ctx, categoryKey)
	})
}

// Get counts a view on every call.
func (s *portfolioService) Get(ctx context.Context, id string) (*models.PortfolioItem, error) {
	item, err := s.items.GetOrLoad(ctx, id, func(ctx context.Context) (models.PortfolioItem, error) {
		found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return models.PortfolioItem{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		s.logger.Warn("increment portfolio views", slog.String("id", id), slog.Any("err", err))
	} else {
		item.Views++
		s.items.Put(ctx, id, item)
		s.items.Increment(ctx, id+cache.ViewsSuffix)
	}

	return &item, nil
}

func (s *portfolioService) Create(ctx context.Context, req models.PortfolioItemRequest) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		TitleZh:     req.TitleZh,
		CategoryKey: req.CategoryKey,
		IsFeatured:  req.IsFeatured != nil && *req.IsFeatured,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.items.Put(ctx, item.ID, *item)
	s.invalidateLists(ctx, item.CategoryKey)
	return item, nil
}

// Update replaces the text fields and keeps isFeatured unless provided.
func (s *portfolioService) Update(ctx context.Context, id string, req models.PortfolioItemRequest) (*models.PortfolioItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCategory := item.CategoryKey

	item.ImageURL = req.ImageURL
	item.Title = req.Title
	item.TitleZh = req.TitleZh
	item.CategoryKey = req.CategoryKey
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.items.Put(ctx, id, *item)
	s.invalidateLists(ctx, oldCategory, item.CategoryKey)
	return item, nil
}

func (s *portfolioService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.items.Delete(ctx, id, id+cache.ViewsSuffix)
	s.invalidateLists(ctx, item.CategoryKey)
	return nil
}

func (s *portfolioService) invalidateLists(ctx context.Context, categories ...string) {
	keys := []string{cache.PortfolioListKey, cache.PortfolioFeaturedKey}
	for _, c := range categories {
		keys = append(keys, cache.PortfolioCategoryPrefix+c)
	}
	s.lists.Delete(ctx, keys...)
}
