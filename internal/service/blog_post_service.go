package service

import (
	"context"
	"log/slog"

	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
)

type BlogPostService interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	ListFeatured(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, req models.BlogPostRequest) (*models.BlogPost, error)
	Update(ctx context.Context, id string, req models.BlogPostRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogPostService struct {
	repo         repository.BlogPostRepository
	posts        *cache.EntityCache[models.BlogPost]
	lists        *cache.EntityCache[[]models.BlogPost]
	commentLists *cache.EntityCache[[]models.Comment]
	logger       *slog.Logger
}

func NewBlogPostService(repo repository.BlogPostRepository, caches *cache.Caches, logger *slog.Logger) BlogPostService {
	return &blogPostService{
		repo:         repo,
		posts:        caches.Posts,
		lists:        caches.PostLists,
		commentLists: caches.CommentLists,
		logger:       logger,
	}
}

func (s *blogPostService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.lists.GetOrLoad(ctx, cache.BlogListKey, s.repo.List)
}

func (s *blogPostService) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	return s.lists.GetOrLoad(ctx, cache.BlogFeaturedKey, s.repo.ListFeatured)
}

func (s *blogPostService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.posts.GetOrLoad(ctx, id, func(ctx context.Context) (models.BlogPost, error) {
		found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return models.BlogPost{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		s.logger.Warn("increment blog post views", slog.String("id", id), slog.Any("err", err))
	} else {
		post.Views++
		s.posts.Put(ctx, id, post)
		s.posts.Increment(ctx, id+cache.ViewsSuffix)
	}

	return &post, nil
}

func (s *blogPostService) Create(ctx context.Context, req models.BlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{
		ImageURL:    req.ImageURL,
		IsLocked:    req.IsLocked != nil && *req.IsLocked,
		CategoryKey: req.CategoryKey,
		IsFeatured:  req.IsFeatured != nil && *req.IsFeatured,
		Title:       req.Title,
		TitleZh:     req.TitleZh,
		Excerpt:     req.Excerpt,
		ExcerptZh:   req.ExcerptZh,
		Content:     req.Content,
		ContentZh:   req.ContentZh,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.posts.Put(ctx, post.ID, *post)
	s.invalidateLists(ctx)
	return post, nil
}

// Update replaces the content fields; the flags keep their value unless provided.
func (s *blogPostService) Update(ctx context.Context, id string, req models.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.ImageURL = req.ImageURL
	post.CategoryKey = req.CategoryKey
	post.Title = req.Title
	post.TitleZh = req.TitleZh
	post.Excerpt = req.Excerpt
	post.ExcerptZh = req.ExcerptZh
	post.Content = req.Content
	post.ContentZh = req.ContentZh
	if req.IsLocked != nil {
		post.IsLocked = *req.IsLocked
	}
	if req.IsFeatured != nil {
		post.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.posts.Put(ctx, id, *post)
	s.invalidateLists(ctx)
	return post, nil
}

// Delete also drops the post's cached comment list; the rows go with the
// post through the foreign key.
func (s *blogPostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.posts.Delete(ctx, id, id+cache.ViewsSuffix)
	s.commentLists.Delete(ctx, id+cache.ListSuffix)
	s.invalidateLists(ctx)
	return nil
}

func (s *blogPostService) invalidateLists(ctx context.Context) {
	s.lists.Delete(ctx, cache.BlogListKey, cache.BlogFeaturedKey)
}
