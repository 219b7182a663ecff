package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/models"
	"portfolioAPI/internal/repository"
)

type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]models.CommentResponse, error)
	Add(ctx context.Context, username string, req models.CommentRequest) (*models.CommentResponse, error)
	Delete(ctx context.Context, id string) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.BlogPostRepository
	users    repository.UserRepository
	caches   *cache.Caches
	logger   *slog.Logger
}

func NewCommentService(rep *repository.Repository, caches *cache.Caches, logger *slog.Logger) CommentService {
	return &commentService{
		comments: rep.Comment,
		posts:    rep.BlogPost,
		users:    rep.User,
		caches:   caches,
		logger:   logger,
	}
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]models.CommentResponse, error) {
	comments, err := s.caches.CommentLists.GetOrLoad(ctx, postID+cache.ListSuffix, func(ctx context.Context) ([]models.Comment, error) {
		return s.comments.ListByPostID(ctx, postID)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, models.NewCommentResponse(&comments[i]))
	}
	return out, nil
}

func (s *commentService) Add(ctx context.Context, username string, req models.CommentRequest) (*models.CommentResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}

	if _, err := s.posts.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	var parentID *string
	if req.ParentID != nil && strings.TrimSpace(*req.ParentID) != "" {
		parent, err := s.comment(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidParent
			}
			return nil, fmt.Errorf("add comment: %w", err)
		}
		if parent.PostID != req.PostID {
			return nil, ErrInvalidParent
		}
		parentID = &parent.ID
	}

	avatar := models.DefaultAvatarURL
	if user.AvatarURL != nil && *user.AvatarURL != "" {
		avatar = *user.AvatarURL
	}

	c := &models.Comment{
		PostID:    req.PostID,
		UserID:    user.ID,
		Username:  user.Username,
		AvatarURL: avatar,
		Text:      req.Text,
		ParentID:  parentID,
	}

	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	s.caches.Comments.Put(ctx, c.ID, *c)
	s.caches.CommentLists.Delete(ctx, c.PostID+cache.ListSuffix)
	s.adjustCount(ctx, c.PostID, 1)

	resp := models.NewCommentResponse(c)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	c, err := s.comment(ctx, id)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.caches.Comments.Delete(ctx, id)
	s.caches.CommentLists.Delete(ctx, c.PostID+cache.ListSuffix)
	s.adjustCount(ctx, c.PostID, -1)
	return nil
}

func (s *commentService) comment(ctx context.Context, id string) (models.Comment, error) {
	return s.caches.Comments.GetOrLoad(ctx, id, func(ctx context.Context) (models.Comment, error) {
		c, err := s.comments.GetByID(ctx, id)
		if err != nil {
			return models.Comment{}, err
		}
		return *c, nil
	})
}

// adjustCount keeps blog_posts.comments_count in step. A failure here does
// not undo the comment write.
func (s *commentService) adjustCount(ctx context.Context, postID string, delta int) {
	if err := s.posts.IncrementCommentsCount(ctx, postID, delta); err != nil {
		s.logger.Warn("update comments count", slog.String("post_id", postID), slog.Any("err", err))
	}
	s.caches.Posts.Delete(ctx, postID)
	s.caches.PostLists.Delete(ctx, cache.BlogListKey, cache.BlogFeaturedKey)
}
