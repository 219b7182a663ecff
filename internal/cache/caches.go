package cache

import (
	"log/slog"

	"portfolioAPI/internal/models"
)

// Caches groups the per-entity caches over one store.
type Caches struct {
	Users          *EntityCache[models.User]
	Portfolio      *EntityCache[models.PortfolioItem]
	PortfolioLists *EntityCache[[]models.PortfolioItem]
	Posts          *EntityCache[models.BlogPost]
	PostLists      *EntityCache[[]models.BlogPost]
	Comments       *EntityCache[models.Comment]
	CommentLists   *EntityCache[[]models.Comment]
}

// List caches use an empty prefix and are addressed by full key.
func NewCaches(store Store, logger *slog.Logger) *Caches {
	return &Caches{
		Users:          NewEntityCache[models.User](store, "user", UserInfoPrefix, UserTTL, logger),
		Portfolio:      NewEntityCache[models.PortfolioItem](store, "portfolio_item", PortfolioItemPrefix, PortfolioTTL, logger),
		PortfolioLists: NewEntityCache[[]models.PortfolioItem](store, "portfolio_list", "", PortfolioTTL, logger),
		Posts:          NewEntityCache[models.BlogPost](store, "blog_post", BlogPostPrefix, BlogPostTTL, logger),
		PostLists:      NewEntityCache[[]models.BlogPost](store, "blog_list", "", BlogPostTTL, logger),
		Comments:       NewEntityCache[models.Comment](store, "comment", CommentPrefix, CommentTTL, logger),
		CommentLists:   NewEntityCache[[]models.Comment](store, "comment_list", CommentPrefix, CommentTTL, logger),
	}
}
