package cache

import "time"

const (
	BlogPostPrefix          = "blog:post:"
	BlogFeaturedKey         = "blog:featured"
	BlogListKey             = "blog:list"
	PortfolioItemPrefix     = "portfolio:item:"
	PortfolioFeaturedKey    = "portfolio:featured"
	PortfolioCategoryPrefix = "portfolio:category:"
	PortfolioListKey        = "portfolio:list"
	CommentPrefix           = "comment:"
	UserInfoPrefix          = "user:info:"

	ViewsSuffix = ":views"
	ListSuffix  = ":list"
)

const (
	BlogPostTTL  = 30 * time.Minute
	PortfolioTTL = time.Hour
	CommentTTL   = 5 * time.Minute
	UserTTL      = time.Hour
)
