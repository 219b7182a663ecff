package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleAdmin     UserRole = "ADMIN"
	RoleSuperUser UserRole = "SUPER_USER"
)

// IsAdmin reports whether the role may manage content and comments.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperUser
}

type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderOther        Gender = "OTHER"
	GenderNotSpecified Gender = "NOT_SPECIFIED"
)

// ParseGender is case-insensitive and returns false for unknown values.
func ParseGender(value string) (Gender, bool) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(value))); g {
	case GenderMale, GenderFemale, GenderOther, GenderNotSpecified:
		return g, true
	}
	return "", false
}

type User struct {
	ID           string     `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"passwordHash,omitempty" db:"password_hash"`
	AvatarURL    *string    `json:"avatarUrl" db:"avatar_url"`
	Role         UserRole   `json:"role" db:"role"`
	Gender       *Gender    `json:"gender" db:"gender"`
	Birthday     *time.Time `json:"birthday" db:"birthday"`
	Address      *string    `json:"address" db:"address"`
	Phone        *string    `json:"phone" db:"phone"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

type RefreshToken struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

type PortfolioItem struct {
	ID          string    `json:"id" db:"id"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Title       string    `json:"title" db:"title"`
	TitleZh     string    `json:"titleZh" db:"title_zh"`
	CategoryKey string    `json:"categoryKey" db:"category_key"`
	Views       int       `json:"views" db:"views"`
	IsFeatured  bool      `json:"isFeatured" db:"is_featured"`
	Date        time.Time `json:"date" db:"date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type BlogPost struct {
	ID            string `json:"id" db:"id"`
	ImageURL      string `json:"imageUrl" db:"image_url"`
	IsLocked      bool   `json:"isLocked" db:"is_locked"`
	CategoryKey   string `json:"categoryKey" db:"category_key"`
	Likes         int    `json:"likes" db:"likes"`
	CommentsCount int    `json:"commentsCount" db:"comments_count"`
	Views         int    `json:"views" db:"views"`
	IsFeatured    bool   `json:"isFeatured" db:"is_featured"`
	Title         string `json:"title" db:"title"`
	TitleZh       string `json:"titleZh" db:"title_zh"`
	Excerpt       string `json:"excerpt" db:"excerpt"`
	ExcerptZh     string `json:"excerptZh" db:"excerpt_zh"`
	Content       string `json:"content" db:"content"`
	ContentZh     string `json:"contentZh" db:"content_zh"`
	// CreatedAt is epoch milliseconds.
	CreatedAt   int64     `json:"createdAt" db:"created_at"`
	Date        time.Time `json:"date" db:"date"`
	CreatedAtTs time.Time `json:"createdAtTs" db:"created_at_ts"`
}

type Comment struct {
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	AvatarURL string    `json:"avatarUrl" db:"avatar_url"`
	Text      string    `json:"text" db:"text"`
	ParentID  *string   `json:"parentId" db:"parent_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
