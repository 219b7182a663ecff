package models

import "time"

const DefaultAvatarURL = "/images/profile.jpg"

// UserDto is the public view of a user. It never carries the password hash.
type UserDto struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	AvatarURL *string    `json:"avatarUrl"`
	Role      UserRole   `json:"role"`
	Gender    *Gender    `json:"gender"`
	Birthday  *time.Time `json:"birthday"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewUserDto(u *User) *UserDto {
	if u == nil {
		return nil
	}
	return &UserDto{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		Gender:    u.Gender,
		Birthday:  u.Birthday,
		Address:   u.Address,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type AuthResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Token        string   `json:"token,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	User         *UserDto `json:"user,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=50"`
	Password string `json:"password" validate:"required,notblank,min=6"`
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,notblank,min=3,max=50"`
	Email           string `json:"email" validate:"required,notblank,email"`
	Password        string `json:"password" validate:"required,notblank,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,notblank"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required,notblank"`
}

// UpdateUserRequest is a partial update: nil fields keep their current value.
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl"`
	Gender    *string `json:"gender"`
	Birthday  *string `json:"birthday"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Password  *string `json:"password"`
}

type PortfolioItemRequest struct {
	ImageURL    string `json:"imageUrl" validate:"max=1000"`
	Title       string `json:"title" validate:"max=500"`
	TitleZh     string `json:"titleZh" validate:"max=500"`
	CategoryKey string `json:"categoryKey" validate:"max=100"`
	IsFeatured  *bool  `json:"isFeatured"`
}

type BlogPostRequest struct {
	ImageURL    string `json:"imageUrl" validate:"max=1000"`
	IsLocked    *bool  `json:"isLocked"`
	CategoryKey string `json:"categoryKey" validate:"max=100"`
	IsFeatured  *bool  `json:"isFeatured"`
	Title       string `json:"title" validate:"max=500"`
	TitleZh     string `json:"titleZh" validate:"max=500"`
	Excerpt     string `json:"excerpt"`
	ExcerptZh   string `json:"excerptZh"`
	Content     string `json:"content"`
	ContentZh   string `json:"contentZh"`
}

type CommentRequest struct {
	PostID   string  `json:"postId" validate:"required,notblank"`
	Text     string  `json:"text" validate:"required,notblank"`
	ParentID *string `json:"parentId"`
}

type CommentResponse struct {
	ID        string  `json:"id"`
	PostID    string  `json:"postId"`
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatarUrl"`
	Date      string  `json:"date"`
	Text      string  `json:"text"`
	ParentID  *string `json:"parentId"`
}

func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Username:  c.Username,
		AvatarURL: c.AvatarURL,
		Date:      c.CreatedAt.UTC().Format(time.RFC3339),
		Text:      c.Text,
		ParentID:  c.ParentID,
	}
}

type ImageUploadResponse struct {
	Object string `json:"object"`
	URL    string `json:"url"`
}
