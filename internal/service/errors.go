package service

import (
	"errors"

	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/security"
)

var (
	ErrNotFound            = repository.ErrNotFound
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUsername   = repository.ErrDuplicateUsername
	ErrDuplicateEmail      = repository.ErrDuplicateEmail
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidParent       = errors.New("parent comment does not belong to this post")
	ErrUnknownProvider     = security.ErrUnknownProvider
	ErrInvalidImage        = errors.New("only image uploads are accepted")
	ErrInvalidObjectName   = errors.New("invalid image object name")
)

func isDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateUsername) || errors.Is(err, ErrDuplicateEmail)
}
