package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for a correctly signed token past its exp.
	// It matches ErrInvalidToken as well.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// TokenProvider issues and verifies HS512 tokens whose subject is the username.
type TokenProvider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenProvider(secret string, accessTTL, refreshTTL time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (p *TokenProvider) RefreshTTL() time.Duration {
	return p.refreshTTL
}

func (p *TokenProvider) GenerateAccessToken(username string) (string, error) {
	token, _, err := p.sign(username, p.accessTTL)
	return token, err
}

// GenerateRefreshToken returns the token and its expiry so the caller can
// persist the same instant.
func (p *TokenProvider) GenerateRefreshToken(username string) (string, time.Time, error) {
	return p.sign(username, p.refreshTTL)
}

func (p *TokenProvider) sign(username string, ttl time.Duration) (string, time.Time, error) {
	issued := p.now()
	expires := issued.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
		// jti keeps two tokens minted in the same second distinct, the
		// refresh token column is unique
		ID: uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// ParseSubject validates signature and expiry and returns the username.
func (p *TokenProvider) ParseSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// the signature is verified before exp, so an expired error means
		// the token was ours
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
