package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("REFRESH_TOKEN_DURATION", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("OAUTH_GITHUB_CLIENT_ID", "gh-id")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "secret", cfg.JWTSecretKey)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "gh-id", cfg.OAuth.GitHub.ClientID)
	assert.Empty(t, cfg.OAuth.Google.ClientID)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
}

func TestLoadMinIO_PublicURL(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "files.local:9000")
	t.Setenv("MINIO_USE_SSL", "true")

	m := LoadMinIO()

	assert.True(t, m.UseSSL)
	assert.Equal(t, "https://files.local:9000", m.PublicURL)
}

func TestLoadOAuth_EndpointOverrides(t *testing.T) {
	t.Setenv("OAUTH_GITHUB_CLIENT_ID", "gh-id")
	t.Setenv("OAUTH_GITHUB_TOKEN_URL", "https://ghe.corp/login/oauth/access_token")
	t.Setenv("OAUTH_GITHUB_USERINFO_URL", "https://ghe.corp/api/v3/user")

	o := LoadOAuth()

	assert.Equal(t, "https://ghe.corp/login/oauth/access_token", o.GitHub.TokenURL)
	assert.Equal(t, "https://ghe.corp/api/v3/user", o.GitHub.UserInfoURL)
	assert.Empty(t, o.GitHub.AuthURL)
	assert.Empty(t, o.Google.TokenURL)
}
