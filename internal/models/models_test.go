package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	g, ok := ParseGender(" female ")
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, g)

	g, ok = ParseGender("not_specified")
	assert.True(t, ok)
	assert.Equal(t, GenderNotSpecified, g)

	_, ok = ParseGender("robot")
	assert.False(t, ok)
}

func TestUserRole_IsAdmin(t *testing.T) {
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperUser.IsAdmin())
}

func TestRefreshToken_Expired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&RefreshToken{ExpiresAt: now.Add(-time.Second)}).Expired(now))
	assert.False(t, (&RefreshToken{ExpiresAt: now.Add(time.Hour)}).Expired(now))
}

func TestNewCommentResponse_DateIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	c := &Comment{ID: "c1", CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, loc)}

	resp := NewCommentResponse(c)

	assert.Equal(t, "2024-05-01T00:00:00Z", resp.Date)
}

func TestNewUserDto_Nil(t *testing.T) {
	assert.Nil(t, NewUserDto(nil))
}
