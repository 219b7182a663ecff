package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolioAPI/internal/models"
)

func TestRefreshTokenRepository_CreateAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	expires := time.Now().Add(7 * 24 * time.Hour).UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs(sqlmock.AnyArg(), "u1", "tok", expires, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rt := &models.RefreshToken{UserID: "u1", Token: "tok", ExpiresAt: expires}
	require.NoError(t, repo.Create(ctx, rt))
	assert.NotEmpty(t, rt.ID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens WHERE token = $1")).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
			AddRow(rt.ID, "u1", "tok", expires, rt.CreatedAt))

	got, err := repo.GetByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, expires, got.ExpiresAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_GetByToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM refresh_tokens WHERE token = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByToken(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRefreshTokenRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET token = ?, expires_at = ? WHERE id = ?")).
		WithArgs("new", expires, "rt1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &models.RefreshToken{ID: "rt1", Token: "new", ExpiresAt: expires})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_Deletes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE token = $1")).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE expires_at <= $1")).
		WithArgs(at).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteByUserID(ctx, "u1"))
	require.NoError(t, repo.DeleteByToken(ctx, "tok"))
	n, err := repo.DeleteExpired(ctx, at)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
