package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/watchearn/watchearn/internal/core/domain"
)

const testJWTSecret = "test-secret"

func TestSignup(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	authRepo := &fakeAuthRepo{}
	svc := NewAuthService(accountRepo, authRepo, testJWTSecret)

	result, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Alice", result.Account.Name)
	assert.True(t, result.Account.Balance.Equal(decimal.RequireFromString("213.19")))
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, result.Account.ID.String(), claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])

	// Only the hash of the refresh token is persisted.
	require.Len(t, authRepo.tokens, 1)
	assert.NotEqual(t, result.RefreshToken, authRepo.tokens[0].TokenHash)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAuthService(accountRepo, &fakeAuthRepo{}, testJWTSecret)

	_, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "Other Alice", "alice@example.com")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	svc := NewAuthService(accountRepo, &fakeAuthRepo{}, testJWTSecret)

	signedUp, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, signedUp.Account.ID, result.Account.ID)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeAccountRepo(), &fakeAuthRepo{}, testJWTSecret)

	_, err := svc.Login(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRefreshAccessToken(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	authRepo := &fakeAuthRepo{}
	svc := NewAuthService(accountRepo, authRepo, testJWTSecret)

	result, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	accessToken, err := svc.RefreshAccessToken(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestRefreshAccessToken_Invalid(t *testing.T) {
	svc := NewAuthService(newFakeAccountRepo(), &fakeAuthRepo{}, testJWTSecret)

	_, err := svc.RefreshAccessToken(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	authRepo := &fakeAuthRepo{}
	svc := NewAuthService(accountRepo, authRepo, testJWTSecret)

	result, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	authRepo.tokens[0].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.RefreshAccessToken(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	authRepo := &fakeAuthRepo{}
	svc := NewAuthService(accountRepo, authRepo, testJWTSecret)

	result, err := svc.Signup(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	_, err = svc.RefreshAccessToken(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_UnknownTokenIsNoop(t *testing.T) {
	svc := NewAuthService(newFakeAccountRepo(), &fakeAuthRepo{}, testJWTSecret)
	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
}
