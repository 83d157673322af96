package ports

import (
	"context"

	"github.com/watchearn/watchearn/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

// AuthResult carries the account and its session tokens after signup/login.
type AuthResult struct {
	Account      *domain.Account
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Signup(ctx context.Context, name, email string) (*AuthResult, error)
	Login(ctx context.Context, email string) (*AuthResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}
