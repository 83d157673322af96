package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// startingBalance is credited to every new account at signup.
var startingBalance = decimal.RequireFromString("213.19")

type AuthService struct {
	accountRepo ports.AccountRepository
	authRepo    ports.AuthRepository
	jwtSecret   []byte
}

func NewAuthService(accountRepo ports.AccountRepository, authRepo ports.AuthRepository, jwtSecret string) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		authRepo:    authRepo,
		jwtSecret:   []byte(jwtSecret),
	}
}

func (s *AuthService) Signup(ctx context.Context, name, email string) (*ports.AuthResult, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	account := &domain.Account{
		Name:    name,
		Email:   email,
		Balance: startingBalance,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthService) Login(ctx context.Context, email string) (*ports.AuthResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	return s.issueTokens(ctx, account)
}

func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	tokenHash := s.hashToken(refreshToken)

	rt, err := s.authRepo.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	if rt == nil || rt.Revoked || rt.ExpiresAt.Before(time.Now()) {
		return "", domain.ErrInvalidToken
	}

	account, err := s.accountRepo.GetByID(ctx, rt.AccountID)
	if err != nil {
		return "", fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return "", domain.ErrAccountNotFound
	}

	return s.generateAccessToken(account)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := s.hashToken(refreshToken)

	rt, err := s.authRepo.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to get refresh token: %w", err)
	}
	if rt == nil {
		return nil
	}

	return s.authRepo.RevokeRefreshToken(ctx, rt.ID.String())
}

func (s *AuthService) issueTokens(ctx context.Context, account *domain.Account) (*ports.AuthResult, error) {
	accessToken, err := s.generateAccessToken(account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	rt := &domain.RefreshToken{
		AccountID: account.ID,
		TokenHash: s.hashToken(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
		Revoked:   false,
	}
	if err := s.authRepo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &ports.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) generateAccessToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),
		"email": account.Email,
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func (s *AuthService) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
