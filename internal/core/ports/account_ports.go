package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type AccountService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Transactions(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)
}
