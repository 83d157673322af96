package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
)

type WithdrawalRepository interface {
	Save(ctx context.Context, w *domain.Withdrawal) error
	GetPendingByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Withdrawal, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Withdrawal, error)
	ListPending(ctx context.Context) ([]*domain.Withdrawal, error)
	Update(ctx context.Context, w *domain.Withdrawal) error
}

// BalanceInfo is the eligibility projection served by GET /api/balance.
type BalanceInfo struct {
	Account             *domain.Account    `json:"user"`
	DaysUntilWithdrawal int                `json:"daysUntilWithdrawal"`
	WithdrawalEligible  bool               `json:"withdrawalEligible"`
	PendingWithdrawal   *domain.Withdrawal `json:"pendingWithdrawal"`
}

type WithdrawalService interface {
	Request(ctx context.Context, accountID uuid.UUID, amount, method string) (*domain.Withdrawal, error)
	List(ctx context.Context, accountID uuid.UUID) ([]*domain.Withdrawal, error)
	BalanceInfo(ctx context.Context, accountID uuid.UUID) (*BalanceInfo, error)
}

type SettlementService interface {
	SettleAllPending(ctx context.Context) error
}
