package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

// WithdrawalCooldownDays is the minimum number of whole days that must pass
// after the first reward before a withdrawal may be requested.
const WithdrawalCooldownDays = 20

type withdrawalService struct {
	accountRepo    ports.AccountRepository
	withdrawalRepo ports.WithdrawalRepository
	txRepo         ports.TransactionRepository
	now            func() time.Time
}

func NewWithdrawalService(
	accountRepo ports.AccountRepository,
	withdrawalRepo ports.WithdrawalRepository,
	txRepo ports.TransactionRepository,
) ports.WithdrawalService {
	return &withdrawalService{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		txRepo:         txRepo,
		now:            time.Now,
	}
}

func (s *withdrawalService) Request(ctx context.Context, accountID uuid.UUID, amount, method string) (*domain.Withdrawal, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	now := s.now()

	if account.FirstEarnAt == nil {
		return nil, domain.ErrNoEarningsYet
	}

	daysPassed := daysSince(*account.FirstEarnAt, now)
	if daysPassed < WithdrawalCooldownDays {
		remaining := WithdrawalCooldownDays - daysPassed
		return nil, fmt.Errorf("%w: you can withdraw in %d day(s)", domain.ErrCooldownNotElapsed, remaining)
	}

	pending, err := s.withdrawalRepo.GetPendingByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending withdrawals: %w", err)
	}
	if pending != nil {
		return nil, domain.ErrPendingWithdrawalExists
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil || !amt.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	amt = amt.Round(2)

	if amt.GreaterThan(account.Balance) {
		return nil, domain.ErrInsufficientBalance
	}

	w := &domain.Withdrawal{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Amount:      amt,
		Method:      method,
		Status:      domain.WithdrawalStatusPending,
		RequestedAt: now,
	}
	if err := s.withdrawalRepo.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}

	// The balance is not debited here; settlement does that later.
	tx := &domain.Transaction{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Type:        domain.TransactionTypeWithdrawal,
		Amount:      amt,
		Description: fmt.Sprintf("Withdrawal request via %s", method),
		Status:      domain.TransactionStatusPending,
		CreatedAt:   now,
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return w, nil
}

func (s *withdrawalService) List(ctx context.Context, accountID uuid.UUID) ([]*domain.Withdrawal, error) {
	return s.withdrawalRepo.ListByAccount(ctx, accountID)
}

func (s *withdrawalService) BalanceInfo(ctx context.Context, accountID uuid.UUID) (*ports.BalanceInfo, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	daysUntil := WithdrawalCooldownDays
	if account.FirstEarnAt != nil {
		daysUntil = WithdrawalCooldownDays - daysSince(*account.FirstEarnAt, s.now())
		if daysUntil < 0 {
			daysUntil = 0
		}
	}
	eligible := account.FirstEarnAt != nil && daysUntil == 0

	pending, err := s.withdrawalRepo.GetPendingByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending withdrawals: %w", err)
	}

	return &ports.BalanceInfo{
		Account:             account,
		DaysUntilWithdrawal: daysUntil,
		WithdrawalEligible:  eligible,
		PendingWithdrawal:   pending,
	}, nil
}

func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
