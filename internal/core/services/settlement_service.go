package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type settlementService struct {
	accountRepo    ports.AccountRepository
	withdrawalRepo ports.WithdrawalRepository
	txRepo         ports.TransactionRepository
	now            func() time.Time
}

func NewSettlementService(
	accountRepo ports.AccountRepository,
	withdrawalRepo ports.WithdrawalRepository,
	txRepo ports.TransactionRepository,
) ports.SettlementService {
	return &settlementService{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		txRepo:         txRepo,
		now:            time.Now,
	}
}

// SettleAllPending completes or rejects every pending withdrawal. Each account
// has at most one pending withdrawal, so the goroutines touch disjoint accounts.
func (s *settlementService) SettleAllPending(ctx context.Context) error {
	pending, err := s.withdrawalRepo.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending withdrawals: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(pending))

	for _, w := range pending {
		wg.Add(1)
		go func(w *domain.Withdrawal) {
			defer wg.Done()
			if err := s.settleOne(ctx, w); err != nil {
				errChan <- fmt.Errorf("failed to settle withdrawal %s: %w", w.ID, err)
			}
		}(w)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *settlementService) settleOne(ctx context.Context, w *domain.Withdrawal) error {
	account, err := s.accountRepo.GetByID(ctx, w.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}

	now := s.now()
	w.ProcessedAt = &now

	if w.Amount.GreaterThan(account.Balance) {
		w.Status = domain.WithdrawalStatusRejected
		if err := s.withdrawalRepo.Update(ctx, w); err != nil {
			return err
		}
		return s.txRepo.Save(ctx, &domain.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Type:        domain.TransactionTypeWithdrawalReversal,
			Amount:      w.Amount,
			Description: fmt.Sprintf("Withdrawal rejected via %s - insufficient balance", w.Method),
			Status:      domain.TransactionStatusFailed,
			CreatedAt:   now,
		})
	}

	account.Debit(w.Amount)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	w.Status = domain.WithdrawalStatusCompleted
	if err := s.withdrawalRepo.Update(ctx, w); err != nil {
		return err
	}

	return s.txRepo.Save(ctx, &domain.Transaction{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Type:        domain.TransactionTypeDebit,
		Amount:      w.Amount,
		Description: fmt.Sprintf("Withdrawal completed via %s", w.Method),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
	})
}
