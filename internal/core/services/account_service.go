package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type accountService struct {
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
}

func NewAccountService(accountRepo ports.AccountRepository, txRepo ports.TransactionRepository) ports.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
	}
}

func (s *accountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *accountService) Transactions(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	txs, err := s.txRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
