package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

const pqUniqueViolation = "23505"

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) ports.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (name, email, balance)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, account.Name, account.Email, account.Balance).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *accountRepository) get(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `
		SELECT id, name, email, balance, created_at, first_earn_at,
		       voting_streak, last_voted_at, last_vote_date_reset, voting_days_count
		FROM accounts ` + where

	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Balance,
		&account.CreatedAt,
		&account.FirstEarnAt,
		&account.VotingStreak,
		&account.LastVotedAt,
		&account.LastVoteDateReset,
		&account.VotingDaysCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2, first_earn_at = $3, voting_streak = $4,
		    last_voted_at = $5, last_vote_date_reset = $6, voting_days_count = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Balance,
		account.FirstEarnAt,
		account.VotingStreak,
		account.LastVotedAt,
		account.LastVoteDateReset,
		account.VotingDaysCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}
