package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type withdrawalRepository struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) ports.WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

const withdrawalColumns = `id, account_id, amount, method, status, requested_at, processed_at`

func (r *withdrawalRepository) Save(ctx context.Context, w *domain.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, account_id, amount, method, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.AccountID, w.Amount, w.Method, w.Status, w.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal: %w", err)
	}
	return nil
}

func (r *withdrawalRepository) GetPendingByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE account_id = $1 AND status = $2
		LIMIT 1
	`
	w := &domain.Withdrawal{}
	err := r.db.QueryRowContext(ctx, query, accountID, domain.WithdrawalStatusPending).Scan(
		&w.ID, &w.AccountID, &w.Amount, &w.Method, &w.Status, &w.RequestedAt, &w.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending withdrawal: %w", err)
	}
	return w, nil
}

func (r *withdrawalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE account_id = $1
		ORDER BY requested_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	defer rows.Close()

	return scanWithdrawals(rows)
}

func (r *withdrawalRepository) ListPending(ctx context.Context) ([]*domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE status = $1
		ORDER BY requested_at
	`
	rows, err := r.db.QueryContext(ctx, query, domain.WithdrawalStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending withdrawals: %w", err)
	}
	defer rows.Close()

	return scanWithdrawals(rows)
}

func (r *withdrawalRepository) Update(ctx context.Context, w *domain.Withdrawal) error {
	query := `UPDATE withdrawals SET status = $2, processed_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Status, w.ProcessedAt)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal: %w", err)
	}
	return nil
}

func scanWithdrawals(rows *sql.Rows) ([]*domain.Withdrawal, error) {
	var ws []*domain.Withdrawal
	for rows.Next() {
		w := &domain.Withdrawal{}
		if err := rows.Scan(
			&w.ID, &w.AccountID, &w.Amount, &w.Method, &w.Status, &w.RequestedAt, &w.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal: %w", err)
		}
		ws = append(ws, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating withdrawals: %w", err)
	}

	return ws, nil
}
