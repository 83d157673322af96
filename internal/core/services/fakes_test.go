package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/watchearn/watchearn/internal/core/domain"
)

// In-memory fakes of the repository ports. They hand out copies so that
// service-side mutations only become visible through Update, like a real
// store would behave.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *fakeAccountRepo) add(a *domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.accounts[a.ID] = copyAccount(a)
}

func (r *fakeAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	r.accounts[a.ID] = copyAccount(a)
	return nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return copyAccount(a), nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = copyAccount(a)
	return nil
}

func copyAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

type fakeVideoRepo struct {
	videos map[string]*domain.Video
}

func newFakeVideoRepo(videos ...*domain.Video) *fakeVideoRepo {
	r := &fakeVideoRepo{videos: make(map[string]*domain.Video)}
	for _, v := range videos {
		r.videos[v.ID] = v
	}
	return r
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*domain.Video, error) {
	return r.videos[id], nil
}

func (r *fakeVideoRepo) List(_ context.Context) ([]*domain.Video, error) {
	var vs []*domain.Video
	for _, v := range r.videos {
		vs = append(vs, v)
	}
	return vs, nil
}

type fakeVoteRepo struct {
	votes []*domain.Vote
}

func (r *fakeVoteRepo) Save(_ context.Context, v *domain.Vote) error {
	r.votes = append(r.votes, v)
	return nil
}

func (r *fakeVoteRepo) CountSince(_ context.Context, accountID uuid.UUID, since time.Time) (int, error) {
	count := 0
	for _, v := range r.votes {
		if v.AccountID == accountID && !v.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeVoteRepo) CountByAccount(_ context.Context, accountID uuid.UUID) (int, error) {
	count := 0
	for _, v := range r.votes {
		if v.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

type fakeTransactionRepo struct {
	mu  sync.Mutex
	txs []*domain.Transaction
}

func (r *fakeTransactionRepo) Save(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, tx)
	return nil
}

func (r *fakeTransactionRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var txs []*domain.Transaction
	for i := len(r.txs) - 1; i >= 0; i-- {
		if r.txs[i].AccountID == accountID {
			txs = append(txs, r.txs[i])
		}
	}
	return txs, nil
}

type fakeWithdrawalRepo struct {
	mu          sync.Mutex
	withdrawals []*domain.Withdrawal
}

func (r *fakeWithdrawalRepo) Save(_ context.Context, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.withdrawals = append(r.withdrawals, w)
	return nil
}

func (r *fakeWithdrawalRepo) GetPendingByAccount(_ context.Context, accountID uuid.UUID) (*domain.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.withdrawals {
		if w.AccountID == accountID && w.Status == domain.WithdrawalStatusPending {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWithdrawalRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*domain.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ws []*domain.Withdrawal
	for i := len(r.withdrawals) - 1; i >= 0; i-- {
		if r.withdrawals[i].AccountID == accountID {
			ws = append(ws, r.withdrawals[i])
		}
	}
	return ws, nil
}

func (r *fakeWithdrawalRepo) ListPending(_ context.Context) ([]*domain.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ws []*domain.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status == domain.WithdrawalStatusPending {
			ws = append(ws, w)
		}
	}
	return ws, nil
}

func (r *fakeWithdrawalRepo) Update(_ context.Context, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.withdrawals {
		if existing.ID == w.ID {
			r.withdrawals[i] = w
			return nil
		}
	}
	return nil
}

type fakeAuthRepo struct {
	tokens []*domain.RefreshToken
}

func (r *fakeAuthRepo) StoreRefreshToken(_ context.Context, token *domain.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *fakeAuthRepo) GetRefreshTokenByHash(_ context.Context, tokenHash string) (*domain.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeAuthRepo) RevokeRefreshToken(_ context.Context, id string) error {
	for _, t := range r.tokens {
		if t.ID.String() == id {
			t.Revoked = true
		}
	}
	return nil
}
