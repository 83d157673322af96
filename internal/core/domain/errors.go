package domain

import "errors"

var (
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrAccountNotFound         = errors.New("account not found")
	ErrVideoNotFound           = errors.New("video not found")
	ErrInvalidVoteType         = errors.New("invalid vote type")
	ErrDailyLimitExceeded      = errors.New("daily vote limit reached")
	ErrNoEarningsYet           = errors.New("no earnings yet")
	ErrCooldownNotElapsed      = errors.New("withdrawal cooldown not elapsed")
	ErrPendingWithdrawalExists = errors.New("a pending withdrawal already exists")
	ErrInvalidAmount           = errors.New("invalid withdrawal amount")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidToken            = errors.New("invalid or expired token")
)
