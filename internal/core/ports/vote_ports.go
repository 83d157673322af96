package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/core/domain"
)

type VoteRepository interface {
	Save(ctx context.Context, vote *domain.Vote) error
	CountSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error)
}

type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)
}

// VoteResult is returned after a successful vote.
type VoteResult struct {
	Vote                *domain.Vote    `json:"vote"`
	NewBalance          decimal.Decimal `json:"newBalance"`
	DailyVotesRemaining int             `json:"dailyVotesRemaining"`
	RewardAmount        decimal.Decimal `json:"rewardAmount"`
	VotingStreak        int             `json:"votingStreak"`
	VotingDaysCount     int             `json:"votingDaysCount"`
}

// DailyVotes summarizes an account's quota usage.
type DailyVotes struct {
	Remaining  int `json:"remaining"`
	Voted      int `json:"voted"`
	TotalVotes int `json:"totalVotes"`
}

type VoteService interface {
	CastVote(ctx context.Context, accountID uuid.UUID, videoID, voteType string) (*VoteResult, error)
	DailyVotes(ctx context.Context, accountID uuid.UUID) (*DailyVotes, error)
}
