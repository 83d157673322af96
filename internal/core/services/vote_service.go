package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

// DailyVoteLimit caps the number of votes per voting window.
const DailyVoteLimit = 7

type voteService struct {
	accountRepo ports.AccountRepository
	videoRepo   ports.VideoRepository
	voteRepo    ports.VoteRepository
	txRepo      ports.TransactionRepository
	now         func() time.Time
	randFloat   func() float64
}

func NewVoteService(
	accountRepo ports.AccountRepository,
	videoRepo ports.VideoRepository,
	voteRepo ports.VoteRepository,
	txRepo ports.TransactionRepository,
) ports.VoteService {
	return &voteService{
		accountRepo: accountRepo,
		videoRepo:   videoRepo,
		voteRepo:    voteRepo,
		txRepo:      txRepo,
		now:         time.Now,
		randFloat:   rand.Float64,
	}
}

func (s *voteService) CastVote(ctx context.Context, accountID uuid.UUID, videoID, voteType string) (*ports.VoteResult, error) {
	if !domain.ValidVoteType(voteType) {
		return nil, domain.ErrInvalidVoteType
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video: %w", err)
	}
	if video == nil {
		return nil, domain.ErrVideoNotFound
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	now := s.now()

	used, err := s.votesInWindow(ctx, account, now)
	if err != nil {
		return nil, err
	}
	if used >= DailyVoteLimit {
		return nil, domain.ErrDailyLimitExceeded
	}

	account.TouchVotingWindow(now)

	reward := s.drawReward(video)

	vote := &domain.Vote{
		ID:           uuid.New(),
		AccountID:    account.ID,
		VideoID:      video.ID,
		VoteType:     voteType,
		RewardAmount: reward,
		CreatedAt:    now,
	}
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to save vote: %w", err)
	}

	account.Credit(reward)
	if account.FirstEarnAt == nil {
		account.FirstEarnAt = &now
	}
	account.LastVotedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	tx := &domain.Transaction{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Type:        domain.TransactionTypeCredit,
		Amount:      reward,
		Description: fmt.Sprintf("Video vote reward - %s", video.Title),
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &ports.VoteResult{
		Vote:                vote,
		NewBalance:          account.Balance,
		DailyVotesRemaining: DailyVoteLimit - (used + 1),
		RewardAmount:        reward,
		VotingStreak:        account.VotingStreak,
		VotingDaysCount:     account.VotingDaysCount,
	}, nil
}

func (s *voteService) DailyVotes(ctx context.Context, accountID uuid.UUID) (*ports.DailyVotes, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	used, err := s.votesInWindow(ctx, account, s.now())
	if err != nil {
		return nil, err
	}

	total, err := s.voteRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	return &ports.DailyVotes{
		Remaining:  DailyVoteLimit - used,
		Voted:      used,
		TotalVotes: total,
	}, nil
}

// votesInWindow counts votes cast inside the account's current voting window.
// An expired or never-opened window counts as zero.
func (s *voteService) votesInWindow(ctx context.Context, account *domain.Account, now time.Time) (int, error) {
	if !account.WindowOpen(now) {
		return 0, nil
	}
	used, err := s.voteRepo.CountSince(ctx, account.ID, *account.LastVoteDateReset)
	if err != nil {
		return 0, fmt.Errorf("failed to count window votes: %w", err)
	}
	return used, nil
}

// drawReward picks a uniform random amount in [rewardMin, rewardMax],
// rounded half-up to the cent.
func (s *voteService) drawReward(video *domain.Video) decimal.Decimal {
	span := video.RewardMax.Sub(video.RewardMin)
	return video.RewardMin.Add(span.Mul(decimal.NewFromFloat(s.randFloat()))).Round(2)
}
