package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	VoteTypeLike    = "like"
	VoteTypeDislike = "dislike"
)

// Vote records a single like/dislike and the reward it earned.
// Immutable once created.
type Vote struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    uuid.UUID       `json:"accountId"`
	VideoID      string          `json:"videoId"`
	VoteType     string          `json:"voteType"`
	RewardAmount decimal.Decimal `json:"rewardAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ValidVoteType reports whether t is one of the accepted vote types.
func ValidVoteType(t string) bool {
	return t == VoteTypeLike || t == VoteTypeDislike
}
