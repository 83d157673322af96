package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VotingWindow is the rolling period within which the daily vote cap applies.
// The window is anchored at LastVoteDateReset, not at calendar midnight.
const VotingWindow = 24 * time.Hour

type Account struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         time.Time       `json:"createdAt"`
	FirstEarnAt       *time.Time      `json:"firstEarnAt"`
	VotingStreak      int             `json:"votingStreak"`
	LastVotedAt       *time.Time      `json:"lastVotedAt"`
	LastVoteDateReset *time.Time      `json:"lastVoteDateReset"`
	VotingDaysCount   int             `json:"votingDaysCount"`
}

// TouchVotingWindow advances the account's voting window on a vote attempt.
// The very first vote opens the first window; afterwards a new window starts
// once at least VotingWindow has elapsed since the last reset (tie-break >=).
// Within an open window nothing changes.
func (a *Account) TouchVotingWindow(now time.Time) {
	if a.VotingDaysCount == 0 {
		a.VotingDaysCount = 1
		a.VotingStreak = 1
		a.LastVoteDateReset = &now
		return
	}

	if a.LastVoteDateReset == nil || now.Sub(*a.LastVoteDateReset) >= VotingWindow {
		a.LastVoteDateReset = &now
		a.VotingDaysCount++
		a.VotingStreak++
	}
}

// WindowOpen reports whether the current voting window is still running at now.
func (a *Account) WindowOpen(now time.Time) bool {
	return a.LastVoteDateReset != nil && now.Sub(*a.LastVoteDateReset) < VotingWindow
}

// Credit adds amount to the balance, rounded to cents.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount).Round(2)
}

// Debit subtracts amount from the balance, rounded to cents.
// Callers must check sufficiency first; the balance never goes negative.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount).Round(2)
	if a.Balance.IsNegative() {
		a.Balance = decimal.Zero
	}
}
