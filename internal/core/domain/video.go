package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Video is a read-only catalog entry. Videos are seeded by migration and
// never mutated by the application.
type Video struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Thumbnail   string          `json:"thumbnail"`
	RewardMin   decimal.Decimal `json:"rewardMin"`
	RewardMax   decimal.Decimal `json:"rewardMax"`
	CreatedAt   time.Time       `json:"createdAt"`
}
