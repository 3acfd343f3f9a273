package models

import (
	"time"

	"github.com/uptrace/bun"
)

type AuctionStatus string

const (
	AuctionStatusDraft     AuctionStatus = "draft"
	AuctionStatusLive      AuctionStatus = "live"
	AuctionStatusPaused    AuctionStatus = "paused"
	AuctionStatusCompleted AuctionStatus = "completed"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

type PlayerOrderType string

const (
	OrderBasePriceDesc PlayerOrderType = "base_price_desc"
	OrderBasePriceAsc  PlayerOrderType = "base_price_asc"
	OrderAlphabetical  PlayerOrderType = "alphabetical"
	OrderRandom        PlayerOrderType = "random"
)

// IncrementRange is one rung band of the bid ladder: bids at or below
// UpTo advance by Step. A range with UpTo == 0 is open-ended and must
// come last.
type IncrementRange struct {
	UpTo int64 `json:"up_to"`
	Step int64 `json:"step"`
}

type Auction struct {
	bun.BaseModel `bun:"table:auctions,alias:a"`

	ID                 int64            `bun:"id,pk,autoincrement" json:"id"`
	Name               string           `bun:"name,notnull" json:"name"`
	Status             AuctionStatus    `bun:"status,notnull" json:"status"`
	TimerSeconds       int              `bun:"timer_seconds,notnull" json:"timer_seconds"`
	TotalPurse         int64            `bun:"total_purse,notnull" json:"total_purse"`
	MinBidAmount       int64            `bun:"min_bid_amount,notnull" json:"min_bid_amount"`
	UseBasePrice       bool             `bun:"use_base_price,notnull" json:"use_base_price"`
	MinIncrement       int64            `bun:"min_increment,notnull" json:"min_increment"`
	UseFixedIncrements bool             `bun:"use_fixed_increments,notnull" json:"use_fixed_increments"`
	IncrementRanges    []IncrementRange `bun:"increment_ranges,type:jsonb" json:"increment_ranges"`
	PlayerOrderType    PlayerOrderType  `bun:"player_order_type,notnull" json:"player_order_type"`
	OrderFrozen        bool             `bun:"order_frozen,notnull" json:"order_frozen"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// IsLive reports whether bidding operations are legal right now.
func (a *Auction) IsLive() bool {
	return a.Status == AuctionStatusLive
}

// DefaultIncrementRanges is the ladder used when an auction is created
// without explicit ranges and fixed increments are disabled.
var DefaultIncrementRanges = []IncrementRange{
	{UpTo: 200, Step: 20},
	{UpTo: 500, Step: 50},
	{UpTo: 0, Step: 100},
}
