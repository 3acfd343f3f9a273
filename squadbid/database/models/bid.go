package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Bid is one bid attempt on a player. Rows are append-only; only the
// IsWinningBid and IsUndone flags are ever toggled, and only by the
// auction state machine as part of an atomic transition. For any
// player at most one row has is_winning_bid AND NOT is_undone.
type Bid struct {
	bun.BaseModel `bun:"table:bids,alias:b"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	AuctionID    int64     `bun:"auction_id,notnull" json:"auction_id"`
	PlayerID     int64     `bun:"player_id,notnull" json:"player_id"`
	TeamID       int64     `bun:"team_id,notnull" json:"team_id"`
	Amount       int64     `bun:"amount,notnull" json:"amount"`
	PlacedAt     time.Time `bun:"placed_at,notnull" json:"placed_at"`
	IsWinningBid bool      `bun:"is_winning_bid,notnull" json:"is_winning_bid"`
	IsUndone     bool      `bun:"is_undone,notnull" json:"is_undone"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
