package models

import (
	"time"

	"github.com/uptrace/bun"
)

type PlayerStatus string

const (
	PlayerStatusAvailable PlayerStatus = "available"
	PlayerStatusSold      PlayerStatus = "sold"
	PlayerStatusSkipped   PlayerStatus = "skipped"
)

// AuctionPlayer is one player entered into an auction. At most one row
// per auction has CurrentPlayer set. SoldTo and SoldPrice are set and
// cleared together, never one without the other; SoldAt orders sales so
// the most recent one can be undone.
type AuctionPlayer struct {
	bun.BaseModel `bun:"table:auction_players,alias:ap"`

	ID            int64        `bun:"id,pk,autoincrement" json:"id"`
	AuctionID     int64        `bun:"auction_id,notnull" json:"auction_id"`
	PlayerID      string       `bun:"player_id,notnull" json:"player_id"`
	PlayerName    string       `bun:"player_name,notnull" json:"player_name"`
	BasePrice     int64        `bun:"base_price,notnull" json:"base_price"`
	Status        PlayerStatus `bun:"status,notnull" json:"status"`
	SoldTo        *int64       `bun:"sold_to" json:"sold_to"`
	SoldPrice     *int64       `bun:"sold_price" json:"sold_price"`
	SoldAt        *time.Time   `bun:"sold_at" json:"sold_at,omitempty"`
	DisplayOrder  int          `bun:"display_order,notnull" json:"display_order"`
	CurrentPlayer bool         `bun:"current_player,notnull" json:"current_player"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
