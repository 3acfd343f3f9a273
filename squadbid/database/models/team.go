package models

import (
	"time"

	"github.com/uptrace/bun"
)

// AuctionTeam is one captain's squad in an auction. The purse fields
// hold the invariant remaining_purse = initial_purse - total_spent and
// are only ever mutated inside the same transaction as the sale (or
// undo) that changes them.
type AuctionTeam struct {
	bun.BaseModel `bun:"table:auction_teams,alias:at"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	AuctionID       int64  `bun:"auction_id,notnull" json:"auction_id"`
	CaptainID       string `bun:"captain_id,notnull" json:"captain_id"`
	TeamName        string `bun:"team_name,notnull" json:"team_name"`
	InitialPurse    int64  `bun:"initial_purse,notnull" json:"initial_purse"`
	TotalSpent      int64  `bun:"total_spent,notnull" json:"total_spent"`
	RemainingPurse  int64  `bun:"remaining_purse,notnull" json:"remaining_purse"`
	PlayersCount    int    `bun:"players_count,notnull" json:"players_count"`
	RequiredPlayers int    `bun:"required_players,notnull" json:"required_players"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
