package engine

import (
	"github.com/squadbid/squadbid/squadbid/database/models"
)

// TeamPurse is the instantaneous budget picture for one team. All
// fields derive from the team row plus the team's own pending winning
// bid on the live player; nothing here writes anything.
type TeamPurse struct {
	FilledSlots    int   `json:"filled_slots"`
	AvailableSlots int   `json:"available_slots"`
	ReserveNeeded  int64 `json:"reserve_needed"`
	EffectivePurse int64 `json:"effective_purse"`
	MaxPossibleBid int64 `json:"max_possible_bid"`
}

// ComputePurse derives the purse picture for a team. outstanding is
// the amount of the team's own not-yet-settled winning bid on the
// current player; it is added back because it is not a sunk cost until
// the hammer falls.
func ComputePurse(a *models.Auction, t *models.AuctionTeam, outstanding int64) TeamPurse {
	filled := t.PlayersCount

	available := t.RequiredPlayers - filled
	if available < 0 {
		available = 0
	}

	// Money that must stay unspent so every remaining slot after this
	// one can still be filled at minimum price.
	var reserve int64
	if available > 1 {
		reserve = int64(available-1) * a.MinBidAmount
	}

	effective := t.RemainingPurse + outstanding

	return TeamPurse{
		FilledSlots:    filled,
		AvailableSlots: available,
		ReserveNeeded:  reserve,
		EffectivePurse: effective,
		MaxPossibleBid: effective - reserve,
	}
}

// CanBid checks the purse constraints for a proposed amount and
// returns a refusal naming the first violated one, or nil.
func (p TeamPurse) CanBid(amount int64) *Error {
	if p.AvailableSlots <= 0 {
		return refusal(CodeNoOpenSlot, "team has no open squad slot")
	}
	if amount > p.EffectivePurse {
		return refusal(CodeInsufficientPurse,
			"bid of %d exceeds effective purse %d", amount, p.EffectivePurse)
	}
	if amount > p.MaxPossibleBid {
		return refusal(CodeReserveViolation,
			"bid of %d would break the %d reserve needed for remaining slots (max possible %d)",
			amount, p.ReserveNeeded, p.MaxPossibleBid)
	}
	return nil
}
