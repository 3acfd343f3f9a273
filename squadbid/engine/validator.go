package engine

import (
	"github.com/squadbid/squadbid/squadbid/database/models"
)

// ValidateBid is the advisory gate for a proposed bid. It combines the
// increment policy and the purse ledger against a snapshot of auction
// state and has no side effects; the authoritative check happens again
// at commit time inside the state machine.
//
// winning is the current live winning bid for the player, nil when the
// player has none.
func ValidateBid(a *models.Auction, t *models.AuctionTeam, p *models.AuctionPlayer, winning *models.Bid, amount int64) *Error {
	if e := CheckOpen(a, p); e != nil {
		return e
	}

	if legal, nearest := LegalBid(a, p, winning, amount); !legal {
		e := refusal(CodeInvalidIncrement,
			"bid of %d is not on the increment ladder; nearest legal bid is %d", amount, nearest)
		e.Suggested = nearest
		return e
	}

	var outstanding int64
	if winning != nil && winning.TeamID == t.ID {
		outstanding = winning.Amount
	}
	if err := ComputePurse(a, t, outstanding).CanBid(amount); err != nil {
		return err
	}

	return nil
}

// CheckOpen gates a bid on auction and player state: the auction must
// be live and the player must be on the block. It runs before the
// staleness check, so a refusal on a paused auction names the state,
// not the race.
func CheckOpen(a *models.Auction, p *models.AuctionPlayer) *Error {
	if !a.IsLive() {
		return refusal(CodeAuctionNotLive, "auction %d is %s, not live", a.ID, a.Status)
	}
	if !p.CurrentPlayer || p.Status != models.PlayerStatusAvailable {
		return refusal(CodePlayerNotOpen, "player %d is not open for bidding", p.ID)
	}
	return nil
}

// CheckStale detects race losers at commit time: a submission computed
// against a reference the server has since moved past. The refusal
// carries the authoritative amount and the recomputed next legal bid
// so the client can resubmit without re-deriving policy.
func CheckStale(a *models.Auction, p *models.AuctionPlayer, winning *models.Bid, amount int64) *Error {
	if winning == nil || amount > winning.Amount {
		return nil
	}

	e := refusal(CodeBidOutdated,
		"bid of %d lost the race: winning bid is already %d", amount, winning.Amount)
	e.Current = winning.Amount
	e.NextRequired = NextBid(a, p, winning)
	return e
}
