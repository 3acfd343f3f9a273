package engine

import (
	"github.com/squadbid/squadbid/squadbid/database/models"
)

// The increment policy is pure: everything here computes over the
// auction configuration and a reference amount, touching no state.

// StartingBid is the opening amount when a player has no bids yet.
func StartingBid(a *models.Auction, p *models.AuctionPlayer) int64 {
	if a.UseBasePrice && p.BasePrice > a.MinBidAmount {
		return p.BasePrice
	}
	return a.MinBidAmount
}

// StepAt returns the increment applied to a bid standing at amount.
func StepAt(a *models.Auction, amount int64) int64 {
	if a.UseFixedIncrements {
		return a.MinIncrement
	}

	ranges := a.IncrementRanges
	if len(ranges) == 0 {
		ranges = models.DefaultIncrementRanges
	}
	for _, r := range ranges {
		if r.UpTo > 0 && amount <= r.UpTo {
			return r.Step
		}
	}
	// Open-ended tail band.
	last := ranges[len(ranges)-1]
	return last.Step
}

// NextBid computes the next legal amount after the given winning bid,
// or the starting bid when winning is nil.
func NextBid(a *models.Auction, p *models.AuctionPlayer, winning *models.Bid) int64 {
	if winning == nil {
		return StartingBid(a, p)
	}
	return winning.Amount + StepAt(a, winning.Amount)
}

// bandEnd returns the upper bound of the band containing amount, or 0
// when the band is open-ended.
func bandEnd(a *models.Auction, amount int64) int64 {
	if a.UseFixedIncrements {
		return 0
	}
	ranges := a.IncrementRanges
	if len(ranges) == 0 {
		ranges = models.DefaultIncrementRanges
	}
	for _, r := range ranges {
		if r.UpTo > 0 && amount <= r.UpTo {
			return r.UpTo
		}
	}
	return 0
}

// LegalBid reports whether amount sits exactly on the bid ladder that
// starts at the reference computed by NextBid. When it does not, the
// second return value is the nearest legal amount at or above it; no
// partial increments are ever accepted.
func LegalBid(a *models.Auction, p *models.AuctionPlayer, winning *models.Bid, amount int64) (bool, int64) {
	cursor := NextBid(a, p, winning)
	if amount < cursor {
		return false, cursor
	}
	if amount == cursor {
		return true, amount
	}

	// Walk band by band. Within a band every rung is step apart, so
	// reachability is a modulus check; crossing into the next band
	// moves the cursor to the first rung past the boundary.
	for {
		step := StepAt(a, cursor)
		end := bandEnd(a, cursor)

		if end == 0 || amount <= end {
			if (amount-cursor)%step == 0 {
				return true, amount
			}
			k := (amount - cursor) / step
			return false, cursor + (k+1)*step
		}

		last := cursor + ((end-cursor)/step)*step
		next := last + StepAt(a, last)
		if amount < next {
			return false, next
		}
		cursor = next
	}
}
