package engine

import (
	"testing"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

func liveAuction() *models.Auction {
	a := fixedAuction(50)
	return a
}

func openPlayer() *models.AuctionPlayer {
	return &models.AuctionPlayer{
		ID:            7,
		AuctionID:     1,
		Status:        models.PlayerStatusAvailable,
		CurrentPlayer: true,
	}
}

func bidderTeam() *models.AuctionTeam {
	return &models.AuctionTeam{
		ID:              3,
		AuctionID:       1,
		RemainingPurse:  1000,
		PlayersCount:    1,
		RequiredPlayers: 5,
	}
}

func TestValidateBid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *models.Auction, tm *models.AuctionTeam, p *models.AuctionPlayer)
		winning  *models.Bid
		amount   int64
		wantCode Code
	}{
		{
			name:   "opening bid accepted",
			amount: 100,
		},
		{
			name:     "auction not live",
			mutate:   func(a *models.Auction, _ *models.AuctionTeam, _ *models.AuctionPlayer) { a.Status = models.AuctionStatusPaused },
			amount:   100,
			wantCode: CodeAuctionNotLive,
		},
		{
			name:     "player not on the block",
			mutate:   func(_ *models.Auction, _ *models.AuctionTeam, p *models.AuctionPlayer) { p.CurrentPlayer = false },
			amount:   100,
			wantCode: CodePlayerNotOpen,
		},
		{
			name:     "sold player refused",
			mutate:   func(_ *models.Auction, _ *models.AuctionTeam, p *models.AuctionPlayer) { p.Status = models.PlayerStatusSold },
			amount:   100,
			wantCode: CodePlayerNotOpen,
		},
		{
			name:     "partial increment refused with suggestion",
			winning:  &models.Bid{TeamID: 9, Amount: 100},
			amount:   120,
			wantCode: CodeInvalidIncrement,
		},
		{
			name:     "purse exceeded",
			winning:  &models.Bid{TeamID: 9, Amount: 1000},
			amount:   1050,
			wantCode: CodeInsufficientPurse,
		},
		{
			name:     "reserve breached",
			winning:  &models.Bid{TeamID: 9, Amount: 700},
			amount:   750,
			wantCode: CodeReserveViolation,
		},
		{
			name: "own winning bid folds back",
			mutate: func(_ *models.Auction, tm *models.AuctionTeam, _ *models.AuctionPlayer) {
				tm.RemainingPurse = 100
				tm.RequiredPlayers = 2
			},
			winning: &models.Bid{TeamID: 3, Amount: 650},
			amount:  700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, tm, p := liveAuction(), bidderTeam(), openPlayer()
			if tt.mutate != nil {
				tt.mutate(a, tm, p)
			}

			err := ValidateBid(a, tm, p, tt.winning, tt.amount)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateBid() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Code != tt.wantCode {
				t.Errorf("ValidateBid() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateBid_SuggestsNearestRung(t *testing.T) {
	a, tm, p := liveAuction(), bidderTeam(), openPlayer()
	winning := &models.Bid{TeamID: 9, Amount: 100}

	err := ValidateBid(a, tm, p, winning, 120)
	if err == nil || err.Code != CodeInvalidIncrement {
		t.Fatalf("ValidateBid() = %v, want INVALID_INCREMENT", err)
	}
	if err.Suggested != 150 {
		t.Errorf("Suggested = %d, want 150", err.Suggested)
	}
}

func TestCheckStale(t *testing.T) {
	a, p := liveAuction(), openPlayer()

	if e := CheckStale(a, p, nil, 100); e != nil {
		t.Errorf("CheckStale with no winning bid = %v, want nil", e)
	}

	winning := &models.Bid{TeamID: 9, Amount: 500}
	if e := CheckStale(a, p, winning, 550); e != nil {
		t.Errorf("CheckStale with higher amount = %v, want nil", e)
	}

	// Two captains race to 500; the loser's submission arrives after
	// the winner committed.
	e := CheckStale(a, p, winning, 500)
	if e == nil || e.Code != CodeBidOutdated {
		t.Fatalf("CheckStale(500 vs 500) = %v, want BID_OUTDATED", e)
	}
	if e.Current != 500 {
		t.Errorf("Current = %d, want 500", e.Current)
	}
	if e.NextRequired != 550 {
		t.Errorf("NextRequired = %d, want 550", e.NextRequired)
	}
}
