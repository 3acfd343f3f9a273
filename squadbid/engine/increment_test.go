package engine

import (
	"testing"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

func rangedAuction() *models.Auction {
	return &models.Auction{
		ID:           1,
		Status:       models.AuctionStatusLive,
		MinBidAmount: 100,
		IncrementRanges: []models.IncrementRange{
			{UpTo: 200, Step: 20},
			{UpTo: 500, Step: 50},
			{UpTo: 0, Step: 100},
		},
	}
}

func fixedAuction(step int64) *models.Auction {
	return &models.Auction{
		ID:                 1,
		Status:             models.AuctionStatusLive,
		MinBidAmount:       100,
		UseFixedIncrements: true,
		MinIncrement:       step,
	}
}

func TestStartingBid(t *testing.T) {
	tests := []struct {
		name    string
		auction *models.Auction
		player  *models.AuctionPlayer
		want    int64
	}{
		{
			name:    "minimum bid when base price disabled",
			auction: &models.Auction{MinBidAmount: 100},
			player:  &models.AuctionPlayer{BasePrice: 250},
			want:    100,
		},
		{
			name:    "base price when enabled and higher",
			auction: &models.Auction{MinBidAmount: 100, UseBasePrice: true},
			player:  &models.AuctionPlayer{BasePrice: 250},
			want:    250,
		},
		{
			name:    "minimum bid when base price enabled but lower",
			auction: &models.Auction{MinBidAmount: 100, UseBasePrice: true},
			player:  &models.AuctionPlayer{BasePrice: 50},
			want:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartingBid(tt.auction, tt.player); got != tt.want {
				t.Errorf("StartingBid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepAt(t *testing.T) {
	a := rangedAuction()
	tests := []struct {
		amount int64
		want   int64
	}{
		{100, 20},
		{200, 20},
		{201, 50},
		{500, 50},
		{501, 100},
		{10000, 100},
	}

	for _, tt := range tests {
		if got := StepAt(a, tt.amount); got != tt.want {
			t.Errorf("StepAt(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestStepAt_FallsBackToDefaultRanges(t *testing.T) {
	a := &models.Auction{MinBidAmount: 100}
	if got := StepAt(a, 150); got != 20 {
		t.Errorf("StepAt(150) = %v, want 20 from default ladder", got)
	}
}

func TestNextBid(t *testing.T) {
	a := fixedAuction(50)
	p := &models.AuctionPlayer{}

	if got := NextBid(a, p, nil); got != 100 {
		t.Errorf("NextBid with no winning bid = %v, want 100", got)
	}

	winning := &models.Bid{Amount: 100}
	if got := NextBid(a, p, winning); got != 150 {
		t.Errorf("NextBid after 100 = %v, want 150", got)
	}
}

func TestLegalBid_Fixed(t *testing.T) {
	a := fixedAuction(50)
	p := &models.AuctionPlayer{}
	winning := &models.Bid{Amount: 100}

	tests := []struct {
		name        string
		amount      int64
		wantLegal   bool
		wantNearest int64
	}{
		{"exact next rung", 150, true, 150},
		{"jump ahead on ladder", 250, true, 250},
		{"partial increment rejected", 120, false, 150},
		{"off-ladder jump rejected", 175, false, 200},
		{"below next rung", 100, false, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legal, nearest := LegalBid(a, p, winning, tt.amount)
			if legal != tt.wantLegal || nearest != tt.wantNearest {
				t.Errorf("LegalBid(%d) = (%v, %v), want (%v, %v)",
					tt.amount, legal, nearest, tt.wantLegal, tt.wantNearest)
			}
		})
	}
}

func TestLegalBid_Ranged(t *testing.T) {
	a := rangedAuction()
	p := &models.AuctionPlayer{}

	tests := []struct {
		name        string
		winning     *models.Bid
		amount      int64
		wantLegal   bool
		wantNearest int64
	}{
		{"opening at minimum", nil, 100, true, 100},
		{"rung inside first band", nil, 160, true, 160},
		{"off rung inside first band", nil, 130, false, 140},
		{"band boundary reachable", nil, 200, true, 200},
		{"first rung past the boundary", nil, 220, true, 220},
		{"boundary gap rejected", nil, 210, false, 220},
		{"second band rung", nil, 270, true, 270},
		{"next rung after band two", &models.Bid{Amount: 500}, 550, true, 550},
		{"tail band rung", &models.Bid{Amount: 500}, 650, true, 650},
		{"tail band off rung", &models.Bid{Amount: 500}, 600, false, 650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legal, nearest := LegalBid(a, p, tt.winning, tt.amount)
			if legal != tt.wantLegal || nearest != tt.wantNearest {
				t.Errorf("LegalBid(%d) = (%v, %v), want (%v, %v)",
					tt.amount, legal, nearest, tt.wantLegal, tt.wantNearest)
			}
		})
	}
}
