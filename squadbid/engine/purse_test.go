package engine

import (
	"testing"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

func TestComputePurse(t *testing.T) {
	a := &models.Auction{MinBidAmount: 100}

	tests := []struct {
		name        string
		team        *models.AuctionTeam
		outstanding int64
		want        TeamPurse
	}{
		{
			name: "fresh team reserves for remaining slots",
			team: &models.AuctionTeam{
				RemainingPurse:  1000,
				PlayersCount:    1,
				RequiredPlayers: 5,
			},
			want: TeamPurse{
				FilledSlots:    1,
				AvailableSlots: 4,
				ReserveNeeded:  300,
				EffectivePurse: 1000,
				MaxPossibleBid: 700,
			},
		},
		{
			name: "last slot needs no reserve",
			team: &models.AuctionTeam{
				RemainingPurse:  400,
				PlayersCount:    4,
				RequiredPlayers: 5,
			},
			want: TeamPurse{
				FilledSlots:    4,
				AvailableSlots: 1,
				ReserveNeeded:  0,
				EffectivePurse: 400,
				MaxPossibleBid: 400,
			},
		},
		{
			name: "own pending bid folds back into the purse",
			team: &models.AuctionTeam{
				RemainingPurse:  500,
				PlayersCount:    3,
				RequiredPlayers: 5,
			},
			outstanding: 200,
			want: TeamPurse{
				FilledSlots:    3,
				AvailableSlots: 2,
				ReserveNeeded:  100,
				EffectivePurse: 700,
				MaxPossibleBid: 600,
			},
		},
		{
			name: "full squad has no slots",
			team: &models.AuctionTeam{
				RemainingPurse:  100,
				PlayersCount:    5,
				RequiredPlayers: 5,
			},
			want: TeamPurse{
				FilledSlots:    5,
				AvailableSlots: 0,
				ReserveNeeded:  0,
				EffectivePurse: 100,
				MaxPossibleBid: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePurse(a, tt.team, tt.outstanding); got != tt.want {
				t.Errorf("ComputePurse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTeamPurse_CanBid(t *testing.T) {
	tests := []struct {
		name     string
		purse    TeamPurse
		amount   int64
		wantCode Code
	}{
		{
			name:   "within max possible",
			purse:  TeamPurse{AvailableSlots: 4, ReserveNeeded: 300, EffectivePurse: 1000, MaxPossibleBid: 700},
			amount: 700,
		},
		{
			name:     "no open slot",
			purse:    TeamPurse{AvailableSlots: 0, EffectivePurse: 1000, MaxPossibleBid: 1000},
			amount:   100,
			wantCode: CodeNoOpenSlot,
		},
		{
			name:     "exceeds effective purse",
			purse:    TeamPurse{AvailableSlots: 4, EffectivePurse: 1000, MaxPossibleBid: 700},
			amount:   1100,
			wantCode: CodeInsufficientPurse,
		},
		{
			name:     "breaks the reserve",
			purse:    TeamPurse{AvailableSlots: 4, ReserveNeeded: 300, EffectivePurse: 1000, MaxPossibleBid: 700},
			amount:   750,
			wantCode: CodeReserveViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.purse.CanBid(tt.amount)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("CanBid(%d) = %v, want nil", tt.amount, err)
				}
				return
			}
			if err == nil || err.Code != tt.wantCode {
				t.Errorf("CanBid(%d) = %v, want code %s", tt.amount, err, tt.wantCode)
			}
		})
	}
}
