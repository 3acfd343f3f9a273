package engine

import (
	"errors"
	"testing"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []models.IncrementRange
		wantErr bool
	}{
		{"empty is fine", nil, false},
		{"ascending with open tail", []models.IncrementRange{{UpTo: 200, Step: 20}, {UpTo: 500, Step: 50}, {UpTo: 0, Step: 100}}, false},
		{"bounded only", []models.IncrementRange{{UpTo: 200, Step: 20}}, false},
		{"zero step", []models.IncrementRange{{UpTo: 200, Step: 0}}, true},
		{"non-ascending bounds", []models.IncrementRange{{UpTo: 500, Step: 20}, {UpTo: 200, Step: 50}}, true},
		{"open band not last", []models.IncrementRange{{UpTo: 0, Step: 100}, {UpTo: 200, Step: 20}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRanges(tt.ranges)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRanges() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error %v does not wrap ErrValidation", err)
			}
		})
	}
}

func TestCreateAuctionParams_Validate(t *testing.T) {
	defaults := Defaults{TimerSeconds: 30, TotalPurse: 1000, MinBidAmount: 100, MinIncrement: 50}

	tests := []struct {
		name    string
		params  CreateAuctionParams
		wantErr bool
	}{
		{"defaults fill the gaps", CreateAuctionParams{Name: "season 4"}, false},
		{"missing name", CreateAuctionParams{}, true},
		{"negative purse", CreateAuctionParams{Name: "x", TotalPurse: -1}, true},
		{"fixed increments need a step", CreateAuctionParams{Name: "x", UseFixedIncrements: true, MinIncrement: -5}, true},
		{"unknown order type", CreateAuctionParams{Name: "x", PlayerOrderType: "by_height"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.applyDefaults(defaults)
			err := tt.params.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	d := Defaults{TimerSeconds: 30, TotalPurse: 1000, MinBidAmount: 100, MinIncrement: 50}

	p := CreateAuctionParams{Name: "season 4", TotalPurse: 5000}
	p.applyDefaults(d)

	if p.TotalPurse != 5000 {
		t.Errorf("explicit TotalPurse overridden to %d", p.TotalPurse)
	}
	if p.TimerSeconds != 30 || p.MinBidAmount != 100 || p.MinIncrement != 50 {
		t.Errorf("defaults not applied: %+v", p)
	}
	if p.PlayerOrderType != models.OrderBasePriceDesc {
		t.Errorf("PlayerOrderType = %s, want base_price_desc default", p.PlayerOrderType)
	}
}
