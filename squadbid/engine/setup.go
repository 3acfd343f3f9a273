package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

// ErrValidation marks malformed setup input so the API layer can
// distinguish a bad request from an infrastructure fault.
var ErrValidation = errors.New("invalid input")

// CreateAuctionParams is the setup surface for a new auction. Zero
// values fall back to the configured defaults before validation.
type CreateAuctionParams struct {
	Name               string
	TimerSeconds       int
	TotalPurse         int64
	MinBidAmount       int64
	UseBasePrice       bool
	MinIncrement       int64
	UseFixedIncrements bool
	IncrementRanges    []models.IncrementRange
	PlayerOrderType    models.PlayerOrderType
}

// Defaults fills unset fields of auction params from configuration.
type Defaults struct {
	TimerSeconds       int
	TotalPurse         int64
	MinBidAmount       int64
	MinIncrement       int64
	UseBasePrice       bool
	UseFixedIncrements bool
}

func (p *CreateAuctionParams) applyDefaults(d Defaults) {
	if p.TimerSeconds == 0 {
		p.TimerSeconds = d.TimerSeconds
	}
	if p.TotalPurse == 0 {
		p.TotalPurse = d.TotalPurse
	}
	if p.MinBidAmount == 0 {
		p.MinBidAmount = d.MinBidAmount
	}
	if p.MinIncrement == 0 {
		p.MinIncrement = d.MinIncrement
	}
	if p.PlayerOrderType == "" {
		p.PlayerOrderType = models.OrderBasePriceDesc
	}
}

func (p *CreateAuctionParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: auction name is required", ErrValidation)
	}
	if p.TotalPurse <= 0 {
		return fmt.Errorf("%w: total purse must be positive", ErrValidation)
	}
	if p.MinBidAmount <= 0 {
		return fmt.Errorf("%w: minimum bid must be positive", ErrValidation)
	}
	if p.UseFixedIncrements && p.MinIncrement <= 0 {
		return fmt.Errorf("%w: fixed increment must be positive", ErrValidation)
	}
	switch p.PlayerOrderType {
	case models.OrderBasePriceDesc, models.OrderBasePriceAsc, models.OrderAlphabetical, models.OrderRandom:
	default:
		return fmt.Errorf("%w: unknown player order type %q", ErrValidation, p.PlayerOrderType)
	}
	return validateRanges(p.IncrementRanges)
}

// validateRanges requires strictly ascending bounded bands with
// positive steps, with at most one open-ended band and only in last
// position.
func validateRanges(ranges []models.IncrementRange) error {
	var prev int64
	for i, r := range ranges {
		if r.Step <= 0 {
			return fmt.Errorf("%w: increment range %d has non-positive step", ErrValidation, i)
		}
		if r.UpTo == 0 {
			if i != len(ranges)-1 {
				return fmt.Errorf("%w: open-ended increment range must come last", ErrValidation)
			}
			continue
		}
		if r.UpTo <= prev {
			return fmt.Errorf("%w: increment range bounds must ascend", ErrValidation)
		}
		prev = r.UpTo
	}
	return nil
}

// CreateAuction creates an auction in draft with the increment policy
// and purse settings locked in up front.
func (m *Manager) CreateAuction(ctx context.Context, params CreateAuctionParams, defaults Defaults) (*models.Auction, error) {
	params.applyDefaults(defaults)
	if err := params.validate(); err != nil {
		return nil, err
	}

	auction := &models.Auction{
		Name:               params.Name,
		TimerSeconds:       params.TimerSeconds,
		TotalPurse:         params.TotalPurse,
		MinBidAmount:       params.MinBidAmount,
		UseBasePrice:       params.UseBasePrice,
		MinIncrement:       params.MinIncrement,
		UseFixedIncrements: params.UseFixedIncrements,
		IncrementRanges:    params.IncrementRanges,
		PlayerOrderType:    params.PlayerOrderType,
	}
	if err := m.auctions.Create(ctx, auction); err != nil {
		return nil, err
	}

	m.log.Info("auction created",
		slog.Int64("auction_id", auction.ID),
		slog.String("name", auction.Name),
		slog.Int64("total_purse", auction.TotalPurse))
	return auction, nil
}

// RegisterTeam enrolls a captain with a full purse. Teams only join
// while the auction is still in draft.
func (m *Manager) RegisterTeam(ctx context.Context, auctionID int64, captainID, teamName string, requiredPlayers int) (*models.AuctionTeam, error) {
	if captainID == "" || teamName == "" {
		return nil, fmt.Errorf("%w: captain id and team name are required", ErrValidation)
	}
	if requiredPlayers < 1 {
		return nil, fmt.Errorf("%w: required players must be at least 1", ErrValidation)
	}

	auction, err := m.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction.Status != models.AuctionStatusDraft {
		return nil, refusal(CodeInvalidTransition, "teams can only join auction %d in draft, not %s", auctionID, auction.Status)
	}

	captains, err := m.teams.CaptainIDs(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	for _, c := range captains {
		if c == captainID {
			return nil, fmt.Errorf("%w: captain %s already has a team in auction %d", ErrValidation, captainID, auctionID)
		}
	}

	team := &models.AuctionTeam{
		AuctionID:       auctionID,
		CaptainID:       captainID,
		TeamName:        teamName,
		InitialPurse:    auction.TotalPurse,
		RequiredPlayers: requiredPlayers,
	}
	if err := m.teams.Create(ctx, team); err != nil {
		return nil, err
	}

	m.log.Info("team registered",
		slog.Int64("auction_id", auctionID),
		slog.Int64("team_id", team.ID),
		slog.String("captain_id", captainID),
		slog.String("team_name", teamName))

	m.broadcaster.Publish(auctionID, EventTeams, map[string]any{"team_id": team.ID})
	return team, nil
}

// PlayerEntry is one player to enter into an auction pool.
type PlayerEntry struct {
	PlayerID   string
	PlayerName string
	BasePrice  int64
}

// EnterPlayers adds players to the pool in entry order. Entry closes
// once the presentation order is frozen at go-live.
func (m *Manager) EnterPlayers(ctx context.Context, auctionID int64, entries []PlayerEntry) ([]*models.AuctionPlayer, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no players to enter", ErrValidation)
	}

	auction, err := m.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction.Status != models.AuctionStatusDraft || auction.OrderFrozen {
		return nil, refusal(CodeInvalidTransition, "player entry for auction %d is closed", auctionID)
	}

	existing, err := m.players.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.PlayerID] = struct{}{}
	}

	players := make([]*models.AuctionPlayer, 0, len(entries))
	for i, e := range entries {
		if e.PlayerID == "" || e.PlayerName == "" {
			return nil, fmt.Errorf("%w: entry %d missing player id or name", ErrValidation, i)
		}
		if e.BasePrice < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative base price", ErrValidation, i)
		}
		if _, dup := seen[e.PlayerID]; dup {
			return nil, fmt.Errorf("%w: player %s already entered", ErrValidation, e.PlayerID)
		}
		seen[e.PlayerID] = struct{}{}

		players = append(players, &models.AuctionPlayer{
			AuctionID:    auctionID,
			PlayerID:     e.PlayerID,
			PlayerName:   e.PlayerName,
			BasePrice:    e.BasePrice,
			DisplayOrder: len(existing) + i + 1,
		})
	}

	if err := m.players.CreateBatch(ctx, players); err != nil {
		return nil, err
	}

	m.log.Info("players entered",
		slog.Int64("auction_id", auctionID),
		slog.Int("count", len(players)))

	m.broadcaster.Publish(auctionID, EventPlayers, map[string]any{"entered": len(players)})
	return players, nil
}
