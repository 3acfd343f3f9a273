package engine

import (
	"context"

	"github.com/squadbid/squadbid/squadbid/database/models"
	"github.com/squadbid/squadbid/squadbid/database/repositories"
)

// TeamView is a team row joined with its computed purse picture.
type TeamView struct {
	*models.AuctionTeam
	Purse TeamPurse `json:"purse"`
}

// Snapshot is the full read model of one auction: everything a client
// needs to render the room and place a legal bid without further
// round trips.
type Snapshot struct {
	Auction       *models.Auction         `json:"auction"`
	Teams         []*TeamView             `json:"teams"`
	Players       []*models.AuctionPlayer `json:"players"`
	CurrentPlayer *models.AuctionPlayer   `json:"current_player,omitempty"`
	WinningBid    *models.Bid             `json:"winning_bid,omitempty"`
	BidTrail      []*models.Bid           `json:"bid_trail,omitempty"`
	NextBid       int64                   `json:"next_bid,omitempty"`
}

// SnapshotService assembles read models. It only reads committed
// state, so a snapshot taken mid-burst is internally consistent up to
// whole transitions.
type SnapshotService struct {
	auctions repositories.AuctionRepository
	teams    repositories.TeamRepository
	players  repositories.PlayerRepository
	bids     repositories.BidRepository
}

func NewSnapshotService(
	auctions repositories.AuctionRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	bids repositories.BidRepository,
) *SnapshotService {
	return &SnapshotService{
		auctions: auctions,
		teams:    teams,
		players:  players,
		bids:     bids,
	}
}

// Get builds the snapshot for one auction.
func (s *SnapshotService) Get(ctx context.Context, auctionID int64) (*Snapshot, error) {
	auction, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	players, err := s.players.ListByAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Auction: auction,
		Players: players,
		Teams:   make([]*TeamView, 0, len(teams)),
	}

	for _, p := range players {
		if p.CurrentPlayer {
			snap.CurrentPlayer = p
			break
		}
	}

	if snap.CurrentPlayer != nil {
		winning, err := s.bids.GetWinning(ctx, snap.CurrentPlayer.ID)
		if err != nil {
			return nil, err
		}
		trail, err := s.bids.ListByPlayer(ctx, snap.CurrentPlayer.ID)
		if err != nil {
			return nil, err
		}
		snap.WinningBid = winning
		snap.BidTrail = trail
		snap.NextBid = NextBid(auction, snap.CurrentPlayer, winning)
	}

	for _, t := range teams {
		var outstanding int64
		if snap.WinningBid != nil && snap.WinningBid.TeamID == t.ID {
			outstanding = snap.WinningBid.Amount
		}
		snap.Teams = append(snap.Teams, &TeamView{
			AuctionTeam: t,
			Purse:       ComputePurse(auction, t, outstanding),
		})
	}

	return snap, nil
}

// TeamPurseView returns the purse picture for one team, with the
// team's own pending winning bid on the current player folded back in.
func (s *SnapshotService) TeamPurseView(ctx context.Context, auctionID, teamID int64) (*TeamView, error) {
	auction, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var outstanding int64
	current, err := s.players.GetCurrent(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		winning, err := s.bids.GetWinning(ctx, current.ID)
		if err != nil {
			return nil, err
		}
		if winning != nil && winning.TeamID == teamID {
			outstanding = winning.Amount
		}
	}

	return &TeamView{
		AuctionTeam: team,
		Purse:       ComputePurse(auction, team, outstanding),
	}, nil
}
