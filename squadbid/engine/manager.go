package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/uptrace/bun"

	"github.com/squadbid/squadbid/squadbid/database/models"
	"github.com/squadbid/squadbid/squadbid/database/repositories"
)

// Manager is the auction state machine. Every mutating transition runs
// in a single serializable transaction under the per-player (and where
// a purse moves, per-team) critical section, so observers only ever see
// states from before or after a transition, never between.
type Manager struct {
	auctions repositories.AuctionRepository
	teams    repositories.TeamRepository
	players  repositories.PlayerRepository
	bids     repositories.BidRepository

	locks       *KeyedLocks
	broadcaster *Broadcaster
	timer       *Timer
	notifier    Notifier
	log         *slog.Logger
}

func NewManager(
	auctions repositories.AuctionRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	bids repositories.BidRepository,
	locks *KeyedLocks,
	broadcaster *Broadcaster,
	timer *Timer,
	notifier Notifier,
	log *slog.Logger,
) *Manager {
	return &Manager{
		auctions:    auctions,
		teams:       teams,
		players:     players,
		bids:        bids,
		locks:       locks,
		broadcaster: broadcaster,
		timer:       timer,
		notifier:    notifier,
		log:         log,
	}
}

// PlaceBid records a bid for a team on the current player. On success
// the new bid is the winning bid and the countdown restarts. A stale
// submission gets a BID_OUTDATED refusal carrying the authoritative
// winning amount and the next legal bid.
func (m *Manager) PlaceBid(ctx context.Context, auctionID, playerID, teamID, amount int64) (*models.Bid, error) {
	release, lockErr := m.locks.Acquire(ctx, PlayerKey(auctionID, playerID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetByIDTx(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}

	player, err := m.players.GetForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}
	if player.AuctionID != auctionID {
		return nil, refusal(CodePlayerNotOpen, "player %d does not belong to auction %d", playerID, auctionID)
	}
	if e := CheckOpen(auction, player); e != nil {
		return nil, e
	}

	team, err := m.teams.GetForUpdate(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}
	if team.AuctionID != auctionID {
		return nil, refusal(CodePlayerNotOpen, "team %d does not belong to auction %d", teamID, auctionID)
	}

	winning, err := m.bids.GetWinningForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}

	if e := CheckStale(auction, player, winning, amount); e != nil {
		return nil, e
	}
	if e := ValidateBid(auction, team, player, winning, amount); e != nil {
		return nil, e
	}

	if err := m.bids.DemoteWinning(ctx, tx, playerID); err != nil {
		return nil, err
	}

	bid := &models.Bid{
		AuctionID:    auctionID,
		PlayerID:     playerID,
		TeamID:       teamID,
		Amount:       amount,
		PlacedAt:     time.Now(),
		IsWinningBid: true,
	}
	if err := m.bids.CreateWithTx(ctx, tx, bid); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bid: %w", err)
	}

	m.log.Info("bid placed",
		slog.Int64("auction_id", auctionID),
		slog.Int64("player_id", playerID),
		slog.Int64("team_id", teamID),
		slog.Int64("amount", amount))

	m.broadcaster.Publish(auctionID, EventBids, map[string]any{
		"player_id": playerID,
		"team_id":   teamID,
		"amount":    amount,
	})
	m.timer.Start(auctionID, playerID, auction.TimerSeconds)

	return bid, nil
}

// UndoLastBid retires the winning bid on a player and promotes the
// previous live bid, if any, back to winning.
func (m *Manager) UndoLastBid(ctx context.Context, auctionID, playerID int64) error {
	release, lockErr := m.locks.Acquire(ctx, PlayerKey(auctionID, playerID))
	if lockErr != nil {
		return lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetByIDTx(ctx, tx, auctionID)
	if err != nil {
		return err
	}
	if !auction.IsLive() {
		return refusal(CodeAuctionNotLive, "auction %d is %s, not live", auctionID, auction.Status)
	}

	player, err := m.players.GetForUpdate(ctx, tx, playerID)
	if err != nil {
		return err
	}
	if player.Status == models.PlayerStatusSold {
		return refusal(CodePlayerNotOpen, "player %d is already sold; undo the sale first", playerID)
	}

	winning, err := m.bids.GetWinningForUpdate(ctx, tx, playerID)
	if err != nil {
		return err
	}
	if winning == nil {
		return refusal(CodeNoBidToUndo, "player %d has no bid to undo", playerID)
	}

	if err := m.bids.MarkUndone(ctx, tx, winning.ID); err != nil {
		return err
	}
	if err := m.bids.PromoteLatestLive(ctx, tx, playerID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bid undo: %w", err)
	}

	m.log.Info("bid undone",
		slog.Int64("auction_id", auctionID),
		slog.Int64("player_id", playerID),
		slog.Int64("bid_id", winning.ID),
		slog.Int64("amount", winning.Amount))

	m.broadcaster.Publish(auctionID, EventBids, map[string]any{
		"player_id": playerID,
		"undone":    true,
	})
	return nil
}

// Sell settles the current player to the winning bidder: the player is
// marked sold, the team's purse and slot count move, and the countdown
// stops. The caller states who it believes is being sold to whom at
// what price; a mismatch against the authoritative winning bid is
// refused, so a hammer falling on a stale view settles nothing. All of
// it commits or none of it does.
func (m *Manager) Sell(ctx context.Context, auctionID, playerID, teamID, price int64) (*models.AuctionPlayer, error) {
	current, err := m.players.GetCurrent(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, refusal(CodeNoEligiblePlayer, "auction %d has no player on the block", auctionID)
	}
	if current.ID != playerID {
		return nil, refusal(CodePlayerNotOpen, "player %d is not on the block", playerID)
	}

	release, lockErr := m.locks.Acquire(ctx, PlayerKey(auctionID, playerID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	// The player lock is held, so no new bid can land; the winning bid
	// read here is the one the transaction below will settle.
	winning, err := m.bids.GetWinning(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if winning == nil {
		return nil, refusal(CodeNoWinningBid, "player %d has no winning bid to settle", playerID)
	}
	if winning.TeamID != teamID || winning.Amount != price {
		e := refusal(CodeBidOutdated,
			"sale of player %d does not match the winning bid: team %d at %d",
			playerID, winning.TeamID, winning.Amount)
		e.Current = winning.Amount
		return nil, e
	}

	teamRelease, lockErr := m.locks.Acquire(ctx, TeamKey(auctionID, winning.TeamID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer teamRelease()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetByIDTx(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsLive() {
		return nil, refusal(CodeAuctionNotLive, "auction %d is %s, not live", auctionID, auction.Status)
	}

	player, err := m.players.GetForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}
	if !player.CurrentPlayer || player.Status != models.PlayerStatusAvailable {
		return nil, refusal(CodePlayerNotOpen, "player %d left the block before the hammer", playerID)
	}

	team, err := m.teams.GetForUpdate(ctx, tx, winning.TeamID)
	if err != nil {
		return nil, err
	}

	// Settlement re-check. The validator approved this amount when the
	// bid landed; if the purse can no longer cover it something moved
	// money outside a transition, which must abort loudly.
	if e := ComputePurse(auction, team, winning.Amount).CanBid(winning.Amount); e != nil {
		return nil, fmt.Errorf("integrity fault settling player %d for team %d: %s", player.ID, team.ID, e.Message)
	}

	now := time.Now()
	if err := m.players.MarkSold(ctx, tx, player.ID, team.ID, winning.Amount, now); err != nil {
		return nil, err
	}
	if err := m.teams.ApplySale(ctx, tx, team.ID, winning.Amount, 1); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	m.log.Info("player sold",
		slog.Int64("auction_id", auctionID),
		slog.Int64("player_id", player.ID),
		slog.Int64("team_id", team.ID),
		slog.Int64("price", winning.Amount))

	m.timer.Stop(auctionID)
	m.broadcaster.Publish(auctionID, EventPlayers, map[string]any{
		"player_id": player.ID,
		"sold_to":   team.ID,
		"price":     winning.Amount,
	})
	m.broadcaster.Publish(auctionID, EventTeams, map[string]any{"team_id": team.ID})
	m.notifier.PlayerSold(ctx, auctionID, player.PlayerName, team.TeamName, winning.Amount)

	player.Status = models.PlayerStatusSold
	player.SoldTo = &team.ID
	player.SoldPrice = &winning.Amount
	player.SoldAt = &now
	player.CurrentPlayer = false
	return player, nil
}

// UndoSell reverts the most recent sale in the auction: the tokens and
// the slot return to the buying team and the player comes back on the
// block as the current player. The bid trail is purged so bidding
// restarts from the starting bid.
func (m *Manager) UndoSell(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error) {
	release, lockErr := m.locks.Acquire(ctx, AuctionKey(auctionID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction.Status != models.AuctionStatusLive && auction.Status != models.AuctionStatusPaused {
		return nil, refusal(CodeInvalidTransition,
			"cannot undo a sale while auction %d is %s", auctionID, auction.Status)
	}

	player, err := m.players.GetLatestSoldForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, refusal(CodeNothingToUndo, "auction %d has no sale to undo", auctionID)
	}
	if player.SoldTo == nil || player.SoldPrice == nil {
		return nil, fmt.Errorf("integrity fault: player %d sold without sale fields", player.ID)
	}

	// Captains can never be sold, so a captain turning up as the latest
	// sale is a data-level anomaly that must fail loudly.
	captains, err := m.teams.CaptainIDs(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	for _, c := range captains {
		if c == player.PlayerID {
			return nil, refusal(CodeCaptainNotUndoable,
				"player %s holds a captain slot, which cannot be undone", player.PlayerID)
		}
	}

	// Same lock order as Sell: the team section is entered before the
	// team row is touched, so the two never hold each other's pieces.
	teamRelease, lockErr := m.locks.Acquire(ctx, TeamKey(auctionID, *player.SoldTo))
	if lockErr != nil {
		return nil, lockErr
	}
	defer teamRelease()

	team, err := m.teams.GetForUpdate(ctx, tx, *player.SoldTo)
	if err != nil {
		return nil, err
	}

	if err := m.teams.ApplySale(ctx, tx, team.ID, -*player.SoldPrice, -1); err != nil {
		return nil, err
	}
	price := *player.SoldPrice
	if err := m.players.RevertSold(ctx, tx, player.ID); err != nil {
		return nil, err
	}
	if err := m.bids.InvalidateForPlayer(ctx, tx, player.ID); err != nil {
		return nil, err
	}
	if err := m.leaveCurrent(ctx, tx, auctionID, player.ID); err != nil {
		return nil, err
	}
	if err := m.players.SetCurrent(ctx, tx, auctionID, player.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale undo: %w", err)
	}

	m.log.Info("sale undone",
		slog.Int64("auction_id", auctionID),
		slog.Int64("player_id", player.ID),
		slog.Int64("team_id", team.ID),
		slog.Int64("price", price))

	m.broadcaster.Publish(auctionID, EventPlayers, map[string]any{
		"player_id": player.ID,
		"unsold":    true,
	})
	m.broadcaster.Publish(auctionID, EventTeams, map[string]any{"team_id": team.ID})
	m.notifier.SaleUndone(ctx, auctionID, player.PlayerName, team.TeamName, price)
	m.timer.Start(auctionID, player.ID, auction.TimerSeconds)

	player.Status = models.PlayerStatusAvailable
	player.SoldTo = nil
	player.SoldPrice = nil
	player.SoldAt = nil
	player.CurrentPlayer = true
	return player, nil
}

// SetCurrentPlayer puts a specific available player on the block. A
// previous current player that was not sold is marked skipped and its
// bids are invalidated, so bidding on it restarts clean later.
func (m *Manager) SetCurrentPlayer(ctx context.Context, auctionID, playerID int64) (*models.AuctionPlayer, error) {
	release, lockErr := m.locks.Acquire(ctx, AuctionKey(auctionID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsLive() {
		return nil, refusal(CodeAuctionNotLive, "auction %d is %s, not live", auctionID, auction.Status)
	}

	player, err := m.players.GetForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}
	if player.AuctionID != auctionID {
		return nil, refusal(CodePlayerNotOpen, "player %d does not belong to auction %d", playerID, auctionID)
	}
	if player.Status == models.PlayerStatusSold {
		return nil, refusal(CodePlayerNotOpen, "player %d is already sold", playerID)
	}

	captains, err := m.teams.CaptainIDs(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	for _, c := range captains {
		if c == player.PlayerID {
			return nil, refusal(CodePlayerNotOpen, "player %s is a captain and cannot be auctioned", player.PlayerID)
		}
	}

	if err := m.leaveCurrent(ctx, tx, auctionID, playerID); err != nil {
		return nil, err
	}
	if player.Status == models.PlayerStatusSkipped {
		if err := m.players.SetStatus(ctx, tx, playerID, models.PlayerStatusAvailable); err != nil {
			return nil, err
		}
	}
	if err := m.players.SetCurrent(ctx, tx, auctionID, playerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit current player change: %w", err)
	}

	m.afterPresentation(auctionID, player, auction.TimerSeconds)
	player.Status = models.PlayerStatusAvailable
	player.CurrentPlayer = true
	return player, nil
}

// NextPlayer advances the block to the next eligible player in display
// order, wrapping to skipped players for a second pass when the list
// runs out.
func (m *Manager) NextPlayer(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error) {
	return m.navigate(ctx, auctionID, NextNavigable)
}

// PreviousPlayer moves the block backwards in display order.
func (m *Manager) PreviousPlayer(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error) {
	return m.navigate(ctx, auctionID, PrevNavigable)
}

func (m *Manager) navigate(
	ctx context.Context,
	auctionID int64,
	pick func([]*models.AuctionPlayer, *models.AuctionPlayer) *models.AuctionPlayer,
) (*models.AuctionPlayer, error) {
	release, lockErr := m.locks.Acquire(ctx, AuctionKey(auctionID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	if !auction.IsLive() {
		return nil, refusal(CodeAuctionNotLive, "auction %d is %s, not live", auctionID, auction.Status)
	}

	current, err := m.players.GetCurrentForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}

	captains, err := m.teams.CaptainIDs(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	if err := m.leaveCurrent(ctx, tx, auctionID, 0); err != nil {
		return nil, err
	}

	candidates, err := m.players.ListNavigable(ctx, tx, auctionID, captains)
	if err != nil {
		return nil, err
	}
	next := pick(candidates, current)

	if next == nil {
		// First pass exhausted. Skipped players get a second chance
		// before the auction has truly nobody left to present.
		skipped, err := m.players.CountSkipped(ctx, tx, auctionID, captains)
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			if err := m.players.ResetSkipped(ctx, tx, auctionID); err != nil {
				return nil, err
			}
			candidates, err = m.players.ListNavigable(ctx, tx, auctionID, captains)
			if err != nil {
				return nil, err
			}
			next = pick(candidates, current)
		}
	}

	if next == nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit navigation: %w", err)
		}
		m.timer.Stop(auctionID)
		m.broadcaster.Publish(auctionID, EventPlayers, nil)
		return nil, refusal(CodeNoEligiblePlayer, "auction %d has no player left to present", auctionID)
	}

	if err := m.players.SetCurrent(ctx, tx, auctionID, next.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit navigation: %w", err)
	}

	m.afterPresentation(auctionID, next, auction.TimerSeconds)
	next.CurrentPlayer = true
	return next, nil
}

// leaveCurrent takes the current player off the block. An unsold
// current player is marked skipped and its bid trail is invalidated so
// a later presentation starts from a clean ladder. keepID exempts a
// player about to be re-presented.
func (m *Manager) leaveCurrent(ctx context.Context, tx bun.Tx, auctionID, keepID int64) error {
	current, err := m.players.GetCurrentForUpdate(ctx, tx, auctionID)
	if err != nil {
		return err
	}
	if current == nil || current.ID == keepID {
		return nil
	}

	if current.Status == models.PlayerStatusAvailable {
		if err := m.bids.InvalidateForPlayer(ctx, tx, current.ID); err != nil {
			return err
		}
		if err := m.players.SetStatus(ctx, tx, current.ID, models.PlayerStatusSkipped); err != nil {
			return err
		}
	}
	return m.players.ClearCurrent(ctx, tx, auctionID)
}

func (m *Manager) afterPresentation(auctionID int64, p *models.AuctionPlayer, timerSeconds int) {
	m.log.Info("player presented",
		slog.Int64("auction_id", auctionID),
		slog.Int64("player_id", p.ID),
		slog.String("player_name", p.PlayerName))

	m.broadcaster.Publish(auctionID, EventPlayers, map[string]any{
		"player_id": p.ID,
		"current":   true,
	})
	m.timer.Start(auctionID, p.ID, timerSeconds)
}

// TransitionStatus moves the auction through its lifecycle. Going live
// from draft freezes the presentation order; any terminal transition
// stops the countdown and clears the block.
func (m *Manager) TransitionStatus(ctx context.Context, auctionID int64, to models.AuctionStatus) (*models.Auction, error) {
	release, lockErr := m.locks.Acquire(ctx, AuctionKey(auctionID))
	if lockErr != nil {
		return nil, lockErr
	}
	defer release()

	tx, err := m.auctions.DB().BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auction, err := m.auctions.GetForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, err
	}
	from := auction.Status

	if !ValidTransition(from, to) {
		return nil, refusal(CodeInvalidTransition, "auction %d cannot go from %s to %s", auctionID, from, to)
	}

	if from == models.AuctionStatusDraft && to == models.AuctionStatusLive && !auction.OrderFrozen {
		if err := m.freezeOrder(ctx, tx, auction); err != nil {
			return nil, err
		}
	}

	if to == models.AuctionStatusCompleted || to == models.AuctionStatusCancelled {
		if err := m.players.ClearCurrent(ctx, tx, auctionID); err != nil {
			return nil, err
		}
	}

	if err := m.auctions.UpdateStatus(ctx, tx, auctionID, to); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	m.log.Info("auction status changed",
		slog.Int64("auction_id", auctionID),
		slog.String("from", string(from)),
		slog.String("to", string(to)))

	if to != models.AuctionStatusLive {
		m.timer.Stop(auctionID)
	}
	m.broadcaster.Publish(auctionID, EventAuction, map[string]any{"status": string(to)})
	m.notifier.AuctionStatusChanged(ctx, auctionID, string(from), string(to))

	auction.Status = to
	return auction, nil
}

// ValidTransition is the lifecycle table: draft goes live or cancelled,
// live and paused trade places and both can complete or cancel, the
// terminal states go nowhere.
func ValidTransition(from, to models.AuctionStatus) bool {
	switch from {
	case models.AuctionStatusDraft:
		return to == models.AuctionStatusLive || to == models.AuctionStatusCancelled
	case models.AuctionStatusLive:
		return to == models.AuctionStatusPaused ||
			to == models.AuctionStatusCompleted ||
			to == models.AuctionStatusCancelled
	case models.AuctionStatusPaused:
		return to == models.AuctionStatusLive ||
			to == models.AuctionStatusCompleted ||
			to == models.AuctionStatusCancelled
	default:
		return false
	}
}

// freezeOrder assigns display_order once, at the draft to live
// transition. Random order is drawn here and persisted, so reconnecting
// clients and restarts all see the same permutation.
func (m *Manager) freezeOrder(ctx context.Context, tx bun.Tx, auction *models.Auction) error {
	players, err := m.players.ListByAuction(ctx, auction.ID)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ordered := OrderPlayers(auction.PlayerOrderType, players, rng)

	for i, p := range ordered {
		if err := m.players.UpdateDisplayOrder(ctx, tx, p.ID, i+1); err != nil {
			return err
		}
	}
	if err := m.auctions.MarkOrderFrozen(ctx, tx, auction.ID); err != nil {
		return err
	}

	m.log.Info("player order frozen",
		slog.Int64("auction_id", auction.ID),
		slog.String("order_type", string(auction.PlayerOrderType)),
		slog.Int("players", len(ordered)))
	return nil
}
