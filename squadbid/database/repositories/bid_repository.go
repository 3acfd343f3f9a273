package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

// ErrWinningBidNotUnique is an integrity fault: more than one live
// winning bid was found for a single player. It indicates a logic or
// transaction bug and must abort the surrounding transaction.
var ErrWinningBidNotUnique = fmt.Errorf("integrity fault: multiple winning bids for one player")

type BidRepository interface {
	CreateWithTx(ctx context.Context, tx bun.Tx, bid *models.Bid) error
	// GetWinningForUpdate locks and returns the single live winning bid
	// for a player, nil when there is none.
	GetWinningForUpdate(ctx context.Context, tx bun.Tx, playerID int64) (*models.Bid, error)
	GetWinning(ctx context.Context, playerID int64) (*models.Bid, error)
	DemoteWinning(ctx context.Context, tx bun.Tx, playerID int64) error
	MarkUndone(ctx context.Context, tx bun.Tx, bidID int64) error
	// PromoteLatestLive flips the most recent non-undone bid for the
	// player back to winning, if one exists.
	PromoteLatestLive(ctx context.Context, tx bun.Tx, playerID int64) error
	// InvalidateForPlayer retires every bid on a player so bidding can
	// restart clean. Rows are kept; the flags do the forgetting.
	InvalidateForPlayer(ctx context.Context, tx bun.Tx, playerID int64) error
	ListByPlayer(ctx context.Context, playerID int64) ([]*models.Bid, error)
	ListWinningByAuction(ctx context.Context, auctionID int64) ([]*models.Bid, error)
}

type bidRepository struct {
	*BaseRepository
}

func NewBidRepository(db *bun.DB) BidRepository {
	return &bidRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *bidRepository) CreateWithTx(ctx context.Context, tx bun.Tx, bid *models.Bid) error {
	bid.CreatedAt = time.Now()

	_, err := tx.NewInsert().Model(bid).Exec(ctx)
	return r.HandleError("create", "bid", err)
}

func (r *bidRepository) GetWinningForUpdate(ctx context.Context, tx bun.Tx, playerID int64) (*models.Bid, error) {
	var bids []*models.Bid
	err := tx.NewSelect().
		Model(&bids).
		Where("player_id = ? AND is_winning_bid AND NOT is_undone", playerID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_winning_for_update", "bid", err)
	}
	return r.singleWinning(bids)
}

func (r *bidRepository) GetWinning(ctx context.Context, playerID int64) (*models.Bid, error) {
	var bids []*models.Bid
	err := r.GetDB().NewSelect().
		Model(&bids).
		Where("player_id = ? AND is_winning_bid AND NOT is_undone", playerID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_winning", "bid", err)
	}
	return r.singleWinning(bids)
}

func (r *bidRepository) singleWinning(bids []*models.Bid) (*models.Bid, error) {
	switch len(bids) {
	case 0:
		return nil, nil
	case 1:
		return bids[0], nil
	default:
		return nil, ErrWinningBidNotUnique
	}
}

func (r *bidRepository) DemoteWinning(ctx context.Context, tx bun.Tx, playerID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Bid)(nil)).
		Set("is_winning_bid = FALSE").
		Where("player_id = ? AND is_winning_bid", playerID).
		Exec(ctx)
	return r.HandleError("demote_winning", "bid", err)
}

func (r *bidRepository) MarkUndone(ctx context.Context, tx bun.Tx, bidID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Bid)(nil)).
		Set("is_undone = TRUE").
		Set("is_winning_bid = FALSE").
		Where("id = ?", bidID).
		Exec(ctx)
	return r.HandleErrorWithID("mark_undone", "bid", bidID, err)
}

func (r *bidRepository) PromoteLatestLive(ctx context.Context, tx bun.Tx, playerID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Bid)(nil)).
		Set("is_winning_bid = TRUE").
		Where("id = (?)", tx.NewSelect().
			Model((*models.Bid)(nil)).
			Column("id").
			Where("player_id = ? AND NOT is_undone", playerID).
			OrderExpr("placed_at DESC, id DESC").
			Limit(1)).
		Exec(ctx)
	return r.HandleError("promote_latest_live", "bid", err)
}

func (r *bidRepository) InvalidateForPlayer(ctx context.Context, tx bun.Tx, playerID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Bid)(nil)).
		Set("is_winning_bid = FALSE").
		Set("is_undone = TRUE").
		Where("player_id = ? AND NOT is_undone", playerID).
		Exec(ctx)
	return r.HandleError("invalidate_for_player", "bid", err)
}

func (r *bidRepository) ListByPlayer(ctx context.Context, playerID int64) ([]*models.Bid, error) {
	var bids []*models.Bid
	err := r.GetDB().NewSelect().
		Model(&bids).
		Where("player_id = ?", playerID).
		Order("placed_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_by_player", "bid", err)
	}
	return bids, nil
}

func (r *bidRepository) ListWinningByAuction(ctx context.Context, auctionID int64) ([]*models.Bid, error) {
	var bids []*models.Bid
	err := r.GetDB().NewSelect().
		Model(&bids).
		Where("auction_id = ? AND is_winning_bid AND NOT is_undone", auctionID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_winning_by_auction", "bid", err)
	}
	return bids, nil
}
