package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

type PlayerRepository interface {
	CreateBatch(ctx context.Context, players []*models.AuctionPlayer) error
	GetByID(ctx context.Context, id int64) (*models.AuctionPlayer, error)
	GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionPlayer, error)
	ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionPlayer, error)
	GetCurrent(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error)
	GetCurrentForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error)
	// GetLatestSoldForUpdate returns the most recently sold player, or
	// nil when no sale exists to undo.
	GetLatestSoldForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error)
	ListNavigable(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) ([]*models.AuctionPlayer, error)
	CountSkipped(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) (int, error)
	ResetSkipped(ctx context.Context, tx bun.Tx, auctionID int64) error
	SetCurrent(ctx context.Context, tx bun.Tx, auctionID int64, playerID int64) error
	ClearCurrent(ctx context.Context, tx bun.Tx, auctionID int64) error
	SetStatus(ctx context.Context, tx bun.Tx, playerID int64, status models.PlayerStatus) error
	MarkSold(ctx context.Context, tx bun.Tx, playerID, teamID, price int64, at time.Time) error
	RevertSold(ctx context.Context, tx bun.Tx, playerID int64) error
	UpdateDisplayOrder(ctx context.Context, tx bun.Tx, playerID int64, order int) error
}

type playerRepository struct {
	*BaseRepository
}

func NewPlayerRepository(db *bun.DB) PlayerRepository {
	return &playerRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *playerRepository) CreateBatch(ctx context.Context, players []*models.AuctionPlayer) error {
	if len(players) == 0 {
		return nil
	}
	now := time.Now()
	for _, p := range players {
		p.Status = models.PlayerStatusAvailable
		p.CreatedAt = now
		p.UpdatedAt = now
	}

	_, err := r.GetDB().NewInsert().Model(&players).Exec(ctx)
	return r.HandleError("create_batch", "auction_player", err)
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*models.AuctionPlayer, error) {
	player := new(models.AuctionPlayer)
	err := r.GetDB().NewSelect().
		Model(player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "auction_player", id, err)
	}
	return player, nil
}

func (r *playerRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionPlayer, error) {
	player := new(models.AuctionPlayer)
	err := tx.NewSelect().
		Model(player).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_for_update", "auction_player", id, err)
	}
	return player, nil
}

func (r *playerRepository) ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionPlayer, error) {
	var players []*models.AuctionPlayer
	err := r.GetDB().NewSelect().
		Model(&players).
		Where("auction_id = ?", auctionID).
		Order("display_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "auction_player", err)
	}
	return players, nil
}

func (r *playerRepository) GetCurrent(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error) {
	player := new(models.AuctionPlayer)
	err := r.GetDB().NewSelect().
		Model(player).
		Where("auction_id = ? AND current_player", auctionID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.HandleError("get_current", "auction_player", err)
	}
	return player, nil
}

func (r *playerRepository) GetCurrentForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error) {
	player := new(models.AuctionPlayer)
	err := tx.NewSelect().
		Model(player).
		Where("auction_id = ? AND current_player", auctionID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.HandleError("get_current_for_update", "auction_player", err)
	}
	return player, nil
}

func (r *playerRepository) GetLatestSoldForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error) {
	player := new(models.AuctionPlayer)
	err := tx.NewSelect().
		Model(player).
		Where("auction_id = ? AND status = ?", auctionID, models.PlayerStatusSold).
		OrderExpr("sold_at DESC").
		Limit(1).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.HandleError("get_latest_sold", "auction_player", err)
	}
	return player, nil
}

func (r *playerRepository) ListNavigable(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) ([]*models.AuctionPlayer, error) {
	var players []*models.AuctionPlayer
	q := tx.NewSelect().
		Model(&players).
		Where("auction_id = ? AND status = ?", auctionID, models.PlayerStatusAvailable)
	if len(captainIDs) > 0 {
		q = q.Where("player_id NOT IN (?)", bun.In(captainIDs))
	}
	err := q.Order("display_order ASC").Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_navigable", "auction_player", err)
	}
	return players, nil
}

func (r *playerRepository) CountSkipped(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) (int, error) {
	q := tx.NewSelect().
		Model((*models.AuctionPlayer)(nil)).
		Where("auction_id = ? AND status = ?", auctionID, models.PlayerStatusSkipped)
	if len(captainIDs) > 0 {
		q = q.Where("player_id NOT IN (?)", bun.In(captainIDs))
	}
	count, err := q.Count(ctx)
	if err != nil {
		return 0, r.HandleError("count_skipped", "auction_player", err)
	}
	return count, nil
}

func (r *playerRepository) ResetSkipped(ctx context.Context, tx bun.Tx, auctionID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("status = ?", models.PlayerStatusAvailable).
		Set("updated_at = ?", time.Now()).
		Where("auction_id = ? AND status = ?", auctionID, models.PlayerStatusSkipped).
		Exec(ctx)
	return r.HandleError("reset_skipped", "auction_player", err)
}

func (r *playerRepository) SetCurrent(ctx context.Context, tx bun.Tx, auctionID int64, playerID int64) error {
	if err := r.ClearCurrent(ctx, tx, auctionID); err != nil {
		return err
	}
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("current_player = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return r.HandleErrorWithID("set_current", "auction_player", playerID, err)
}

func (r *playerRepository) ClearCurrent(ctx context.Context, tx bun.Tx, auctionID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("current_player = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("auction_id = ? AND current_player", auctionID).
		Exec(ctx)
	return r.HandleError("clear_current", "auction_player", err)
}

func (r *playerRepository) SetStatus(ctx context.Context, tx bun.Tx, playerID int64, status models.PlayerStatus) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return r.HandleErrorWithID("set_status", "auction_player", playerID, err)
}

func (r *playerRepository) MarkSold(ctx context.Context, tx bun.Tx, playerID, teamID, price int64, at time.Time) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("status = ?", models.PlayerStatusSold).
		Set("sold_to = ?", teamID).
		Set("sold_price = ?", price).
		Set("sold_at = ?", at).
		Set("current_player = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return r.HandleErrorWithID("mark_sold", "auction_player", playerID, err)
}

func (r *playerRepository) RevertSold(ctx context.Context, tx bun.Tx, playerID int64) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("status = ?", models.PlayerStatusAvailable).
		Set("sold_to = NULL").
		Set("sold_price = NULL").
		Set("sold_at = NULL").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return r.HandleErrorWithID("revert_sold", "auction_player", playerID, err)
}

func (r *playerRepository) UpdateDisplayOrder(ctx context.Context, tx bun.Tx, playerID int64, order int) error {
	_, err := tx.NewUpdate().
		Model((*models.AuctionPlayer)(nil)).
		Set("display_order = ?", order).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return r.HandleErrorWithID("update_display_order", "auction_player", playerID, err)
}
