package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

type AuctionRepository interface {
	DB() *bun.DB
	Create(ctx context.Context, auction *models.Auction) error
	GetByID(ctx context.Context, id int64) (*models.Auction, error)
	GetByIDTx(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error)
	GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error)
	UpdateStatus(ctx context.Context, tx bun.Tx, id int64, status models.AuctionStatus) error
	MarkOrderFrozen(ctx context.Context, tx bun.Tx, id int64) error
}

type auctionRepository struct {
	*BaseRepository
}

func NewAuctionRepository(db *bun.DB) AuctionRepository {
	return &auctionRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *auctionRepository) DB() *bun.DB {
	return r.GetDB()
}

func (r *auctionRepository) Create(ctx context.Context, auction *models.Auction) error {
	auction.Status = models.AuctionStatusDraft
	auction.CreatedAt = time.Now()
	auction.UpdatedAt = time.Now()

	_, err := r.GetDB().NewInsert().Model(auction).Exec(ctx)
	return r.HandleError("create", "auction", err)
}

func (r *auctionRepository) GetByID(ctx context.Context, id int64) (*models.Auction, error) {
	auction := new(models.Auction)
	err := r.GetDB().NewSelect().
		Model(auction).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "auction", id, err)
	}
	return auction, nil
}

// GetByIDTx reads the auction inside the caller's transaction, so the
// status seen here is the one the commit will be serialized against.
// Unlike GetForUpdate it takes no row lock.
func (r *auctionRepository) GetByIDTx(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error) {
	auction := new(models.Auction)
	err := tx.NewSelect().
		Model(auction).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_tx", "auction", id, err)
	}
	return auction, nil
}

func (r *auctionRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error) {
	auction := new(models.Auction)
	err := tx.NewSelect().
		Model(auction).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_for_update", "auction", id, err)
	}
	return auction, nil
}

func (r *auctionRepository) UpdateStatus(ctx context.Context, tx bun.Tx, id int64, status models.AuctionStatus) error {
	_, err := tx.NewUpdate().
		Model((*models.Auction)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return r.HandleErrorWithID("update_status", "auction", id, err)
}

func (r *auctionRepository) MarkOrderFrozen(ctx context.Context, tx bun.Tx, id int64) error {
	_, err := tx.NewUpdate().
		Model((*models.Auction)(nil)).
		Set("order_frozen = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return r.HandleErrorWithID("mark_order_frozen", "auction", id, err)
}
