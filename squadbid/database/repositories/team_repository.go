package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/squadbid/squadbid/squadbid/database/models"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.AuctionTeam) error
	GetByID(ctx context.Context, id int64) (*models.AuctionTeam, error)
	GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionTeam, error)
	ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionTeam, error)
	CaptainIDs(ctx context.Context, auctionID int64) ([]string, error)
	// ApplySale moves price tokens from the team's purse and claims a
	// slot; a negative price reverts a sale. Both purse fields and the
	// slot count move in the same statement so they cannot drift apart.
	ApplySale(ctx context.Context, tx bun.Tx, teamID int64, price int64, slots int) error
}

type teamRepository struct {
	*BaseRepository
}

func NewTeamRepository(db *bun.DB) TeamRepository {
	return &teamRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *teamRepository) Create(ctx context.Context, team *models.AuctionTeam) error {
	team.TotalSpent = 0
	team.RemainingPurse = team.InitialPurse
	// The captain occupies a slot from the start.
	team.PlayersCount = 1
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	_, err := r.GetDB().NewInsert().Model(team).Exec(ctx)
	return r.HandleError("create", "auction_team", err)
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*models.AuctionTeam, error) {
	team := new(models.AuctionTeam)
	err := r.GetDB().NewSelect().
		Model(team).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "auction_team", id, err)
	}
	return team, nil
}

func (r *teamRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionTeam, error) {
	team := new(models.AuctionTeam)
	err := tx.NewSelect().
		Model(team).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_for_update", "auction_team", id, err)
	}
	return team, nil
}

func (r *teamRepository) ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionTeam, error) {
	var teams []*models.AuctionTeam
	err := r.GetDB().NewSelect().
		Model(&teams).
		Where("auction_id = ?", auctionID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list", "auction_team", err)
	}
	return teams, nil
}

func (r *teamRepository) CaptainIDs(ctx context.Context, auctionID int64) ([]string, error) {
	var ids []string
	err := r.GetDB().NewSelect().
		Model((*models.AuctionTeam)(nil)).
		Column("captain_id").
		Where("auction_id = ?", auctionID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, r.HandleError("captain_ids", "auction_team", err)
	}
	return ids, nil
}

func (r *teamRepository) ApplySale(ctx context.Context, tx bun.Tx, teamID int64, price int64, slots int) error {
	result, err := tx.NewUpdate().
		Model((*models.AuctionTeam)(nil)).
		Set("total_spent = total_spent + ?", price).
		Set("remaining_purse = remaining_purse - ?", price).
		Set("players_count = players_count + ?", slots).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", teamID).
		Where("remaining_purse - ? >= 0", price).
		Where("players_count + ? >= 0", slots).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("apply_sale", "auction_team", teamID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return r.HandleErrorWithID("apply_sale", "auction_team", teamID, err)
	}
	if rows == 0 {
		return fmt.Errorf("purse update rejected for team %d: would breach purse or slot bounds", teamID)
	}
	return nil
}
