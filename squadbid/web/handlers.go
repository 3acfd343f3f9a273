package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/squadbid/squadbid/squadbid/database/models"
	"github.com/squadbid/squadbid/squadbid/database/repositories"
	"github.com/squadbid/squadbid/squadbid/engine"
	"github.com/squadbid/squadbid/squadbid/services"
)

// Handlers binds the auction engine to HTTP.
type Handlers struct {
	manager   *engine.Manager
	snapshots *engine.SnapshotService
	teams     repositories.TeamRepository
	profiles  services.ProfileLookup
	defaults  engine.Defaults
}

func NewHandlers(
	manager *engine.Manager,
	snapshots *engine.SnapshotService,
	teams repositories.TeamRepository,
	profiles services.ProfileLookup,
	defaults engine.Defaults,
) *Handlers {
	return &Handlers{
		manager:   manager,
		snapshots: snapshots,
		teams:     teams,
		profiles:  profiles,
		defaults:  defaults,
	}
}

type createAuctionRequest struct {
	Name               string                  `json:"name"`
	TimerSeconds       int                     `json:"timer_seconds"`
	TotalPurse         int64                   `json:"total_purse"`
	MinBidAmount       int64                   `json:"min_bid_amount"`
	UseBasePrice       bool                    `json:"use_base_price"`
	MinIncrement       int64                   `json:"min_increment"`
	UseFixedIncrements bool                    `json:"use_fixed_increments"`
	IncrementRanges    []models.IncrementRange `json:"increment_ranges"`
	PlayerOrderType    models.PlayerOrderType  `json:"player_order_type"`
}

func (h *Handlers) CreateAuction(c *fiber.Ctx) error {
	var req createAuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	auction, err := h.manager.CreateAuction(c.Context(), engine.CreateAuctionParams{
		Name:               req.Name,
		TimerSeconds:       req.TimerSeconds,
		TotalPurse:         req.TotalPurse,
		MinBidAmount:       req.MinBidAmount,
		UseBasePrice:       req.UseBasePrice,
		MinIncrement:       req.MinIncrement,
		UseFixedIncrements: req.UseFixedIncrements,
		IncrementRanges:    req.IncrementRanges,
		PlayerOrderType:    req.PlayerOrderType,
	}, h.defaults)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendCreated(c, auction, "auction created")
}

func (h *Handlers) GetSnapshot(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	snap, err := h.snapshots.Get(c.Context(), auctionID)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, snap, "")
}

type registerTeamRequest struct {
	CaptainID       string `json:"captain_id"`
	TeamName        string `json:"team_name"`
	RequiredPlayers int    `json:"required_players"`
}

func (h *Handlers) RegisterTeam(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req registerTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	team, err := h.manager.RegisterTeam(c.Context(), auctionID, req.CaptainID, req.TeamName, req.RequiredPlayers)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendCreated(c, team, "team registered")
}

type enterPlayersRequest struct {
	Players []struct {
		PlayerID   string `json:"player_id"`
		PlayerName string `json:"player_name"`
		BasePrice  int64  `json:"base_price"`
	} `json:"players"`
}

func (h *Handlers) EnterPlayers(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req enterPlayersRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	entries := make([]engine.PlayerEntry, 0, len(req.Players))
	for _, p := range req.Players {
		name := p.PlayerName
		if name == "" {
			// Fall back to the directory for the display name.
			if profile, perr := h.profiles.Lookup(c.Context(), p.PlayerID); perr == nil {
				name = profile.Name
			}
		}
		entries = append(entries, engine.PlayerEntry{
			PlayerID:   p.PlayerID,
			PlayerName: name,
			BasePrice:  p.BasePrice,
		})
	}

	players, err := h.manager.EnterPlayers(c.Context(), auctionID, entries)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendCreated(c, players, "players entered")
}

type placeBidRequest struct {
	PlayerID int64 `json:"player_id"`
	TeamID   int64 `json:"team_id"`
	Amount   int64 `json:"amount"`
}

func (h *Handlers) PlaceBid(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req placeBidRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	// Bids come from the team's captain or from the controller desk on
	// the captain's behalf.
	caller := Caller(c)
	if !caller.IsController {
		team, err := h.teams.GetByID(c.Context(), req.TeamID)
		if err != nil {
			return SendEngineError(c, err)
		}
		if caller.CaptainID == "" || caller.CaptainID != team.CaptainID {
			return SendForbidden(c, "only the team captain may bid for this team")
		}
	}

	bid, err := h.manager.PlaceBid(c.Context(), auctionID, req.PlayerID, req.TeamID, req.Amount)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendCreated(c, bid, "bid placed")
}

func (h *Handlers) UndoLastBid(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}
	playerID, err := c.ParamsInt("playerID")
	if err != nil {
		return SendBadRequest(c, "invalid player id")
	}

	if err := h.manager.UndoLastBid(c.Context(), auctionID, int64(playerID)); err != nil {
		return SendEngineError(c, err)
	}
	return SendNoContent(c)
}

type sellRequest struct {
	PlayerID  int64 `json:"player_id"`
	TeamID    int64 `json:"team_id"`
	SoldPrice int64 `json:"sold_price"`
}

func (h *Handlers) Sell(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req sellRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	player, err := h.manager.Sell(c.Context(), auctionID, req.PlayerID, req.TeamID, req.SoldPrice)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, player, "player sold")
}

func (h *Handlers) UndoSell(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	player, err := h.manager.UndoSell(c.Context(), auctionID)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, player, "sale undone")
}

type setCurrentPlayerRequest struct {
	PlayerID int64 `json:"player_id"`
}

func (h *Handlers) SetCurrentPlayer(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req setCurrentPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	player, err := h.manager.SetCurrentPlayer(c.Context(), auctionID, req.PlayerID)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, player, "player presented")
}

func (h *Handlers) NextPlayer(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	player, err := h.manager.NextPlayer(c.Context(), auctionID)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, player, "player presented")
}

func (h *Handlers) PreviousPlayer(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	player, err := h.manager.PreviousPlayer(c.Context(), auctionID)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, player, "player presented")
}

type transitionRequest struct {
	Status models.AuctionStatus `json:"status"`
}

func (h *Handlers) TransitionStatus(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return SendBadRequest(c, "invalid request body")
	}

	auction, err := h.manager.TransitionStatus(c.Context(), auctionID, req.Status)
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, auction, "status changed")
}

func (h *Handlers) TeamPurse(c *fiber.Ctx) error {
	auctionID, err := auctionIDParam(c)
	if err != nil {
		return SendBadRequest(c, "invalid auction id")
	}
	teamID, err := c.ParamsInt("teamID")
	if err != nil {
		return SendBadRequest(c, "invalid team id")
	}

	view, err := h.snapshots.TeamPurseView(c.Context(), auctionID, int64(teamID))
	if err != nil {
		return SendEngineError(c, err)
	}
	return SendSuccess(c, view, "")
}

func auctionIDParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}
