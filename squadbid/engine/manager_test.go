package engine

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/mock/gomock"

	"github.com/squadbid/squadbid/squadbid/database/models"
	"github.com/squadbid/squadbid/squadbid/database/repositories/mock"
)

// The manager opens real transactions on the repository's *bun.DB, but
// every query inside them goes through the mocked repositories, so the
// driver behind the test database only has to begin and commit.
type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type noopConn struct{}

func (noopConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (noopConn) Close() error                        { return nil }
func (noopConn) Begin() (driver.Tx, error)           { return noopTx{}, nil }

func (noopConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return noopTx{}, nil
}

type noopDriver struct{}

func (noopDriver) Open(string) (driver.Conn, error) { return noopConn{}, nil }

type noopConnector struct{}

func (noopConnector) Connect(context.Context) (driver.Conn, error) { return noopConn{}, nil }
func (noopConnector) Driver() driver.Driver                        { return noopDriver{} }

func testDB() *bun.DB {
	return bun.NewDB(sql.OpenDB(noopConnector{}), pgdialect.New())
}

type managerMocks struct {
	auctions *mock.MockAuctionRepository
	teams    *mock.MockTeamRepository
	players  *mock.MockPlayerRepository
	bids     *mock.MockBidRepository
}

func newTestManager(t *testing.T) (*Manager, managerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mm := managerMocks{
		auctions: mock.NewMockAuctionRepository(ctrl),
		teams:    mock.NewMockTeamRepository(ctrl),
		players:  mock.NewMockPlayerRepository(ctrl),
		bids:     mock.NewMockBidRepository(ctrl),
	}
	b := NewBroadcaster(discardLogger())
	m := NewManager(
		mm.auctions, mm.teams, mm.players, mm.bids,
		NewKeyedLocks(time.Second), b, NewTimer(b),
		NewLogNotifier(discardLogger()), discardLogger(),
	)
	return m, mm
}

func TestPlaceBid_PausedAuctionRefusedBeforeStaleCheck(t *testing.T) {
	m, mm := newTestManager(t)

	mm.auctions.EXPECT().DB().Return(testDB())
	mm.auctions.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.Auction{ID: 1, Status: models.AuctionStatusPaused}, nil)
	mm.players.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(7)).
		Return(&models.AuctionPlayer{
			ID: 7, AuctionID: 1,
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)

	// No team or bid-ledger expectations: the state gate must refuse
	// before the winning bid is even read, so a stale amount on a
	// paused auction names the state, not the race.
	_, err := m.PlaceBid(context.Background(), 1, 7, 3, 500)
	e := AsRefusal(err)
	if e == nil || e.Code != CodeAuctionNotLive {
		t.Fatalf("PlaceBid() on paused auction = %v, want %s", err, CodeAuctionNotLive)
	}
}

func TestSell_SettlesCurrentPlayerToWinningBidder(t *testing.T) {
	m, mm := newTestManager(t)

	mm.players.EXPECT().GetCurrent(gomock.Any(), int64(1)).
		Return(&models.AuctionPlayer{
			ID: 7, AuctionID: 1, PlayerID: "p7", PlayerName: "Mira",
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)
	mm.bids.EXPECT().GetWinning(gomock.Any(), int64(7)).
		Return(&models.Bid{ID: 21, AuctionID: 1, PlayerID: 7, TeamID: 3, Amount: 700, IsWinningBid: true}, nil)

	mm.auctions.EXPECT().DB().Return(testDB())
	mm.auctions.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.Auction{ID: 1, Status: models.AuctionStatusLive, MinBidAmount: 100}, nil)
	mm.players.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(7)).
		Return(&models.AuctionPlayer{
			ID: 7, AuctionID: 1, PlayerID: "p7", PlayerName: "Mira",
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)
	mm.teams.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(3)).
		Return(&models.AuctionTeam{
			ID: 3, AuctionID: 1, TeamName: "Thunder",
			RemainingPurse: 700, PlayersCount: 1, RequiredPlayers: 2,
		}, nil)
	mm.players.EXPECT().MarkSold(gomock.Any(), gomock.Any(), int64(7), int64(3), int64(700), gomock.Any())
	mm.teams.EXPECT().ApplySale(gomock.Any(), gomock.Any(), int64(3), int64(700), 1)

	player, err := m.Sell(context.Background(), 1, 7, 3, 700)
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	if player.Status != models.PlayerStatusSold || player.CurrentPlayer {
		t.Errorf("player after sale = status %s current %v, want sold and off the block",
			player.Status, player.CurrentPlayer)
	}
	if player.SoldTo == nil || *player.SoldTo != 3 || player.SoldPrice == nil || *player.SoldPrice != 700 {
		t.Errorf("sale fields = %v/%v, want team 3 at 700", player.SoldTo, player.SoldPrice)
	}
}

func TestSell_RefusesMismatchedSaleRequest(t *testing.T) {
	m, mm := newTestManager(t)

	mm.players.EXPECT().GetCurrent(gomock.Any(), int64(1)).
		Return(&models.AuctionPlayer{
			ID: 7, AuctionID: 1,
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)
	mm.bids.EXPECT().GetWinning(gomock.Any(), int64(7)).
		Return(&models.Bid{ID: 21, PlayerID: 7, TeamID: 3, Amount: 700, IsWinningBid: true}, nil)

	// A hammer falling on a stale view: the host still sees 650. No
	// transaction is opened and nothing settles.
	_, err := m.Sell(context.Background(), 1, 7, 3, 650)
	e := AsRefusal(err)
	if e == nil || e.Code != CodeBidOutdated {
		t.Fatalf("Sell() with stale price = %v, want %s", err, CodeBidOutdated)
	}
	if e.Current != 700 {
		t.Errorf("Current = %d, want the authoritative 700", e.Current)
	}
}

func TestSell_RefusesPlayerNotOnTheBlock(t *testing.T) {
	m, mm := newTestManager(t)

	mm.players.EXPECT().GetCurrent(gomock.Any(), int64(1)).
		Return(&models.AuctionPlayer{
			ID: 7, AuctionID: 1,
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)

	_, err := m.Sell(context.Background(), 1, 9, 3, 700)
	e := AsRefusal(err)
	if e == nil || e.Code != CodePlayerNotOpen {
		t.Fatalf("Sell() for off-block player = %v, want %s", err, CodePlayerNotOpen)
	}
}

func undoSellFixture() (*models.Auction, *models.AuctionPlayer, *models.AuctionTeam) {
	soldTo := int64(3)
	soldPrice := int64(700)
	soldAt := time.Now()
	auction := &models.Auction{ID: 1, Status: models.AuctionStatusLive}
	player := &models.AuctionPlayer{
		ID: 7, AuctionID: 1, PlayerID: "p7", PlayerName: "Mira",
		Status: models.PlayerStatusSold,
		SoldTo: &soldTo, SoldPrice: &soldPrice, SoldAt: &soldAt,
	}
	team := &models.AuctionTeam{ID: 3, AuctionID: 1, TeamName: "Thunder", CaptainID: "c1"}
	return auction, player, team
}

func TestUndoSell_RestoresTeamAndClearsBids(t *testing.T) {
	m, mm := newTestManager(t)
	auction, sold, team := undoSellFixture()

	mm.auctions.EXPECT().DB().Return(testDB())
	mm.auctions.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(auction, nil)
	mm.players.EXPECT().GetLatestSoldForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(sold, nil)
	mm.teams.EXPECT().CaptainIDs(gomock.Any(), int64(1)).Return([]string{"c1"}, nil)
	mm.teams.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(3)).Return(team, nil)

	// The exact inverse of the sale, plus a clean bid ledger so
	// bidding restarts from the starting bid.
	mm.teams.EXPECT().ApplySale(gomock.Any(), gomock.Any(), int64(3), int64(-700), -1)
	mm.players.EXPECT().RevertSold(gomock.Any(), gomock.Any(), int64(7))
	mm.bids.EXPECT().InvalidateForPlayer(gomock.Any(), gomock.Any(), int64(7))
	mm.players.EXPECT().GetCurrentForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(nil, nil)
	mm.players.EXPECT().SetCurrent(gomock.Any(), gomock.Any(), int64(1), int64(7))

	player, err := m.UndoSell(context.Background(), 1)
	if err != nil {
		t.Fatalf("UndoSell() error = %v", err)
	}
	if player.Status != models.PlayerStatusAvailable || !player.CurrentPlayer {
		t.Errorf("player after undo = status %s current %v, want available and back on the block",
			player.Status, player.CurrentPlayer)
	}
	if player.SoldTo != nil || player.SoldPrice != nil || player.SoldAt != nil {
		t.Errorf("sale fields not cleared: %v/%v/%v", player.SoldTo, player.SoldPrice, player.SoldAt)
	}
}

func TestUndoSell_DisplacedCurrentPlayerIsSkipped(t *testing.T) {
	m, mm := newTestManager(t)
	auction, sold, team := undoSellFixture()

	mm.auctions.EXPECT().DB().Return(testDB())
	mm.auctions.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(auction, nil)
	mm.players.EXPECT().GetLatestSoldForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(sold, nil)
	mm.teams.EXPECT().CaptainIDs(gomock.Any(), int64(1)).Return([]string{"c1"}, nil)
	mm.teams.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(3)).Return(team, nil)
	mm.teams.EXPECT().ApplySale(gomock.Any(), gomock.Any(), int64(3), int64(-700), -1)
	mm.players.EXPECT().RevertSold(gomock.Any(), gomock.Any(), int64(7))
	mm.bids.EXPECT().InvalidateForPlayer(gomock.Any(), gomock.Any(), int64(7))

	// Another player is on the block when the undo lands. It leaves
	// the block the same way navigation would take it off: skipped,
	// with its own bids invalidated.
	mm.players.EXPECT().GetCurrentForUpdate(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.AuctionPlayer{
			ID: 9, AuctionID: 1,
			Status: models.PlayerStatusAvailable, CurrentPlayer: true,
		}, nil)
	mm.bids.EXPECT().InvalidateForPlayer(gomock.Any(), gomock.Any(), int64(9))
	mm.players.EXPECT().SetStatus(gomock.Any(), gomock.Any(), int64(9), models.PlayerStatusSkipped)
	mm.players.EXPECT().ClearCurrent(gomock.Any(), gomock.Any(), int64(1))
	mm.players.EXPECT().SetCurrent(gomock.Any(), gomock.Any(), int64(1), int64(7))

	if _, err := m.UndoSell(context.Background(), 1); err != nil {
		t.Fatalf("UndoSell() error = %v", err)
	}
}

func TestUndoSell_RefusesCaptainSlot(t *testing.T) {
	m, mm := newTestManager(t)
	auction, sold, _ := undoSellFixture()
	sold.PlayerID = "c1"

	mm.auctions.EXPECT().DB().Return(testDB())
	mm.auctions.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(auction, nil)
	mm.players.EXPECT().GetLatestSoldForUpdate(gomock.Any(), gomock.Any(), int64(1)).Return(sold, nil)
	mm.teams.EXPECT().CaptainIDs(gomock.Any(), int64(1)).Return([]string{"c1"}, nil)

	_, err := m.UndoSell(context.Background(), 1)
	e := AsRefusal(err)
	if e == nil || e.Code != CodeCaptainNotUndoable {
		t.Fatalf("UndoSell() on captain slot = %v, want %s", err, CodeCaptainNotUndoable)
	}
}

func TestValidTransition(t *testing.T) {
	allowed := map[models.AuctionStatus][]models.AuctionStatus{
		models.AuctionStatusDraft:  {models.AuctionStatusLive, models.AuctionStatusCancelled},
		models.AuctionStatusLive:   {models.AuctionStatusPaused, models.AuctionStatusCompleted, models.AuctionStatusCancelled},
		models.AuctionStatusPaused: {models.AuctionStatusLive, models.AuctionStatusCompleted, models.AuctionStatusCancelled},
	}
	all := []models.AuctionStatus{
		models.AuctionStatusDraft,
		models.AuctionStatusLive,
		models.AuctionStatusPaused,
		models.AuctionStatusCompleted,
		models.AuctionStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := ValidTransition(from, to); got != want {
				t.Errorf("ValidTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestValidTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, from := range []models.AuctionStatus{models.AuctionStatusCompleted, models.AuctionStatusCancelled} {
		for _, to := range []models.AuctionStatus{models.AuctionStatusDraft, models.AuctionStatusLive, models.AuctionStatusPaused} {
			if ValidTransition(from, to) {
				t.Errorf("ValidTransition(%s, %s) = true, terminal states must not move", from, to)
			}
		}
	}
}
