package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"

	models "github.com/squadbid/squadbid/squadbid/database/models"
)

// MockAuctionRepository is a mock of AuctionRepository interface.
type MockAuctionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuctionRepositoryMockRecorder
	isgomock struct{}
}

// MockAuctionRepositoryMockRecorder is the mock recorder for MockAuctionRepository.
type MockAuctionRepositoryMockRecorder struct {
	mock *MockAuctionRepository
}

// NewMockAuctionRepository creates a new mock instance.
func NewMockAuctionRepository(ctrl *gomock.Controller) *MockAuctionRepository {
	mock := &MockAuctionRepository{ctrl: ctrl}
	mock.recorder = &MockAuctionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuctionRepository) EXPECT() *MockAuctionRepositoryMockRecorder {
	return m.recorder
}

// DB mocks base method.
func (m *MockAuctionRepository) DB() *bun.DB {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(*bun.DB)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockAuctionRepositoryMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockAuctionRepository)(nil).DB))
}

// Create mocks base method.
func (m *MockAuctionRepository) Create(ctx context.Context, auction *models.Auction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, auction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuctionRepositoryMockRecorder) Create(ctx, auction any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuctionRepository)(nil).Create), ctx, auction)
}

// GetByID mocks base method.
func (m *MockAuctionRepository) GetByID(ctx context.Context, id int64) (*models.Auction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Auction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAuctionRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAuctionRepository)(nil).GetByID), ctx, id)
}

// GetByIDTx mocks base method.
func (m *MockAuctionRepository) GetByIDTx(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDTx", ctx, tx, id)
	ret0, _ := ret[0].(*models.Auction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDTx indicates an expected call of GetByIDTx.
func (mr *MockAuctionRepositoryMockRecorder) GetByIDTx(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDTx", reflect.TypeOf((*MockAuctionRepository)(nil).GetByIDTx), ctx, tx, id)
}

// GetForUpdate mocks base method.
func (m *MockAuctionRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Auction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*models.Auction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockAuctionRepositoryMockRecorder) GetForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockAuctionRepository)(nil).GetForUpdate), ctx, tx, id)
}

// UpdateStatus mocks base method.
func (m *MockAuctionRepository) UpdateStatus(ctx context.Context, tx bun.Tx, id int64, status models.AuctionStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, tx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockAuctionRepositoryMockRecorder) UpdateStatus(ctx, tx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockAuctionRepository)(nil).UpdateStatus), ctx, tx, id, status)
}

// MarkOrderFrozen mocks base method.
func (m *MockAuctionRepository) MarkOrderFrozen(ctx context.Context, tx bun.Tx, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkOrderFrozen", ctx, tx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkOrderFrozen indicates an expected call of MarkOrderFrozen.
func (mr *MockAuctionRepositoryMockRecorder) MarkOrderFrozen(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkOrderFrozen", reflect.TypeOf((*MockAuctionRepository)(nil).MarkOrderFrozen), ctx, tx, id)
}

// MockTeamRepository is a mock of TeamRepository interface.
type MockTeamRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTeamRepositoryMockRecorder
	isgomock struct{}
}

// MockTeamRepositoryMockRecorder is the mock recorder for MockTeamRepository.
type MockTeamRepositoryMockRecorder struct {
	mock *MockTeamRepository
}

// NewMockTeamRepository creates a new mock instance.
func NewMockTeamRepository(ctrl *gomock.Controller) *MockTeamRepository {
	mock := &MockTeamRepository{ctrl: ctrl}
	mock.recorder = &MockTeamRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTeamRepository) EXPECT() *MockTeamRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTeamRepository) Create(ctx context.Context, team *models.AuctionTeam) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, team)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTeamRepositoryMockRecorder) Create(ctx, team any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTeamRepository)(nil).Create), ctx, team)
}

// GetByID mocks base method.
func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*models.AuctionTeam, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.AuctionTeam)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTeamRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTeamRepository)(nil).GetByID), ctx, id)
}

// GetForUpdate mocks base method.
func (m *MockTeamRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionTeam, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*models.AuctionTeam)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockTeamRepositoryMockRecorder) GetForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockTeamRepository)(nil).GetForUpdate), ctx, tx, id)
}

// ListByAuction mocks base method.
func (m *MockTeamRepository) ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionTeam, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByAuction", ctx, auctionID)
	ret0, _ := ret[0].([]*models.AuctionTeam)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByAuction indicates an expected call of ListByAuction.
func (mr *MockTeamRepositoryMockRecorder) ListByAuction(ctx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByAuction", reflect.TypeOf((*MockTeamRepository)(nil).ListByAuction), ctx, auctionID)
}

// CaptainIDs mocks base method.
func (m *MockTeamRepository) CaptainIDs(ctx context.Context, auctionID int64) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CaptainIDs", ctx, auctionID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CaptainIDs indicates an expected call of CaptainIDs.
func (mr *MockTeamRepositoryMockRecorder) CaptainIDs(ctx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CaptainIDs", reflect.TypeOf((*MockTeamRepository)(nil).CaptainIDs), ctx, auctionID)
}

// ApplySale mocks base method.
func (m *MockTeamRepository) ApplySale(ctx context.Context, tx bun.Tx, teamID, price int64, slots int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplySale", ctx, tx, teamID, price, slots)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplySale indicates an expected call of ApplySale.
func (mr *MockTeamRepositoryMockRecorder) ApplySale(ctx, tx, teamID, price, slots any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplySale", reflect.TypeOf((*MockTeamRepository)(nil).ApplySale), ctx, tx, teamID, price, slots)
}

// MockPlayerRepository is a mock of PlayerRepository interface.
type MockPlayerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlayerRepositoryMockRecorder
	isgomock struct{}
}

// MockPlayerRepositoryMockRecorder is the mock recorder for MockPlayerRepository.
type MockPlayerRepositoryMockRecorder struct {
	mock *MockPlayerRepository
}

// NewMockPlayerRepository creates a new mock instance.
func NewMockPlayerRepository(ctrl *gomock.Controller) *MockPlayerRepository {
	mock := &MockPlayerRepository{ctrl: ctrl}
	mock.recorder = &MockPlayerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlayerRepository) EXPECT() *MockPlayerRepositoryMockRecorder {
	return m.recorder
}

// CreateBatch mocks base method.
func (m *MockPlayerRepository) CreateBatch(ctx context.Context, players []*models.AuctionPlayer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", ctx, players)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockPlayerRepositoryMockRecorder) CreateBatch(ctx, players any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockPlayerRepository)(nil).CreateBatch), ctx, players)
}

// GetByID mocks base method.
func (m *MockPlayerRepository) GetByID(ctx context.Context, id int64) (*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPlayerRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByID), ctx, id)
}

// GetForUpdate mocks base method.
func (m *MockPlayerRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdate indicates an expected call of GetForUpdate.
func (mr *MockPlayerRepositoryMockRecorder) GetForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdate", reflect.TypeOf((*MockPlayerRepository)(nil).GetForUpdate), ctx, tx, id)
}

// ListByAuction mocks base method.
func (m *MockPlayerRepository) ListByAuction(ctx context.Context, auctionID int64) ([]*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByAuction", ctx, auctionID)
	ret0, _ := ret[0].([]*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByAuction indicates an expected call of ListByAuction.
func (mr *MockPlayerRepositoryMockRecorder) ListByAuction(ctx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByAuction", reflect.TypeOf((*MockPlayerRepository)(nil).ListByAuction), ctx, auctionID)
}

// GetCurrent mocks base method.
func (m *MockPlayerRepository) GetCurrent(ctx context.Context, auctionID int64) (*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrent", ctx, auctionID)
	ret0, _ := ret[0].(*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCurrent indicates an expected call of GetCurrent.
func (mr *MockPlayerRepositoryMockRecorder) GetCurrent(ctx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrent", reflect.TypeOf((*MockPlayerRepository)(nil).GetCurrent), ctx, auctionID)
}

// GetCurrentForUpdate mocks base method.
func (m *MockPlayerRepository) GetCurrentForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCurrentForUpdate", ctx, tx, auctionID)
	ret0, _ := ret[0].(*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCurrentForUpdate indicates an expected call of GetCurrentForUpdate.
func (mr *MockPlayerRepositoryMockRecorder) GetCurrentForUpdate(ctx, tx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCurrentForUpdate", reflect.TypeOf((*MockPlayerRepository)(nil).GetCurrentForUpdate), ctx, tx, auctionID)
}

// GetLatestSoldForUpdate mocks base method.
func (m *MockPlayerRepository) GetLatestSoldForUpdate(ctx context.Context, tx bun.Tx, auctionID int64) (*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLatestSoldForUpdate", ctx, tx, auctionID)
	ret0, _ := ret[0].(*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLatestSoldForUpdate indicates an expected call of GetLatestSoldForUpdate.
func (mr *MockPlayerRepositoryMockRecorder) GetLatestSoldForUpdate(ctx, tx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLatestSoldForUpdate", reflect.TypeOf((*MockPlayerRepository)(nil).GetLatestSoldForUpdate), ctx, tx, auctionID)
}

// ListNavigable mocks base method.
func (m *MockPlayerRepository) ListNavigable(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) ([]*models.AuctionPlayer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListNavigable", ctx, tx, auctionID, captainIDs)
	ret0, _ := ret[0].([]*models.AuctionPlayer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListNavigable indicates an expected call of ListNavigable.
func (mr *MockPlayerRepositoryMockRecorder) ListNavigable(ctx, tx, auctionID, captainIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListNavigable", reflect.TypeOf((*MockPlayerRepository)(nil).ListNavigable), ctx, tx, auctionID, captainIDs)
}

// CountSkipped mocks base method.
func (m *MockPlayerRepository) CountSkipped(ctx context.Context, tx bun.Tx, auctionID int64, captainIDs []string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountSkipped", ctx, tx, auctionID, captainIDs)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountSkipped indicates an expected call of CountSkipped.
func (mr *MockPlayerRepositoryMockRecorder) CountSkipped(ctx, tx, auctionID, captainIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountSkipped", reflect.TypeOf((*MockPlayerRepository)(nil).CountSkipped), ctx, tx, auctionID, captainIDs)
}

// ResetSkipped mocks base method.
func (m *MockPlayerRepository) ResetSkipped(ctx context.Context, tx bun.Tx, auctionID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetSkipped", ctx, tx, auctionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResetSkipped indicates an expected call of ResetSkipped.
func (mr *MockPlayerRepositoryMockRecorder) ResetSkipped(ctx, tx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetSkipped", reflect.TypeOf((*MockPlayerRepository)(nil).ResetSkipped), ctx, tx, auctionID)
}

// SetCurrent mocks base method.
func (m *MockPlayerRepository) SetCurrent(ctx context.Context, tx bun.Tx, auctionID, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCurrent", ctx, tx, auctionID, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCurrent indicates an expected call of SetCurrent.
func (mr *MockPlayerRepositoryMockRecorder) SetCurrent(ctx, tx, auctionID, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCurrent", reflect.TypeOf((*MockPlayerRepository)(nil).SetCurrent), ctx, tx, auctionID, playerID)
}

// ClearCurrent mocks base method.
func (m *MockPlayerRepository) ClearCurrent(ctx context.Context, tx bun.Tx, auctionID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearCurrent", ctx, tx, auctionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearCurrent indicates an expected call of ClearCurrent.
func (mr *MockPlayerRepositoryMockRecorder) ClearCurrent(ctx, tx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearCurrent", reflect.TypeOf((*MockPlayerRepository)(nil).ClearCurrent), ctx, tx, auctionID)
}

// SetStatus mocks base method.
func (m *MockPlayerRepository) SetStatus(ctx context.Context, tx bun.Tx, playerID int64, status models.PlayerStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStatus", ctx, tx, playerID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStatus indicates an expected call of SetStatus.
func (mr *MockPlayerRepositoryMockRecorder) SetStatus(ctx, tx, playerID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStatus", reflect.TypeOf((*MockPlayerRepository)(nil).SetStatus), ctx, tx, playerID, status)
}

// MarkSold mocks base method.
func (m *MockPlayerRepository) MarkSold(ctx context.Context, tx bun.Tx, playerID, teamID, price int64, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSold", ctx, tx, playerID, teamID, price, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkSold indicates an expected call of MarkSold.
func (mr *MockPlayerRepositoryMockRecorder) MarkSold(ctx, tx, playerID, teamID, price, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSold", reflect.TypeOf((*MockPlayerRepository)(nil).MarkSold), ctx, tx, playerID, teamID, price, at)
}

// RevertSold mocks base method.
func (m *MockPlayerRepository) RevertSold(ctx context.Context, tx bun.Tx, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevertSold", ctx, tx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevertSold indicates an expected call of RevertSold.
func (mr *MockPlayerRepositoryMockRecorder) RevertSold(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevertSold", reflect.TypeOf((*MockPlayerRepository)(nil).RevertSold), ctx, tx, playerID)
}

// UpdateDisplayOrder mocks base method.
func (m *MockPlayerRepository) UpdateDisplayOrder(ctx context.Context, tx bun.Tx, playerID int64, order int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDisplayOrder", ctx, tx, playerID, order)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateDisplayOrder indicates an expected call of UpdateDisplayOrder.
func (mr *MockPlayerRepositoryMockRecorder) UpdateDisplayOrder(ctx, tx, playerID, order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDisplayOrder", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateDisplayOrder), ctx, tx, playerID, order)
}

// MockBidRepository is a mock of BidRepository interface.
type MockBidRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBidRepositoryMockRecorder
	isgomock struct{}
}

// MockBidRepositoryMockRecorder is the mock recorder for MockBidRepository.
type MockBidRepositoryMockRecorder struct {
	mock *MockBidRepository
}

// NewMockBidRepository creates a new mock instance.
func NewMockBidRepository(ctrl *gomock.Controller) *MockBidRepository {
	mock := &MockBidRepository{ctrl: ctrl}
	mock.recorder = &MockBidRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBidRepository) EXPECT() *MockBidRepositoryMockRecorder {
	return m.recorder
}

// CreateWithTx mocks base method.
func (m *MockBidRepository) CreateWithTx(ctx context.Context, tx bun.Tx, bid *models.Bid) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateWithTx", ctx, tx, bid)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateWithTx indicates an expected call of CreateWithTx.
func (mr *MockBidRepositoryMockRecorder) CreateWithTx(ctx, tx, bid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateWithTx", reflect.TypeOf((*MockBidRepository)(nil).CreateWithTx), ctx, tx, bid)
}

// GetWinningForUpdate mocks base method.
func (m *MockBidRepository) GetWinningForUpdate(ctx context.Context, tx bun.Tx, playerID int64) (*models.Bid, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWinningForUpdate", ctx, tx, playerID)
	ret0, _ := ret[0].(*models.Bid)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetWinningForUpdate indicates an expected call of GetWinningForUpdate.
func (mr *MockBidRepositoryMockRecorder) GetWinningForUpdate(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWinningForUpdate", reflect.TypeOf((*MockBidRepository)(nil).GetWinningForUpdate), ctx, tx, playerID)
}

// GetWinning mocks base method.
func (m *MockBidRepository) GetWinning(ctx context.Context, playerID int64) (*models.Bid, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWinning", ctx, playerID)
	ret0, _ := ret[0].(*models.Bid)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetWinning indicates an expected call of GetWinning.
func (mr *MockBidRepositoryMockRecorder) GetWinning(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWinning", reflect.TypeOf((*MockBidRepository)(nil).GetWinning), ctx, playerID)
}

// DemoteWinning mocks base method.
func (m *MockBidRepository) DemoteWinning(ctx context.Context, tx bun.Tx, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DemoteWinning", ctx, tx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DemoteWinning indicates an expected call of DemoteWinning.
func (mr *MockBidRepositoryMockRecorder) DemoteWinning(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DemoteWinning", reflect.TypeOf((*MockBidRepository)(nil).DemoteWinning), ctx, tx, playerID)
}

// MarkUndone mocks base method.
func (m *MockBidRepository) MarkUndone(ctx context.Context, tx bun.Tx, bidID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkUndone", ctx, tx, bidID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkUndone indicates an expected call of MarkUndone.
func (mr *MockBidRepositoryMockRecorder) MarkUndone(ctx, tx, bidID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkUndone", reflect.TypeOf((*MockBidRepository)(nil).MarkUndone), ctx, tx, bidID)
}

// PromoteLatestLive mocks base method.
func (m *MockBidRepository) PromoteLatestLive(ctx context.Context, tx bun.Tx, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PromoteLatestLive", ctx, tx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// PromoteLatestLive indicates an expected call of PromoteLatestLive.
func (mr *MockBidRepositoryMockRecorder) PromoteLatestLive(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PromoteLatestLive", reflect.TypeOf((*MockBidRepository)(nil).PromoteLatestLive), ctx, tx, playerID)
}

// InvalidateForPlayer mocks base method.
func (m *MockBidRepository) InvalidateForPlayer(ctx context.Context, tx bun.Tx, playerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InvalidateForPlayer", ctx, tx, playerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// InvalidateForPlayer indicates an expected call of InvalidateForPlayer.
func (mr *MockBidRepositoryMockRecorder) InvalidateForPlayer(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InvalidateForPlayer", reflect.TypeOf((*MockBidRepository)(nil).InvalidateForPlayer), ctx, tx, playerID)
}

// ListByPlayer mocks base method.
func (m *MockBidRepository) ListByPlayer(ctx context.Context, playerID int64) ([]*models.Bid, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByPlayer", ctx, playerID)
	ret0, _ := ret[0].([]*models.Bid)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByPlayer indicates an expected call of ListByPlayer.
func (mr *MockBidRepositoryMockRecorder) ListByPlayer(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByPlayer", reflect.TypeOf((*MockBidRepository)(nil).ListByPlayer), ctx, playerID)
}

// ListWinningByAuction mocks base method.
func (m *MockBidRepository) ListWinningByAuction(ctx context.Context, auctionID int64) ([]*models.Bid, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWinningByAuction", ctx, auctionID)
	ret0, _ := ret[0].([]*models.Bid)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWinningByAuction indicates an expected call of ListWinningByAuction.
func (mr *MockBidRepositoryMockRecorder) ListWinningByAuction(ctx, auctionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWinningByAuction", reflect.TypeOf((*MockBidRepository)(nil).ListWinningByAuction), ctx, auctionID)
}
