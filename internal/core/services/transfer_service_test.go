package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/core/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

var _ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.CashTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashTransfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfersByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.TransferStatus) ([]domain.CashTransfer, *string, error) {
	args := m.Called(ctx, operatorID, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CashTransfer), returnedNextToken, args.Error(2)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.CashTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) UpdateTransferDetails(ctx context.Context, transfer domain.CashTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransferPending(ctx context.Context, transferID string) error {
	args := m.Called(ctx, transferID)
	return args.Error(0)
}

func (m *MockTransferRepository) SettleTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string, resolvedAt time.Time) error {
	args := m.Called(ctx, transfer, resolvedBy, resolvedAt)
	return args.Error(0)
}

func (m *MockTransferRepository) MarkRejected(ctx context.Context, transferID string, resolvedBy string, resolvedAt time.Time) error {
	args := m.Called(ctx, transferID, resolvedBy, resolvedAt)
	return args.Error(0)
}

// --- Mock UserReaderSvc ---
type MockUserReader struct {
	mock.Mock
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, operatorID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo *MockTransferRepository
	mockUserSvc      *MockUserReader
	mockLedgerSvc    *MockLedgerWriter
	service          portssvc.TransferSvcFacade
	operatorID       string
	fromUserID       string
	toUserID         string
	approverID       string
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockUserSvc = new(MockUserReader)
	suite.mockLedgerSvc = new(MockLedgerWriter)
	suite.service = services.NewTransferService(suite.mockTransferRepo, suite.mockUserSvc, suite.mockLedgerSvc)

	suite.operatorID = uuid.NewString()
	suite.fromUserID = uuid.NewString()
	suite.toUserID = uuid.NewString()
	suite.approverID = uuid.NewString()
}

func (suite *TransferServiceTestSuite) pendingTransfer() *domain.CashTransfer {
	return &domain.CashTransfer{
		TransferID: uuid.NewString(),
		OperatorID: suite.operatorID,
		FromUserID: suite.fromUserID,
		ToUserID:   suite.toUserID,
		Amount:     decimal.NewFromInt(500),
		Status:     domain.TransferPending,
	}
}

func (suite *TransferServiceTestSuite) TestCreateTransferStartsPending() {
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.fromUserID).Return(&domain.User{UserID: suite.fromUserID, OperatorID: suite.operatorID}, nil)
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.toUserID).Return(&domain.User{UserID: suite.toUserID, OperatorID: suite.operatorID}, nil)
	suite.mockTransferRepo.On("SaveTransfer", mock.Anything, mock.MatchedBy(func(t domain.CashTransfer) bool {
		return t.Status == domain.TransferPending && t.Amount.Equal(decimal.NewFromInt(500))
	})).Return(nil)

	req := dto.CreateTransferRequest{
		FromUserID: suite.fromUserID,
		ToUserID:   suite.toUserID,
		Amount:     decimal.NewFromInt(500),
		Note:       "day collection handover",
	}
	transfer, err := suite.service.CreateTransfer(context.Background(), suite.operatorID, req, suite.fromUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.TransferPending, transfer.Status)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransferNonPositiveAmount() {
	req := dto.CreateTransferRequest{
		FromUserID: suite.fromUserID,
		ToUserID:   suite.toUserID,
		Amount:     decimal.Zero,
	}
	_, err := suite.service.CreateTransfer(context.Background(), suite.operatorID, req, suite.fromUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransferToSelf() {
	req := dto.CreateTransferRequest{
		FromUserID: suite.fromUserID,
		ToUserID:   suite.fromUserID,
		Amount:     decimal.NewFromInt(100),
	}
	_, err := suite.service.CreateTransfer(context.Background(), suite.operatorID, req, suite.fromUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestCreateTransferCrossOperatorUserHidden() {
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.fromUserID).Return(&domain.User{UserID: suite.fromUserID, OperatorID: uuid.NewString()}, nil)

	req := dto.CreateTransferRequest{
		FromUserID: suite.fromUserID,
		ToUserID:   suite.toUserID,
		Amount:     decimal.NewFromInt(100),
	}
	_, err := suite.service.CreateTransfer(context.Background(), suite.operatorID, req, suite.fromUserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestApproveTransferSettlesThroughLedger() {
	pending := suite.pendingTransfer()
	approved := *pending
	approved.Status = domain.TransferApproved
	approved.ResolvedBy = &suite.approverID

	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(pending, nil).Once()
	suite.mockLedgerSvc.On("ApplyTransfer", mock.Anything, *pending, suite.approverID).Return(nil)
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(&approved, nil).Once()

	transfer, err := suite.service.ApproveTransfer(context.Background(), suite.operatorID, pending.TransferID, suite.approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.TransferApproved, transfer.Status)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

// The settled row is the authority on the amount moved: an edit landing between the
// approver's read and the settle must show up in the approval response.
func (suite *TransferServiceTestSuite) TestApproveTransferReturnsSettledRowAmount() {
	pending := suite.pendingTransfer()
	settled := *pending
	settled.Status = domain.TransferApproved
	settled.Amount = decimal.NewFromInt(900)

	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(pending, nil).Once()
	suite.mockLedgerSvc.On("ApplyTransfer", mock.Anything, *pending, suite.approverID).Return(nil)
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(&settled, nil).Once()

	transfer, err := suite.service.ApproveTransfer(context.Background(), suite.operatorID, pending.TransferID, suite.approverID)

	suite.Require().NoError(err)
	suite.True(transfer.Amount.Equal(decimal.NewFromInt(900)))
}

func (suite *TransferServiceTestSuite) TestApproveTransferTwice() {
	settled := suite.pendingTransfer()
	settled.Status = domain.TransferApproved
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, settled.TransferID).Return(settled, nil)

	_, err := suite.service.ApproveTransfer(context.Background(), suite.operatorID, settled.TransferID, suite.approverID)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestApproveRejectedTransfer() {
	rejected := suite.pendingTransfer()
	rejected.Status = domain.TransferRejected
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, rejected.TransferID).Return(rejected, nil)

	_, err := suite.service.ApproveTransfer(context.Background(), suite.operatorID, rejected.TransferID, suite.approverID)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestApproveTransferInsufficientBalanceLeavesPending() {
	pending := suite.pendingTransfer()
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(pending, nil)
	suite.mockLedgerSvc.On("ApplyTransfer", mock.Anything, *pending, suite.approverID).Return(apperrors.ErrInsufficientBalance)

	_, err := suite.service.ApproveTransfer(context.Background(), suite.operatorID, pending.TransferID, suite.approverID)

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *TransferServiceTestSuite) TestRejectTransferMovesNoMoney() {
	pending := suite.pendingTransfer()
	rejected := *pending
	rejected.Status = domain.TransferRejected

	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(pending, nil).Once()
	suite.mockTransferRepo.On("MarkRejected", mock.Anything, pending.TransferID, suite.approverID, mock.Anything).Return(nil)
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, pending.TransferID).Return(&rejected, nil).Once()

	transfer, err := suite.service.RejectTransfer(context.Background(), suite.operatorID, pending.TransferID, suite.approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.TransferRejected, transfer.Status)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestUpdateSettledTransfer() {
	settled := suite.pendingTransfer()
	settled.Status = domain.TransferApproved
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, settled.TransferID).Return(settled, nil)

	newAmount := decimal.NewFromInt(900)
	_, err := suite.service.UpdateTransfer(context.Background(), suite.operatorID, settled.TransferID, dto.UpdateTransferRequest{Amount: &newAmount}, suite.fromUserID)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "UpdateTransferDetails", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestDeleteSettledTransfer() {
	settled := suite.pendingTransfer()
	settled.Status = domain.TransferRejected
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, settled.TransferID).Return(settled, nil)

	err := suite.service.DeleteTransfer(context.Background(), suite.operatorID, settled.TransferID, suite.fromUserID)

	suite.ErrorIs(err, apperrors.ErrAlreadyProcessed)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "DeleteTransferPending", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestGetTransferScopedToOperator() {
	foreign := suite.pendingTransfer()
	foreign.OperatorID = uuid.NewString()
	suite.mockTransferRepo.On("FindTransferByID", mock.Anything, foreign.TransferID).Return(foreign, nil)

	_, err := suite.service.GetTransferByID(context.Background(), suite.operatorID, foreign.TransferID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransferServiceTestSuite) TestListTransfersRejectsUnknownStatusFilter() {
	bad := "SETTLED"
	_, err := suite.service.ListTransfers(context.Background(), suite.operatorID, dto.ListTransfersParams{Status: &bad})

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
