package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/core/services"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenDetails(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) FindUsersByIDsForUpdate(ctx context.Context, tx pgx.Tx, userIDs []string) (map[string]domain.User, error) {
	args := m.Called(ctx, tx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, updatedBy, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, operatorID, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, operatorID, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockBookingRepo  *MockBookingRepository
	mockTransferRepo *MockTransferRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.LedgerSvcFacade
	operatorID       string
	userID           string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockUserRepo, suite.mockBookingRepo, suite.mockTransferRepo, suite.mockTxnRepo)

	suite.operatorID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) TestApplyDeliveryChargeDelegatesToAtomicSettle() {
	booking := &domain.Booking{
		BookingID:         uuid.NewString(),
		OperatorID:        suite.operatorID,
		BookingNumber:     "T-20250609-0006",
		TotalAmountCharge: decimal.NewFromInt(140),
	}
	deliveredAt := time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC)

	suite.mockBookingRepo.On("SettleDelivery", mock.Anything, *booking, suite.userID, deliveredAt).
		Return(decimal.NewFromInt(640), nil)

	newBalance, err := suite.service.ApplyDeliveryCharge(context.Background(), booking, suite.userID, deliveredAt)

	suite.Require().NoError(err)
	suite.True(newBalance.Equal(decimal.NewFromInt(640)))
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApplyDeliveryChargeUnknownBooking() {
	booking := &domain.Booking{
		BookingID:         uuid.NewString(),
		OperatorID:        suite.operatorID,
		TotalAmountCharge: decimal.NewFromInt(140),
	}
	suite.mockBookingRepo.On("SettleDelivery", mock.Anything, *booking, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.ApplyDeliveryCharge(context.Background(), booking, suite.userID, time.Now())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestApplyDeliveryChargeNegativeAmountRejected() {
	booking := &domain.Booking{
		BookingID:         uuid.NewString(),
		OperatorID:        suite.operatorID,
		TotalAmountCharge: decimal.NewFromInt(-5),
	}

	_, err := suite.service.ApplyDeliveryCharge(context.Background(), booking, suite.userID, time.Now())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SettleDelivery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApplyTransferDelegatesToAtomicSettle() {
	transfer := domain.CashTransfer{
		TransferID: uuid.NewString(),
		OperatorID: suite.operatorID,
		FromUserID: suite.userID,
		ToUserID:   uuid.NewString(),
		Amount:     decimal.NewFromInt(300),
		Status:     domain.TransferPending,
	}
	resolverID := uuid.NewString()
	suite.mockTransferRepo.On("SettleTransfer", mock.Anything, transfer, resolverID, mock.Anything).Return(nil)

	err := suite.service.ApplyTransfer(context.Background(), transfer, resolverID)

	suite.Require().NoError(err)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApplyTransferInsufficientBalance() {
	transfer := domain.CashTransfer{
		TransferID: uuid.NewString(),
		Amount:     decimal.NewFromInt(10000),
		Status:     domain.TransferPending,
	}
	suite.mockTransferRepo.On("SettleTransfer", mock.Anything, transfer, mock.Anything, mock.Anything).
		Return(apperrors.ErrInsufficientBalance)

	err := suite.service.ApplyTransfer(context.Background(), transfer, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *LedgerServiceTestSuite) TestGetDailyBalanceZeroForQuietDay() {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(&domain.User{UserID: suite.userID, OperatorID: suite.operatorID}, nil)
	suite.mockBookingRepo.On("SumPaidBookingCharges", mock.Anything, suite.operatorID, suite.userID, date).Return(decimal.Zero, nil)

	balance, err := suite.service.GetDailyBalance(context.Background(), suite.operatorID, suite.userID, date)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetDailyBalanceUnknownUser() {
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetDailyBalance(context.Background(), suite.operatorID, suite.userID, date)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SumPaidBookingCharges", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
