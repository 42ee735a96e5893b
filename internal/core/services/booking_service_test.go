package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/core/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

var _ portsrepo.BookingRepositoryFacade = (*MockBookingRepository)(nil)

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.BookingStatus) ([]domain.Booking, *string, error) {
	args := m.Called(ctx, operatorID, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Booking), returnedNextToken, args.Error(2)
}

func (m *MockBookingRepository) SumPaidBookingCharges(ctx context.Context, operatorID, userID string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, operatorID, userID, date)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking, applyCharge bool) error {
	args := m.Called(ctx, booking, applyCharge)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, deliveredAt *time.Time, updatedBy string, now time.Time) error {
	args := m.Called(ctx, bookingID, status, deliveredAt, updatedBy, now)
	return args.Error(0)
}

func (m *MockBookingRepository) SettleDelivery(ctx context.Context, booking domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, booking, deliveredBy, deliveredAt)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBookingRepository) AssignVehicle(ctx context.Context, bookingID string, vehicleID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, bookingID, vehicleID, updatedBy, now)
	return args.Error(0)
}

// --- Mock OperatorService ---
type MockOperatorService struct {
	mock.Mock
}

var _ portssvc.OperatorSvcFacade = (*MockOperatorService)(nil)

func (m *MockOperatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) GetOperatorByCode(ctx context.Context, code string) (*domain.Operator, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorUserID string) (*domain.Operator, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingUserID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) NextBookingSequence(ctx context.Context, operatorID string) (int64, error) {
	args := m.Called(ctx, operatorID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock BranchReaderSvc ---
type MockBranchReader struct {
	mock.Mock
}

var _ portssvc.BranchReaderSvc = (*MockBranchReader)(nil)

func (m *MockBranchReader) GetBranchByID(ctx context.Context, operatorID string, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, operatorID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchReader) ListBranches(ctx context.Context, operatorID string, limit, offset int) ([]domain.Branch, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

// --- Mock VehicleReaderSvc ---
type MockVehicleReader struct {
	mock.Mock
}

var _ portssvc.VehicleReaderSvc = (*MockVehicleReader)(nil)

func (m *MockVehicleReader) GetVehicleByID(ctx context.Context, operatorID string, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, operatorID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleReader) ListVehicles(ctx context.Context, operatorID string, limit, offset int) ([]domain.Vehicle, error) {
	args := m.Called(ctx, operatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// --- Mock LedgerWriterSvc ---
type MockLedgerWriter struct {
	mock.Mock
}

var _ portssvc.LedgerWriterSvc = (*MockLedgerWriter)(nil)

func (m *MockLedgerWriter) ApplyDeliveryCharge(ctx context.Context, booking *domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, booking, deliveredBy, deliveredAt)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerWriter) ApplyTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string) error {
	args := m.Called(ctx, transfer, resolvedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockOperatorSvc *MockOperatorService
	mockBranchSvc   *MockBranchReader
	mockVehicleSvc  *MockVehicleReader
	mockLedgerSvc   *MockLedgerWriter
	service         portssvc.BookingSvcFacade
	operatorID      string
	userID          string
	fromBranch      domain.Branch
	toBranch        domain.Branch
	operator        domain.Operator
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockOperatorSvc = new(MockOperatorService)
	suite.mockBranchSvc = new(MockBranchReader)
	suite.mockVehicleSvc = new(MockVehicleReader)
	suite.mockLedgerSvc = new(MockLedgerWriter)
	suite.service = services.NewBookingService(
		suite.mockBookingRepo,
		suite.mockOperatorSvc,
		suite.mockBranchSvc,
		suite.mockVehicleSvc,
		suite.mockLedgerSvc,
	)

	suite.operatorID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.operator = domain.Operator{
		OperatorID: suite.operatorID,
		Name:       "Swift Logistics",
		Code:       "SWL",
		IsActive:   true,
	}
	suite.fromBranch = domain.Branch{BranchID: uuid.NewString(), OperatorID: suite.operatorID, IsActive: true}
	suite.toBranch = domain.Branch{BranchID: uuid.NewString(), OperatorID: suite.operatorID, IsActive: true}
}

func (suite *BookingServiceTestSuite) validRequest(lrType domain.LRType) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		LRType:        lrType,
		SenderName:    "Ravi",
		SenderPhone:   "9000000001",
		ReceiverName:  "Kumar",
		ReceiverPhone: "9000000002",
		FromBranchID:  suite.fromBranch.BranchID,
		ToBranchID:    suite.toBranch.BranchID,
		FreightCharge: decimal.NewFromInt(100),
		LoadingCharge: decimal.NewFromInt(20),
	}
}

func (suite *BookingServiceTestSuite) expectValidationPasses() {
	suite.mockOperatorSvc.On("GetOperatorByID", mock.Anything, suite.operatorID).Return(&suite.operator, nil)
	suite.mockBranchSvc.On("GetBranchByID", mock.Anything, suite.operatorID, suite.fromBranch.BranchID).Return(&suite.fromBranch, nil)
	suite.mockBranchSvc.On("GetBranchByID", mock.Anything, suite.operatorID, suite.toBranch.BranchID).Return(&suite.toBranch, nil)
}

func (suite *BookingServiceTestSuite) TestCreateBookingPaidAppliesCharge() {
	suite.expectValidationPasses()
	suite.mockOperatorSvc.On("NextBookingSequence", mock.Anything, suite.operatorID).Return(int64(6), nil)
	suite.mockBookingRepo.On("SaveBooking", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
		return b.Sequence == 6 && b.LRType == domain.LRPaid && b.Status == domain.StatusBooked
	}), true).Return(nil)

	req := suite.validRequest(domain.LRPaid)
	bookingDate := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	req.BookingDate = &bookingDate

	booking, err := suite.service.CreateBooking(context.Background(), suite.operatorID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("P-20250609-0006", booking.BookingNumber)
	suite.True(booking.TotalAmountCharge.Equal(decimal.NewFromInt(120)))
	suite.Equal(suite.userID, booking.CreatedBy)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBookingToPayDefersCharge() {
	suite.expectValidationPasses()
	suite.mockOperatorSvc.On("NextBookingSequence", mock.Anything, suite.operatorID).Return(int64(7), nil)
	suite.mockBookingRepo.On("SaveBooking", mock.Anything, mock.Anything, false).Return(nil)

	req := suite.validRequest(domain.LRToPay)
	bookingDate := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	req.BookingDate = &bookingDate

	booking, err := suite.service.CreateBooking(context.Background(), suite.operatorID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("T-20250609-0007", booking.BookingNumber)
	suite.mockBookingRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyDeliveryCharge")
}

func (suite *BookingServiceTestSuite) TestCreateBookingNegativeChargeRejectedBeforeSequenceClaim() {
	req := suite.validRequest(domain.LRPaid)
	req.OtherCharge = decimal.NewFromInt(-5)

	_, err := suite.service.CreateBooking(context.Background(), suite.operatorID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOperatorSvc.AssertNotCalled(suite.T(), "NextBookingSequence", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBookingInactiveOperator() {
	inactive := suite.operator
	inactive.IsActive = false
	suite.mockOperatorSvc.On("GetOperatorByID", mock.Anything, suite.operatorID).Return(&inactive, nil)

	_, err := suite.service.CreateBooking(context.Background(), suite.operatorID, suite.validRequest(domain.LRPaid), suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOperatorSvc.AssertNotCalled(suite.T(), "NextBookingSequence", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBookingUnknownBranchDoesNotBurnSequence() {
	suite.mockOperatorSvc.On("GetOperatorByID", mock.Anything, suite.operatorID).Return(&suite.operator, nil)
	suite.mockBranchSvc.On("GetBranchByID", mock.Anything, suite.operatorID, suite.fromBranch.BranchID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateBooking(context.Background(), suite.operatorID, suite.validRequest(domain.LRPaid), suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOperatorSvc.AssertNotCalled(suite.T(), "NextBookingSequence", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestUpdateStatusLegalTransition() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:  bookingID,
		OperatorID: suite.operatorID,
		LRType:     domain.LRPaid,
		Status:     domain.StatusBooked,
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)
	suite.mockBookingRepo.On("UpdateBookingStatus", mock.Anything, bookingID, domain.StatusInTransit, (*time.Time)(nil), suite.userID, mock.Anything).Return(nil)

	booking, err := suite.service.UpdateBookingStatus(context.Background(), suite.operatorID, bookingID, domain.StatusInTransit, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInTransit, booking.Status)
}

func (suite *BookingServiceTestSuite) TestUpdateStatusIllegalTransition() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:  bookingID,
		OperatorID: suite.operatorID,
		Status:     domain.StatusDelivered,
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)

	_, err := suite.service.UpdateBookingStatus(context.Background(), suite.operatorID, bookingID, domain.StatusBooked, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestDeliverToPayChargesDeliveringUser() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:         bookingID,
		OperatorID:        suite.operatorID,
		LRType:            domain.LRToPay,
		Status:            domain.StatusArrived,
		TotalAmountCharge: decimal.NewFromInt(250),
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)
	suite.mockLedgerSvc.On("ApplyDeliveryCharge", mock.Anything, mock.Anything, suite.userID, mock.Anything).Return(decimal.NewFromInt(250), nil)

	booking, err := suite.service.UpdateBookingStatus(context.Background(), suite.operatorID, bookingID, domain.StatusDelivered, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDelivered, booking.Status)
	suite.NotNil(booking.DeliveredAt)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
	// The status flip rides inside the charge's transaction, never a separate write.
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestDeliverToPayChargeFailureLeavesBookingArrived() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:         bookingID,
		OperatorID:        suite.operatorID,
		LRType:            domain.LRToPay,
		Status:            domain.StatusArrived,
		TotalAmountCharge: decimal.NewFromInt(250),
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)
	suite.mockLedgerSvc.On("ApplyDeliveryCharge", mock.Anything, mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrInvalidStatus)

	_, err := suite.service.UpdateBookingStatus(context.Background(), suite.operatorID, bookingID, domain.StatusDelivered, suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	// No separate status write may have landed: the delivery stays retriable.
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestDeliverPaidDoesNotChargeAgain() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:  bookingID,
		OperatorID: suite.operatorID,
		LRType:     domain.LRPaid,
		Status:     domain.StatusArrived,
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)
	suite.mockBookingRepo.On("UpdateBookingStatus", mock.Anything, bookingID, domain.StatusDelivered, mock.Anything, suite.userID, mock.Anything).Return(nil)

	_, err := suite.service.UpdateBookingStatus(context.Background(), suite.operatorID, bookingID, domain.StatusDelivered, suite.userID)

	suite.Require().NoError(err)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "ApplyDeliveryCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestGetBookingScopedToOperator() {
	bookingID := uuid.NewString()
	foreign := &domain.Booking{BookingID: bookingID, OperatorID: uuid.NewString()}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(foreign, nil)

	_, err := suite.service.GetBookingByID(context.Background(), suite.operatorID, bookingID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BookingServiceTestSuite) TestAssignVehicleToDeliveredBooking() {
	bookingID := uuid.NewString()
	existing := &domain.Booking{
		BookingID:  bookingID,
		OperatorID: suite.operatorID,
		Status:     domain.StatusDelivered,
	}
	suite.mockBookingRepo.On("FindBookingByID", mock.Anything, bookingID).Return(existing, nil)

	_, err := suite.service.AssignVehicle(context.Background(), suite.operatorID, bookingID, uuid.NewString(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func TestListBookingsRejectsUnknownStatusFilter(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := services.NewBookingService(repo, new(MockOperatorService), new(MockBranchReader), new(MockVehicleReader), new(MockLedgerWriter))

	bad := "SHIPPED"
	_, err := svc.ListBookings(context.Background(), uuid.NewString(), dto.ListBookingsParams{Status: &bad})

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}
