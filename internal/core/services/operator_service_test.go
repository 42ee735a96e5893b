package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/core/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// --- Mock OperatorRepository ---
type MockOperatorRepository struct {
	mock.Mock
}

var _ portsrepo.OperatorRepositoryFacade = (*MockOperatorRepository)(nil)

func (m *MockOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) FindOperatorByCode(ctx context.Context, code string) (*domain.Operator, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockOperatorRepository) UpdateOperator(ctx context.Context, operator domain.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

func (m *MockOperatorRepository) NextBookingSequence(ctx context.Context, operatorID string) (int64, error) {
	args := m.Called(ctx, operatorID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---
type OperatorServiceTestSuite struct {
	suite.Suite
	mockOperatorRepo *MockOperatorRepository
	service          portssvc.OperatorSvcFacade
	creatorUserID    string
}

func (suite *OperatorServiceTestSuite) SetupTest() {
	suite.mockOperatorRepo = new(MockOperatorRepository)
	suite.service = services.NewOperatorService(suite.mockOperatorRepo)
	suite.creatorUserID = uuid.NewString()
}

func (suite *OperatorServiceTestSuite) TestCreateOperatorDefaults() {
	suite.mockOperatorRepo.On("SaveOperator", mock.Anything, mock.MatchedBy(func(op domain.Operator) bool {
		return op.Code == "SWL" && op.BookingSequence == 0 && op.IsActive
	})).Return(nil)

	operator, err := suite.service.CreateOperator(context.Background(), dto.CreateOperatorRequest{
		Name: "Swift Logistics",
		Code: "SWL",
	}, suite.creatorUserID)

	suite.Require().NoError(err)
	// No payment methods requested defaults to cash only.
	suite.Equal([]domain.PaymentMethod{domain.PaymentCash}, operator.PaymentMethods)
	suite.Equal(suite.creatorUserID, operator.CreatedBy)
	suite.mockOperatorRepo.AssertExpectations(suite.T())
}

func (suite *OperatorServiceTestSuite) TestCreateOperatorInvalidCode() {
	_, err := suite.service.CreateOperator(context.Background(), dto.CreateOperatorRequest{
		Name: "No Uppercase Transport",
		Code: "ab1",
	}, suite.creatorUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOperatorRepo.AssertNotCalled(suite.T(), "SaveOperator", mock.Anything, mock.Anything)
}

func (suite *OperatorServiceTestSuite) TestCreateOperatorDuplicateCode() {
	suite.mockOperatorRepo.On("SaveOperator", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateOperator(context.Background(), dto.CreateOperatorRequest{
		Name: "Swift Logistics",
		Code: "SWL",
	}, suite.creatorUserID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *OperatorServiceTestSuite) TestUpdateOperatorKeepsCodeAndSequence() {
	operatorID := uuid.NewString()
	existing := &domain.Operator{
		OperatorID:      operatorID,
		Name:            "Swift Logistics",
		Code:            "SWL",
		BookingSequence: 41,
		IsActive:        true,
	}
	suite.mockOperatorRepo.On("FindOperatorByID", mock.Anything, operatorID).Return(existing, nil)
	suite.mockOperatorRepo.On("UpdateOperator", mock.Anything, mock.MatchedBy(func(op domain.Operator) bool {
		return op.Name == "Swift Logistics Pvt Ltd" && op.Code == "SWL" && op.BookingSequence == 41
	})).Return(nil)

	newName := "Swift Logistics Pvt Ltd"
	operator, err := suite.service.UpdateOperator(context.Background(), operatorID, dto.UpdateOperatorRequest{Name: &newName}, suite.creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, operator.Name)
	suite.mockOperatorRepo.AssertExpectations(suite.T())
}

func (suite *OperatorServiceTestSuite) TestNextBookingSequenceDelegates() {
	operatorID := uuid.NewString()
	suite.mockOperatorRepo.On("NextBookingSequence", mock.Anything, operatorID).Return(int64(42), nil)

	seq, err := suite.service.NextBookingSequence(context.Background(), operatorID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), seq)
}

func (suite *OperatorServiceTestSuite) TestNextBookingSequenceUnknownOperator() {
	operatorID := uuid.NewString()
	suite.mockOperatorRepo.On("NextBookingSequence", mock.Anything, operatorID).Return(int64(0), apperrors.ErrNotFound)

	_, err := suite.service.NextBookingSequence(context.Background(), operatorID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOperatorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorServiceTestSuite))
}
