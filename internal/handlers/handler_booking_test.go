package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/handlers"
	"github.com/swiftlr/cargo_booking_app/internal/middleware"
	"github.com/swiftlr/cargo_booking_app/internal/utils"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

func (m *MockBookingService) CreateBooking(ctx context.Context, operatorID string, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, operatorID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, operatorID string, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, operatorID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, operatorID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	args := m.Called(ctx, operatorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBookingsResponse), args.Error(1)
}

func (m *MockBookingService) UpdateBookingStatus(ctx context.Context, operatorID string, bookingID string, newStatus domain.BookingStatus, requestingUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, operatorID, bookingID, newStatus, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) AssignVehicle(ctx context.Context, operatorID string, bookingID string, vehicleID string, requestingUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, operatorID, bookingID, vehicleID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBookingService *MockBookingService
	jwtSecret          string
	operatorID         string
	userID             string
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.operatorID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBookingService = new(MockBookingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBookingRoutes(v1, suite.mockBookingService)
}

// generateTestToken creates a signed access token for the suite's test user.
func (suite *BookingHandlerTestSuite) generateTestToken(role string) string {
	token, err := utils.GenerateJWT(suite.userID, suite.operatorID, role, suite.jwtSecret, time.Hour, "cba-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *BookingHandlerTestSuite) doJSON(method, url string, body any, role string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(role))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_Success() {
	req := dto.CreateBookingRequest{
		LRType:        domain.LRPaid,
		SenderName:    "Ravi",
		SenderPhone:   "9000000001",
		ReceiverName:  "Kumar",
		ReceiverPhone: "9000000002",
		FromBranchID:  uuid.NewString(),
		ToBranchID:    uuid.NewString(),
		FreightCharge: decimal.NewFromInt(100),
	}
	created := &domain.Booking{
		BookingID:         uuid.NewString(),
		OperatorID:        suite.operatorID,
		BookingNumber:     "P-20250609-0006",
		Sequence:          6,
		LRType:            domain.LRPaid,
		Status:            domain.StatusBooked,
		FromBranchID:      req.FromBranchID,
		ToBranchID:        req.ToBranchID,
		FreightCharge:     req.FreightCharge,
		TotalAmountCharge: decimal.NewFromInt(100),
	}

	suite.mockBookingService.On("CreateBooking",
		mock.Anything,
		suite.operatorID,
		mock.MatchedBy(func(r dto.CreateBookingRequest) bool {
			return r.LRType == domain.LRPaid && r.FromBranchID == req.FromBranchID
		}),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/bookings", req, "STAFF")

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("P-20250609-0006", body.BookingNumber)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "CreateBooking")
}

func (suite *BookingHandlerTestSuite) TestUpdateStatus_IllegalTransition() {
	bookingID := uuid.NewString()
	suite.mockBookingService.On("UpdateBookingStatus",
		mock.Anything, suite.operatorID, bookingID, domain.StatusBooked, suite.userID,
	).Return(nil, apperrors.ErrInvalidStatus).Once()

	w := suite.doJSON(http.MethodPatch,
		fmt.Sprintf("/api/v1/bookings/%s/status", bookingID),
		dto.UpdateBookingStatusRequest{Status: domain.StatusBooked},
		"STAFF",
	)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *BookingHandlerTestSuite) TestGetBooking_NotFound() {
	bookingID := uuid.NewString()
	suite.mockBookingService.On("GetBookingByID", mock.Anything, suite.operatorID, bookingID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/bookings/"+bookingID, nil, "STAFF")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BookingHandlerTestSuite) TestAssignVehicle_Conflict() {
	bookingID := uuid.NewString()
	vehicleID := uuid.NewString()
	suite.mockBookingService.On("AssignVehicle",
		mock.Anything, suite.operatorID, bookingID, vehicleID, suite.userID,
	).Return(nil, apperrors.ErrConflict).Once()

	w := suite.doJSON(http.MethodPatch,
		fmt.Sprintf("/api/v1/bookings/%s/vehicle", bookingID),
		dto.AssignVehicleRequest{VehicleID: vehicleID},
		"STAFF",
	)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *BookingHandlerTestSuite) TestListBookings_Success() {
	expected := &dto.ListBookingsResponse{
		Bookings: []dto.BookingResponse{
			{BookingID: uuid.NewString(), BookingNumber: "T-20250609-0001", Status: domain.StatusBooked},
		},
	}
	suite.mockBookingService.On("ListBookings",
		mock.Anything, suite.operatorID,
		mock.MatchedBy(func(p dto.ListBookingsParams) bool { return p.Limit == 10 }),
	).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/bookings?limit=10", nil, "STAFF")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListBookingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Bookings, 1)
}

func TestBookingHandler(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
