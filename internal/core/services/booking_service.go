package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// bookingService drives the booking lifecycle: creation with a minted booking
// number, status transitions and vehicle assignment.
type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryFacade
	operatorSvc portssvc.OperatorSvcFacade
	branchSvc   portssvc.BranchReaderSvc
	vehicleSvc  portssvc.VehicleReaderSvc
	ledgerSvc   portssvc.LedgerWriterSvc
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	operatorSvc portssvc.OperatorSvcFacade,
	branchSvc portssvc.BranchReaderSvc,
	vehicleSvc portssvc.VehicleReaderSvc,
	ledgerSvc portssvc.LedgerWriterSvc,
) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
		operatorSvc: operatorSvc,
		branchSvc:   branchSvc,
		vehicleSvc:  vehicleSvc,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking claims the operator's next sequence value, mints the booking number
// and persists the record. PAID bookings charge the creating user's cargo balance in
// the same database transaction as the insert; TO_PAY bookings charge nobody until
// delivery.
func (s *bookingService) CreateBooking(ctx context.Context, operatorID string, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	if err := validateCharges(req); err != nil {
		return nil, err
	}

	operator, err := s.operatorSvc.GetOperatorByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if !operator.IsActive {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validateBranch(ctx, operatorID, req.FromBranchID); err != nil {
		return nil, err
	}
	if err := s.validateBranch(ctx, operatorID, req.ToBranchID); err != nil {
		return nil, err
	}
	if req.VehicleID != nil {
		if err := s.validateVehicle(ctx, operatorID, *req.VehicleID); err != nil {
			return nil, err
		}
	}

	bookingDate := time.Now()
	if req.BookingDate != nil {
		bookingDate = *req.BookingDate
	}

	// Claim the sequence only after validation so rejected requests do not burn
	// numbers. A failure after this point leaves a gap, which is acceptable.
	sequence, err := s.operatorSvc.NextBookingSequence(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := domain.Booking{
		BookingID:         uuid.NewString(),
		OperatorID:        operatorID,
		BookingNumber:     domain.FormatBookingNumber(req.LRType.PaymentPrefix(), bookingDate, sequence),
		Sequence:          sequence,
		LRType:            req.LRType,
		Status:            domain.StatusBooked,
		SenderName:        req.SenderName,
		SenderPhone:       req.SenderPhone,
		ReceiverName:      req.ReceiverName,
		ReceiverPhone:     req.ReceiverPhone,
		FromBranchID:      req.FromBranchID,
		ToBranchID:        req.ToBranchID,
		VehicleID:         req.VehicleID,
		FreightCharge:     req.FreightCharge,
		LoadingCharge:     req.LoadingCharge,
		UnloadingCharge:   req.UnloadingCharge,
		OtherCharge:       req.OtherCharge,
		TotalAmountCharge: domain.TotalCharges(req.FreightCharge, req.LoadingCharge, req.UnloadingCharge, req.OtherCharge),
		BookingDate:       bookingDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	applyCharge := req.LRType == domain.LRPaid
	if err := s.bookingRepo.SaveBooking(ctx, booking, applyCharge); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("booking_number", booking.BookingNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("booking_number", booking.BookingNumber),
		slog.Int64("sequence", sequence),
	)
	return &booking, nil
}

// GetBookingByID retrieves a booking and enforces the operator scope.
func (s *bookingService) GetBookingByID(ctx context.Context, operatorID string, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return booking, nil
}

// ListBookings retrieves a token-paginated page of an operator's bookings.
func (s *bookingService) ListBookings(ctx context.Context, operatorID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var statusFilter *domain.BookingStatus
	if params.Status != nil && *params.Status != "" {
		status, err := domain.ParseBookingStatus(*params.Status)
		if err != nil {
			return nil, err
		}
		statusFilter = &status
	}

	bookings, nextToken, err := s.bookingRepo.ListBookingsByOperator(ctx, operatorID, limit, params.NextToken, statusFilter)
	if err != nil {
		return nil, err
	}

	return &dto.ListBookingsResponse{
		Bookings:  dto.ToBookingResponses(bookings),
		NextToken: nextToken,
	}, nil
}

// UpdateBookingStatus moves the booking to newStatus after checking the transition
// table. Delivering a TO_PAY booking charges the delivering user's cargo balance.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, operatorID string, bookingID string, newStatus domain.BookingStatus, requestingUserID string) (*domain.Booking, error) {
	booking, err := s.GetBookingByID(ctx, operatorID, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(booking.Status, newStatus); err != nil {
		s.LogWarn(ctx, "Illegal booking transition rejected",
			slog.String("booking_id", bookingID),
			slog.String("from", string(booking.Status)),
			slog.String("to", string(newStatus)),
		)
		return nil, err
	}

	now := time.Now()
	var deliveredAt *time.Time
	if newStatus == domain.StatusDelivered {
		deliveredAt = &now
	}

	// TO_PAY amounts are collected by whoever hands over the cargo, so delivering a
	// TO_PAY booking charges the delivering user. The status flip and the charge
	// commit together; on failure the booking stays ARRIVED and can be redelivered.
	if newStatus == domain.StatusDelivered && booking.LRType == domain.LRToPay {
		if _, err := s.ledgerSvc.ApplyDeliveryCharge(ctx, booking, requestingUserID, now); err != nil {
			s.LogError(ctx, err, "Failed to apply delivery charge", slog.String("booking_id", bookingID))
			return nil, err
		}
	} else {
		if err := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, newStatus, deliveredAt, requestingUserID, now); err != nil {
			s.LogError(ctx, err, "Failed to update booking status", slog.String("booking_id", bookingID))
			return nil, err
		}
	}

	booking.Status = newStatus
	booking.DeliveredAt = deliveredAt
	booking.LastUpdatedAt = now
	booking.LastUpdatedBy = requestingUserID

	return booking, nil
}

// AssignVehicle attaches a vehicle to the booking after checking it belongs to the
// same operator and is active.
func (s *bookingService) AssignVehicle(ctx context.Context, operatorID string, bookingID string, vehicleID string, requestingUserID string) (*domain.Booking, error) {
	booking, err := s.GetBookingByID(ctx, operatorID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.StatusDelivered || booking.Status == domain.StatusCancelled {
		return nil, apperrors.ErrConflict
	}

	if err := s.validateVehicle(ctx, operatorID, vehicleID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.bookingRepo.AssignVehicle(ctx, bookingID, vehicleID, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to assign vehicle", slog.String("booking_id", bookingID), slog.String("vehicle_id", vehicleID))
		return nil, err
	}

	booking.VehicleID = &vehicleID
	booking.LastUpdatedAt = now
	booking.LastUpdatedBy = requestingUserID
	return booking, nil
}

func (s *bookingService) validateBranch(ctx context.Context, operatorID, branchID string) error {
	branch, err := s.branchSvc.GetBranchByID(ctx, operatorID, branchID)
	if err != nil {
		return err
	}
	if !branch.IsActive {
		return apperrors.ErrValidation
	}
	return nil
}

func (s *bookingService) validateVehicle(ctx context.Context, operatorID, vehicleID string) error {
	vehicle, err := s.vehicleSvc.GetVehicleByID(ctx, operatorID, vehicleID)
	if err != nil {
		return err
	}
	if !vehicle.IsActive {
		return apperrors.ErrValidation
	}
	return nil
}

func validateCharges(req dto.CreateBookingRequest) error {
	for _, amount := range []decimal.Decimal{req.FreightCharge, req.LoadingCharge, req.UnloadingCharge, req.OtherCharge} {
		if amount.IsNegative() {
			return apperrors.ErrValidation
		}
	}
	return nil
}
