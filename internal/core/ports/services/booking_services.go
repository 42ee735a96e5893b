package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// BookingReaderSvc defines read operations for booking data
type BookingReaderSvc interface {
	// GetBookingByID retrieves a booking, scoped to the operator.
	GetBookingByID(ctx context.Context, operatorID string, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves a token-paginated list of an operator's bookings.
	ListBookings(ctx context.Context, operatorID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error)
}

// BookingWriterSvc defines write operations for booking data
type BookingWriterSvc interface {
	// CreateBooking claims the operator's next sequence number, derives the booking
	// number and totals, and persists the booking. PAID bookings charge the booking
	// user's cargo balance within the same database transaction.
	CreateBooking(ctx context.Context, operatorID string, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error)

	// UpdateBookingStatus moves the booking along its lifecycle, rejecting illegal
	// transitions. Delivering a TO_PAY booking charges the delivering user's cargo
	// balance.
	UpdateBookingStatus(ctx context.Context, operatorID string, bookingID string, newStatus domain.BookingStatus, requestingUserID string) (*domain.Booking, error)

	// AssignVehicle attaches a vehicle to the booking.
	AssignVehicle(ctx context.Context, operatorID string, bookingID string, vehicleID string, requestingUserID string) (*domain.Booking, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
