package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// BookingReader defines read operations for booking data.
type BookingReader interface {
	// FindBookingByID retrieves a booking by ID.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookingsByOperator retrieves a token-paginated page of an operator's bookings,
	// newest first, optionally filtered by status.
	ListBookingsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.BookingStatus) ([]domain.Booking, *string, error)

	// SumPaidBookingCharges sums total_amount_charge over the user's PAID bookings
	// created on the given calendar date, regardless of booking status. Zero matching
	// rows yields decimal.Zero.
	SumPaidBookingCharges(ctx context.Context, operatorID, userID string, date time.Time) (decimal.Decimal, error)
}

// BookingWriter defines write operations for booking data.
type BookingWriter interface {
	// SaveBooking persists a booking. When applyCharge is true the booking user's cargo
	// balance is credited with the booking total and a ledger transaction is appended,
	// all within the same database transaction as the booking insert.
	SaveBooking(ctx context.Context, booking domain.Booking, applyCharge bool) error

	// UpdateBookingStatus sets the booking status (and delivered timestamp for
	// DELIVERED). Transition legality is validated by the service layer. Transitions
	// that move money must go through SettleDelivery instead.
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, deliveredAt *time.Time, updatedBy string, now time.Time) error

	// SettleDelivery marks the booking DELIVERED and charges the booking total to the
	// delivering user's cargo balance, appending the ledger entry, all within one
	// database transaction. The status flip is guarded on ARRIVED: a booking that is
	// no longer ARRIVED yields ErrInvalidStatus and nothing moves. Returns the
	// delivering user's new balance.
	SettleDelivery(ctx context.Context, booking domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error)

	// AssignVehicle attaches a vehicle to the booking.
	AssignVehicle(ctx context.Context, bookingID string, vehicleID string, updatedBy string, now time.Time) error
}

// BookingRepositoryFacade combines all booking repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
