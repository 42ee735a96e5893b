package repositories

import (
	"context"
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// ReportingRepository defines the aggregation queries behind operational reports.
// All ranges are inclusive calendar-date bounds.
type ReportingRepository interface {
	// BookingCountsByStatus groups bookings created in the range by status.
	BookingCountsByStatus(ctx context.Context, operatorID string, from, to time.Time) ([]domain.BookingStatusCount, error)

	// DeliveredBookings lists bookings delivered in the range.
	DeliveredBookings(ctx context.Context, operatorID string, from, to time.Time) ([]domain.Booking, error)

	// RevenueByLRType sums booking totals in the range split by LR type.
	RevenueByLRType(ctx context.Context, operatorID string, from, to time.Time) (*domain.RevenueSummary, error)

	// HandlingChargesByBranch sums loading charges per origin branch and unloading
	// charges per destination branch for bookings created in the range.
	HandlingChargesByBranch(ctx context.Context, operatorID string, from, to time.Time) ([]domain.BranchChargeRow, error)
}
