package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// ReportingService defines the operational reports available to an operator.
type ReportingService interface {
	// BookingReport counts bookings created in the range grouped by status.
	BookingReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.BookingReportResponse, error)

	// DeliveryReport lists bookings delivered in the range.
	DeliveryReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.DeliveryReportResponse, error)

	// RevenueReport sums booking revenue in the range split by LR type.
	RevenueReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.RevenueReportResponse, error)

	// HandlingReport sums loading and unloading charges per branch in the range.
	HandlingReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.HandlingReportResponse, error)
}
