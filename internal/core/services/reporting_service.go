package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

const reportDateLayout = "2006-01-02"

// reportingService assembles operational reports from aggregation queries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// parseRange validates the date range. The upper bound is extended to the end of the
// day so that "toDate" is inclusive.
func parseRange(params dto.ReportRangeParams) (time.Time, time.Time, error) {
	from, err := time.Parse(reportDateLayout, params.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid fromDate", apperrors.ErrValidation)
	}
	to, err := time.Parse(reportDateLayout, params.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid toDate", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: toDate precedes fromDate", apperrors.ErrValidation)
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}

// BookingReport counts bookings created in the range grouped by status.
func (s *reportingService) BookingReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.BookingReportResponse, error) {
	from, to, err := parseRange(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.BookingCountsByStatus(ctx, operatorID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build booking report")
		return nil, err
	}

	resp := &dto.BookingReportResponse{
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
		Rows:     make([]dto.BookingStatusCountResponse, 0, len(rows)),
	}
	totalCount := int64(0)
	totalAmount := decimal.Zero
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.BookingStatusCountResponse{
			Status:      string(row.Status),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
		totalCount += row.Count
		totalAmount = totalAmount.Add(row.TotalAmount)
	}
	resp.Totals.Count = totalCount
	resp.Totals.Amount = totalAmount
	return resp, nil
}

// DeliveryReport lists bookings delivered in the range.
func (s *reportingService) DeliveryReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.DeliveryReportResponse, error) {
	from, to, err := parseRange(params)
	if err != nil {
		return nil, err
	}

	bookings, err := s.reportingRepo.DeliveredBookings(ctx, operatorID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build delivery report")
		return nil, err
	}

	resp := &dto.DeliveryReportResponse{
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
		Rows:     make([]dto.DeliveryReportRowResponse, 0, len(bookings)),
		Total:    decimal.Zero,
	}
	for _, b := range bookings {
		deliveredAt := ""
		if b.DeliveredAt != nil {
			deliveredAt = b.DeliveredAt.Format(time.RFC3339)
		}
		resp.Rows = append(resp.Rows, dto.DeliveryReportRowResponse{
			BookingID:     b.BookingID,
			BookingNumber: b.BookingNumber,
			ToBranchID:    b.ToBranchID,
			LRType:        string(b.LRType),
			TotalAmount:   b.TotalAmountCharge,
			DeliveredAt:   deliveredAt,
		})
		resp.Total = resp.Total.Add(b.TotalAmountCharge)
	}
	return resp, nil
}

// RevenueReport sums booking revenue in the range split by LR type.
func (s *reportingService) RevenueReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.RevenueReportResponse, error) {
	from, to, err := parseRange(params)
	if err != nil {
		return nil, err
	}

	summary, err := s.reportingRepo.RevenueByLRType(ctx, operatorID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build revenue report")
		return nil, err
	}

	return &dto.RevenueReportResponse{
		FromDate:     params.FromDate,
		ToDate:       params.ToDate,
		PaidAmount:   summary.PaidTotal,
		ToPayAmount:  summary.ToPayTotal,
		TotalAmount:  summary.PaidTotal.Add(summary.ToPayTotal),
		BookingCount: summary.BookingCount,
	}, nil
}

// HandlingReport sums loading and unloading charges per branch in the range.
func (s *reportingService) HandlingReport(ctx context.Context, operatorID string, params dto.ReportRangeParams) (*dto.HandlingReportResponse, error) {
	from, to, err := parseRange(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.HandlingChargesByBranch(ctx, operatorID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build handling report")
		return nil, err
	}

	resp := &dto.HandlingReportResponse{
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
		Rows:     make([]dto.BranchChargeRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.BranchChargeRowResponse{
			BranchID:        row.BranchID,
			BranchName:      row.BranchName,
			LoadingCharge:   row.LoadingTotal,
			UnloadingCharge: row.UnloadingTotal,
			BookingCount:    row.BookingCount,
		})
	}
	return resp, nil
}
