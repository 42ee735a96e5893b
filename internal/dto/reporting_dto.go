package dto

import "github.com/shopspring/decimal"

// ReportRangeParams bounds a report query to a date range (inclusive).
type ReportRangeParams struct {
	FromDate string `form:"fromDate" binding:"required,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"required,datetime=2006-01-02"`
}

// BookingStatusCountResponse is one row of the booking report: bookings and amounts
// grouped by lifecycle status.
type BookingStatusCountResponse struct {
	Status      string          `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// BookingReportResponse summarizes bookings created in a date range.
type BookingReportResponse struct {
	FromDate string                       `json:"fromDate"`
	ToDate   string                       `json:"toDate"`
	Rows     []BookingStatusCountResponse `json:"rows"`
	Totals   struct {
		Count  int64           `json:"count"`
		Amount decimal.Decimal `json:"amount"`
	} `json:"totals"`
}

// DeliveryReportRowResponse is one delivered booking in the delivery report.
type DeliveryReportRowResponse struct {
	BookingID     string          `json:"bookingID"`
	BookingNumber string          `json:"bookingNumber"`
	ToBranchID    string          `json:"toBranchID"`
	LRType        string          `json:"lrType"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DeliveredAt   string          `json:"deliveredAt"`
}

// DeliveryReportResponse lists bookings delivered in a date range.
type DeliveryReportResponse struct {
	FromDate string                      `json:"fromDate"`
	ToDate   string                      `json:"toDate"`
	Rows     []DeliveryReportRowResponse `json:"rows"`
	Total    decimal.Decimal             `json:"total"`
}

// RevenueReportResponse splits revenue by LR type over a date range.
type RevenueReportResponse struct {
	FromDate     string          `json:"fromDate"`
	ToDate       string          `json:"toDate"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	ToPayAmount  decimal.Decimal `json:"toPayAmount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	BookingCount int64           `json:"bookingCount"`
}

// BranchChargeRowResponse is one row of the loading/unloading report: charge totals
// aggregated per branch.
type BranchChargeRowResponse struct {
	BranchID        string          `json:"branchID"`
	BranchName      string          `json:"branchName"`
	LoadingCharge   decimal.Decimal `json:"loadingCharge"`
	UnloadingCharge decimal.Decimal `json:"unloadingCharge"`
	BookingCount    int64           `json:"bookingCount"`
}

// HandlingReportResponse aggregates loading/unloading charges per branch.
type HandlingReportResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Rows     []BranchChargeRowResponse `json:"rows"`
}
