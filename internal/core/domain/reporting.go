package domain

import "github.com/shopspring/decimal"

// BookingStatusCount is one row of the booking summary report.
type BookingStatusCount struct {
	Status      BookingStatus
	Count       int64
	TotalAmount decimal.Decimal
}

// RevenueSummary aggregates booking revenue over a date range split by LR type.
type RevenueSummary struct {
	PaidTotal    decimal.Decimal
	ToPayTotal   decimal.Decimal
	BookingCount int64
}

// BranchChargeRow aggregates handling charges attributed to a single branch.
type BranchChargeRow struct {
	BranchID       string
	BranchName     string
	LoadingTotal   decimal.Decimal
	UnloadingTotal decimal.Decimal
	BookingCount   int64
}
