package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// LedgerReaderSvc defines read operations over the cargo balance ledger
type LedgerReaderSvc interface {
	// GetDailyBalance sums the charges of the user's PAID bookings created on the
	// given calendar date. A day with no bookings yields zero, not an error.
	GetDailyBalance(ctx context.Context, operatorID string, userID string, date time.Time) (decimal.Decimal, error)

	// ListUserTransactions retrieves a token-paginated list of a user's ledger entries.
	ListUserTransactions(ctx context.Context, operatorID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines balance-moving operations. Every balance change flows
// through this interface so that each one leaves a ledger entry behind.
type LedgerWriterSvc interface {
	// ApplyDeliveryCharge marks the booking DELIVERED and credits the booking total to
	// the delivering user's cargo balance, appending the ledger entry, atomically with
	// the status flip. Returns the delivering user's new balance.
	ApplyDeliveryCharge(ctx context.Context, booking *domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error)

	// ApplyTransfer settles an approved cash transfer: it debits the source user,
	// credits the destination user and appends the ledger entry atomically with the
	// transfer's status flip. Insufficient source balance aborts the whole operation.
	ApplyTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
