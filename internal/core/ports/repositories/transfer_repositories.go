package repositories

import (
	"context"
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// TransferReader defines read operations for cash transfer data.
type TransferReader interface {
	// FindTransferByID retrieves a transfer by ID.
	FindTransferByID(ctx context.Context, transferID string) (*domain.CashTransfer, error)

	// ListTransfersByOperator retrieves a token-paginated page of an operator's
	// transfers, newest first, optionally filtered by status.
	ListTransfersByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.TransferStatus) ([]domain.CashTransfer, *string, error)
}

// TransferWriter defines write operations for cash transfer data.
type TransferWriter interface {
	// SaveTransfer persists a new PENDING transfer.
	SaveTransfer(ctx context.Context, transfer domain.CashTransfer) error

	// UpdateTransferDetails updates amount/note while the transfer is still PENDING.
	// Returns ErrAlreadyProcessed when the row has left PENDING.
	UpdateTransferDetails(ctx context.Context, transfer domain.CashTransfer) error

	// DeleteTransferPending removes a transfer only while it is PENDING. Returns
	// ErrAlreadyProcessed when the row has been settled.
	DeleteTransferPending(ctx context.Context, transferID string) error

	// SettleTransfer atomically approves the transfer and moves the balance: the
	// status flip (guarded on PENDING), both user balance updates (row locks taken in
	// sorted ID order) and the ledger transaction insert commit together or not at
	// all. Returns ErrAlreadyProcessed when the status guard fails, ErrNotFound when
	// either user row is missing and ErrInsufficientBalance when the source balance
	// is short; in every failure case the transfer row keeps its prior status.
	SettleTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string, resolvedAt time.Time) error

	// MarkRejected flips a PENDING transfer to REJECTED with no balance effect.
	// Returns ErrAlreadyProcessed when the row has left PENDING.
	MarkRejected(ctx context.Context, transferID string, resolvedBy string, resolvedAt time.Time) error
}

// TransferRepositoryFacade combines all transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
