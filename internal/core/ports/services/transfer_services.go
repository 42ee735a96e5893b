package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// TransferReaderSvc defines read operations for cash transfer data
type TransferReaderSvc interface {
	// GetTransferByID retrieves a transfer, scoped to the operator.
	GetTransferByID(ctx context.Context, operatorID string, transferID string) (*domain.CashTransfer, error)

	// ListTransfers retrieves a token-paginated list of an operator's transfers.
	ListTransfers(ctx context.Context, operatorID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}

// TransferWriterSvc defines write operations on transfers that are still PENDING
type TransferWriterSvc interface {
	// CreateTransfer records a new PENDING transfer request. Balances do not move
	// until the transfer is approved.
	CreateTransfer(ctx context.Context, operatorID string, req dto.CreateTransferRequest, creatorUserID string) (*domain.CashTransfer, error)

	// UpdateTransfer amends a transfer's amount or note while it is still PENDING.
	UpdateTransfer(ctx context.Context, operatorID string, transferID string, req dto.UpdateTransferRequest, requestingUserID string) (*domain.CashTransfer, error)

	// DeleteTransfer removes a transfer while it is still PENDING.
	DeleteTransfer(ctx context.Context, operatorID string, transferID string, requestingUserID string) error
}

// TransferApprovalSvc defines the settle and reject operations
type TransferApprovalSvc interface {
	// ApproveTransfer settles a PENDING transfer and moves the cargo balance between
	// its users. A second approval or a rejection after settlement fails with
	// ErrAlreadyProcessed and has no effect.
	ApproveTransfer(ctx context.Context, operatorID string, transferID string, approverUserID string) (*domain.CashTransfer, error)

	// RejectTransfer marks a PENDING transfer REJECTED with no balance effect.
	RejectTransfer(ctx context.Context, operatorID string, transferID string, approverUserID string) (*domain.CashTransfer, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
	TransferApprovalSvc
}
