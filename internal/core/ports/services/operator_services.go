package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// OperatorReaderSvc defines read operations for operator data
type OperatorReaderSvc interface {
	// GetOperatorByID retrieves an operator by ID.
	GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// GetOperatorByCode retrieves an operator by its tenant code.
	GetOperatorByCode(ctx context.Context, code string) (*domain.Operator, error)

	// ListOperators retrieves a paginated list of operators.
	ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error)
}

// OperatorWriterSvc defines write operations for operator data
type OperatorWriterSvc interface {
	// CreateOperator creates a new operator after validating its tenant code.
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorUserID string) (*domain.Operator, error)

	// UpdateOperator updates operator details.
	UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingUserID string) (*domain.Operator, error)
}

// BookingSequenceSvc defines the per-operator booking sequence operations
type BookingSequenceSvc interface {
	// NextBookingSequence atomically claims and returns the operator's next booking
	// sequence number. Concurrent callers always observe distinct values.
	NextBookingSequence(ctx context.Context, operatorID string) (int64, error)
}

// OperatorSvcFacade combines all operator-related service interfaces
type OperatorSvcFacade interface {
	OperatorReaderSvc
	OperatorWriterSvc
	BookingSequenceSvc
}
