package repositories

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// OperatorReader defines read operations for operator (tenant) data.
type OperatorReader interface {
	// FindOperatorByID retrieves an operator by its unique identifier.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)

	// FindOperatorByCode retrieves an operator by its 3-character tenant code.
	FindOperatorByCode(ctx context.Context, code string) (*domain.Operator, error)

	// ListOperators retrieves operators with offset pagination.
	ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error)
}

// OperatorWriter defines write operations for operator data.
type OperatorWriter interface {
	// SaveOperator persists a new operator. Returns ErrDuplicate when the code is taken.
	SaveOperator(ctx context.Context, operator domain.Operator) error

	// UpdateOperator updates mutable operator fields (name, payment methods, active flag).
	UpdateOperator(ctx context.Context, operator domain.Operator) error

	// NextBookingSequence atomically increments the operator's booking sequence and
	// returns the new value in the same database operation. Returns ErrNotFound when
	// the operator does not exist. Values are never reused; gaps are benign.
	NextBookingSequence(ctx context.Context, operatorID string) (int64, error)
}

// OperatorRepositoryFacade combines all operator repository interfaces.
type OperatorRepositoryFacade interface {
	OperatorReader
	OperatorWriter
}
