package repositories

import (
	"context"
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// BranchReader defines read operations for branch data.
type BranchReader interface {
	// FindBranchByID retrieves a branch by ID.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranchesByOperator retrieves the branches of an operator.
	ListBranchesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data.
type BranchWriter interface {
	// SaveBranch persists a new branch.
	SaveBranch(ctx context.Context, branch domain.Branch) error

	// UpdateBranch updates mutable branch fields.
	UpdateBranch(ctx context.Context, branch domain.Branch) error

	// DeactivateBranch marks a branch inactive.
	DeactivateBranch(ctx context.Context, branchID string, updatedBy string, now time.Time) error
}

// BranchRepositoryFacade combines all branch repository interfaces.
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
