package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// BranchReaderSvc defines read operations for branch data
type BranchReaderSvc interface {
	// GetBranchByID retrieves a branch, scoped to the operator.
	GetBranchByID(ctx context.Context, operatorID string, branchID string) (*domain.Branch, error)

	// ListBranches retrieves an operator's branches.
	ListBranches(ctx context.Context, operatorID string, limit, offset int) ([]domain.Branch, error)
}

// BranchWriterSvc defines write operations for branch data
type BranchWriterSvc interface {
	// CreateBranch creates a new branch under the operator.
	CreateBranch(ctx context.Context, operatorID string, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error)

	// UpdateBranch updates branch details.
	UpdateBranch(ctx context.Context, operatorID string, branchID string, req dto.UpdateBranchRequest, requestingUserID string) (*domain.Branch, error)

	// DeactivateBranch marks a branch inactive.
	DeactivateBranch(ctx context.Context, operatorID string, branchID string, requestingUserID string) error
}

// BranchSvcFacade combines all branch-related service interfaces
type BranchSvcFacade interface {
	BranchReaderSvc
	BranchWriterSvc
}
