package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// branchService manages an operator's branches.
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new branch service.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

// CreateBranch persists a new branch under the operator.
func (s *branchService) CreateBranch(ctx context.Context, operatorID string, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error) {
	now := time.Now()
	branch := domain.Branch{
		BranchID:   uuid.NewString(),
		OperatorID: operatorID,
		Name:       req.Name,
		City:       req.City,
		Address:    req.Address,
		Phone:      req.Phone,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", slog.String("name", req.Name))
		return nil, err
	}
	return &branch, nil
}

// GetBranchByID retrieves a branch and enforces the operator scope.
func (s *branchService) GetBranchByID(ctx context.Context, operatorID string, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return branch, nil
}

// ListBranches retrieves an operator's branches.
func (s *branchService) ListBranches(ctx context.Context, operatorID string, limit, offset int) ([]domain.Branch, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.branchRepo.ListBranchesByOperator(ctx, operatorID, limit, offset)
}

// UpdateBranch applies partial updates to a branch.
func (s *branchService) UpdateBranch(ctx context.Context, operatorID string, branchID string, req dto.UpdateBranchRequest, requestingUserID string) (*domain.Branch, error) {
	branch, err := s.GetBranchByID(ctx, operatorID, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	branch.LastUpdatedAt = time.Now()
	branch.LastUpdatedBy = requestingUserID

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		return nil, err
	}
	return branch, nil
}

// DeactivateBranch marks a branch inactive. Existing bookings keep referencing it.
func (s *branchService) DeactivateBranch(ctx context.Context, operatorID string, branchID string, requestingUserID string) error {
	if _, err := s.GetBranchByID(ctx, operatorID, branchID); err != nil {
		return err
	}
	return s.branchRepo.DeactivateBranch(ctx, branchID, requestingUserID, time.Now())
}
