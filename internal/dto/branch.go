package dto

import (
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateBranchRequest defines the data needed to create a branch.
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateBranchRequest defines the fields that may be updated on a branch.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// BranchResponse defines the data returned for a branch.
type BranchResponse struct {
	BranchID      string    `json:"branchID"`
	OperatorID    string    `json:"operatorID"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBranchResponse converts a domain.Branch to its response DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:      b.BranchID,
		OperatorID:    b.OperatorID,
		Name:          b.Name,
		City:          b.City,
		Address:       b.Address,
		Phone:         b.Phone,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToBranchResponses converts a slice of branches.
func ToBranchResponses(branches []domain.Branch) []BranchResponse {
	res := make([]BranchResponse, len(branches))
	for i := range branches {
		res[i] = ToBranchResponse(&branches[i])
	}
	return res
}

// ListBranchesResponse wraps the list of branches.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
}
