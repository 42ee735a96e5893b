package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a staff user under an operator.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN MANAGER STAFF"`
	BranchID *string         `json:"branchID"`
}

// UpdateUserRequest defines the fields that may be updated on a user.
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN MANAGER STAFF"`
	BranchID *string          `json:"branchID"`
}

// UserResponse defines the data returned for a user. The cargo balance is included
// since the frontend surfaces it on staff dashboards.
type UserResponse struct {
	UserID       string          `json:"userID"`
	OperatorID   string          `json:"operatorID"`
	Username     string          `json:"username"`
	Name         string          `json:"name"`
	Role         domain.UserRole `json:"role"`
	BranchID     *string         `json:"branchID,omitempty"`
	CargoBalance decimal.Decimal `json:"cargoBalance"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		OperatorID:   u.OperatorID,
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		BranchID:     u.BranchID,
		CargoBalance: u.CargoBalance,
		CreatedAt:    u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// DailyBalanceResponse reports the derived sum of a user's PAID booking charges for a day.
type DailyBalanceResponse struct {
	UserID string          `json:"userID"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
