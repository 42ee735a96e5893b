package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole defines the possible roles a user can have within an operator.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

// User represents a staff member of an operator. CargoBalance is the signed running
// total of cash the user holds on behalf of the operator; it changes only through
// booking charges and approved cash transfers.
type User struct {
	UserID       string          `json:"userID"` // Primary Key (UUID)
	OperatorID   string          `json:"operatorID"`
	Username     string          `json:"username"`
	Name         string          `json:"name"`
	Role         UserRole        `json:"role"`
	BranchID     *string         `json:"branchID,omitempty"` // Home branch, optional
	CargoBalance decimal.Decimal `json:"cargoBalance"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete marker

	// Refresh token details, never serialized.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
