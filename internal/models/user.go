package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User is the database representation of an operator staff member, including
// authentication fields that never leave the persistence layer.
type User struct {
	UserID       string          `db:"user_id"`
	OperatorID   string          `db:"operator_id"`
	Username     string          `db:"username"`
	PasswordHash string          `db:"password_hash"`
	Name         string          `db:"name"`
	Role         string          `db:"role"`
	BranchID     sql.NullString  `db:"branch_id"`
	CargoBalance decimal.Decimal `db:"cargo_balance"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token storage (hash only, never the raw token)
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
