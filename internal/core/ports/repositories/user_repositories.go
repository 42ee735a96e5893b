package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a non-deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a non-deleted user, including credential fields,
	// for authentication. Returns the model type so password hashes stay out of the domain.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListUsersByOperator retrieves users belonging to an operator.
	ListUsersByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user with its credential hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUser updates mutable profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error

	// UpdateRefreshTokenDetails stores the hash and expiry of the user's refresh token.
	UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshTokenDetails invalidates any stored refresh token.
	ClearRefreshTokenDetails(ctx context.Context, userID string) error
}

// UserTxOperations defines user operations that run inside a caller-owned database
// transaction, used when a balance movement must commit together with other rows.
type UserTxOperations interface {
	// FindUsersByIDsForUpdate locks the given user rows (FOR UPDATE, ordered by ID to
	// avoid deadlocks) and returns them keyed by ID. Missing IDs yield ErrNotFound.
	FindUsersByIDsForUpdate(ctx context.Context, tx pgx.Tx, userIDs []string) (map[string]domain.User, error)

	// UpdateUserBalancesInTx applies the given balance deltas inside tx.
	UpdateUserBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, updatedBy string, now time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTxOperations
}
