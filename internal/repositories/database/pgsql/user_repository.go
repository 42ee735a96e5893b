package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// toDomainUser converts the persistence model to the domain type.
func toDomainUser(m models.User) domain.User {
	user := domain.User{
		UserID:       m.UserID,
		OperatorID:   m.OperatorID,
		Username:     m.Username,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		CargoBalance: m.CargoBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.BranchID.Valid {
		branchID := m.BranchID.String
		user.BranchID = &branchID
	}
	if m.RefreshTokenHash.Valid {
		user.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		expiry := m.RefreshTokenExpiryTime.Time
		user.RefreshTokenExpiryTime = &expiry
	}
	return user
}

const userColumns = `user_id, operator_id, username, password_hash, name, role, branch_id, cargo_balance, created_at, created_by, last_updated_at, last_updated_by, deleted_at, refresh_token_hash, refresh_token_expiry_time`

func scanUserModel(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.OperatorID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Role,
		&m.BranchID,
		&m.CargoBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	query := `
		INSERT INTO users (user_id, operator_id, username, password_hash, name, role, branch_id, cargo_balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.OperatorID,
		user.Username,
		passwordHash,
		user.Name,
		string(user.Role),
		user.BranchID,
		user.CargoBalance,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, role = $3, branch_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		string(user.Role),
		user.BranchID,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanUserModel(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, err
	}
	user := toDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`
	return scanUserModel(r.db.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) ListUsersByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE operator_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUserModel(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, toDomainUser(*m))
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	query := `
		UPDATE users
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark user %s deleted: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshTokenDetails(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindUsersByIDsForUpdate locks the given user rows for the duration of tx. IDs are
// sorted before locking so concurrent settlements touching the same pair of users
// always acquire locks in the same order and cannot deadlock.
func (r *PgxUserRepository) FindUsersByIDsForUpdate(ctx context.Context, tx pgx.Tx, userIDs []string) (map[string]domain.User, error) {
	if len(userIDs) == 0 {
		return map[string]domain.User{}, nil
	}

	sortedIDs := make([]string, len(userIDs))
	copy(sortedIDs, userIDs)
	sort.Strings(sortedIDs)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = ANY($1) AND deleted_at IS NULL
		ORDER BY user_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, sortedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock users for update: %w", err)
	}
	defer rows.Close()

	usersMap := make(map[string]domain.User, len(sortedIDs))
	for rows.Next() {
		m, err := scanUserModel(rows)
		if err != nil {
			return nil, err
		}
		usersMap[m.UserID] = toDomainUser(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range sortedIDs {
		if _, ok := usersMap[id]; !ok {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, id)
		}
	}
	return usersMap, nil
}

// UpdateUserBalancesInTx applies the given balance deltas inside tx. Callers must
// have locked the rows via FindUsersByIDsForUpdate first.
func (r *PgxUserRepository) UpdateUserBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE users
		SET cargo_balance = cargo_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1;
	`
	batch := &pgx.Batch{}
	for userID, delta := range deltas {
		batch.Queue(query, userID, delta, now, updatedBy)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range deltas {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("failed to update user balance: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return nil
}
