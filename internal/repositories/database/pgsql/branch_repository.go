package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

type PgxBranchRepository struct {
	db *pgxpool.Pool
}

func newPgxBranchRepository(db *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{db: db}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

func toDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:   m.BranchID,
		OperatorID: m.OperatorID,
		Name:       m.Name,
		City:       m.City,
		Address:    m.Address,
		Phone:      m.Phone,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const branchColumns = `branch_id, operator_id, name, city, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row) (*domain.Branch, error) {
	var m models.Branch
	err := row.Scan(
		&m.BranchID,
		&m.OperatorID,
		&m.Name,
		&m.City,
		&m.Address,
		&m.Phone,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan branch row: %w", err)
	}
	b := toDomainBranch(m)
	return &b, nil
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		branch.BranchID,
		branch.OperatorID,
		branch.Name,
		branch.City,
		branch.Address,
		branch.Phone,
		branch.IsActive,
		branch.CreatedAt,
		branch.CreatedBy,
		branch.LastUpdatedAt,
		branch.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save branch: %w", err)
	}
	return nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		UPDATE branches
		SET name = $2, city = $3, address = $4, phone = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE branch_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		branch.BranchID,
		branch.Name,
		branch.City,
		branch.Address,
		branch.Phone,
		branch.IsActive,
		branch.LastUpdatedAt,
		branch.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update branch %s: %w", branch.BranchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE branch_id = $1;`
	return scanBranch(r.db.QueryRow(ctx, query, branchID))
}

func (r *PgxBranchRepository) ListBranchesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches
		WHERE operator_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, operatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, *b)
	}
	return branches, rows.Err()
}

func (r *PgxBranchRepository) DeactivateBranch(ctx context.Context, branchID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE branches
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE branch_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, branchID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate branch %s: %w", branchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
