package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	"github.com/swiftlr/cargo_booking_app/internal/models"
)

type PgxOperatorRepository struct {
	db *pgxpool.Pool
}

func newPgxOperatorRepository(db *pgxpool.Pool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{db: db}
}

var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

func toModelOperator(d domain.Operator) models.Operator {
	methods := make([]string, len(d.PaymentMethods))
	for i, m := range d.PaymentMethods {
		methods[i] = string(m)
	}
	return models.Operator{
		OperatorID:      d.OperatorID,
		Name:            d.Name,
		Code:            d.Code,
		BookingSequence: d.BookingSequence,
		PaymentMethods:  methods,
		IsActive:        d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainOperator(m models.Operator) domain.Operator {
	methods := make([]domain.PaymentMethod, len(m.PaymentMethods))
	for i, s := range m.PaymentMethods {
		methods[i] = domain.PaymentMethod(s)
	}
	return domain.Operator{
		OperatorID:      m.OperatorID,
		Name:            m.Name,
		Code:            m.Code,
		BookingSequence: m.BookingSequence,
		PaymentMethods:  methods,
		IsActive:        m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const operatorColumns = `operator_id, name, code, booking_sequence, payment_methods, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanOperator(row pgx.Row) (*domain.Operator, error) {
	var m models.Operator
	err := row.Scan(
		&m.OperatorID,
		&m.Name,
		&m.Code,
		&m.BookingSequence,
		&m.PaymentMethods,
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
		return nil, fmt.Errorf("failed to scan operator row: %w", err)
	}
	op := toDomainOperator(m)
	return &op, nil
}

func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := toModelOperator(operator)
	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.OperatorID,
		m.Name,
		m.Code,
		m.BookingSequence,
		m.PaymentMethods,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save operator: %w", err)
	}
	return nil
}

func (r *PgxOperatorRepository) UpdateOperator(ctx context.Context, operator domain.Operator) error {
	m := toModelOperator(operator)
	query := `
		UPDATE operators
		SET name = $2, payment_methods = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE operator_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.OperatorID,
		m.Name,
		m.PaymentMethods,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update operator %s: %w", operator.OperatorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE operator_id = $1;`
	return scanOperator(r.db.QueryRow(ctx, query, operatorID))
}

func (r *PgxOperatorRepository) FindOperatorByCode(ctx context.Context, code string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE code = $1;`
	return scanOperator(r.db.QueryRow(ctx, query, code))
}

func (r *PgxOperatorRepository) ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}
	defer rows.Close()

	var operators []domain.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		operators = append(operators, *op)
	}
	return operators, rows.Err()
}

// NextBookingSequence claims the next sequence value with a single UPDATE ...
// RETURNING, so concurrent bookings serialize on the operator row and each caller
// receives a distinct value. A caller that fails after this statement leaves a gap
// in the numbering, never a duplicate.
func (r *PgxOperatorRepository) NextBookingSequence(ctx context.Context, operatorID string) (int64, error) {
	query := `
		UPDATE operators
		SET booking_sequence = booking_sequence + 1
		WHERE operator_id = $1
		RETURNING booking_sequence;
	`
	var sequence int64
	err := r.db.QueryRow(ctx, query, operatorID).Scan(&sequence)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to claim booking sequence for operator %s: %w", operatorID, err)
	}
	return sequence, nil
}
