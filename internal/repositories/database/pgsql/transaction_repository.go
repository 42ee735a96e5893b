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
	"github.com/swiftlr/cargo_booking_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID: m.TransactionID,
		OperatorID:    m.OperatorID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		BalanceAfter:  m.BalanceAfter,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
	if m.BookingID.Valid {
		bookingID := m.BookingID.String
		t.BookingID = &bookingID
	}
	if m.TransferID.Valid {
		transferID := m.TransferID.String
		t.TransferID = &transferID
	}
	return t
}

const transactionColumns = `transaction_id, operator_id, user_id, booking_id, transfer_id, amount, balance_after, description, created_at, created_by`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

func transactionArgs(txn domain.Transaction) []any {
	return []any{
		txn.TransactionID,
		txn.OperatorID,
		txn.UserID,
		txn.BookingID,
		txn.TransferID,
		txn.Amount,
		txn.BalanceAfter,
		txn.Description,
		txn.CreatedAt,
		txn.CreatedBy,
	}
}

func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	if _, err := tx.Exec(ctx, insertTransactionQuery, transactionArgs(txn)...); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, operatorID, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{operatorID, userID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE operator_id = $1 AND user_id = $2`

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt, id)
		query += fmt.Sprintf(" AND (created_at, transaction_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.OperatorID,
			&m.UserID,
			&m.BookingID,
			&m.TransferID,
			&m.Amount,
			&m.BalanceAfter,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, apperrors.ErrNotFound
			}
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var token *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		encoded := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		token = &encoded
	}
	return txns, token, nil
}
