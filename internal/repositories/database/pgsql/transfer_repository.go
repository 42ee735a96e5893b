package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	"github.com/swiftlr/cargo_booking_app/internal/models"
	"github.com/swiftlr/cargo_booking_app/internal/utils/pagination"
)

type PgxTransferRepository struct {
	BaseRepository
	userRepo portsrepo.UserRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
}

func newPgxTransferRepository(db *pgxpool.Pool, userRepo portsrepo.UserRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: db},
		userRepo:       userRepo,
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

func toDomainTransfer(m models.CashTransfer) domain.CashTransfer {
	t := domain.CashTransfer{
		TransferID: m.TransferID,
		OperatorID: m.OperatorID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		Amount:     m.Amount,
		Note:       m.Note,
		Status:     domain.TransferStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.ResolvedBy.Valid {
		resolvedBy := m.ResolvedBy.String
		t.ResolvedBy = &resolvedBy
	}
	if m.ResolvedAt.Valid {
		resolvedAt := m.ResolvedAt.Time
		t.ResolvedAt = &resolvedAt
	}
	return t
}

const transferColumns = `transfer_id, operator_id, from_user_id, to_user_id, amount, note, status, resolved_by, resolved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanTransfer(row pgx.Row) (*domain.CashTransfer, error) {
	var m models.CashTransfer
	err := row.Scan(
		&m.TransferID,
		&m.OperatorID,
		&m.FromUserID,
		&m.ToUserID,
		&m.Amount,
		&m.Note,
		&m.Status,
		&m.ResolvedBy,
		&m.ResolvedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transfer row: %w", err)
	}
	t := toDomainTransfer(m)
	return &t, nil
}

func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.CashTransfer) error {
	query := `
		INSERT INTO cash_transfers (transfer_id, operator_id, from_user_id, to_user_id, amount, note, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		transfer.TransferID,
		transfer.OperatorID,
		transfer.FromUserID,
		transfer.ToUserID,
		transfer.Amount,
		transfer.Note,
		string(transfer.Status),
		transfer.CreatedAt,
		transfer.CreatedBy,
		transfer.LastUpdatedAt,
		transfer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}

func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.CashTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM cash_transfers WHERE transfer_id = $1;`
	return scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
}

func (r *PgxTransferRepository) ListTransfersByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.TransferStatus) ([]domain.CashTransfer, *string, error) {
	args := []any{operatorID}
	query := `SELECT ` + transferColumns + ` FROM cash_transfers WHERE operator_id = $1`

	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt, id)
		query += fmt.Sprintf(" AND (created_at, transfer_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transfer_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transfers for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var transfers []domain.CashTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, nil, err
		}
		transfers = append(transfers, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var token *string
	if len(transfers) > limit {
		transfers = transfers[:limit]
		last := transfers[len(transfers)-1]
		encoded := pagination.EncodeCursor(last.CreatedAt, last.TransferID)
		token = &encoded
	}
	return transfers, token, nil
}

// UpdateTransferDetails amends amount/note. The status guard sits inside the UPDATE
// itself, so a transfer settled by a concurrent request cannot be modified.
func (r *PgxTransferRepository) UpdateTransferDetails(ctx context.Context, transfer domain.CashTransfer) error {
	query := `
		UPDATE cash_transfers
		SET amount = $2, note = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transfer_id = $1 AND status = 'PENDING';
	`
	tag, err := r.Pool.Exec(ctx, query,
		transfer.TransferID,
		transfer.Amount,
		transfer.Note,
		transfer.LastUpdatedAt,
		transfer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", transfer.TransferID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.pendingGuardError(ctx, transfer.TransferID)
	}
	return nil
}

func (r *PgxTransferRepository) DeleteTransferPending(ctx context.Context, transferID string) error {
	query := `DELETE FROM cash_transfers WHERE transfer_id = $1 AND status = 'PENDING';`
	tag, err := r.Pool.Exec(ctx, query, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.pendingGuardError(ctx, transferID)
	}
	return nil
}

// SettleTransfer performs the entire approval in one database transaction:
//
//  1. flip the status with a conditional UPDATE guarded on PENDING, reading back the
//     row's amount; zero rows means another request settled it first,
//  2. lock both user rows (sorted order) and check the source balance,
//  3. apply both balance deltas,
//  4. append the ledger entry recording the destination user's new balance.
//
// The amount moved is the one returned by the status flip, not the caller's copy, so
// an edit that lands between the caller's read and the flip cannot desync the
// settled row from the balances. Any failure rolls everything back, leaving the
// transfer PENDING and both balances untouched.
func (r *PgxTransferRepository) SettleTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string, resolvedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	statusQuery := `
		UPDATE cash_transfers
		SET status = 'APPROVED', resolved_by = $2, resolved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE transfer_id = $1 AND status = 'PENDING'
		RETURNING amount;
	`
	var amount decimal.Decimal
	if err := tx.QueryRow(ctx, statusQuery, transfer.TransferID, resolvedBy, resolvedAt).Scan(&amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.pendingGuardError(ctx, transfer.TransferID)
		}
		return fmt.Errorf("failed to approve transfer %s: %w", transfer.TransferID, err)
	}

	locked, err := r.userRepo.FindUsersByIDsForUpdate(ctx, tx, []string{transfer.FromUserID, transfer.ToUserID})
	if err != nil {
		return err
	}

	fromUser := locked[transfer.FromUserID]
	if fromUser.CargoBalance.LessThan(amount) {
		return fmt.Errorf("%w: user %s holds %s, transfer needs %s",
			apperrors.ErrInsufficientBalance, transfer.FromUserID, fromUser.CargoBalance.String(), amount.String())
	}

	deltas := map[string]decimal.Decimal{
		transfer.FromUserID: amount.Neg(),
		transfer.ToUserID:   amount,
	}
	if err := r.userRepo.UpdateUserBalancesInTx(ctx, tx, deltas, resolvedBy, resolvedAt); err != nil {
		return err
	}

	transferID := transfer.TransferID
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OperatorID:    transfer.OperatorID,
		UserID:        transfer.ToUserID,
		TransferID:    &transferID,
		Amount:        amount,
		BalanceAfter:  locked[transfer.ToUserID].CargoBalance.Add(amount),
		Description:   fmt.Sprintf("Cash transfer from %s", transfer.FromUserID),
		CreatedAt:     resolvedAt,
		CreatedBy:     resolvedBy,
	}
	if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransferRepository) MarkRejected(ctx context.Context, transferID string, resolvedBy string, resolvedAt time.Time) error {
	query := `
		UPDATE cash_transfers
		SET status = 'REJECTED', resolved_by = $2, resolved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE transfer_id = $1 AND status = 'PENDING';
	`
	tag, err := r.Pool.Exec(ctx, query, transferID, resolvedBy, resolvedAt)
	if err != nil {
		return fmt.Errorf("failed to reject transfer %s: %w", transferID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.pendingGuardError(ctx, transferID)
	}
	return nil
}

// pendingGuardError distinguishes "row missing" from "row already settled" after a
// PENDING-guarded statement matched nothing.
func (r *PgxTransferRepository) pendingGuardError(ctx context.Context, transferID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM cash_transfers WHERE transfer_id = $1;`, transferID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to inspect transfer %s: %w", transferID, err)
	}
	return apperrors.ErrAlreadyProcessed
}
