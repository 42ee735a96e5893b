package pgsql

import (
	"context"
	"database/sql"
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

type PgxBookingRepository struct {
	BaseRepository
	userRepo portsrepo.UserRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
}

func newPgxBookingRepository(db *pgxpool.Pool, userRepo portsrepo.UserRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: db},
		userRepo:       userRepo,
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func toDomainBooking(m models.Booking) domain.Booking {
	b := domain.Booking{
		BookingID:         m.BookingID,
		OperatorID:        m.OperatorID,
		BookingNumber:     m.BookingNumber,
		Sequence:          m.Sequence,
		LRType:            domain.LRType(m.LRType),
		Status:            domain.BookingStatus(m.Status),
		SenderName:        m.SenderName,
		SenderPhone:       m.SenderPhone,
		ReceiverName:      m.ReceiverName,
		ReceiverPhone:     m.ReceiverPhone,
		FromBranchID:      m.FromBranchID,
		ToBranchID:        m.ToBranchID,
		FreightCharge:     m.FreightCharge,
		LoadingCharge:     m.LoadingCharge,
		UnloadingCharge:   m.UnloadingCharge,
		OtherCharge:       m.OtherCharge,
		TotalAmountCharge: m.TotalAmountCharge,
		BookingDate:       m.BookingDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.VehicleID.Valid {
		vehicleID := m.VehicleID.String
		b.VehicleID = &vehicleID
	}
	if m.DeliveredAt.Valid {
		deliveredAt := m.DeliveredAt.Time
		b.DeliveredAt = &deliveredAt
	}
	return b
}

const bookingColumns = `booking_id, operator_id, booking_number, sequence, lr_type, status, sender_name, sender_phone, receiver_name, receiver_phone, from_branch_id, to_branch_id, vehicle_id, freight_charge, loading_charge, unloading_charge, other_charge, total_amount_charge, booking_date, delivered_at, created_at, created_by, last_updated_at, last_updated_by`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.OperatorID,
		&m.BookingNumber,
		&m.Sequence,
		&m.LRType,
		&m.Status,
		&m.SenderName,
		&m.SenderPhone,
		&m.ReceiverName,
		&m.ReceiverPhone,
		&m.FromBranchID,
		&m.ToBranchID,
		&m.VehicleID,
		&m.FreightCharge,
		&m.LoadingCharge,
		&m.UnloadingCharge,
		&m.OtherCharge,
		&m.TotalAmountCharge,
		&m.BookingDate,
		&m.DeliveredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan booking row: %w", err)
	}
	b := toDomainBooking(m)
	return &b, nil
}

// SaveBooking inserts the booking. When applyCharge is set the booking user's cargo
// balance is credited and the ledger entry appended inside the same transaction, so
// a PAID booking either exists with its charge applied or not at all.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking, applyCharge bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var vehicleID sql.NullString
	if booking.VehicleID != nil {
		vehicleID = sql.NullString{String: *booking.VehicleID, Valid: true}
	}

	insertQuery := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, insertQuery,
		booking.BookingID,
		booking.OperatorID,
		booking.BookingNumber,
		booking.Sequence,
		string(booking.LRType),
		string(booking.Status),
		booking.SenderName,
		booking.SenderPhone,
		booking.ReceiverName,
		booking.ReceiverPhone,
		booking.FromBranchID,
		booking.ToBranchID,
		vehicleID,
		booking.FreightCharge,
		booking.LoadingCharge,
		booking.UnloadingCharge,
		booking.OtherCharge,
		booking.TotalAmountCharge,
		booking.BookingDate,
		nil,
		booking.CreatedAt,
		booking.CreatedBy,
		booking.LastUpdatedAt,
		booking.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert booking %s: %w", booking.BookingID, err)
	}

	if applyCharge {
		userID := booking.CreatedBy
		locked, err := r.userRepo.FindUsersByIDsForUpdate(ctx, tx, []string{userID})
		if err != nil {
			return err
		}

		deltas := map[string]decimal.Decimal{userID: booking.TotalAmountCharge}
		if err := r.userRepo.UpdateUserBalancesInTx(ctx, tx, deltas, userID, booking.CreatedAt); err != nil {
			return err
		}

		bookingID := booking.BookingID
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			OperatorID:    booking.OperatorID,
			UserID:        userID,
			BookingID:     &bookingID,
			Amount:        booking.TotalAmountCharge,
			BalanceAfter:  locked[userID].CargoBalance.Add(booking.TotalAmountCharge),
			Description:   fmt.Sprintf("Booking charge %s", booking.BookingNumber),
			CreatedAt:     booking.CreatedAt,
			CreatedBy:     userID,
		}
		if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`
	return scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
}

func (r *PgxBookingRepository) ListBookingsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string, status *domain.BookingStatus) ([]domain.Booking, *string, error) {
	args := []any{operatorID}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE operator_id = $1`

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
		query += fmt.Sprintf(" AND (created_at, booking_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, booking_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var token *string
	if len(bookings) > limit {
		bookings = bookings[:limit]
		last := bookings[len(bookings)-1]
		encoded := pagination.EncodeCursor(last.CreatedAt, last.BookingID)
		token = &encoded
	}
	return bookings, token, nil
}

// SumPaidBookingCharges sums the charges of the user's PAID bookings on a calendar
// date. Status is irrelevant: a PAID charge is applied at creation and never
// reversed, so cancelled bookings still count. A day without bookings yields zero.
func (r *PgxBookingRepository) SumPaidBookingCharges(ctx context.Context, operatorID, userID string, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount_charge), 0)
		FROM bookings
		WHERE operator_id = $1
		  AND created_by = $2
		  AND lr_type = 'PAID'
		  AND booking_date::date = $3::date;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, operatorID, userID, date).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum booking charges for user %s: %w", userID, err)
	}
	return total, nil
}

func (r *PgxBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, deliveredAt *time.Time, updatedBy string, now time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, delivered_at = COALESCE($3, delivered_at), last_updated_at = $4, last_updated_by = $5
		WHERE booking_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, bookingID, string(status), deliveredAt, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of booking %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SettleDelivery flips the booking to DELIVERED and applies the collection charge in
// one database transaction:
//
//  1. conditional UPDATE guarded on ARRIVED; zero rows means the booking is missing
//     or another request moved it first,
//  2. lock the delivering user's row,
//  3. credit the booking total to their cargo balance,
//  4. append the ledger entry recording the new balance.
//
// Any failure rolls everything back, leaving the booking ARRIVED and the balance
// untouched, so the delivery can be retried.
func (r *PgxBookingRepository) SettleDelivery(ctx context.Context, booking domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	statusQuery := `
		UPDATE bookings
		SET status = 'DELIVERED', delivered_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE booking_id = $1 AND status = 'ARRIVED';
	`
	tag, err := tx.Exec(ctx, statusQuery, booking.BookingID, deliveredAt, deliveredBy)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to deliver booking %s: %w", booking.BookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return decimal.Zero, r.arrivedGuardError(ctx, booking.BookingID)
	}

	locked, err := r.userRepo.FindUsersByIDsForUpdate(ctx, tx, []string{deliveredBy})
	if err != nil {
		return decimal.Zero, err
	}

	deltas := map[string]decimal.Decimal{deliveredBy: booking.TotalAmountCharge}
	if err := r.userRepo.UpdateUserBalancesInTx(ctx, tx, deltas, deliveredBy, deliveredAt); err != nil {
		return decimal.Zero, err
	}

	bookingID := booking.BookingID
	newBalance := locked[deliveredBy].CargoBalance.Add(booking.TotalAmountCharge)
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OperatorID:    booking.OperatorID,
		UserID:        deliveredBy,
		BookingID:     &bookingID,
		Amount:        booking.TotalAmountCharge,
		BalanceAfter:  newBalance,
		Description:   fmt.Sprintf("Delivery charge %s", booking.BookingNumber),
		CreatedAt:     deliveredAt,
		CreatedBy:     deliveredBy,
	}
	if err := r.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// arrivedGuardError distinguishes "row missing" from "row no longer ARRIVED" after
// the delivery guard matched nothing.
func (r *PgxBookingRepository) arrivedGuardError(ctx context.Context, bookingID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM bookings WHERE booking_id = $1;`, bookingID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to inspect booking %s: %w", bookingID, err)
	}
	return fmt.Errorf("%w: booking %s is %s", apperrors.ErrInvalidStatus, bookingID, status)
}

func (r *PgxBookingRepository) AssignVehicle(ctx context.Context, bookingID string, vehicleID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE bookings
		SET vehicle_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE booking_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, bookingID, vehicleID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to assign vehicle to booking %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
