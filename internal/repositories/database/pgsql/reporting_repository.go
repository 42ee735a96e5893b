package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) BookingCountsByStatus(ctx context.Context, operatorID string, from, to time.Time) ([]domain.BookingStatusCount, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount_charge), 0)
		FROM bookings
		WHERE operator_id = $1 AND booking_date BETWEEN $2 AND $3
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.db.Query(ctx, query, operatorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var counts []domain.BookingStatusCount
	for rows.Next() {
		var c domain.BookingStatusCount
		var status string
		if err := rows.Scan(&status, &c.Count, &c.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		c.Status = domain.BookingStatus(status)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PgxReportingRepository) DeliveredBookings(ctx context.Context, operatorID string, from, to time.Time) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE operator_id = $1 AND status = 'DELIVERED' AND delivered_at BETWEEN $2 AND $3
		ORDER BY delivered_at;
	`
	rows, err := r.db.Query(ctx, query, operatorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivered bookings for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PgxReportingRepository) RevenueByLRType(ctx context.Context, operatorID string, from, to time.Time) (*domain.RevenueSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(total_amount_charge) FILTER (WHERE lr_type = 'PAID'), 0),
			COALESCE(SUM(total_amount_charge) FILTER (WHERE lr_type = 'TO_PAY'), 0),
			COUNT(*)
		FROM bookings
		WHERE operator_id = $1 AND status <> 'CANCELLED' AND booking_date BETWEEN $2 AND $3;
	`
	var summary domain.RevenueSummary
	err := r.db.QueryRow(ctx, query, operatorID, from, to).Scan(&summary.PaidTotal, &summary.ToPayTotal, &summary.BookingCount)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue for operator %s: %w", operatorID, err)
	}
	return &summary, nil
}

// HandlingChargesByBranch attributes loading charges to the origin branch and
// unloading charges to the destination branch, then merges the two per branch.
func (r *PgxReportingRepository) HandlingChargesByBranch(ctx context.Context, operatorID string, from, to time.Time) ([]domain.BranchChargeRow, error) {
	query := `
		WITH loading AS (
			SELECT from_branch_id AS branch_id, COALESCE(SUM(loading_charge), 0) AS total, COUNT(*) AS cnt
			FROM bookings
			WHERE operator_id = $1 AND status <> 'CANCELLED' AND booking_date BETWEEN $2 AND $3
			GROUP BY from_branch_id
		), unloading AS (
			SELECT to_branch_id AS branch_id, COALESCE(SUM(unloading_charge), 0) AS total, COUNT(*) AS cnt
			FROM bookings
			WHERE operator_id = $1 AND status <> 'CANCELLED' AND booking_date BETWEEN $2 AND $3
			GROUP BY to_branch_id
		)
		SELECT b.branch_id, b.name,
			COALESCE(l.total, 0), COALESCE(u.total, 0),
			COALESCE(l.cnt, 0) + COALESCE(u.cnt, 0)
		FROM branches b
		LEFT JOIN loading l ON l.branch_id = b.branch_id
		LEFT JOIN unloading u ON u.branch_id = b.branch_id
		WHERE b.operator_id = $1
		ORDER BY b.name;
	`
	rows, err := r.db.Query(ctx, query, operatorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum handling charges for operator %s: %w", operatorID, err)
	}
	defer rows.Close()

	var rowsOut []domain.BranchChargeRow
	for rows.Next() {
		var row domain.BranchChargeRow
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.LoadingTotal, &row.UnloadingTotal, &row.BookingCount); err != nil {
			return nil, fmt.Errorf("failed to scan branch charge row: %w", err)
		}
		rowsOut = append(rowsOut, row)
	}
	return rowsOut, rows.Err()
}
