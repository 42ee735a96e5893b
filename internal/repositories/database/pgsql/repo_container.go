package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared pool.
// The booking and transfer repositories take the user and transaction repositories
// so they can run balance updates and ledger writes inside their own transactions.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	txnRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OperatorRepo:    newPgxOperatorRepository(dbPool),
		UserRepo:        userRepo,
		BranchRepo:      newPgxBranchRepository(dbPool),
		VehicleRepo:     newPgxVehicleRepository(dbPool),
		BookingRepo:     newPgxBookingRepository(dbPool, userRepo, txnRepo),
		TransferRepo:    newPgxTransferRepository(dbPool, userRepo, txnRepo),
		TransactionRepo: txnRepo,
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
