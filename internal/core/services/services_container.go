package services

import (
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Operator = NewOperatorService(repos.OperatorRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Branch = NewBranchService(repos.BranchRepo)
	container.Vehicle = NewVehicleService(repos.VehicleRepo)

	// The ledger owns every balance movement; booking and transfer services route
	// their charges through it.
	container.Ledger = NewLedgerService(repos.UserRepo, repos.BookingRepo, repos.TransferRepo, repos.TransactionRepo)

	container.Booking = NewBookingService(repos.BookingRepo, container.Operator, container.Branch, container.Vehicle, container.Ledger)
	container.Transfer = NewTransferService(repos.TransferRepo, container.User, container.Ledger)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.Token = NewTokenService(cfg, container.User)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.OperatorSvcFacade = (*operatorService)(nil)
	_ portssvc.BookingSvcFacade  = (*bookingService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.TransferSvcFacade = (*transferService)(nil)
)
