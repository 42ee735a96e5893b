package repositories

// RepositoryProvider bundles every repository implementation so the service layer can
// be wired from a single value.
type RepositoryProvider struct {
	OperatorRepo    OperatorRepositoryFacade
	UserRepo        UserRepositoryFacade
	BranchRepo      BranchRepositoryFacade
	VehicleRepo     VehicleRepositoryFacade
	BookingRepo     BookingRepositoryFacade
	TransferRepo    TransferRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
}
