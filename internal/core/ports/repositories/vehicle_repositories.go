package repositories

import (
	"context"
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// VehicleReader defines read operations for vehicle data.
type VehicleReader interface {
	// FindVehicleByID retrieves a vehicle by ID.
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListVehiclesByOperator retrieves the vehicles of an operator.
	ListVehiclesByOperator(ctx context.Context, operatorID string, limit, offset int) ([]domain.Vehicle, error)
}

// VehicleWriter defines write operations for vehicle data.
type VehicleWriter interface {
	// SaveVehicle persists a new vehicle. Returns ErrDuplicate when the registration
	// number already exists for the operator.
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// UpdateVehicle updates mutable vehicle fields.
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// DeactivateVehicle marks a vehicle inactive.
	DeactivateVehicle(ctx context.Context, vehicleID string, updatedBy string, now time.Time) error
}

// VehicleRepositoryFacade combines all vehicle repository interfaces.
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}
