package services

import (
	"context"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// VehicleReaderSvc defines read operations for vehicle data
type VehicleReaderSvc interface {
	// GetVehicleByID retrieves a vehicle, scoped to the operator.
	GetVehicleByID(ctx context.Context, operatorID string, vehicleID string) (*domain.Vehicle, error)

	// ListVehicles retrieves an operator's vehicles.
	ListVehicles(ctx context.Context, operatorID string, limit, offset int) ([]domain.Vehicle, error)
}

// VehicleWriterSvc defines write operations for vehicle data
type VehicleWriterSvc interface {
	// CreateVehicle registers a new vehicle under the operator.
	CreateVehicle(ctx context.Context, operatorID string, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error)

	// UpdateVehicle updates vehicle details.
	UpdateVehicle(ctx context.Context, operatorID string, vehicleID string, req dto.UpdateVehicleRequest, requestingUserID string) (*domain.Vehicle, error)

	// DeactivateVehicle marks a vehicle inactive.
	DeactivateVehicle(ctx context.Context, operatorID string, vehicleID string, requestingUserID string) error
}

// VehicleSvcFacade combines all vehicle-related service interfaces
type VehicleSvcFacade interface {
	VehicleReaderSvc
	VehicleWriterSvc
}
