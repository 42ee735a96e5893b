package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// vehicleService manages an operator's vehicle fleet.
type vehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepositoryFacade) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

// CreateVehicle registers a vehicle under the operator. The registration number must
// be unique within the operator.
func (s *vehicleService) CreateVehicle(ctx context.Context, operatorID string, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:          uuid.NewString(),
		OperatorID:         operatorID,
		RegistrationNumber: req.RegistrationNumber,
		VehicleType:        req.VehicleType,
		CapacityKg:         req.CapacityKg,
		DriverName:         req.DriverName,
		DriverPhone:        req.DriverPhone,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to save vehicle", slog.String("registration", req.RegistrationNumber))
		return nil, err
	}
	return &vehicle, nil
}

// GetVehicleByID retrieves a vehicle and enforces the operator scope.
func (s *vehicleService) GetVehicleByID(ctx context.Context, operatorID string, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return vehicle, nil
}

// ListVehicles retrieves an operator's vehicles.
func (s *vehicleService) ListVehicles(ctx context.Context, operatorID string, limit, offset int) ([]domain.Vehicle, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.vehicleRepo.ListVehiclesByOperator(ctx, operatorID, limit, offset)
}

// UpdateVehicle applies partial updates to a vehicle.
func (s *vehicleService) UpdateVehicle(ctx context.Context, operatorID string, vehicleID string, req dto.UpdateVehicleRequest, requestingUserID string) (*domain.Vehicle, error) {
	vehicle, err := s.GetVehicleByID(ctx, operatorID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.VehicleType != nil {
		vehicle.VehicleType = *req.VehicleType
	}
	if req.CapacityKg != nil {
		vehicle.CapacityKg = *req.CapacityKg
	}
	if req.DriverName != nil {
		vehicle.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		vehicle.DriverPhone = *req.DriverPhone
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	vehicle.LastUpdatedAt = time.Now()
	vehicle.LastUpdatedBy = requestingUserID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, err
	}
	return vehicle, nil
}

// DeactivateVehicle marks a vehicle inactive. Bookings already carrying it keep the
// reference.
func (s *vehicleService) DeactivateVehicle(ctx context.Context, operatorID string, vehicleID string, requestingUserID string) error {
	if _, err := s.GetVehicleByID(ctx, operatorID, vehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.DeactivateVehicle(ctx, vehicleID, requestingUserID, time.Now())
}
