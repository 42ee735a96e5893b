package dto

import (
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateVehicleRequest defines the data needed to register a vehicle.
type CreateVehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	VehicleType        string `json:"vehicleType" binding:"required"`
	CapacityKg         int64  `json:"capacityKg" binding:"omitempty,gt=0"`
	DriverName         string `json:"driverName"`
	DriverPhone        string `json:"driverPhone"`
}

// UpdateVehicleRequest defines the fields that may be updated on a vehicle.
type UpdateVehicleRequest struct {
	VehicleType *string `json:"vehicleType"`
	CapacityKg  *int64  `json:"capacityKg" binding:"omitempty,gt=0"`
	DriverName  *string `json:"driverName"`
	DriverPhone *string `json:"driverPhone"`
	IsActive    *bool   `json:"isActive"`
}

// VehicleResponse defines the data returned for a vehicle.
type VehicleResponse struct {
	VehicleID          string    `json:"vehicleID"`
	OperatorID         string    `json:"operatorID"`
	RegistrationNumber string    `json:"registrationNumber"`
	VehicleType        string    `json:"vehicleType"`
	CapacityKg         int64     `json:"capacityKg"`
	DriverName         string    `json:"driverName"`
	DriverPhone        string    `json:"driverPhone"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToVehicleResponse converts a domain.Vehicle to its response DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:          v.VehicleID,
		OperatorID:         v.OperatorID,
		RegistrationNumber: v.RegistrationNumber,
		VehicleType:        v.VehicleType,
		CapacityKg:         v.CapacityKg,
		DriverName:         v.DriverName,
		DriverPhone:        v.DriverPhone,
		IsActive:           v.IsActive,
		CreatedAt:          v.CreatedAt,
	}
}

// ToVehicleResponses converts a slice of vehicles.
func ToVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	res := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		res[i] = ToVehicleResponse(&vehicles[i])
	}
	return res
}

// ListVehiclesResponse wraps the list of vehicles.
type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
