package models

// Vehicle is the database representation of a carrier.
type Vehicle struct {
	VehicleID          string `db:"vehicle_id"`
	OperatorID         string `db:"operator_id"`
	RegistrationNumber string `db:"registration_number"`
	VehicleType        string `db:"vehicle_type"`
	CapacityKg         int64  `db:"capacity_kg"`
	DriverName         string `db:"driver_name"`
	DriverPhone        string `db:"driver_phone"`
	IsActive           bool   `db:"is_active"`
	AuditFields
}
