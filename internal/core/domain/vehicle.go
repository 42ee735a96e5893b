package domain

// Vehicle represents a truck or other carrier owned/contracted by an operator.
type Vehicle struct {
	VehicleID          string `json:"vehicleID"` // Primary Key (UUID)
	OperatorID         string `json:"operatorID"`
	RegistrationNumber string `json:"registrationNumber"`
	VehicleType        string `json:"vehicleType"` // e.g. TRUCK, TEMPO, CONTAINER
	CapacityKg         int64  `json:"capacityKg"`
	DriverName         string `json:"driverName"`
	DriverPhone        string `json:"driverPhone"`
	IsActive           bool   `json:"isActive"`
	AuditFields
}
