package domain

// Branch represents a physical office/godown of an operator. Bookings reference a
// branch as origin and destination.
type Branch struct {
	BranchID   string `json:"branchID"` // Primary Key (UUID)
	OperatorID string `json:"operatorID"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
