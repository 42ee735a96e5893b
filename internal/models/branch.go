package models

// Branch is the database representation of an operator office/godown.
type Branch struct {
	BranchID   string `db:"branch_id"`
	OperatorID string `db:"operator_id"`
	Name       string `db:"name"`
	City       string `db:"city"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
