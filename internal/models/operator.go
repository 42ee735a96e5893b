package models

// Operator is the database representation of a tenant.
// payment_methods is stored as a text[] column.
type Operator struct {
	OperatorID      string   `db:"operator_id"`
	Name            string   `db:"name"`
	Code            string   `db:"code"`
	BookingSequence int64    `db:"booking_sequence"`
	PaymentMethods  []string `db:"payment_methods"`
	IsActive        bool     `db:"is_active"`
	AuditFields
}
