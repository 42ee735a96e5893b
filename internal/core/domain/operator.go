package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
)

// PaymentMethod identifies how a booking is settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentBank PaymentMethod = "BANK"
)

// Operator represents a tenant: an isolated transport company whose branches, users,
// vehicles, bookings and transfers are all scoped by OperatorID.
type Operator struct {
	OperatorID      string          `json:"operatorID"` // Primary Key (UUID)
	Name            string          `json:"name"`
	Code            string          `json:"code"`            // 3 alphanumeric chars, at least one uppercase letter
	BookingSequence int64           `json:"bookingSequence"` // Monotonic counter, incremented per booking, never reused
	PaymentMethods  []PaymentMethod `json:"paymentMethods"`  // Allowed settlement methods
	IsActive        bool            `json:"isActive"`
	AuditFields
}

var operatorCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3}$`)

// ValidateOperatorCode checks the tenant code format: exactly three alphanumeric
// characters containing at least one uppercase letter.
func ValidateOperatorCode(code string) error {
	if !operatorCodePattern.MatchString(code) {
		return fmt.Errorf("%w: operator code must be exactly 3 alphanumeric characters", apperrors.ErrValidation)
	}
	if !strings.ContainsAny(code, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return fmt.Errorf("%w: operator code must contain at least one uppercase letter", apperrors.ErrValidation)
	}
	return nil
}
