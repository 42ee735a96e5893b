package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
)

// BookingStatus is the lifecycle state of a shipment record.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "BOOKED"
	StatusInTransit BookingStatus = "IN_TRANSIT"
	StatusArrived   BookingStatus = "ARRIVED"
	StatusDelivered BookingStatus = "DELIVERED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// LRType is the payment arrangement flag on a booking: settled at origin (PAID) or
// collected on delivery (TO_PAY).
type LRType string

const (
	LRPaid  LRType = "PAID"
	LRToPay LRType = "TO_PAY"
)

// bookingTransitions is the allowed transition table. Cancellation is permitted from
// any state prior to delivery; DELIVERED and CANCELLED are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusBooked:    {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusArrived, StatusCancelled},
	StatusArrived:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusBooked, StatusInTransit, StatusArrived, StatusDelivered, StatusCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: unrecognized booking status %q", apperrors.ErrInvalidStatus, s)
}

// CanTransition reports whether moving from -> to is a legal booking transition.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidStatus when from -> to is not in the table.
func ValidateTransition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", apperrors.ErrInvalidStatus, from, to)
	}
	return nil
}

// FormatBookingNumber renders the human-readable booking identifier:
// payment-type prefix, 8-digit date and the zero-padded operator sequence,
// e.g. "P-20250609-0006". Pure function; uniqueness is guaranteed entirely by the
// caller supplying a unique sequence value.
func FormatBookingNumber(paymentPrefix string, date time.Time, sequence int64) string {
	return fmt.Sprintf("%s-%s-%04d", paymentPrefix, date.Format("20060102"), sequence)
}

// PaymentPrefix maps the LR type to the single-letter prefix used in booking numbers.
func (t LRType) PaymentPrefix() string {
	if t == LRToPay {
		return "T"
	}
	return "P"
}

// Booking represents a shipment record (an LR) belonging to exactly one operator.
type Booking struct {
	BookingID     string        `json:"bookingID"` // Primary Key (UUID)
	OperatorID    string        `json:"operatorID"`
	BookingNumber string        `json:"bookingNumber"` // Formatted display identifier, unique per operator
	Sequence      int64         `json:"sequence"`      // Operator sequence value used to mint BookingNumber
	LRType        LRType        `json:"lrType"`
	Status        BookingStatus `json:"status"`

	SenderName    string `json:"senderName"`
	SenderPhone   string `json:"senderPhone"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`

	FromBranchID string  `json:"fromBranchID"`
	ToBranchID   string  `json:"toBranchID"`
	VehicleID    *string `json:"vehicleID,omitempty"` // Assigned vehicle, optional

	FreightCharge     decimal.Decimal `json:"freightCharge"`
	LoadingCharge     decimal.Decimal `json:"loadingCharge"`
	UnloadingCharge   decimal.Decimal `json:"unloadingCharge"`
	OtherCharge       decimal.Decimal `json:"otherCharge"`
	TotalAmountCharge decimal.Decimal `json:"totalAmountCharge"` // Sum of the four charge fields

	BookingDate time.Time  `json:"bookingDate"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	AuditFields
}

// TotalCharges computes the booking total from its charge fields.
func TotalCharges(freight, loading, unloading, other decimal.Decimal) decimal.Decimal {
	return freight.Add(loading).Add(unloading).Add(other)
}
