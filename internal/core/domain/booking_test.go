package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

func TestFormatBookingNumber(t *testing.T) {
	date := time.Date(2025, 6, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "P-20250609-0006", domain.FormatBookingNumber("P", date, 6))
	assert.Equal(t, "T-20250609-0123", domain.FormatBookingNumber("T", date, 123))
	// Sequences past four digits widen rather than truncate.
	assert.Equal(t, "P-20250609-12345", domain.FormatBookingNumber("P", date, 12345))
}

func TestFormatBookingNumberIsPure(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := domain.FormatBookingNumber("P", date, 42)
	second := domain.FormatBookingNumber("P", date, 42)
	assert.Equal(t, first, second)
}

func TestLRTypePaymentPrefix(t *testing.T) {
	assert.Equal(t, "P", domain.LRPaid.PaymentPrefix())
	assert.Equal(t, "T", domain.LRToPay.PaymentPrefix())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    domain.BookingStatus
		to      domain.BookingStatus
		allowed bool
	}{
		{domain.StatusBooked, domain.StatusInTransit, true},
		{domain.StatusBooked, domain.StatusCancelled, true},
		{domain.StatusBooked, domain.StatusDelivered, false},
		{domain.StatusInTransit, domain.StatusArrived, true},
		{domain.StatusInTransit, domain.StatusCancelled, true},
		{domain.StatusInTransit, domain.StatusBooked, false},
		{domain.StatusArrived, domain.StatusDelivered, true},
		{domain.StatusArrived, domain.StatusCancelled, true},
		{domain.StatusDelivered, domain.StatusCancelled, false},
		{domain.StatusDelivered, domain.StatusBooked, false},
		{domain.StatusCancelled, domain.StatusBooked, false},
		{domain.StatusCancelled, domain.StatusInTransit, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, domain.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, domain.ValidateTransition(domain.StatusBooked, domain.StatusInTransit))

	err := domain.ValidateTransition(domain.StatusDelivered, domain.StatusBooked)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestParseBookingStatus(t *testing.T) {
	status, err := domain.ParseBookingStatus("IN_TRANSIT")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, status)

	_, err = domain.ParseBookingStatus("SHIPPED")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// Lowercase is not accepted.
	_, err = domain.ParseBookingStatus("booked")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestTotalCharges(t *testing.T) {
	total := domain.TotalCharges(
		decimal.NewFromInt(100),
		decimal.NewFromInt(20),
		decimal.NewFromInt(15),
		decimal.RequireFromString("5.50"),
	)
	assert.True(t, total.Equal(decimal.RequireFromString("140.50")), "got %s", total)
}
