package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

func TestValidateOperatorCode(t *testing.T) {
	valid := []string{"ABC", "A1b", "XYZ", "Z99", "aB1"}
	for _, code := range valid {
		assert.NoError(t, domain.ValidateOperatorCode(code), "code %q", code)
	}

	// too short, too long, no uppercase, non-alphanumeric, whitespace, non-ASCII
	invalid := []string{"", "AB", "ABCD", "abc", "123", "A-1", "A B", "ÄBC"}
	for _, code := range invalid {
		err := domain.ValidateOperatorCode(code)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "code %q", code)
	}
}
