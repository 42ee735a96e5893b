package dto

import (
	"time"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateOperatorRequest defines the data needed to onboard a new operator (tenant).
type CreateOperatorRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Code           string                 `json:"code" binding:"required,operatorcode"`
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods" binding:"omitempty,dive,oneof=CASH UPI BANK"`
}

// UpdateOperatorRequest defines the fields that may be changed after onboarding.
// The code and booking sequence are immutable.
type UpdateOperatorRequest struct {
	Name           *string                 `json:"name"`
	PaymentMethods *[]domain.PaymentMethod `json:"paymentMethods" binding:"omitempty,dive,oneof=CASH UPI BANK"`
	IsActive       *bool                   `json:"isActive"`
}

// OperatorResponse defines the data returned for an operator.
type OperatorResponse struct {
	OperatorID      string                 `json:"operatorID"`
	Name            string                 `json:"name"`
	Code            string                 `json:"code"`
	BookingSequence int64                  `json:"bookingSequence"`
	PaymentMethods  []domain.PaymentMethod `json:"paymentMethods"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ToOperatorResponse converts a domain.Operator to its response DTO.
func ToOperatorResponse(op *domain.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID:      op.OperatorID,
		Name:            op.Name,
		Code:            op.Code,
		BookingSequence: op.BookingSequence,
		PaymentMethods:  op.PaymentMethods,
		IsActive:        op.IsActive,
		CreatedAt:       op.CreatedAt,
		LastUpdatedAt:   op.LastUpdatedAt,
	}
}
