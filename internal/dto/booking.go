package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateBookingRequest defines the data needed to create a shipment record.
// Amounts must be non-negative; the total is computed server side.
type CreateBookingRequest struct {
	LRType        domain.LRType `json:"lrType" binding:"required,oneof=PAID TO_PAY"`
	SenderName    string        `json:"senderName" binding:"required"`
	SenderPhone   string        `json:"senderPhone" binding:"required"`
	ReceiverName  string        `json:"receiverName" binding:"required"`
	ReceiverPhone string        `json:"receiverPhone" binding:"required"`
	FromBranchID  string        `json:"fromBranchID" binding:"required"`
	ToBranchID    string        `json:"toBranchID" binding:"required"`
	VehicleID     *string       `json:"vehicleID"`

	FreightCharge   decimal.Decimal `json:"freightCharge" binding:"required"`
	LoadingCharge   decimal.Decimal `json:"loadingCharge"`
	UnloadingCharge decimal.Decimal `json:"unloadingCharge"`
	OtherCharge     decimal.Decimal `json:"otherCharge"`

	BookingDate *time.Time `json:"bookingDate"` // Defaults to now when omitted
}

// UpdateBookingStatusRequest moves a booking through its lifecycle.
type UpdateBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
}

// AssignVehicleRequest attaches a vehicle to a booking.
type AssignVehicleRequest struct {
	VehicleID string `json:"vehicleID" binding:"required"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID     string               `json:"bookingID"`
	OperatorID    string               `json:"operatorID"`
	BookingNumber string               `json:"bookingNumber"`
	Sequence      int64                `json:"sequence"`
	LRType        domain.LRType        `json:"lrType"`
	Status        domain.BookingStatus `json:"status"`

	SenderName    string `json:"senderName"`
	SenderPhone   string `json:"senderPhone"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`

	FromBranchID string  `json:"fromBranchID"`
	ToBranchID   string  `json:"toBranchID"`
	VehicleID    *string `json:"vehicleID,omitempty"`

	FreightCharge     decimal.Decimal `json:"freightCharge"`
	LoadingCharge     decimal.Decimal `json:"loadingCharge"`
	UnloadingCharge   decimal.Decimal `json:"unloadingCharge"`
	OtherCharge       decimal.Decimal `json:"otherCharge"`
	TotalAmountCharge decimal.Decimal `json:"totalAmountCharge"`

	BookingDate time.Time  `json:"bookingDate"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:         b.BookingID,
		OperatorID:        b.OperatorID,
		BookingNumber:     b.BookingNumber,
		Sequence:          b.Sequence,
		LRType:            b.LRType,
		Status:            b.Status,
		SenderName:        b.SenderName,
		SenderPhone:       b.SenderPhone,
		ReceiverName:      b.ReceiverName,
		ReceiverPhone:     b.ReceiverPhone,
		FromBranchID:      b.FromBranchID,
		ToBranchID:        b.ToBranchID,
		VehicleID:         b.VehicleID,
		FreightCharge:     b.FreightCharge,
		LoadingCharge:     b.LoadingCharge,
		UnloadingCharge:   b.UnloadingCharge,
		OtherCharge:       b.OtherCharge,
		TotalAmountCharge: b.TotalAmountCharge,
		BookingDate:       b.BookingDate,
		DeliveredAt:       b.DeliveredAt,
		CreatedAt:         b.CreatedAt,
		CreatedBy:         b.CreatedBy,
	}
}

// ToBookingResponses converts a slice of bookings.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}

// ListBookingsParams defines query parameters for listing bookings with token pagination.
type ListBookingsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status"`
}

// ListBookingsResponse wraps a page of bookings plus the token for the next page.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}
