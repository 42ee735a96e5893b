package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Booking is the database representation of a shipment record.
type Booking struct {
	BookingID     string `db:"booking_id"`
	OperatorID    string `db:"operator_id"`
	BookingNumber string `db:"booking_number"`
	Sequence      int64  `db:"sequence"`
	LRType        string `db:"lr_type"`
	Status        string `db:"status"`

	SenderName    string `db:"sender_name"`
	SenderPhone   string `db:"sender_phone"`
	ReceiverName  string `db:"receiver_name"`
	ReceiverPhone string `db:"receiver_phone"`

	FromBranchID string         `db:"from_branch_id"`
	ToBranchID   string         `db:"to_branch_id"`
	VehicleID    sql.NullString `db:"vehicle_id"`

	FreightCharge     decimal.Decimal `db:"freight_charge"`
	LoadingCharge     decimal.Decimal `db:"loading_charge"`
	UnloadingCharge   decimal.Decimal `db:"unloading_charge"`
	OtherCharge       decimal.Decimal `db:"other_charge"`
	TotalAmountCharge decimal.Decimal `db:"total_amount_charge"`

	BookingDate time.Time    `db:"booking_date"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
	AuditFields
}
