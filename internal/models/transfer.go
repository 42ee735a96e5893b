package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// CashTransfer is the database representation of a balance transfer request.
type CashTransfer struct {
	TransferID string          `db:"transfer_id"`
	OperatorID string          `db:"operator_id"`
	FromUserID string          `db:"from_user_id"`
	ToUserID   string          `db:"to_user_id"`
	Amount     decimal.Decimal `db:"amount"`
	Note       string          `db:"note"`
	Status     string          `db:"status"`
	ResolvedBy sql.NullString  `db:"resolved_by"`
	ResolvedAt sql.NullTime    `db:"resolved_at"`
	AuditFields
}
