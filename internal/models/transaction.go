package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of an immutable ledger entry.
// Rows in this table are insert-only.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	OperatorID    string          `db:"operator_id"`
	UserID        string          `db:"user_id"`
	BookingID     sql.NullString  `db:"booking_id"`
	TransferID    sql.NullString  `db:"transfer_id"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
