package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable, append-only record of a balance-affecting event
// (booking charge or approved transfer). It stores the user's balance after the
// event for audit and history display. Transactions are never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	OperatorID    string          `json:"operatorID"`
	UserID        string          `json:"userID"`              // User whose balance changed
	BookingID     *string         `json:"bookingID,omitempty"`  // Set for booking charges
	TransferID    *string         `json:"transferID,omitempty"` // Set for approved transfers
	Amount        decimal.Decimal `json:"amount"`              // Signed delta applied to the balance
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`        // Resulting balance after the event
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
