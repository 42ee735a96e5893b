package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus is the approval state of a cash transfer. The only legal moves are
// PENDING -> APPROVED and PENDING -> REJECTED; both targets are terminal.
type TransferStatus string

const (
	TransferPending  TransferStatus = "PENDING"
	TransferApproved TransferStatus = "APPROVED"
	TransferRejected TransferStatus = "REJECTED"
)

// CashTransfer is a request to move cargo balance from one user to another, subject
// to approval. Balances are only touched when the transfer is approved.
type CashTransfer struct {
	TransferID string          `json:"transferID"` // Primary Key (UUID)
	OperatorID string          `json:"operatorID"`
	FromUserID string          `json:"fromUserID"`
	ToUserID   string          `json:"toUserID"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	Status     TransferStatus  `json:"status"`
	ResolvedBy *string         `json:"resolvedBy,omitempty"` // User who approved/rejected
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
	AuditFields
}

// IsSettled reports whether the transfer has left PENDING and is therefore immutable.
func (t CashTransfer) IsSettled() bool {
	return t.Status != TransferPending
}
