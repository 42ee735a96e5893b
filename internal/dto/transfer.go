package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// CreateTransferRequest defines the data needed to request a cash transfer.
type CreateTransferRequest struct {
	FromUserID string          `json:"fromUserID" binding:"required"`
	ToUserID   string          `json:"toUserID" binding:"required,nefield=FromUserID"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Note       string          `json:"note"`
}

// UpdateTransferRequest defines the fields that may be changed while a transfer is
// still pending. Settled transfers reject any update.
type UpdateTransferRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}

// TransferResponse defines the data returned for a cash transfer.
type TransferResponse struct {
	TransferID string                `json:"transferID"`
	OperatorID string                `json:"operatorID"`
	FromUserID string                `json:"fromUserID"`
	ToUserID   string                `json:"toUserID"`
	Amount     decimal.Decimal       `json:"amount"`
	Note       string                `json:"note"`
	Status     domain.TransferStatus `json:"status"`
	ResolvedBy *string               `json:"resolvedBy,omitempty"`
	ResolvedAt *time.Time            `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	CreatedBy  string                `json:"createdBy"`
}

// ToTransferResponse converts a domain.CashTransfer to its response DTO.
func ToTransferResponse(t *domain.CashTransfer) TransferResponse {
	return TransferResponse{
		TransferID: t.TransferID,
		OperatorID: t.OperatorID,
		FromUserID: t.FromUserID,
		ToUserID:   t.ToUserID,
		Amount:     t.Amount,
		Note:       t.Note,
		Status:     t.Status,
		ResolvedBy: t.ResolvedBy,
		ResolvedAt: t.ResolvedAt,
		CreatedAt:  t.CreatedAt,
		CreatedBy:  t.CreatedBy,
	}
}

// ToTransferResponses converts a slice of transfers.
func ToTransferResponses(transfers []domain.CashTransfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status"`
}

// ListTransfersResponse wraps a page of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// TransactionResponse defines the data returned for a ledger transaction entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	OperatorID    string          `json:"operatorID"`
	UserID        string          `json:"userID"`
	BookingID     *string         `json:"bookingID,omitempty"`
	TransferID    *string         `json:"transferID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		OperatorID:    txn.OperatorID,
		UserID:        txn.UserID,
		BookingID:     txn.BookingID,
		TransferID:    txn.TransferID,
		Amount:        txn.Amount,
		BalanceAfter:  txn.BalanceAfter,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing a user's transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
