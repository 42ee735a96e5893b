package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger transaction entries.
type TransactionReader interface {
	// ListTransactionsByUser retrieves a token-paginated page of a user's ledger
	// entries, newest first.
	ListTransactionsByUser(ctx context.Context, operatorID, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for ledger transaction entries. Entries
// are append-only; there are no update or delete operations. Every entry commits in
// the same transaction as the balance movement it records.
type TransactionWriter interface {
	// SaveTransactionInTx appends a ledger entry inside a caller-owned transaction.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
