package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// ledgerService owns every cargo balance movement. Each movement leaves an immutable
// transaction entry recording the delta and the resulting balance.
type ledgerService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	bookingRepo  portsrepo.BookingRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	userRepo portsrepo.UserRepositoryFacade,
	bookingRepo portsrepo.BookingRepositoryFacade,
	transferRepo portsrepo.TransferRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		transferRepo: transferRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ApplyDeliveryCharge settles a TO_PAY delivery. The repository performs the status
// flip, the balance credit and the ledger insert in one database transaction, so a
// failure leaves the booking ARRIVED with no balance movement and the delivery can
// be retried.
func (s *ledgerService) ApplyDeliveryCharge(ctx context.Context, booking *domain.Booking, deliveredBy string, deliveredAt time.Time) (decimal.Decimal, error) {
	if booking.TotalAmountCharge.IsNegative() {
		return decimal.Zero, apperrors.ErrValidation
	}

	newBalance, err := s.bookingRepo.SettleDelivery(ctx, *booking, deliveredBy, deliveredAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to settle delivery charge",
			slog.String("user_id", deliveredBy),
			slog.String("booking_id", booking.BookingID),
		)
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Delivery charge applied",
		slog.String("booking_id", booking.BookingID),
		slog.String("amount", booking.TotalAmountCharge.String()),
	)
	return newBalance, nil
}

// ApplyTransfer settles an approved transfer. The repository performs the status
// flip, both balance updates and the ledger insert in one database transaction, so a
// failed balance check leaves the transfer PENDING and both balances untouched.
func (s *ledgerService) ApplyTransfer(ctx context.Context, transfer domain.CashTransfer, resolvedBy string) error {
	if !transfer.Amount.IsPositive() {
		return apperrors.ErrValidation
	}

	if err := s.transferRepo.SettleTransfer(ctx, transfer, resolvedBy, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to settle transfer",
			slog.String("transfer_id", transfer.TransferID),
			slog.String("from_user", transfer.FromUserID),
			slog.String("to_user", transfer.ToUserID),
		)
		return err
	}

	s.LogInfo(ctx, "Transfer settled",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", transfer.Amount.String()),
	)
	return nil
}

// GetDailyBalance derives the user's collection total for a calendar day from their
// PAID bookings. It is computed on demand and never stored.
func (s *ledgerService) GetDailyBalance(ctx context.Context, operatorID string, userID string, date time.Time) (decimal.Decimal, error) {
	// The user must exist even when the sum would be zero.
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return decimal.Zero, err
	}
	return s.bookingRepo.SumPaidBookingCharges(ctx, operatorID, userID, date)
}

// ListUserTransactions retrieves a token-paginated page of the user's ledger history.
func (s *ledgerService) ListUserTransactions(ctx context.Context, operatorID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	txns, nextToken, err := s.txnRepo.ListTransactionsByUser(ctx, operatorID, userID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
