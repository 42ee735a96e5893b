package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// transferService manages the cash transfer approval workflow. Balance movement is
// delegated to the ledger service; this service owns validation, scoping and the
// PENDING-only mutation rules.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	userSvc      portssvc.UserReaderSvc
	ledgerSvc    portssvc.LedgerWriterSvc
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryFacade,
	userSvc portssvc.UserReaderSvc,
	ledgerSvc portssvc.LedgerWriterSvc,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		userSvc:      userSvc,
		ledgerSvc:    ledgerSvc,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer records a PENDING transfer request after checking both users exist
// under the operator. No balance check happens here; sufficiency is only enforced at
// approval time against the balance of that moment.
func (s *transferService) CreateTransfer(ctx context.Context, operatorID string, req dto.CreateTransferRequest, creatorUserID string) (*domain.CashTransfer, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrValidation
	}
	if req.FromUserID == req.ToUserID {
		return nil, apperrors.ErrValidation
	}

	for _, userID := range []string{req.FromUserID, req.ToUserID} {
		user, err := s.userSvc.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user.OperatorID != operatorID {
			return nil, apperrors.ErrNotFound
		}
	}

	now := time.Now()
	transfer := domain.CashTransfer{
		TransferID: uuid.NewString(),
		OperatorID: operatorID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
		Note:       req.Note,
		Status:     domain.TransferPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("from_user", req.FromUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer requested",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", transfer.Amount.String()),
	)
	return &transfer, nil
}

// GetTransferByID retrieves a transfer and enforces the operator scope.
func (s *transferService) GetTransferByID(ctx context.Context, operatorID string, transferID string) (*domain.CashTransfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.OperatorID != operatorID {
		return nil, apperrors.ErrNotFound
	}
	return transfer, nil
}

// ListTransfers retrieves a token-paginated page of an operator's transfers.
func (s *transferService) ListTransfers(ctx context.Context, operatorID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var statusFilter *domain.TransferStatus
	if params.Status != nil && *params.Status != "" {
		switch status := domain.TransferStatus(*params.Status); status {
		case domain.TransferPending, domain.TransferApproved, domain.TransferRejected:
			statusFilter = &status
		default:
			return nil, apperrors.ErrInvalidStatus
		}
	}

	transfers, nextToken, err := s.transferRepo.ListTransfersByOperator(ctx, operatorID, limit, params.NextToken, statusFilter)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransfersResponse{
		Transfers: dto.ToTransferResponses(transfers),
		NextToken: nextToken,
	}, nil
}

// UpdateTransfer amends the amount or note of a transfer that is still PENDING.
func (s *transferService) UpdateTransfer(ctx context.Context, operatorID string, transferID string, req dto.UpdateTransferRequest, requestingUserID string) (*domain.CashTransfer, error) {
	transfer, err := s.GetTransferByID(ctx, operatorID, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.IsSettled() {
		return nil, apperrors.ErrAlreadyProcessed
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.ErrValidation
		}
		transfer.Amount = *req.Amount
	}
	if req.Note != nil {
		transfer.Note = *req.Note
	}
	transfer.LastUpdatedAt = time.Now()
	transfer.LastUpdatedBy = requestingUserID

	// The repository re-checks the PENDING guard inside the UPDATE, so a transfer
	// settled between our read and this write still fails with ErrAlreadyProcessed.
	if err := s.transferRepo.UpdateTransferDetails(ctx, *transfer); err != nil {
		s.LogError(ctx, err, "Failed to update transfer", slog.String("transfer_id", transferID))
		return nil, err
	}
	return transfer, nil
}

// DeleteTransfer removes a transfer that is still PENDING.
func (s *transferService) DeleteTransfer(ctx context.Context, operatorID string, transferID string, requestingUserID string) error {
	transfer, err := s.GetTransferByID(ctx, operatorID, transferID)
	if err != nil {
		return err
	}
	if transfer.IsSettled() {
		return apperrors.ErrAlreadyProcessed
	}
	return s.transferRepo.DeleteTransferPending(ctx, transferID)
}

// ApproveTransfer settles a PENDING transfer through the ledger. Approving twice, or
// approving after rejection, fails with ErrAlreadyProcessed and moves no money. An
// insufficient source balance fails with ErrInsufficientBalance and leaves the
// transfer PENDING so it can be retried once funds arrive.
func (s *transferService) ApproveTransfer(ctx context.Context, operatorID string, transferID string, approverUserID string) (*domain.CashTransfer, error) {
	transfer, err := s.GetTransferByID(ctx, operatorID, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.IsSettled() {
		return nil, apperrors.ErrAlreadyProcessed
	}

	if err := s.ledgerSvc.ApplyTransfer(ctx, *transfer, approverUserID); err != nil {
		return nil, err
	}

	return s.GetTransferByID(ctx, operatorID, transferID)
}

// RejectTransfer marks a PENDING transfer REJECTED. Balances never move.
func (s *transferService) RejectTransfer(ctx context.Context, operatorID string, transferID string, approverUserID string) (*domain.CashTransfer, error) {
	transfer, err := s.GetTransferByID(ctx, operatorID, transferID)
	if err != nil {
		return nil, err
	}
	if transfer.IsSettled() {
		return nil, apperrors.ErrAlreadyProcessed
	}

	if err := s.transferRepo.MarkRejected(ctx, transferID, approverUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to reject transfer", slog.String("transfer_id", transferID))
		return nil, err
	}

	return s.GetTransferByID(ctx, operatorID, transferID)
}
