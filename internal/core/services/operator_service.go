package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
)

// operatorService provides operator (tenant) management and the booking sequence.
type operatorService struct {
	BaseService
	operatorRepo portsrepo.OperatorRepositoryFacade
}

// NewOperatorService creates a new operator service.
func NewOperatorService(operatorRepo portsrepo.OperatorRepositoryFacade) portssvc.OperatorSvcFacade {
	return &operatorService{operatorRepo: operatorRepo}
}

var _ portssvc.OperatorSvcFacade = (*operatorService)(nil)

// CreateOperator validates the tenant code and persists a new operator. The booking
// sequence starts at zero; the first booking claims value 1.
func (s *operatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorUserID string) (*domain.Operator, error) {
	if err := domain.ValidateOperatorCode(req.Code); err != nil {
		s.LogWarn(ctx, "Operator code rejected", slog.String("code", req.Code))
		return nil, err
	}

	paymentMethods := req.PaymentMethods
	if len(paymentMethods) == 0 {
		paymentMethods = []domain.PaymentMethod{domain.PaymentCash}
	}

	now := time.Now()
	operator := domain.Operator{
		OperatorID:      uuid.NewString(),
		Name:            req.Name,
		Code:            req.Code,
		BookingSequence: 0,
		PaymentMethods:  paymentMethods,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		s.LogError(ctx, err, "Failed to save operator", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Operator created", slog.String("operator_id", operator.OperatorID), slog.String("code", operator.Code))
	return &operator, nil
}

// UpdateOperator applies partial updates; the code and sequence are immutable.
func (s *operatorService) UpdateOperator(ctx context.Context, operatorID string, req dto.UpdateOperatorRequest, requestingUserID string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		operator.Name = *req.Name
	}
	if req.PaymentMethods != nil {
		operator.PaymentMethods = *req.PaymentMethods
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}
	operator.LastUpdatedAt = time.Now()
	operator.LastUpdatedBy = requestingUserID

	if err := s.operatorRepo.UpdateOperator(ctx, *operator); err != nil {
		s.LogError(ctx, err, "Failed to update operator", slog.String("operator_id", operatorID))
		return nil, err
	}
	return operator, nil
}

// GetOperatorByID retrieves an operator by ID.
func (s *operatorService) GetOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	return s.operatorRepo.FindOperatorByID(ctx, operatorID)
}

// GetOperatorByCode retrieves an operator by its tenant code.
func (s *operatorService) GetOperatorByCode(ctx context.Context, code string) (*domain.Operator, error) {
	return s.operatorRepo.FindOperatorByCode(ctx, code)
}

// ListOperators retrieves a paginated list of operators.
func (s *operatorService) ListOperators(ctx context.Context, limit, offset int) ([]domain.Operator, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.operatorRepo.ListOperators(ctx, limit, offset)
}

// NextBookingSequence claims the operator's next sequence value. The increment and
// read happen in one database statement, so concurrent callers never see the same
// value and a crashed caller simply leaves a gap.
func (s *operatorService) NextBookingSequence(ctx context.Context, operatorID string) (int64, error) {
	seq, err := s.operatorRepo.NextBookingSequence(ctx, operatorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to claim booking sequence", slog.String("operator_id", operatorID))
		return 0, err
	}
	return seq, nil
}
