package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftlr/cargo_booking_app/internal/apperrors"
	"github.com/swiftlr/cargo_booking_app/internal/core/domain"
	portsrepo "github.com/swiftlr/cargo_booking_app/internal/core/ports/repositories"
	portssvc "github.com/swiftlr/cargo_booking_app/internal/core/ports/services"
	"github.com/swiftlr/cargo_booking_app/internal/dto"
	"github.com/swiftlr/cargo_booking_app/internal/models"
	"github.com/swiftlr/cargo_booking_app/internal/utils"
)

// userService provides user management and credential checks.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser hashes the password and persists the user under the operator with a
// zero cargo balance.
func (s *userService) CreateUser(ctx context.Context, operatorID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.ErrInternal
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		OperatorID:   operatorID,
		Username:     req.Username,
		Name:         req.Name,
		Role:         req.Role,
		BranchID:     req.BranchID,
		CargoBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("operator_id", operatorID))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves a page of an operator's users.
func (s *userService) ListUsers(ctx context.Context, operatorID string, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsersByOperator(ctx, operatorID, limit, offset)
}

// UpdateUser applies partial profile updates.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.BranchID != nil {
		user.BranchID = req.BranchID
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// DeleteUser soft deletes a user. Their ledger history and balance rows survive.
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return apperrors.ErrForbidden
	}
	return s.userRepo.MarkUserDeleted(ctx, userID, requestingUserID, time.Now())
}

// AuthenticateUser verifies a username/password pair. A wrong username and a wrong
// password return the same error so callers cannot probe for accounts.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	record, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, record.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	user := toDomainUser(record)
	return &user, nil
}

// UpdateRefreshToken stores the hash of a freshly issued refresh token.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshTokenDetails(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

// ClearRefreshToken invalidates the user's stored refresh token.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshTokenDetails(ctx, userID)
}

// toDomainUser converts the persistence model, carrying over the refresh token
// details needed by the token service.
func toDomainUser(m *models.User) domain.User {
	user := domain.User{
		UserID:       m.UserID,
		OperatorID:   m.OperatorID,
		Username:     m.Username,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		CargoBalance: m.CargoBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.BranchID.Valid {
		branchID := m.BranchID.String
		user.BranchID = &branchID
	}
	if m.RefreshTokenHash.Valid {
		user.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		expiry := m.RefreshTokenExpiryTime.Time
		user.RefreshTokenExpiryTime = &expiry
	}
	return user
}
