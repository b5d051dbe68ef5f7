package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	"github.com/ais-aviation/currency-service/internal/dto"
	"github.com/ais-aviation/currency-service/internal/utils"
	"github.com/google/uuid"
)

// UserService provides account management over the shared users table.
type UserService struct {
	userRepo   portsrepo.UserRepository
	ownerEmail string
}

// NewUserService creates a new UserService. ownerEmail may be empty; when set,
// registrations with a matching email are granted the admin role.
func NewUserService(userRepo portsrepo.UserRepository, ownerEmail string) *UserService {
	return &UserService{userRepo: userRepo, ownerEmail: ownerEmail}
}

// RegisterUser creates a password account. The open ID follows the shared
// users table convention of "local_" plus 16 hex characters.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.RoleUser
	if s.ownerEmail != "" && strings.EqualFold(req.Email, s.ownerEmail) {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		OpenID:       "local_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		LoginMethod:  "password",
		Role:         role,
		LastSignedIn: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a user with this email already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, nil
}

// VerifyCredentials checks the email/password pair. Unknown emails and wrong
// passwords both map to ErrUnauthorized so callers cannot probe for accounts.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	_ = s.userRepo.TouchLastSignedIn(ctx, user.UserID)
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}
