package services

import (
	"context"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/ais-aviation/currency-service/internal/dto"
)

// UserSvcFacade defines account management and credential checks.
type UserSvcFacade interface {
	// RegisterUser creates a password account. Returns apperrors.ErrDuplicate
	// when the email is already registered.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// VerifyCredentials checks the email/password pair and returns the user.
	// Returns apperrors.ErrUnauthorized on unknown email or wrong password.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
