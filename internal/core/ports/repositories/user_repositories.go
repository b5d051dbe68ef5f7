package repositories

import (
	"context"

	"github.com/ais-aviation/currency-service/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByEmail retrieves a user by email.
	// Returns apperrors.ErrNotFound when no user exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID retrieves a user by its ID.
	// Returns apperrors.ErrNotFound when no user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// TouchLastSignedIn updates the user's last sign-in timestamp.
	TouchLastSignedIn(ctx context.Context, userID string) error
}
