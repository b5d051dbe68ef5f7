package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// PgxUserRepository implements repositories.UserRepository using pgxpool.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a new user. A duplicate email maps to ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, open_id, name, email, password_hash, login_method, role,
			last_signed_in, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		user.UserID, user.OpenID, user.Name, user.Email, user.PasswordHash,
		user.LoginMethod, user.Role, user.LastSignedIn,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", email)
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT user_id, open_id, name, email, password_hash, login_method, role,
			last_signed_in, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE ` + where
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.UserID, &user.OpenID, &user.Name, &user.Email, &user.PasswordHash,
		&user.LoginMethod, &user.Role, &user.LastSignedIn,
		&user.CreatedAt, &user.CreatedBy, &user.LastUpdatedAt, &user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// TouchLastSignedIn updates the user's last sign-in timestamp.
func (r *PgxUserRepository) TouchLastSignedIn(ctx context.Context, userID string) error {
	query := `UPDATE users SET last_signed_in = $1 WHERE user_id = $2`
	_, err := r.db.Exec(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last_signed_in: %w", err)
	}
	return nil
}
