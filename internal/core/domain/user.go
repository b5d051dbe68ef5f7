package domain

import "time"

// User roles. RoleAdmin is granted automatically when the registration email
// matches the configured owner email.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the shared users table.
type User struct {
	UserID       string    `json:"userID"`
	OpenID       string    `json:"openId"` // "local_" prefix for password accounts
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	LoginMethod  string    `json:"loginMethod"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"lastSignedIn"`
	AuditFields
}
