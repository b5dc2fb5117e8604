package ports

import (
	"context"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// AuthRepository defines persistence operations for admin users.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	FindByID(ctx context.Context, id string) (*domain.AdminUser, error)
	// Create inserts a new admin user (bootstrap only; there is no public
	// registration endpoint).
	Create(ctx context.Context, user *domain.AdminUser) error
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token plus the
	// matching profile. Unknown email and wrong password are indistinguishable
	// to the caller (domain.ErrInvalidCredentials).
	Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error)
	// Profile returns the profile for the subject of a validated token.
	Profile(ctx context.Context, userID string) (*domain.AdminUser, error)
}
