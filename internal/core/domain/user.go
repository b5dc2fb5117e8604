package domain

import "time"

const RoleAdmin = "admin"

// AdminUser models an authenticated back-office actor. Rows are provisioned
// at bootstrap and never deleted in normal operation.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
