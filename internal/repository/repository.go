// Package repository defines the persistence contracts for the identity
// service. Implementations live in subpackages so the service layer stays
// free of driver details.
package repository

import (
	"context"

	"github.com/iamdarshshah/devcollective/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email returns an
	// already-exists error.
	Create(ctx context.Context, user *domain.User) error

	// GetByID fetches a user by primary key, or a not-found error.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail fetches a user by email, or a not-found error.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists mutable fields, including clearing the confirmation
	// token hash when the account is confirmed.
	Update(ctx context.Context, user *domain.User) error
}
