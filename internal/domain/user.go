package domain

import (
	"time"
)

// User represents a registered account in the system.
//
// PasswordHash and ConfirmationTokenHash are secret-derived values. They are
// excluded from JSON serialization and must never cross the HTTP boundary;
// callers return the Public projection instead.
type User struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	PasswordHash          string    `json:"-"`
	ConfirmationTokenHash *string   `json:"-"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"-"`
}

// PublicUser is the externally safe projection of a User. It carries no
// secret-derived fields, only a boolean that tells whether the account is
// still waiting for email confirmation.
type PublicUser struct {
	ID                         string    `json:"id"`
	Email                      string    `json:"email"`
	FirstName                  string    `json:"firstName"`
	LastName                   string    `json:"lastName"`
	CreatedAt                  time.Time `json:"createdAt"`
	AccountConfirmationPending bool      `json:"accountConfirmationPending"`
}

// ConfirmationPending reports whether a confirmation token hash is stored and
// unconsumed for this account.
func (u *User) ConfirmationPending() bool {
	return u.ConfirmationTokenHash != nil
}

// Public returns the external projection of the user. Every boundary that
// serializes a user-shaped payload goes through this method.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                         u.ID,
		Email:                      u.Email,
		FirstName:                  u.FirstName,
		LastName:                   u.LastName,
		CreatedAt:                  u.CreatedAt,
		AccountConfirmationPending: u.ConfirmationPending(),
	}
}
