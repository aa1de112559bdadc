// Package service implements the business logic for authentication and the
// account lifecycle.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iamdarshshah/devcollective/internal/credential"
	"github.com/iamdarshshah/devcollective/internal/domain"
	"github.com/iamdarshshah/devcollective/internal/mailer"
	"github.com/iamdarshshah/devcollective/internal/repository"
	"github.com/iamdarshshah/devcollective/internal/session"
	apperrors "github.com/iamdarshshah/devcollective/pkg/errors"
)

// AuthService implements registration, login, session checks and account
// confirmation. All unauthorized outcomes collapse to the same error so
// callers cannot distinguish unknown accounts from bad credentials.
type AuthService struct {
	userRepo repository.UserRepository
	sessions session.Store
	hasher   credential.Hasher
	mailer   mailer.Mailer
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	sessions session.Store,
	hasher credential.Hasher,
	m mailer.Mailer,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		hasher:   hasher,
		mailer:   m,
		logger:   logger,
	}
}

// RegisterInput holds the parameters for registering a new user. Format
// validation happens at the transport layer; the service enforces business
// rules only.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string

	// SkipConfirmation creates the account already confirmed. Used by
	// internal provisioning and tests, never exposed over HTTP.
	SkipConfirmation bool
}

// Register creates a new account. Unless SkipConfirmation is set the account
// starts pending: a fresh confirmation token is generated, only its hash is
// stored, and the plaintext token leaves the process solely inside the
// confirmation email. The email is sent after the user row is durable and a
// send failure never fails the registration.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var confirmationToken string
	var tokenHash *string
	if !input.SkipConfirmation {
		confirmationToken = uuid.NewString()
		hashed, err := s.hasher.Hash(confirmationToken)
		if err != nil {
			return nil, fmt.Errorf("hash confirmation token: %w", err)
		}
		tokenHash = &hashed
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                    uuid.NewString(),
		Email:                 input.Email,
		PasswordHash:          passwordHash,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		ConfirmationTokenHash: tokenHash,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if tokenHash != nil {
		if err := s.mailer.SendAccountConfirmation(ctx, user.Email, confirmationToken); err != nil {
			s.logger.ErrorContext(ctx, "failed to send confirmation email",
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.Bool("confirmation_pending", tokenHash != nil),
	)

	return user, nil
}

// Login verifies credentials and opens a new session. Each call issues a new
// token, so concurrent devices hold independent sessions. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.Unauthorized("invalid credentials")
		}
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", apperrors.Unauthorized("invalid credentials")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// CurrentUser resolves a session token to the account's current state. The
// user is re-read from storage on every call, so profile or confirmation
// changes are visible immediately to existing sessions.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("no session")
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.Unauthorized("no session")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Session outlived the account.
			return nil, apperrors.Unauthorized("no session")
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// Logout revokes the session. Revoking an unknown or already-revoked token
// succeeds, so logout is safe to retry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ConfirmAccount completes the pending account lifecycle. The token is
// single-use: a successful match clears the stored hash, so replaying the
// same link is rejected. Unknown email, already-confirmed account and token
// mismatch all produce the same unauthorized error.
func (s *AuthService) ConfirmAccount(ctx context.Context, email, token string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid confirmation")
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if user.ConfirmationTokenHash == nil {
		return nil, apperrors.Unauthorized("invalid confirmation")
	}

	if !s.hasher.Verify(token, *user.ConfirmationTokenHash) {
		return nil, apperrors.Unauthorized("invalid confirmation")
	}

	user.ConfirmationTokenHash = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.InfoContext(ctx, "account confirmed", slog.String("user_id", user.ID))
	return user, nil
}
