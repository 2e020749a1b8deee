// Package services contains server-side business logic. This file implements
// UserService: signup with email verification, code confirmation, and login
// with JWT issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"newssense/internal/common"
	"newssense/internal/server/auth"
	"newssense/internal/server/config"
	mailer "newssense/internal/server/mail"
	"newssense/internal/server/models"
	"newssense/internal/server/repositories/repomanager"
)

// minPasswordLength matches the limit the signup form always enforced.
const minPasswordLength = 8

// deliveryTimeout bounds a single verification email attempt.
const deliveryTimeout = 10 * time.Second

// SignupResult reports a created account. Token is non-empty only when the
// server is configured to auto-issue a session at signup.
type SignupResult struct {
	UserID string
	Token  string
}

// LoginResult bundles a session token with the account it belongs to.
type LoginResult struct {
	UserID string
	Token  string
}

// UserService handles the account lifecycle:
// - Signup: create a pending account and email a verification code
// - VerifyEmail: confirm the code, moving the account to verified
// - Login: verify credentials and mint a session token
type UserService struct {
	db                       *sql.DB
	repomanager              repomanager.RepositoryManager
	sender                   mailer.Sender
	jwtSecret                []byte
	tokenValidityDuration    time.Duration
	requireEmailVerification bool
}

// NewUserService constructs a UserService using repositories, the email
// collaborator, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sender mailer.Sender, cfg *config.Config) *UserService {
	return &UserService{
		db:                       db,
		repomanager:              m,
		sender:                   sender,
		jwtSecret:                []byte(cfg.SecretKey),
		tokenValidityDuration:    cfg.TokenValidityDuration,
		requireEmailVerification: cfg.RequireEmailVerification,
	}
}

// Signup creates a pending account and attempts to email its verification
// code. A failed delivery yields common.ErrDelivery while the account is kept,
// so the user can request a resend without losing the claimed username.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*SignupResult, error) {
	if err := validateSignup(username, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	code, err := auth.GenerateVerificationCode()
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Username:         username,
		Email:            email,
		PasswordHash:     hash,
		VerificationCode: code,
		Verified:         false,
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()
	if err := s.sender.Send(sendCtx, email, mailer.VerificationSubject, mailer.VerificationBody(code)); err != nil {
		return nil, common.ErrDelivery
	}

	result := &SignupResult{UserID: user.ID}
	if !s.requireEmailVerification {
		token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
		if err != nil {
			return nil, common.ErrInternal
		}
		result.Token = token
	}
	return result, nil
}

// VerifyEmail confirms a pending account with its one-time code. The code is
// consumed on success; a second attempt finds no stored code.
func (s *UserService) VerifyEmail(ctx context.Context, email, code string) error {
	if !auth.IsValidCodeFormat(code) {
		return fmt.Errorf("%w: code must be 6 digits", common.ErrValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return common.ErrInternal
	}

	if user.VerificationCode == "" {
		return common.ErrNoCode
	}
	if user.VerificationCode != code {
		return common.ErrCodeMismatch
	}

	if err := repo.SetVerified(ctx, user.ID); err != nil {
		return common.ErrInternal
	}
	return nil
}

// Login resolves identifier against username or email and checks the
// password. Unknown identifiers and wrong passwords produce the identical
// common.ErrInvalidCredentials; a bcrypt compare runs in both paths so their
// timing stays comparable.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.CheckPassword(password, auth.DummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	if s.requireEmailVerification && !user.Verified {
		return nil, common.ErrNotVerified
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{UserID: user.ID, Token: token}, nil
}

func validateSignup(username, email, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email format", common.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}
	return nil
}
