package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrNotConfigured      = errors.New("no admin password configured")
)

// PasswordAuthenticator implements password-based authentication using bcrypt
// against the single configured admin.
type PasswordAuthenticator struct {
	admin models.Admin
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(admin models.Admin) *PasswordAuthenticator {
	return &PasswordAuthenticator{admin: admin}
}

// ValidateCredential checks if the password meets minimum requirements.
func ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// HashPassword returns the bcrypt hash to store in the admin.password_hash setting.
func HashPassword(password string) (string, error) {
	if err := ValidateCredential(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Authenticate verifies the name and password, returning the admin if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, name, credential string) (*models.Admin, error) {
	if a.admin.PasswordHash == "" {
		return nil, ErrNotConfigured
	}

	// Compare the password even when the name is wrong so both paths cost the same.
	nameOK := subtle.ConstantTimeCompare([]byte(name), []byte(a.admin.Name)) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(credential)); err != nil || !nameOK {
		return nil, ErrInvalidCredentials
	}

	admin := a.admin
	return &admin, nil
}
