package auth

import (
	"context"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the credentials and returns the admin if successful.
	// Returns ErrInvalidCredentials if authentication fails.
	Authenticate(ctx context.Context, name, credential string) (*models.Admin, error)
}
