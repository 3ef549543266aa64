package auth

import (
	"context"

	"github.com/craftroots/storefront/internal/modules/user"
)

// Service is the authentication collaborator the storefront calls on
// login/signup submission. The in-tree implementation is a mock: it resolves
// a user synchronously and issues a session token without any real identity
// checks beyond a non-empty email.
type Service interface {
	// Signup creates a user and returns it with a session token. A missing
	// name defaults to the email's local part.
	Signup(ctx context.Context, email, password, name string) (*user.User, string, error)

	// Login resolves an existing user by credentials and returns a session
	// token.
	Login(ctx context.Context, email, password string) (*user.User, string, error)
}
