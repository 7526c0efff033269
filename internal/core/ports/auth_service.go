package ports

import "context"

// AuthService authenticates seeded credentials and issues signed tokens.
type AuthService interface {
	// Login verifies username/password and returns a signed bearer token.
	// Unknown users and wrong passwords both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
