package ports

import (
	"context"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

// AuthService issues and verifies access tokens.
type AuthService interface {
	// Login validates a username/password pair and returns a signed bearer
	// token valid for a fixed window. Unknown users and wrong passwords both
	// fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// Authenticate verifies a raw bearer token and re-resolves the claimed
	// user id against the credential store, so role and existence are
	// authoritative from the store at request time rather than trusted from
	// the token.
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}
