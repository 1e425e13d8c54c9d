package ports

import (
	"context"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

// CredentialStore defines read access to user records. Lookups are exact and
// case-sensitive; both return domain.ErrUserNotFound when nothing matches.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
