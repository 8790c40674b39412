package ports

import (
	"context"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// CredentialRepository defines the lookup capability the auth core depends on.
// The directory itself (in-memory, database-backed, remote) is an
// implementation detail injected at wiring time.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
