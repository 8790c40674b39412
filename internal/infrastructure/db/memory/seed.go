package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// seedUser is a plaintext credential known only at seed time; the store keeps
// the bcrypt hash.
type seedUser struct {
	username string
	password string
	role     string
}

var defaultSeed = []seedUser{
	{"passenger1", "pass123", domain.RolePassenger},
	{"driver1", "driver123", domain.RoleDriver},
	{"authority1", "auth123", domain.RoleAuthority},
	{"admin1", "admin123", domain.RoleAdmin},
}

// SeedDefaults loads the fixed development accounts, one per role.
func SeedDefaults(ctx context.Context, store *CredentialStore) error {
	for _, su := range defaultSeed {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", su.username, err)
		}
		if _, err := store.Create(ctx, &domain.User{
			Username:     su.username,
			PasswordHash: string(hash),
			Role:         su.role,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", su.username, err)
		}
	}
	return nil
}
