package ports

import (
	"time"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// TokenCodec issues and verifies the bearer tokens carried on every
// authenticated request.
type TokenCodec interface {
	Issue(claim domain.IdentityClaim, ttl time.Duration) (string, error)
	Verify(raw string) (domain.IdentityClaim, error)
}
