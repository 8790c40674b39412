// Package token implements the bearer-token codec: signed, expiring JWTs
// carrying the identity claim {username, role}.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when the caller does not override it.
const DefaultTTL = 3 * time.Hour

// Codec signs and verifies HS256 JWTs with a process-wide secret. The secret
// is fixed at construction and never rotated while the process runs, so a
// Codec is safe for concurrent use without synchronisation.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// identityClaims is the wire shape of the JWT payload.
type identityClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue encodes the claim with expiry = now + ttl and signs it. Two tokens
// issued for the same claim at different instants differ as byte sequences but
// verify to equal claims.
func (c *Codec) Issue(claim domain.IdentityClaim, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}

	claims := identityClaims{
		Username: claim.Username,
		Role:     claim.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token, returning the embedded identity claim.
// Failures are typed: domain.ErrTokenExpired when now is past the encoded
// expiry, domain.ErrTokenSignatureInvalid when the HMAC does not match, and
// domain.ErrTokenMalformed for anything that does not parse as a token we
// issued. Verify never mutates state; the HMAC comparison inside the library
// is constant time.
func (c *Codec) Verify(raw string) (domain.IdentityClaim, error) {
	claims := identityClaims{}
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.IdentityClaim{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.IdentityClaim{}, domain.ErrTokenSignatureInvalid
		default:
			return domain.IdentityClaim{}, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return domain.IdentityClaim{}, domain.ErrTokenMalformed
	}

	return domain.IdentityClaim{Username: claims.Username, Role: claims.Role}, nil
}
