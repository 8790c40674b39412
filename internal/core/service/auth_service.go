package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/transitpulse/transit-api/internal/core/domain"
	"github.com/transitpulse/transit-api/internal/core/ports"
)

// dummyHash is compared against when the username does not exist, so the
// unknown-user path costs the same as a wrong-password path. Login must not
// let a caller probe which usernames are in the directory.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("uniform-response"), bcrypt.DefaultCost)

// AuthService implements login and role-gated user administration.
type AuthService struct {
	repo     ports.CredentialRepository
	codec    ports.TokenCodec
	tokenTTL time.Duration
}

func NewAuthService(repo ports.CredentialRepository, codec ports.TokenCodec, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 3 * time.Hour
	}
	return &AuthService{repo: repo, codec: codec, tokenTTL: tokenTTL}
}

// Login verifies the credentials and issues a bearer token carrying the
// user's role. Unknown usernames and wrong passwords both return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(domain.IdentityClaim{Username: user.Username, Role: user.Role}, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// AddUser creates a new credential record. The caller's admin role is
// enforced at the route, not here.
func (s *AuthService) AddUser(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// ListUsers returns every credential record in the directory.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
