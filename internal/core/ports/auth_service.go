package ports

import (
	"context"

	"github.com/transitpulse/transit-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	AddUser(ctx context.Context, username, password, role string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
