package ports

import (
	"context"

	"github.com/orderhub/order-api/internal/core/domain"
)

// UserRepository defines the interface for user authentication persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// TokenPair holds the two JWTs issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines registration, login, and token refresh.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
