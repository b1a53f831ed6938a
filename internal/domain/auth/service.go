package auth

import (
	"context"

	"github.com/sambu-farm/farm-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
}
