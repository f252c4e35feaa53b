package auth

import (
	"context"

	"github.com/serenus-health/wellness-admin-go/internal/domain/checkup"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
)

// AuthService owns the authenticated session. The session moves between
// Unauthenticated and Authenticated only through Login/Logout; a persisted
// session record is restored on construction.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, accessToken string)
	IsAuthenticated() bool
	CurrentUser() (user.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (user.UserResponse, error)
	SaveCheckupResult(ctx context.Context, result checkup.Result) error
	HasPermission(permission user.Permission) bool
}
