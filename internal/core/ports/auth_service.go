package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// AuthService implements registration and login. Registration always
// assigns RoleUser; role escalation never happens through the public
// endpoint. Login returns a signed token alongside the user.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated failed logins per email. Backed by a
// Redis TTL counter; a nil limiter disables throttling.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
