package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// UserService defines the administrative and self-service user operations.
// Every method takes the requesting principal and enforces the access
// policy before touching the repository.
type UserService interface {
	// List returns all users. ADMIN only.
	List(ctx context.Context, p domain.Principal) ([]domain.User, error)
	// Get returns a single user. ADMIN, or the user themselves.
	Get(ctx context.Context, p domain.Principal, id string) (*domain.User, error)
	// Delete removes a user by id. ADMIN only.
	Delete(ctx context.Context, p domain.Principal, id string) error
	// DeleteOwn removes exactly the principal's own account; no id
	// parameter is accepted.
	DeleteOwn(ctx context.Context, p domain.Principal) error
}
