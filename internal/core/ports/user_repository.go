package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// Delete hard-deletes a user. Returns domain.ErrUserNotFound when the
	// id does not exist.
	Delete(ctx context.Context, id string) error
}
