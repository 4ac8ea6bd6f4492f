package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// ExerciseRepository defines persistence for exercises. FindByID returns
// soft-deleted rows too; visibility is decided at the policy layer.
type ExerciseRepository interface {
	Create(ctx context.Context, ex *domain.Exercise) (*domain.Exercise, error)
	FindByID(ctx context.Context, id string) (*domain.Exercise, error)
	FindByName(ctx context.Context, name string) (*domain.Exercise, error)
	FindAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, ex *domain.Exercise) error
}
