package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// ExerciseInput carries the writable exercise fields.
type ExerciseInput struct {
	Name         string
	IsPublic     bool
	MuscleGroups string
	Notes        string
}

// ExerciseService defines exercise use cases. Visibility and ownership
// rules: admins see and touch everything; users see public exercises plus
// their own and modify only their own; only admins may set IsPublic.
type ExerciseService interface {
	Create(ctx context.Context, p domain.Principal, in ExerciseInput) (*domain.Exercise, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Exercise, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Exercise, error)
	Update(ctx context.Context, p domain.Principal, id string, in ExerciseInput) (*domain.Exercise, error)
	// Delete soft-deletes: the row stays behind with IsActive=false.
	Delete(ctx context.Context, p domain.Principal, id string) error
}
