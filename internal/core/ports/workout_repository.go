package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// WorkoutRepository defines persistence for workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error)
	FindByID(ctx context.Context, id string) (*domain.Workout, error)
	// FindByOwnerAndDate backs the idempotent-by-date create.
	FindByOwnerAndDate(ctx context.Context, ownerID, date string) (*domain.Workout, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Workout, error)
	Update(ctx context.Context, w *domain.Workout) error
	// Delete hard-deletes. Returns domain.ErrWorkoutNotFound when missing.
	Delete(ctx context.Context, id string) error
}

// WorkoutExerciseRepository defines persistence for workout exercises.
type WorkoutExerciseRepository interface {
	Create(ctx context.Context, we *domain.WorkoutExercise) (*domain.WorkoutExercise, error)
	FindByID(ctx context.Context, id string) (*domain.WorkoutExercise, error)
	FindByWorkout(ctx context.Context, workoutID string) ([]domain.WorkoutExercise, error)
	Update(ctx context.Context, we *domain.WorkoutExercise) error
	Delete(ctx context.Context, id string) error
}
