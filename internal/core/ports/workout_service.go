package ports

import (
	"context"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// WorkoutInput carries the writable workout fields. Date uses the
// yyyy-mm-dd wire format.
type WorkoutInput struct {
	Date  string
	Notes string
}

// CreateWorkoutResult is returned by WorkoutService.Create.
type CreateWorkoutResult struct {
	Workout *domain.Workout
	// AlreadyExisted is true when a workout for the same owner and date
	// was found and returned instead of inserting a duplicate.
	AlreadyExisted bool
}

// WorkoutService defines workout use cases. All operations are strictly
// owner-only; there is no admin override on workouts.
type WorkoutService interface {
	Create(ctx context.Context, p domain.Principal, in WorkoutInput) (*CreateWorkoutResult, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Workout, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Workout, error)
	Update(ctx context.Context, p domain.Principal, id string, in WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// WorkoutExerciseInput carries the fields for attaching an exercise to a
// workout.
type WorkoutExerciseInput struct {
	WorkoutID  string
	ExerciseID string
	Position   int
	Sets       string
	Notes      string
}

// UpdateWorkoutExerciseInput carries partial updates; nil fields are left
// unchanged.
type UpdateWorkoutExerciseInput struct {
	ExerciseID *string
	Position   *int
	Sets       *string
	Notes      *string
}

// WorkoutExerciseService defines workout-exercise use cases. Ownership is
// checked against the parent workout in every case.
type WorkoutExerciseService interface {
	Create(ctx context.Context, p domain.Principal, in WorkoutExerciseInput) (*domain.WorkoutExercise, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.WorkoutExercise, error)
	ListByWorkout(ctx context.Context, p domain.Principal, workoutID string) ([]domain.WorkoutExercise, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateWorkoutExerciseInput) (*domain.WorkoutExercise, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
