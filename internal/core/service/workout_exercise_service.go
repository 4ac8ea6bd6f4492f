package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

// WorkoutExerciseService implements CRUD for exercises attached to
// workouts. Ownership is resolved through the parent workout on every
// operation.
type WorkoutExerciseService struct {
	repo         ports.WorkoutExerciseRepository
	workoutRepo  ports.WorkoutRepository
	exerciseRepo ports.ExerciseRepository
	logger       zerolog.Logger
}

func NewWorkoutExerciseService(
	repo ports.WorkoutExerciseRepository,
	workoutRepo ports.WorkoutRepository,
	exerciseRepo ports.ExerciseRepository,
	logger zerolog.Logger,
) *WorkoutExerciseService {
	return &WorkoutExerciseService{
		repo:         repo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		logger:       logger,
	}
}

func (s *WorkoutExerciseService) Create(ctx context.Context, p domain.Principal, in ports.WorkoutExerciseInput) (*domain.WorkoutExercise, error) {
	if err := s.authorizeWorkout(ctx, p, in.WorkoutID); err != nil {
		return nil, err
	}

	if _, err := s.exerciseRepo.FindByID(ctx, in.ExerciseID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	we := &domain.WorkoutExercise{
		WorkoutID:  in.WorkoutID,
		ExerciseID: in.ExerciseID,
		Position:   in.Position,
		Sets:       in.Sets,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, we)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("workout_exercise_id", created.ID).Str("workout_id", in.WorkoutID).Msg("workout exercise created")
	return created, nil
}

func (s *WorkoutExerciseService) Get(ctx context.Context, p domain.Principal, id string) (*domain.WorkoutExercise, error) {
	we, err := s.authorized(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return we, nil
}

func (s *WorkoutExerciseService) ListByWorkout(ctx context.Context, p domain.Principal, workoutID string) ([]domain.WorkoutExercise, error) {
	if err := s.authorizeWorkout(ctx, p, workoutID); err != nil {
		return nil, err
	}
	return s.repo.FindByWorkout(ctx, workoutID)
}

func (s *WorkoutExerciseService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateWorkoutExerciseInput) (*domain.WorkoutExercise, error) {
	we, err := s.authorized(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if in.ExerciseID != nil {
		if _, err := s.exerciseRepo.FindByID(ctx, *in.ExerciseID); err != nil {
			return nil, err
		}
		we.ExerciseID = *in.ExerciseID
	}
	if in.Position != nil {
		we.Position = *in.Position
	}
	if in.Sets != nil {
		we.Sets = *in.Sets
	}
	if in.Notes != nil {
		we.Notes = *in.Notes
	}
	we.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, we); err != nil {
		return nil, err
	}
	return we, nil
}

func (s *WorkoutExerciseService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if _, err := s.authorized(ctx, p, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("workout_exercise_id", id).Str("owner_id", p.UserID).Msg("workout exercise deleted")
	return nil
}

// authorized loads the workout exercise and checks ownership through its
// parent workout.
func (s *WorkoutExerciseService) authorized(ctx context.Context, p domain.Principal, id string) (*domain.WorkoutExercise, error) {
	if p.IsZero() {
		return nil, domain.ErrMissingCredential
	}

	we, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutExerciseNotFound) {
			return nil, outcomeError(auth.CanAccessWorkout(p, false, ""), domain.ErrWorkoutExerciseNotFound, nil)
		}
		return nil, err
	}

	workout, err := s.workoutRepo.FindByID(ctx, we.WorkoutID)
	if err != nil {
		return nil, err
	}
	if err := outcomeError(auth.CanAccessWorkout(p, true, workout.OwnerID), domain.ErrWorkoutExerciseNotFound, nil); err != nil {
		return nil, err
	}
	return we, nil
}

// authorizeWorkout checks that the principal owns the given workout.
func (s *WorkoutExerciseService) authorizeWorkout(ctx context.Context, p domain.Principal, workoutID string) error {
	if p.IsZero() {
		return domain.ErrMissingCredential
	}

	workout, err := s.workoutRepo.FindByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			return outcomeError(auth.CanAccessWorkout(p, false, ""), domain.ErrWorkoutNotFound, nil)
		}
		return err
	}
	return outcomeError(auth.CanAccessWorkout(p, true, workout.OwnerID), domain.ErrWorkoutNotFound, nil)
}
