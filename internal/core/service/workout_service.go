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

// WorkoutService implements workout CRUD. All operations are owner-only.
type WorkoutService struct {
	repo   ports.WorkoutRepository
	logger zerolog.Logger
}

func NewWorkoutService(repo ports.WorkoutRepository, logger zerolog.Logger) *WorkoutService {
	return &WorkoutService{repo: repo, logger: logger}
}

// Create inserts a workout for the principal. Creation is idempotent by
// date: when a workout for the same owner and date already exists it is
// returned instead of inserting a duplicate row.
func (s *WorkoutService) Create(ctx context.Context, p domain.Principal, in ports.WorkoutInput) (*ports.CreateWorkoutResult, error) {
	if p.IsZero() {
		return nil, domain.ErrMissingCredential
	}

	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByOwnerAndDate(ctx, p.UserID, date)
	if err == nil && existing != nil {
		s.logger.Info().Str("workout_id", existing.ID).Str("date", date).Msg("idempotent replay")
		return &ports.CreateWorkoutResult{Workout: existing, AlreadyExisted: true}, nil
	}
	if err != nil && !errors.Is(err, domain.ErrWorkoutNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	workout := &domain.Workout{
		OwnerID:   p.UserID,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("workout_id", created.ID).Str("owner_id", p.UserID).Str("date", date).Msg("workout created")
	return &ports.CreateWorkoutResult{Workout: created}, nil
}

func (s *WorkoutService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Workout, error) {
	w, found, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := outcomeError(auth.CanAccessWorkout(p, found, ownerOf(w)), domain.ErrWorkoutNotFound, nil); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkoutService) List(ctx context.Context, p domain.Principal) ([]domain.Workout, error) {
	if p.IsZero() {
		return nil, domain.ErrMissingCredential
	}
	return s.repo.FindByOwner(ctx, p.UserID)
}

func (s *WorkoutService) Update(ctx context.Context, p domain.Principal, id string, in ports.WorkoutInput) (*domain.Workout, error) {
	w, found, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := outcomeError(auth.CanAccessWorkout(p, found, ownerOf(w)), domain.ErrWorkoutNotFound, nil); err != nil {
		return nil, err
	}

	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	w.Date = date
	w.Notes = in.Notes
	w.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete hard-deletes. A repeated delete yields not found, never gone.
func (s *WorkoutService) Delete(ctx context.Context, p domain.Principal, id string) error {
	w, found, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := outcomeError(auth.CanAccessWorkout(p, found, ownerOf(w)), domain.ErrWorkoutNotFound, nil); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("workout_id", id).Str("owner_id", p.UserID).Msg("workout deleted")
	return nil
}

func (s *WorkoutService) lookup(ctx context.Context, id string) (*domain.Workout, bool, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return w, true, nil
}

func ownerOf(w *domain.Workout) string {
	if w == nil {
		return ""
	}
	return w.OwnerID
}

// normalizeDate validates the yyyy-mm-dd wire format and returns the
// canonical form.
func normalizeDate(raw string) (string, error) {
	t, err := time.Parse(domain.WorkoutDateLayout, raw)
	if err != nil {
		return "", domain.ErrInvalidWorkoutDate
	}
	return t.Format(domain.WorkoutDateLayout), nil
}
