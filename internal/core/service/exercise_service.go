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

// ExerciseService implements exercise CRUD with the visibility and
// ownership rules enforced through the access policy.
type ExerciseService struct {
	repo   ports.ExerciseRepository
	logger zerolog.Logger
}

func NewExerciseService(repo ports.ExerciseRepository, logger zerolog.Logger) *ExerciseService {
	return &ExerciseService{repo: repo, logger: logger}
}

func (s *ExerciseService) Create(ctx context.Context, p domain.Principal, in ports.ExerciseInput) (*domain.Exercise, error) {
	if err := outcomeError(auth.CanCreateExercise(p, in.IsPublic), nil, nil); err != nil {
		return nil, err
	}

	if err := s.checkNameFree(ctx, in.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ex := &domain.Exercise{
		Name:         in.Name,
		MuscleGroups: in.MuscleGroups,
		Notes:        in.Notes,
		IsPublic:     in.IsPublic,
		IsActive:     true,
		OwnerID:      p.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, ex)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("exercise_id", created.ID).Str("owner_id", p.UserID).Bool("public", created.IsPublic).Msg("exercise created")
	return created, nil
}

func (s *ExerciseService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Exercise, error) {
	ex, meta, found, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := outcomeError(auth.CanReadExercise(p, found, meta), domain.ErrExerciseNotFound, domain.ErrExerciseGone); err != nil {
		return nil, err
	}
	return ex, nil
}

func (s *ExerciseService) List(ctx context.Context, p domain.Principal) ([]domain.Exercise, error) {
	if p.IsZero() {
		return nil, domain.ErrMissingCredential
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Exercise, 0, len(all))
	for _, ex := range all {
		if auth.ExerciseVisibleInList(p, exerciseMeta(&ex)) {
			visible = append(visible, ex)
		}
	}
	return visible, nil
}

func (s *ExerciseService) Update(ctx context.Context, p domain.Principal, id string, in ports.ExerciseInput) (*domain.Exercise, error) {
	ex, meta, found, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := outcomeError(auth.CanUpdateExercise(p, found, meta, in.IsPublic), domain.ErrExerciseNotFound, domain.ErrExerciseGone); err != nil {
		return nil, err
	}

	if in.Name != ex.Name {
		if err := s.checkNameFree(ctx, in.Name); err != nil {
			return nil, err
		}
	}

	ex.Name = in.Name
	ex.MuscleGroups = in.MuscleGroups
	ex.Notes = in.Notes
	ex.IsPublic = in.IsPublic
	ex.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// Delete soft-deletes. Re-deleting an already-inactive exercise succeeds.
func (s *ExerciseService) Delete(ctx context.Context, p domain.Principal, id string) error {
	ex, meta, found, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := outcomeError(auth.CanDeleteExercise(p, found, meta), domain.ErrExerciseNotFound, domain.ErrExerciseGone); err != nil {
		return err
	}

	ex.IsActive = false
	ex.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, ex); err != nil {
		return err
	}

	s.logger.Info().Str("exercise_id", id).Str("deleted_by", p.UserID).Msg("exercise soft-deleted")
	return nil
}

// checkNameFree reports ErrExerciseNameTaken when another exercise
// already holds the name. The unique index remains the authority; this
// pre-check just produces the friendlier error for the common case.
func (s *ExerciseService) checkNameFree(ctx context.Context, name string) error {
	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return domain.ErrExerciseNameTaken
	case errors.Is(err, domain.ErrExerciseNotFound):
		return nil
	default:
		return err
	}
}

func (s *ExerciseService) lookup(ctx context.Context, id string) (*domain.Exercise, auth.ExerciseMeta, bool, error) {
	ex, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return nil, auth.ExerciseMeta{}, false, nil
		}
		return nil, auth.ExerciseMeta{}, false, err
	}
	return ex, exerciseMeta(ex), true, nil
}

func exerciseMeta(ex *domain.Exercise) auth.ExerciseMeta {
	return auth.ExerciseMeta{OwnerID: ex.OwnerID, IsPublic: ex.IsPublic, IsActive: ex.IsActive}
}
