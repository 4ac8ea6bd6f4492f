package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

type stubWorkoutExerciseRepo struct {
	entries map[string]*domain.WorkoutExercise
	next    int
}

func newStubWorkoutExerciseRepo() *stubWorkoutExerciseRepo {
	return &stubWorkoutExerciseRepo{entries: make(map[string]*domain.WorkoutExercise)}
}

func cloneWorkoutExercise(we *domain.WorkoutExercise) *domain.WorkoutExercise {
	if we == nil {
		return nil
	}
	clone := *we
	return &clone
}

func (r *stubWorkoutExerciseRepo) Create(_ context.Context, we *domain.WorkoutExercise) (*domain.WorkoutExercise, error) {
	r.next++
	copy := cloneWorkoutExercise(we)
	copy.ID = fmt.Sprintf("we_%d", r.next)
	r.entries[copy.ID] = cloneWorkoutExercise(copy)
	return copy, nil
}

func (r *stubWorkoutExerciseRepo) FindByID(_ context.Context, id string) (*domain.WorkoutExercise, error) {
	if we, ok := r.entries[id]; ok {
		return cloneWorkoutExercise(we), nil
	}
	return nil, domain.ErrWorkoutExerciseNotFound
}

func (r *stubWorkoutExerciseRepo) FindByWorkout(_ context.Context, workoutID string) ([]domain.WorkoutExercise, error) {
	out := []domain.WorkoutExercise{}
	for _, we := range r.entries {
		if we.WorkoutID == workoutID {
			out = append(out, *we)
		}
	}
	return out, nil
}

func (r *stubWorkoutExerciseRepo) Update(_ context.Context, we *domain.WorkoutExercise) error {
	if _, ok := r.entries[we.ID]; !ok {
		return domain.ErrWorkoutExerciseNotFound
	}
	r.entries[we.ID] = cloneWorkoutExercise(we)
	return nil
}

func (r *stubWorkoutExerciseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrWorkoutExerciseNotFound
	}
	delete(r.entries, id)
	return nil
}

type workoutExerciseFixture struct {
	svc       *WorkoutExerciseService
	repo      *stubWorkoutExerciseRepo
	workoutID string
	exID      string
}

func newWorkoutExerciseFixture(t *testing.T) workoutExerciseFixture {
	t.Helper()

	workoutRepo := newStubWorkoutRepo()
	exerciseRepo := newStubExerciseRepo()
	repo := newStubWorkoutExerciseRepo()

	workout, err := workoutRepo.Create(context.Background(), &domain.Workout{OwnerID: userAlice.UserID, Date: "2026-03-01"})
	if err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	ex, err := exerciseRepo.Create(context.Background(), &domain.Exercise{Name: "Squat", OwnerID: userAlice.UserID, IsActive: true})
	if err != nil {
		t.Fatalf("seed exercise: %v", err)
	}

	svc := NewWorkoutExerciseService(repo, workoutRepo, exerciseRepo, zerolog.Nop())
	return workoutExerciseFixture{svc: svc, repo: repo, workoutID: workout.ID, exID: ex.ID}
}

func TestWorkoutExerciseService_Create(t *testing.T) {
	f := newWorkoutExerciseFixture(t)

	we, err := f.svc.Create(context.Background(), userAlice, ports.WorkoutExerciseInput{
		WorkoutID:  f.workoutID,
		ExerciseID: f.exID,
		Position:   1,
		Sets:       `[{"reps":5,"weight":100}]`,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if we.WorkoutID != f.workoutID || we.ExerciseID != f.exID || we.Position != 1 {
		t.Fatalf("unexpected entry: %+v", we)
	}
}

func TestWorkoutExerciseService_Create_RequiresOwnedWorkout(t *testing.T) {
	f := newWorkoutExerciseFixture(t)
	in := ports.WorkoutExerciseInput{WorkoutID: f.workoutID, ExerciseID: f.exID}

	if _, err := f.svc.Create(context.Background(), userBob, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.Create(context.Background(), userAdmin, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin must not attach to foreign workouts, got %v", err)
	}

	in.WorkoutID = "w_404"
	if _, err := f.svc.Create(context.Background(), userAlice, in); !errors.Is(err, domain.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestWorkoutExerciseService_Create_ExerciseMustExist(t *testing.T) {
	f := newWorkoutExerciseFixture(t)

	in := ports.WorkoutExerciseInput{WorkoutID: f.workoutID, ExerciseID: "ex_404"}
	if _, err := f.svc.Create(context.Background(), userAlice, in); !errors.Is(err, domain.ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestWorkoutExerciseService_GetAndList(t *testing.T) {
	f := newWorkoutExerciseFixture(t)

	we, err := f.svc.Create(context.Background(), userAlice, ports.WorkoutExerciseInput{WorkoutID: f.workoutID, ExerciseID: f.exID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := f.svc.Get(context.Background(), userAlice, we.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), userBob, we.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), userAlice, "we_404"); !errors.Is(err, domain.ErrWorkoutExerciseNotFound) {
		t.Fatalf("expected ErrWorkoutExerciseNotFound, got %v", err)
	}

	entries, err := f.svc.ListByWorkout(context.Background(), userAlice, f.workoutID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != we.ID {
		t.Fatalf("unexpected list: %+v", entries)
	}
	if _, err := f.svc.ListByWorkout(context.Background(), userBob, f.workoutID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on foreign list, got %v", err)
	}
}

func TestWorkoutExerciseService_Update(t *testing.T) {
	f := newWorkoutExerciseFixture(t)

	we, _ := f.svc.Create(context.Background(), userAlice, ports.WorkoutExerciseInput{WorkoutID: f.workoutID, ExerciseID: f.exID, Position: 1})

	pos := 3
	notes := "drop set"
	updated, err := f.svc.Update(context.Background(), userAlice, we.ID, ports.UpdateWorkoutExerciseInput{Position: &pos, Notes: &notes})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Position != 3 || updated.Notes != "drop set" {
		t.Fatalf("partial update not applied: %+v", updated)
	}
	// Untouched fields survive.
	if updated.ExerciseID != f.exID {
		t.Fatalf("exercise id changed unexpectedly")
	}

	bad := "ex_404"
	if _, err := f.svc.Update(context.Background(), userAlice, we.ID, ports.UpdateWorkoutExerciseInput{ExerciseID: &bad}); !errors.Is(err, domain.ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), userBob, we.ID, ports.UpdateWorkoutExerciseInput{Position: &pos}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkoutExerciseService_Delete(t *testing.T) {
	f := newWorkoutExerciseFixture(t)

	we, _ := f.svc.Create(context.Background(), userAlice, ports.WorkoutExerciseInput{WorkoutID: f.workoutID, ExerciseID: f.exID})

	if err := f.svc.Delete(context.Background(), userBob, we.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), userAlice, we.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.svc.Delete(context.Background(), userAlice, we.ID); !errors.Is(err, domain.ErrWorkoutExerciseNotFound) {
		t.Fatalf("expected ErrWorkoutExerciseNotFound, got %v", err)
	}
}
