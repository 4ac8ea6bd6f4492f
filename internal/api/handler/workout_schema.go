package handler

import (
	"time"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

type workoutRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes string `json:"notes" validate:"max=500"`
}

type workoutResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWorkoutResponse(w *domain.Workout) workoutResponse {
	return workoutResponse{
		ID:        w.ID,
		Date:      w.Date,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type workoutExerciseRequest struct {
	WorkoutID  string `json:"workout_id" validate:"required"`
	ExerciseID string `json:"exercise_id" validate:"required"`
	Position   int    `json:"position"`
	Sets       string `json:"sets"`
	Notes      string `json:"notes" validate:"max=500"`
}

// updateWorkoutExerciseRequest carries partial updates; absent fields are
// left unchanged.
type updateWorkoutExerciseRequest struct {
	ExerciseID *string `json:"exercise_id"`
	Position   *int    `json:"position"`
	Sets       *string `json:"sets"`
	Notes      *string `json:"notes"`
}

type workoutExerciseResponse struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workout_id"`
	ExerciseID string    `json:"exercise_id"`
	Position   int       `json:"position"`
	Sets       string    `json:"sets,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toWorkoutExerciseResponse(we *domain.WorkoutExercise) workoutExerciseResponse {
	return workoutExerciseResponse{
		ID:         we.ID,
		WorkoutID:  we.WorkoutID,
		ExerciseID: we.ExerciseID,
		Position:   we.Position,
		Sets:       we.Sets,
		Notes:      we.Notes,
		CreatedAt:  we.CreatedAt,
		UpdatedAt:  we.UpdatedAt,
	}
}
