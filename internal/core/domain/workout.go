package domain

import "time"

// WorkoutDateLayout is the wire format for workout dates (yyyy-mm-dd).
const WorkoutDateLayout = "2006-01-02"

// Workout is a training session owned by exactly one user. A user has at
// most one workout per date; deletion is a hard delete.
type Workout struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Date      string    `json:"date" bson:"date"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// WorkoutExercise attaches an exercise to a workout at a given position.
// Ownership is transitive through the parent workout.
type WorkoutExercise struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	WorkoutID  string    `json:"workout_id" bson:"workout_id"`
	ExerciseID string    `json:"exercise_id" bson:"exercise_id"`
	Position   int       `json:"position" bson:"position"`
	// Sets is a free-form JSON document describing sets/reps/weights.
	Sets      string    `json:"sets,omitempty" bson:"sets,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
