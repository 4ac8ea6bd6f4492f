package domain

import "time"

// Exercise is a reusable movement definition. Exercises are owned by the
// user who created them; public exercises are visible to everyone. Deletion
// is soft: IsActive flips to false and the row stays behind.
type Exercise struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	MuscleGroups string    `json:"muscle_groups,omitempty" bson:"muscle_groups,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	IsPublic     bool      `json:"is_public" bson:"is_public"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
