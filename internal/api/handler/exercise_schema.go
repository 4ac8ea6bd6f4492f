package handler

import (
	"time"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

type exerciseRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	IsPublic     bool   `json:"is_public"`
	MuscleGroups string `json:"muscle_groups" validate:"max=100"`
	Notes        string `json:"notes" validate:"max=500"`
}

type exerciseResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MuscleGroups string    `json:"muscle_groups,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IsPublic     bool      `json:"is_public"`
	IsActive     bool      `json:"is_active"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toExerciseResponse(ex *domain.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		MuscleGroups: ex.MuscleGroups,
		Notes:        ex.Notes,
		IsPublic:     ex.IsPublic,
		IsActive:     ex.IsActive,
		OwnerID:      ex.OwnerID,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
}
