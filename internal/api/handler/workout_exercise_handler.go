package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

// WorkoutExerciseHandler handles HTTP requests for exercises attached to
// workouts.
type WorkoutExerciseHandler struct {
	service ports.WorkoutExerciseService
}

func NewWorkoutExerciseHandler(service ports.WorkoutExerciseService) *WorkoutExerciseHandler {
	return &WorkoutExerciseHandler{service: service}
}

// Create attaches an exercise to a workout the current user owns.
//
// @Summary      Create workout exercise
// @Tags         workout_exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workoutExerciseRequest  true  "Workout exercise details"
// @Success      201   {object}  workoutExerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /workout_exercises [post]
func (h *WorkoutExerciseHandler) Create(c echo.Context) error {
	var req workoutExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	we, err := h.service.Create(c.Request().Context(), ctxPrincipal(c), ports.WorkoutExerciseInput{
		WorkoutID:  req.WorkoutID,
		ExerciseID: req.ExerciseID,
		Position:   req.Position,
		Sets:       req.Sets,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toWorkoutExerciseResponse(we))
}

// Get returns a single workout exercise; owner of the parent workout only.
//
// @Summary      Get workout exercise
// @Tags         workout_exercises
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout exercise id"
// @Success      200  {object}  workoutExerciseResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /workout_exercises/{id} [get]
func (h *WorkoutExerciseHandler) Get(c echo.Context) error {
	we, err := h.service.Get(c.Request().Context(), ctxPrincipal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkoutExerciseResponse(we))
}

// ListByWorkout returns all exercises of a workout the current user owns.
//
// @Summary      List workout exercises for a workout
// @Tags         workout_exercises
// @Produce      json
// @Security     BearerAuth
// @Param        workoutId  path      string  true  "Workout id"
// @Success      200        {array}   workoutExerciseResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /workout_exercises/by_workout/{workoutId} [get]
func (h *WorkoutExerciseHandler) ListByWorkout(c echo.Context) error {
	items, err := h.service.ListByWorkout(c.Request().Context(), ctxPrincipal(c), c.Param("workoutId"))
	if err != nil {
		return err
	}

	resp := make([]workoutExerciseResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toWorkoutExerciseResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update partially modifies a workout exercise; absent fields keep their
// value.
//
// @Summary      Update workout exercise
// @Tags         workout_exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "Workout exercise id"
// @Param        body  body      updateWorkoutExerciseRequest  true  "Fields to update"
// @Success      200   {object}  workoutExerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /workout_exercises/{id} [put]
func (h *WorkoutExerciseHandler) Update(c echo.Context) error {
	var req updateWorkoutExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	we, err := h.service.Update(c.Request().Context(), ctxPrincipal(c), c.Param("id"), ports.UpdateWorkoutExerciseInput{
		ExerciseID: req.ExerciseID,
		Position:   req.Position,
		Sets:       req.Sets,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkoutExerciseResponse(we))
}

// Delete removes a workout exercise; owner of the parent workout only.
//
// @Summary      Delete workout exercise
// @Tags         workout_exercises
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout exercise id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /workout_exercises/{id} [delete]
func (h *WorkoutExerciseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "workout exercise deleted"})
}
