package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

// WorkoutHandler handles HTTP requests for workout operations.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// Create adds a workout for the current user. Creation is idempotent by
// date: a second create for the same date returns the existing workout,
// still with 201.
//
// @Summary      Create workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      workoutRequest  true  "Workout details"
// @Success      201   {object}  workoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	var req workoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ctxPrincipal(c), ports.WorkoutInput{
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toWorkoutResponse(result.Workout))
}

// List returns the current user's workouts.
//
// @Summary      List workouts
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   workoutResponse
// @Failure      401  {object}  errorResponse
// @Router       /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	workouts, err := h.service.List(c.Request().Context(), ctxPrincipal(c))
	if err != nil {
		return err
	}

	resp := make([]workoutResponse, 0, len(workouts))
	for i := range workouts {
		resp = append(resp, toWorkoutResponse(&workouts[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single workout owned by the current user.
//
// @Summary      Get workout
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  workoutResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	w, err := h.service.Get(c.Request().Context(), ctxPrincipal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkoutResponse(w))
}

// Update modifies a workout. Owner only.
//
// @Summary      Update workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Workout id"
// @Param        body  body      workoutRequest  true  "Workout details"
// @Success      200   {object}  workoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /workouts/{id} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	var req workoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	w, err := h.service.Update(c.Request().Context(), ctxPrincipal(c), c.Param("id"), ports.WorkoutInput{
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkoutResponse(w))
}

// Delete hard-deletes a workout. Owner only; a repeated delete answers 404.
//
// @Summary      Delete workout
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Workout id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "workout deleted"})
}
