package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for exercise operations.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Create adds a new exercise. Only admins may create public ones.
//
// @Summary      Create exercise
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      exerciseRequest  true  "Exercise details"
// @Success      201   {object}  exerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /exercises [post]
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req exerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ex, err := h.service.Create(c.Request().Context(), ctxPrincipal(c), ports.ExerciseInput{
		Name:         req.Name,
		IsPublic:     req.IsPublic,
		MuscleGroups: req.MuscleGroups,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toExerciseResponse(ex))
}

// List returns the exercises visible to the caller: all active exercises
// for admins, public plus own active exercises for everyone else.
//
// @Summary      List exercises
// @Tags         exercises
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   exerciseResponse
// @Failure      401  {object}  errorResponse
// @Router       /exercises [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	exercises, err := h.service.List(c.Request().Context(), ctxPrincipal(c))
	if err != nil {
		return err
	}

	resp := make([]exerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp = append(resp, toExerciseResponse(&exercises[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single exercise. Soft-deleted exercises answer 410.
//
// @Summary      Get exercise
// @Tags         exercises
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Exercise id"
// @Success      200  {object}  exerciseResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      410  {object}  errorResponse
// @Router       /exercises/{id} [get]
func (h *ExerciseHandler) Get(c echo.Context) error {
	ex, err := h.service.Get(c.Request().Context(), ctxPrincipal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExerciseResponse(ex))
}

// Update modifies an exercise. Admins may update any, users their own;
// setting is_public requires ADMIN regardless of ownership.
//
// @Summary      Update exercise
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Exercise id"
// @Param        body  body      exerciseRequest  true  "Exercise details"
// @Success      200   {object}  exerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /exercises/{id} [put]
func (h *ExerciseHandler) Update(c echo.Context) error {
	var req exerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ex, err := h.service.Update(c.Request().Context(), ctxPrincipal(c), c.Param("id"), ports.ExerciseInput{
		Name:         req.Name,
		IsPublic:     req.IsPublic,
		MuscleGroups: req.MuscleGroups,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExerciseResponse(ex))
}

// Delete soft-deletes an exercise. Admins may delete any, users their own.
//
// @Summary      Delete exercise (soft)
// @Tags         exercises
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Exercise id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /exercises/{id} [delete]
func (h *ExerciseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxPrincipal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "exercise deleted"})
}
