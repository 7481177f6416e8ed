package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/http/validators"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func (h *Handler) CreateSprint(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CreateSprintRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateSprintRequest(&req); err != nil {
		return respondError(c, err)
	}

	sprint, err := h.sprints.Create(c.Request().Context(), actor, c.Param("projectID"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, sprint)
}

func (h *Handler) ListSprints(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	sprints, err := h.sprints.List(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, sprints)
}

func (h *Handler) GetSprint(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	sprint, issues, err := h.sprints.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{
		"sprint": sprint,
		"issues": issues,
	})
}

func (h *Handler) StartSprint(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.StartSprintRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateStartSprintRequest(&req); err != nil {
		return respondError(c, err)
	}

	sprint, err := h.sprints.Start(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, sprint)
}

func (h *Handler) CompleteSprint(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CompleteSprintRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}

	sprint, err := h.sprints.Complete(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, sprint)
}
