package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/http/validators"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func (h *Handler) CreateIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CreateIssueRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateIssueRequest(&req); err != nil {
		return respondError(c, err)
	}

	issue, err := h.issues.Create(c.Request().Context(), actor, c.Param("projectID"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, issue)
}

func (h *Handler) GetIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	issue, err := h.issues.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, issue)
}

func (h *Handler) UpdateIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.UpdateIssueRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateIssueRequest(&req); err != nil {
		return respondError(c, err)
	}

	issue, err := h.issues.Update(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, issue)
}

func (h *Handler) DeleteIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.issues.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"deleted": true})
}

func (h *Handler) MoveIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.MoveIssueRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateMoveIssueRequest(&req); err != nil {
		return respondError(c, err)
	}

	issue, err := h.board.MoveIssue(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, issue)
}

func (h *Handler) ListIssueActivity(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	entries, err := h.issues.ListActivity(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, entries)
}

func (h *Handler) WatchIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.issues.Watch(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"watching": true})
}

func (h *Handler) UnwatchIssue(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.issues.Unwatch(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"watching": false})
}

func (h *Handler) ListBacklog(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	issues, err := h.issues.Backlog(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, issues)
}
