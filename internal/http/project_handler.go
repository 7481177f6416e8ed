package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/http/validators"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func (h *Handler) CreateProject(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return respondError(c, err)
	}

	project, err := h.projects.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	projects, err := h.projects.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	project, err := h.projects.Get(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, project)
}

func (h *Handler) AddProjectMember(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateAddMemberRequest(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.projects.AddMember(c.Request().Context(), actor, c.Param("projectID"), &req); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, echo.Map{"added": true})
}

func (h *Handler) ListProjectMembers(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	members, err := h.projects.ListMembers(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, members)
}
