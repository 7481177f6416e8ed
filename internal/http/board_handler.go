package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/http/validators"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func (h *Handler) GetBoard(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	board, err := h.board.Snapshot(c.Request().Context(), actor, c.Param("projectID"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, board)
}

func (h *Handler) CreateColumn(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CreateColumnRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateColumnRequest(&req); err != nil {
		return respondError(c, err)
	}

	column, err := h.board.CreateColumn(c.Request().Context(), actor, c.Param("projectID"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, column)
}

func (h *Handler) UpdateColumn(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.UpdateColumnRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateColumnRequest(&req); err != nil {
		return respondError(c, err)
	}

	column, err := h.board.UpdateColumn(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, column)
}

func (h *Handler) DeleteColumn(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.board.DeleteColumn(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"deleted": true})
}
