package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
)

// Saved filters are a convenience cache; a failing filter store
// degrades to an empty set rather than failing the request.
func (h *Handler) GetSavedFilters(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	values, err := h.filters.Get(c.Request().Context(), c.Param("projectID"), actor.ID)
	if err != nil {
		log.Printf("saved filters read failed for user %s: %v", actor.ID, err)
		values = map[string]string{}
	}
	return respondData(c, http.StatusOK, values)
}

func (h *Handler) PutSavedFilters(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}

	if err := h.filters.Put(c.Request().Context(), c.Param("projectID"), actor.ID, values); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, values)
}
