package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

func (h *Handler) ListNotifications(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	unreadOnly := c.QueryParam("unread") == "true"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	ctx := c.Request().Context()
	notifications, err := h.notifications.List(ctx, actor.ID, unreadOnly, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	unread, err := h.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, http.StatusOK, echo.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.notifications.MarkRead(c.Request().Context(), c.Param("id"), actor.ID); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"read": true})
}

func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.notifications.MarkAllRead(c.Request().Context(), actor.ID); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"read": true})
}

func (h *Handler) GetNotificationPrefs(c echo.Context) error {
	actor := middleware.CurrentProfile(c)
	return respondData(c, http.StatusOK, actor.Prefs)
}

func (h *Handler) UpdateNotificationPrefs(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var prefs model.NotificationPrefs
	if err := c.Bind(&prefs); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}

	if err := h.notifications.UpdatePrefs(c.Request().Context(), actor.ID, prefs); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, prefs)
}
